package analysis

import (
	"github.com/SeamusWaldron/gocube_viewer"
)

// TimedMove is a played move with its offset from the solve start.
type TimedMove struct {
	Move gocube.Move
	TsMs int64
}

// SolveSummary contains statistics for one played solution.
type SolveSummary struct {
	TotalMoves        int               `json:"total_moves"`
	QuarterTurns      int               `json:"quarter_turns"`
	OptimizedMoves    int               `json:"optimized_moves"`
	Efficiency        float64           `json:"efficiency"`
	DurationMs        int64             `json:"duration_ms"`
	TPSOverall        float64           `json:"tps_overall"`
	LongestPauseMs    int64             `json:"longest_pause_ms"`
	AvgMoveDurationMs float64           `json:"avg_move_duration_ms"`
	Profile           *MovementProfile  `json:"profile"`
	Repetitions       *RepetitionReport `json:"repetitions"`
}

// Summarize computes statistics for a played solve.
func Summarize(timed []TimedMove) *SolveSummary {
	moves := make([]gocube.Move, len(timed))
	for i, t := range timed {
		moves[i] = t.Move
	}
	optimized := OptimizeMoves(moves)

	s := &SolveSummary{
		TotalMoves:        len(moves),
		QuarterTurns:      QuarterTurnCount(moves),
		OptimizedMoves:    len(optimized),
		Efficiency:        CalculateEfficiency(moves, optimized),
		LongestPauseMs:    FindLongestPause(timed),
		AvgMoveDurationMs: CalculateAvgMoveDuration(timed),
		Profile:           AnalyzeMovementProfile(moves),
		Repetitions:       AnalyzeRepetitions(moves),
	}
	if len(timed) > 0 {
		s.DurationMs = timed[len(timed)-1].TsMs - timed[0].TsMs
	}
	s.TPSOverall = CalculateTPS(len(moves), s.DurationMs)
	return s
}

// QuarterTurnCount returns the length of a sequence in the quarter-turn
// metric, where a half turn counts twice.
func QuarterTurnCount(moves []gocube.Move) int {
	n := 0
	for _, m := range moves {
		n += m.QuarterTurns()
	}
	return n
}

// CalculateTPS calculates turns per second.
func CalculateTPS(moves int, durationMs int64) float64 {
	if durationMs <= 0 {
		return 0
	}
	return float64(moves) / (float64(durationMs) / 1000.0)
}

// CalculateAvgMoveDuration calculates the average time between moves.
func CalculateAvgMoveDuration(moves []TimedMove) float64 {
	if len(moves) < 2 {
		return 0
	}

	totalGap := moves[len(moves)-1].TsMs - moves[0].TsMs
	return float64(totalGap) / float64(len(moves)-1)
}

// FindLongestPause finds the longest gap between consecutive moves.
func FindLongestPause(moves []TimedMove) int64 {
	var longest int64

	for i := 1; i < len(moves); i++ {
		gap := moves[i].TsMs - moves[i-1].TsMs
		if gap > longest {
			longest = gap
		}
	}

	return longest
}

// MovementProfile counts how often each face and turn is used.
type MovementProfile struct {
	FaceCounts   map[gocube.Face]int `json:"face_counts"`
	TurnCounts   map[gocube.Turn]int `json:"turn_counts"`
	MostUsedFace gocube.Face         `json:"most_used_face"`
	MostUsedTurn gocube.Turn         `json:"most_used_turn"`
}

// AnalyzeMovementProfile analyzes which faces and turns are most used.
// Ties go to the face or turn listed first in notation order.
func AnalyzeMovementProfile(moves []gocube.Move) *MovementProfile {
	profile := &MovementProfile{
		FaceCounts: make(map[gocube.Face]int),
		TurnCounts: make(map[gocube.Turn]int),
	}

	for _, m := range moves {
		profile.FaceCounts[m.Face]++
		profile.TurnCounts[m.Turn]++
	}

	best := 0
	for _, face := range gocube.Faces {
		if count := profile.FaceCounts[face]; count > best {
			best = count
			profile.MostUsedFace = face
		}
	}

	best = 0
	for _, turn := range []gocube.Turn{gocube.CW, gocube.CCW, gocube.Double} {
		if count := profile.TurnCounts[turn]; count > best {
			best = count
			profile.MostUsedTurn = turn
		}
	}

	return profile
}
