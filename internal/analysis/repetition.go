// Package analysis computes statistics over move sequences: wasted motion,
// repeated patterns and timing of played solves.
package analysis

import (
	"github.com/SeamusWaldron/gocube_viewer"
)

// Cancellation represents two adjacent moves that undo each other (R R').
type Cancellation struct {
	Index1 int    `json:"index1"`
	Index2 int    `json:"index2"`
	Move1  string `json:"move1"`
	Move2  string `json:"move2"`
}

// MergeOpportunity represents adjacent same-face moves that could be one
// move (R R = R2).
type MergeOpportunity struct {
	Index1     int    `json:"index1"`
	Index2     int    `json:"index2"`
	Move1      string `json:"move1"`
	Move2      string `json:"move2"`
	MergedMove string `json:"merged_move"`
}

// BackAndForthPattern represents a pair of moves repeated back to back
// (R U R U R U).
type BackAndForthPattern struct {
	StartIndex int      `json:"start_index"`
	EndIndex   int      `json:"end_index"`
	Pattern    []string `json:"pattern"`
	Count      int      `json:"count"`
}

// RepetitionReport contains all repetition analysis results.
type RepetitionReport struct {
	ImmediateCancellations []Cancellation        `json:"immediate_cancellations"`
	MergeOpportunities     []MergeOpportunity    `json:"merge_opportunities"`
	BackAndForthPatterns   []BackAndForthPattern `json:"back_and_forth_patterns"`
	TotalWastedMoves       int                   `json:"total_wasted_moves"`
}

// AnalyzeRepetitions looks for wasted motion between adjacent moves.
func AnalyzeRepetitions(moves []gocube.Move) *RepetitionReport {
	report := &RepetitionReport{
		ImmediateCancellations: []Cancellation{},
		MergeOpportunities:     []MergeOpportunity{},
		BackAndForthPatterns:   []BackAndForthPattern{},
	}

	if len(moves) < 2 {
		return report
	}

	for i := 0; i < len(moves)-1; i++ {
		m1, m2 := moves[i], moves[i+1]
		if m1.Face != m2.Face {
			continue
		}

		merged, ok := mergeMoves(m1, m2)
		if !ok {
			report.ImmediateCancellations = append(report.ImmediateCancellations, Cancellation{
				Index1: i,
				Index2: i + 1,
				Move1:  m1.Notation(),
				Move2:  m2.Notation(),
			})
			report.TotalWastedMoves += 2
			continue
		}

		report.MergeOpportunities = append(report.MergeOpportunities, MergeOpportunity{
			Index1:     i,
			Index2:     i + 1,
			Move1:      m1.Notation(),
			Move2:      m2.Notation(),
			MergedMove: merged.Notation(),
		})
		report.TotalWastedMoves++
	}

	report.BackAndForthPatterns = findBackAndForth(moves)

	return report
}

// findBackAndForth finds a pair AB repeated at least three times in a row.
func findBackAndForth(moves []gocube.Move) []BackAndForthPattern {
	var patterns []BackAndForthPattern

	if len(moves) < 6 {
		return patterns
	}

	i := 0
	for i < len(moves)-3 {
		a, b := moves[i], moves[i+1]
		if a == b {
			i++
			continue
		}

		count := 1
		j := i + 2
		for j < len(moves)-1 && moves[j] == a && moves[j+1] == b {
			count++
			j += 2
		}

		if count >= 3 {
			patterns = append(patterns, BackAndForthPattern{
				StartIndex: i,
				EndIndex:   i + count*2 - 1,
				Pattern:    []string{a.Notation(), b.Notation()},
				Count:      count,
			})
			i = j
		} else {
			i++
		}
	}

	return patterns
}

// OptimizeMoves returns the sequence with adjacent same-face moves merged
// and cancelled, repeatedly, so R U U' R' collapses to nothing.
func OptimizeMoves(moves []gocube.Move) []gocube.Move {
	result := make([]gocube.Move, 0, len(moves))

	for _, move := range moves {
		if len(result) == 0 || result[len(result)-1].Face != move.Face {
			result = append(result, move)
			continue
		}

		last := &result[len(result)-1]
		merged, ok := mergeMoves(*last, move)
		if !ok {
			result = result[:len(result)-1]
		} else {
			*last = merged
		}
	}

	return result
}

// CalculateEfficiency returns len(optimized)/len(original); 1 for an empty
// sequence.
func CalculateEfficiency(original, optimized []gocube.Move) float64 {
	if len(original) == 0 {
		return 1.0
	}
	return float64(len(optimized)) / float64(len(original))
}
