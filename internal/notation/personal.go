// Package notation spells moves out in words, seen from the front with
// the top face up.
package notation

import (
	"strings"

	"github.com/SeamusWaldron/gocube_viewer"
)

// Mapping:
//
//	R  -> "R up"                R' -> "R down"                     R2 -> "R up x 2"
//	L  -> "L down"              L' -> "L up"                       L2 -> "L down x 2"
//	U  -> "T rotate left"       U' -> "T rotate right"             U2 -> "T rotate left x 2"
//	D  -> "B rotate right"      D' -> "B rotate left"              D2 -> "B rotate right x 2"
//	F  -> "F rotate clockwise"  F' -> "F rotate anti-clockwise"    F2 -> "F rotate x 2"
//	B  -> "Back rotate clockwise" (seen from the back)
var phrases = map[gocube.Face][3]string{
	// CW, CCW, Double
	gocube.FaceR: {"R up", "R down", "R up x 2"},
	gocube.FaceL: {"L down", "L up", "L down x 2"},
	gocube.FaceU: {"T rotate left", "T rotate right", "T rotate left x 2"},
	gocube.FaceD: {"B rotate right", "B rotate left", "B rotate right x 2"},
	gocube.FaceF: {"F rotate clockwise", "F rotate anti-clockwise", "F rotate x 2"},
	gocube.FaceB: {"Back rotate clockwise", "Back rotate anti-clockwise", "Back rotate x 2"},
}

// Describe converts a Move to words.
func Describe(m gocube.Move) string {
	p, ok := phrases[m.Face]
	if !ok {
		return m.Notation()
	}
	switch m.Turn {
	case gocube.CW:
		return p[0]
	case gocube.CCW:
		return p[1]
	case gocube.Double:
		return p[2]
	}
	return m.Notation()
}

// DescribeSequence converts a slice of moves to words.
func DescribeSequence(moves []gocube.Move) []string {
	result := make([]string, len(moves))
	for i, m := range moves {
		result[i] = Describe(m)
	}
	return result
}

// FormatDescribed formats moves as a comma-separated list of phrases.
func FormatDescribed(moves []gocube.Move) string {
	return strings.Join(DescribeSequence(moves), ", ")
}
