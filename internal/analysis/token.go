package analysis

import (
	"github.com/SeamusWaldron/gocube_viewer"
)

// Token encoding for n-gram hashing: face index * 3 + turn index, giving
// 18 distinct values for the 18 face moves.

func turnToIndex(t gocube.Turn) uint8 {
	switch t {
	case gocube.CCW:
		return 1
	case gocube.Double:
		return 2
	default:
		return 0
	}
}

func indexToTurn(i uint8) gocube.Turn {
	switch i {
	case 1:
		return gocube.CCW
	case 2:
		return gocube.Double
	default:
		return gocube.CW
	}
}

// moveToken encodes a Move as a single byte.
func moveToken(m gocube.Move) uint8 {
	return uint8(m.Face)*3 + turnToIndex(m.Turn)
}

// moveFromToken decodes a token back to a Move.
func moveFromToken(token uint8) gocube.Move {
	face := gocube.Face(token / 3)
	if !face.Valid() {
		face = gocube.FaceU
	}
	return gocube.Move{Face: face, Turn: indexToTurn(token % 3)}
}

// mergeMoves merges two same-face moves into one. It returns false when
// they cancel out (R R', R2 R2).
func mergeMoves(m1, m2 gocube.Move) (gocube.Move, bool) {
	// Sum the quarter turns: CW=1, CCW=-1, Double=2
	total := (int(m1.Turn) + int(m2.Turn)) % 4
	if total < 0 {
		total += 4
	}

	switch total {
	case 0:
		return gocube.Move{}, false
	case 3:
		return gocube.Move{Face: m1.Face, Turn: gocube.CCW}, true
	default:
		return gocube.Move{Face: m1.Face, Turn: gocube.Turn(total)}, true
	}
}
