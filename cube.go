package gocube

import (
	"fmt"
	"strings"
)

// Cube is a 54-facelet snapshot of the cube's exterior, as produced by
// Store.Cube. Facelets[face][i] is the sticker at position i of the face's
// traversal order, the same order scan data arrives in:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// Position 4 is the face center and never moves.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// Clone creates a deep copy of the snapshot.
func (c *Cube) Clone() *Cube {
	clone := *c
	return &clone
}

// Face returns one face as scan codes, e.g. "rrrrrrrrr".
func (c *Cube) Face(f Face) string {
	return FormatFaceColors(c.Facelets[f])
}

// IsSolved returns true if every face shows a single color.
// An uncolored cube is never solved.
func (c *Cube) IsSolved() bool {
	for _, face := range Faces {
		if !c.faceUniform(face) {
			return false
		}
	}
	return true
}

func (c *Cube) faceUniform(face Face) bool {
	center := c.Facelets[face][4]
	if center == Blank {
		return false
	}
	for i := 0; i < 9; i++ {
		if c.Facelets[face][i] != center {
			return false
		}
	}
	return true
}

// Colored reports whether every facelet carries a sticker.
func (c *Cube) Colored() bool {
	for _, face := range Faces {
		for i := 0; i < 9; i++ {
			if c.Facelets[face][i] == Blank {
				return false
			}
		}
	}
	return true
}

// String returns a text net of the cube. Rows follow traversal order.
func (c *Cube) String() string {
	var b strings.Builder

	// U face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[FaceU][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				b.WriteString(c.Facelets[face][row*3+col].String() + " ")
			}
		}
		b.WriteString("\n")
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		b.WriteString("      ")
		for col := 0; col < 3; col++ {
			b.WriteString(c.Facelets[FaceD][row*3+col].String() + " ")
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Debug returns a simple debug string.
func (c *Cube) Debug() string {
	return fmt.Sprintf("Solved: %v, Phase: %s", c.IsSolved(), c.DetectPhase())
}
