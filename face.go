package gocube

import "fmt"

// Face identifies one of the six outer layers. The numeric value is the
// scan index: faces are scanned Top, Front, Right, Back, Left, Bottom.
type Face int

const (
	FaceU Face = 0 // Up (top)
	FaceF Face = 1 // Front
	FaceR Face = 2 // Right
	FaceB Face = 3 // Back
	FaceL Face = 4 // Left
	FaceD Face = 5 // Down (bottom)
)

// Faces lists the faces in scan order.
var Faces = []Face{FaceU, FaceF, FaceR, FaceB, FaceL, FaceD}

// String returns the move notation letter for the face.
func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceF:
		return "F"
	case FaceR:
		return "R"
	case FaceB:
		return "B"
	case FaceL:
		return "L"
	case FaceD:
		return "D"
	default:
		return "?"
	}
}

// DisplayName returns a human-readable name for the face.
func (f Face) DisplayName() string {
	switch f {
	case FaceU:
		return "Top"
	case FaceF:
		return "Front"
	case FaceR:
		return "Right"
	case FaceB:
		return "Back"
	case FaceL:
		return "Left"
	case FaceD:
		return "Bottom"
	default:
		return "Unknown"
	}
}

// Valid reports whether f is one of the six faces.
func (f Face) Valid() bool {
	return f >= FaceU && f <= FaceD
}

// FaceFromIndex converts a scan index (0-5) into a Face.
func FaceFromIndex(index int) (Face, error) {
	f := Face(index)
	if !f.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidFace, index)
	}
	return f, nil
}

// GridPos is an integer lattice vector. It is used both for cubie grid
// positions (components in {-1, 0, 1}) and for unit axes.
type GridPos struct {
	X, Y, Z int
}

// Dot returns the dot product.
func (p GridPos) Dot(q GridPos) int {
	return p.X*q.X + p.Y*q.Y + p.Z*q.Z
}

// Side is a local side of a cubie box, in +X, -X, +Y, -Y, +Z, -Z order.
type Side int

const (
	SidePX Side = iota // front
	SideNX             // back
	SidePY             // top
	SideNY             // bottom
	SidePZ             // left
	SideNZ             // right
)

var sideNormals = [6]GridPos{
	{1, 0, 0}, {-1, 0, 0},
	{0, 1, 0}, {0, -1, 0},
	{0, 0, 1}, {0, 0, -1},
}

// Normal returns the outward unit normal of the side in the cubie's frame.
func (s Side) Normal() GridPos {
	return sideNormals[s]
}

// layout describes one face: its outward axis, the box side painted for
// it, and its nine slots in traversal order. Traversal order is also the
// order color codes arrive in during a scan.
type layout struct {
	axis  GridPos
	side  Side
	slots [9]int
}

var layouts = [6]layout{
	FaceU: {axis: GridPos{0, 1, 0}, side: SidePY, slots: [9]int{20, 11, 2, 19, 10, 1, 18, 9, 0}},
	FaceF: {axis: GridPos{1, 0, 0}, side: SidePX, slots: [9]int{18, 9, 0, 21, 12, 3, 24, 15, 6}},
	FaceR: {axis: GridPos{0, 0, -1}, side: SideNZ, slots: [9]int{0, 1, 2, 3, 4, 5, 6, 7, 8}},
	FaceB: {axis: GridPos{-1, 0, 0}, side: SideNX, slots: [9]int{2, 11, 20, 5, 14, 23, 8, 17, 26}},
	FaceL: {axis: GridPos{0, 0, 1}, side: SidePZ, slots: [9]int{20, 19, 18, 23, 22, 21, 26, 25, 24}},
	FaceD: {axis: GridPos{0, -1, 0}, side: SideNY, slots: [9]int{24, 15, 6, 25, 16, 7, 26, 17, 8}},
}

// Axis returns the outward unit axis of the face.
func (f Face) Axis() GridPos {
	return layouts[f].axis
}

// Side returns the cubie box side that is painted for this face on a
// cubie in its home orientation.
func (f Face) Side() Side {
	return layouts[f].side
}

// Slots returns the face's nine slot indices in traversal order.
func (f Face) Slots() [9]int {
	return layouts[f].slots
}

// SlotPos returns the grid position of a slot index.
// Slot i = 9k + 3j + m sits at (1-m, 1-j, k-1).
func SlotPos(slot int) GridPos {
	k, r := slot/9, slot%9
	j, m := r/3, r%3
	return GridPos{X: 1 - m, Y: 1 - j, Z: k - 1}
}

// SlotAt is the inverse of SlotPos.
func SlotAt(p GridPos) int {
	return 9*(p.Z+1) + 3*(1-p.Y) + (1 - p.X)
}
