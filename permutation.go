package gocube

// Slots is the slot index array: Slots[i] is the cubie currently sitting in
// grid slot i. It is always a permutation of the 27 cubie IDs.
type Slots [27]CubieID

// Cycles over a face's traversal positions. Corners and edge midpoints
// rotate among themselves; position 4 (the face center) stays put.
var (
	cornerCycle = [4]int{0, 2, 8, 6}
	edgeCycle   = [4]int{1, 5, 7, 3}
)

// PermuteForward applies a clockwise quarter turn to the slots listed in
// indices: each cycle position receives the occupant that was one step
// earlier in the cycle.
func (s *Slots) PermuteForward(indices [9]int) {
	s.cycleForward(indices, cornerCycle)
	s.cycleForward(indices, edgeCycle)
}

// PermuteBackward is the inverse of PermuteForward.
func (s *Slots) PermuteBackward(indices [9]int) {
	s.cycleBackward(indices, cornerCycle)
	s.cycleBackward(indices, edgeCycle)
}

func (s *Slots) cycleForward(indices [9]int, c [4]int) {
	// 0->2->8->6->0
	last := s[indices[c[3]]]
	for i := 3; i > 0; i-- {
		s[indices[c[i]]] = s[indices[c[i-1]]]
	}
	s[indices[c[0]]] = last
}

func (s *Slots) cycleBackward(indices [9]int, c [4]int) {
	// 0->6->8->2->0
	first := s[indices[c[0]]]
	for i := 0; i < 3; i++ {
		s[indices[c[i]]] = s[indices[c[i+1]]]
	}
	s[indices[c[3]]] = first
}

// IsPermutation reports whether every cubie ID appears exactly once.
func (s *Slots) IsPermutation() bool {
	var seen [27]bool
	for _, id := range s {
		if id < 0 || int(id) >= len(seen) || seen[id] {
			return false
		}
		seen[id] = true
	}
	return true
}

// rot3 is an exact rotation matrix on the integer lattice. Quarter turns
// only ever produce entries in {-1, 0, 1}.
type rot3 [3][3]int

var identity3 = rot3{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}

// quarterTurn returns the rotation of a quarter turn about a unit axis.
// Forward turns are -90 degrees about the face's outward axis, which is
// clockwise when looking at the face.
func quarterTurn(axis GridPos, reverse bool) rot3 {
	sign := -1
	if reverse {
		sign = 1
	}
	a := [3]int{axis.X, axis.Y, axis.Z}
	k := [3][3]int{
		{0, -a[2], a[1]},
		{a[2], 0, -a[0]},
		{-a[1], a[0], 0},
	}

	// Rodrigues at +-90 degrees: R = sin*K + a*a^T
	var r rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = sign*k[i][j] + a[i]*a[j]
		}
	}
	return r
}

func (m rot3) apply(v GridPos) GridPos {
	return GridPos{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z,
	}
}

// mul returns m*n (n applied first).
func (m rot3) mul(n rot3) rot3 {
	var out rot3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			for k := 0; k < 3; k++ {
				out[i][j] += m[i][k] * n[k][j]
			}
		}
	}
	return out
}
