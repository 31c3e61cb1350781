package gocube

// Phase detection works on any base layer. A facelet is "in place" when it
// matches the center of the face it shows on; a layer is in place when all
// exterior facelets of the cubies in it are. Positions come from the slot
// layout, so no color scheme or orientation is assumed.

// DetectPhase returns the furthest phase reached on any base layer.
func (c *Cube) DetectPhase() Phase {
	if !c.Colored() {
		return PhaseUncolored
	}
	if c.IsSolved() {
		return PhaseSolved
	}

	best := PhaseScrambled
	for _, base := range Faces {
		if p := c.phaseFrom(base); p > best {
			best = p
		}
	}
	return best
}

func (c *Cube) phaseFrom(base Face) Phase {
	switch {
	case c.IsMiddleLayerComplete(base):
		return PhaseSecondLayer
	case c.IsLayerComplete(base):
		return PhaseFirstLayer
	case c.IsCrossComplete(base):
		return PhaseCross
	}
	return PhaseScrambled
}

// IsCrossComplete checks the edges of the base layer.
func (c *Cube) IsCrossComplete(base Face) bool {
	a := base.Axis()
	return c.inPlace(func(p GridPos) bool { return p.Dot(a) == 1 && nonZero(p) <= 2 })
}

// IsLayerComplete checks every cubie of the outer layer at base.
func (c *Cube) IsLayerComplete(base Face) bool {
	a := base.Axis()
	return c.inPlace(func(p GridPos) bool { return p.Dot(a) == 1 })
}

// IsMiddleLayerComplete checks the base layer plus the middle layer
// parallel to it.
func (c *Cube) IsMiddleLayerComplete(base Face) bool {
	a := base.Axis()
	return c.inPlace(func(p GridPos) bool { return p.Dot(a) >= 0 })
}

// inPlace checks every facelet whose slot position satisfies include.
func (c *Cube) inPlace(include func(GridPos) bool) bool {
	for _, face := range Faces {
		center := c.Facelets[face][4]
		if center == Blank {
			return false
		}
		for i, slot := range layouts[face].slots {
			if include(SlotPos(slot)) && c.Facelets[face][i] != center {
				return false
			}
		}
	}
	return true
}

// GetProgress returns per-face counts of facelets matching their center.
func (c *Cube) GetProgress() Progress {
	var p Progress
	for _, face := range Faces {
		center := c.Facelets[face][4]
		for i := 0; i < 9; i++ {
			if center != Blank && c.Facelets[face][i] == center {
				p.Matching[face]++
			}
		}
		if p.Matching[face] == 9 {
			p.SolvedFaces++
		}
	}
	p.Phase = c.DetectPhase()
	return p
}

// Progress summarizes how close the cube is to solved.
type Progress struct {
	Phase       Phase
	SolvedFaces int
	Matching    [6]int // facelets matching the face center, per face
}

// Total returns the number of facelets matching their face center (0-54).
func (p Progress) Total() int {
	n := 0
	for _, m := range p.Matching {
		n += m
	}
	return n
}

func nonZero(p GridPos) int {
	n := 0
	for _, v := range []int{p.X, p.Y, p.Z} {
		if v != 0 {
			n++
		}
	}
	return n
}
