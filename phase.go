package gocube

// Phase is a coarse layer-by-layer progress level. Phases are ordered, so
// they compare with < and >.
type Phase int

const (
	// PhaseUncolored means at least one facelet has no sticker.
	PhaseUncolored Phase = iota

	// PhaseScrambled means no layer is in place.
	PhaseScrambled

	// PhaseCross means the edges of one outer layer match the centers of
	// every face they show on.
	PhaseCross

	// PhaseFirstLayer means a whole outer layer is in place.
	PhaseFirstLayer

	// PhaseSecondLayer means an outer layer and the middle layer next to it
	// are in place.
	PhaseSecondLayer

	// PhaseSolved means every face shows a single color.
	PhaseSolved
)

// String returns a short identifier for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseUncolored:
		return "uncolored"
	case PhaseScrambled:
		return "scrambled"
	case PhaseCross:
		return "cross"
	case PhaseFirstLayer:
		return "first_layer"
	case PhaseSecondLayer:
		return "second_layer"
	case PhaseSolved:
		return "solved"
	default:
		return "unknown"
	}
}

// DisplayName returns a human-readable name for the phase.
func (p Phase) DisplayName() string {
	switch p {
	case PhaseUncolored:
		return "Uncolored"
	case PhaseScrambled:
		return "Scrambled"
	case PhaseCross:
		return "Cross"
	case PhaseFirstLayer:
		return "First Layer"
	case PhaseSecondLayer:
		return "Second Layer"
	case PhaseSolved:
		return "Solved"
	default:
		return "Unknown"
	}
}

// IsComplete returns true if the cube is solved.
func (p Phase) IsComplete() bool {
	return p == PhaseSolved
}
