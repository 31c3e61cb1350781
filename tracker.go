package gocube

// Tracker watches a Store during playback and reports phase transitions.
type Tracker struct {
	lastPhase     Phase
	highestPhase  Phase // Monotonic - never goes backwards
	phaseCallback func(phase Phase)
}

// NewTracker creates a tracker with no phase reached yet.
func NewTracker() *Tracker {
	return &Tracker{
		lastPhase:    PhaseUncolored,
		highestPhase: PhaseUncolored,
	}
}

// SetPhaseCallback sets a callback that fires when a new highest phase is
// reached.
func (t *Tracker) SetPhaseCallback(cb func(phase Phase)) {
	t.phaseCallback = cb
}

// Reset forgets every phase reached so far.
func (t *Tracker) Reset() {
	t.lastPhase = PhaseUncolored
	t.highestPhase = PhaseUncolored
}

// Start records the phase of a freshly scanned cube without firing the
// callback, so playback only reports progress beyond it.
func (t *Tracker) Start(s *Store) {
	t.lastPhase = s.Cube().DetectPhase()
	t.highestPhase = t.lastPhase
}

// Observe checks the store for a phase transition.
func (t *Tracker) Observe(s *Store) {
	current := s.Cube().DetectPhase()
	t.lastPhase = current

	// Only fire on a NEW high; phases may dip mid-algorithm.
	if current > t.highestPhase {
		t.highestPhase = current
		if t.phaseCallback != nil {
			t.phaseCallback(current)
		}
	}
}

// CurrentPhase returns the phase seen at the last observation.
func (t *Tracker) CurrentPhase() Phase {
	return t.lastPhase
}

// HighestPhase returns the highest phase reached.
func (t *Tracker) HighestPhase() Phase {
	return t.highestPhase
}
