package gocube

import (
	"fmt"
	"log/slog"
)

// CubieID indexes a cubie in the store's arena. IDs are assigned at reset
// and equal the cubie's home slot.
type CubieID int

// Cubie is one of the 27 small cubes.
type Cubie struct {
	ID     CubieID
	Home   GridPos  // Grid position at reset
	Colors [6]Color // Sticker per local side, Blank when unpainted
	orient rot3     // Logical orientation relative to home
}

// Color returns the sticker on a local side.
func (c *Cubie) Color(s Side) Color {
	return c.Colors[s]
}

// Facing returns the local side whose outward normal currently points in
// the world direction dir.
func (c *Cubie) Facing(dir GridPos) Side {
	for s := SidePX; s <= SideNZ; s++ {
		if c.orient.apply(s.Normal()) == dir {
			return s
		}
	}
	panic(fmt.Sprintf("gocube: cubie %d has no side facing %v", c.ID, dir))
}

// Orientation returns the logical rotation matrix of the cubie.
func (c *Cubie) Orientation() [3][3]int {
	return c.orient
}

// Store owns the 27 cubies and the slot index array. It is the logical,
// authoritative cube: every turn is applied to it instantly.
type Store struct {
	cubies  [27]Cubie
	slots   Slots
	applied uint8 // bit per face painted in the current scan pass
	colored bool
	logger  *slog.Logger
}

// NewStore creates a store in the canonical, uncolored arrangement.
func NewStore(opts ...Option) *Store {
	cfg := newConfig(opts)
	s := &Store{logger: cfg.logger}
	s.Reset()
	return s
}

// Reset rebuilds all cubies at their home slots and discards coloring.
func (s *Store) Reset() {
	for i := range s.cubies {
		s.cubies[i] = Cubie{
			ID:     CubieID(i),
			Home:   SlotPos(i),
			orient: identity3,
		}
		s.slots[i] = CubieID(i)
	}
	s.applied = 0
	s.colored = false
	s.logger.Debug("cube store reset")
}

// ApplyFaceColors paints nine stickers onto a face. colors holds exactly
// nine scan codes read in the face's traversal order. Each code goes to
// the side of the slot's current occupant that faces outward on that face.
// On error the store is left unchanged.
func (s *Store) ApplyFaceColors(face Face, colors string) error {
	if !face.Valid() {
		return fmt.Errorf("%w: %d", ErrInvalidFace, face)
	}
	parsed, err := ParseFaceColors(colors)
	if err != nil {
		return fmt.Errorf("face %s: %w", face, err)
	}

	l := layouts[face]
	for i, slot := range l.slots {
		c := &s.cubies[s.slots[slot]]
		c.Colors[c.Facing(l.axis)] = parsed[i]
	}

	s.applied |= 1 << uint(face)
	if s.applied == 0x3f && !s.colored {
		s.colored = true
		s.logger.Debug("all faces colored")
	}
	return nil
}

// Colored reports whether all six faces were painted in this scan pass.
func (s *Store) Colored() bool {
	return s.colored
}

// ClearColored drops the colored flag, requiring a fresh scan before the
// next solve.
func (s *Store) ClearColored() {
	s.colored = false
	s.applied = 0
}

// Turn applies one quarter turn of a face: the slot permutation and the
// orientation update of the nine cubies in the layer.
func (s *Store) Turn(face Face, reverse bool) {
	l := layouts[face]
	r := quarterTurn(l.axis, reverse)
	for _, slot := range l.slots {
		c := &s.cubies[s.slots[slot]]
		c.orient = r.mul(c.orient)
	}
	if reverse {
		s.slots.PermuteBackward(l.slots)
	} else {
		s.slots.PermuteForward(l.slots)
	}
}

// ApplyMove applies a move as quarter turns. A double turn is two forward
// quarter turns.
func (s *Store) ApplyMove(m Move) {
	for _, reverse := range m.quarterTurns() {
		s.Turn(m.Face, reverse)
	}
}

// ApplyMoves applies a sequence of moves.
func (s *Store) ApplyMoves(moves []Move) {
	for _, m := range moves {
		s.ApplyMove(m)
	}
}

// Occupant returns the cubie currently in a slot.
func (s *Store) Occupant(slot int) *Cubie {
	return &s.cubies[s.slots[slot]]
}

// Cubie returns a cubie by ID.
func (s *Store) Cubie(id CubieID) *Cubie {
	return &s.cubies[id]
}

// Slots returns a copy of the slot index array.
func (s *Store) Slots() Slots {
	return s.slots
}

// SlotOf returns the slot currently holding a cubie.
func (s *Store) SlotOf(id CubieID) int {
	for i, occupant := range s.slots {
		if occupant == id {
			return i
		}
	}
	return -1
}

// Layer returns the IDs of the cubies currently in a face's layer, in
// traversal order.
func (s *Store) Layer(face Face) []CubieID {
	l := layouts[face]
	ids := make([]CubieID, len(l.slots))
	for i, slot := range l.slots {
		ids[i] = s.slots[slot]
	}
	return ids
}

// Cube returns the exterior stickers as a 54-facelet snapshot.
func (s *Store) Cube() *Cube {
	c := &Cube{}
	for _, face := range Faces {
		l := layouts[face]
		for i, slot := range l.slots {
			occupant := &s.cubies[s.slots[slot]]
			c.Facelets[face][i] = occupant.Colors[occupant.Facing(l.axis)]
		}
	}
	return c
}
