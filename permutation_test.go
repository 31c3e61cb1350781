package gocube

import (
	"math/rand"
	"testing"
)

func shuffledSlots(seed int64) Slots {
	var s Slots
	for i, id := range rand.New(rand.NewSource(seed)).Perm(27) {
		s[i] = CubieID(id)
	}
	return s
}

func TestPermuteForwardCycles(t *testing.T) {
	var s Slots
	for i := range s {
		s[i] = CubieID(i)
	}
	idx := FaceR.Slots() // 0..8
	s.PermuteForward(idx)

	// Each cycle position receives the occupant one step earlier.
	want := map[int]CubieID{
		2: 0, 8: 2, 6: 8, 0: 6, // corners
		5: 1, 7: 5, 3: 7, 1: 3, // edges
		4: 4,
	}
	for slot, id := range want {
		if s[slot] != id {
			t.Errorf("slot %d = %d, want %d", slot, s[slot], id)
		}
	}
	for slot := 9; slot < 27; slot++ {
		if s[slot] != CubieID(slot) {
			t.Errorf("slot %d outside the face changed to %d", slot, s[slot])
		}
	}
}

func TestPermuteRoundTrip(t *testing.T) {
	for _, f := range Faces {
		start := shuffledSlots(int64(f) + 1)

		s := start
		s.PermuteForward(f.Slots())
		if s == start {
			t.Errorf("%s: forward turn did nothing", f)
		}
		s.PermuteBackward(f.Slots())
		if s != start {
			t.Errorf("%s: forward then backward = %v, want %v", f, s, start)
		}

		s.PermuteBackward(f.Slots())
		s.PermuteForward(f.Slots())
		if s != start {
			t.Errorf("%s: backward then forward did not restore", f)
		}
	}
}

func TestPermuteFourCycleClosure(t *testing.T) {
	for _, f := range Faces {
		start := shuffledSlots(42)
		s := start
		for i := 0; i < 4; i++ {
			s.PermuteForward(f.Slots())
			if !s.IsPermutation() {
				t.Fatalf("%s: turn %d broke the permutation", f, i+1)
			}
		}
		if s != start {
			t.Errorf("%s: four forward turns did not restore", f)
		}

		// Three forward turns equal one backward turn.
		a, b := start, start
		for i := 0; i < 3; i++ {
			a.PermuteForward(f.Slots())
		}
		b.PermuteBackward(f.Slots())
		if a != b {
			t.Errorf("%s: forward x3 != backward", f)
		}
	}
}

func TestDoubleMoveIsTwoForwardTurns(t *testing.T) {
	for _, f := range Faces {
		a := NewStore()
		a.ApplyMove(Move{Face: f, Turn: Double})

		b := NewStore()
		b.Turn(f, false)
		b.Turn(f, false)

		if a.Slots() != b.Slots() {
			t.Errorf("%s2 slots differ from two quarter turns", f)
		}
	}
}

func TestIsPermutation(t *testing.T) {
	s := shuffledSlots(1)
	if !s.IsPermutation() {
		t.Error("shuffled slots should be a permutation")
	}
	s[0] = s[1]
	if s.IsPermutation() {
		t.Error("duplicate ID should not be a permutation")
	}
}

func TestQuarterTurnIsRotation(t *testing.T) {
	for _, f := range Faces {
		fw := quarterTurn(f.Axis(), false)
		bw := quarterTurn(f.Axis(), true)
		if fw.mul(bw) != identity3 {
			t.Errorf("%s: forward * backward != identity", f)
		}
		if fw.apply(f.Axis()) != f.Axis() {
			t.Errorf("%s: axis not fixed by its own turn", f)
		}
	}
}
