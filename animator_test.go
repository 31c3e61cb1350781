package gocube

import (
	"math"
	"testing"
	"time"

	"github.com/westphae/quaternion"
)

const eps = 1e-9

func near(a, b quaternion.Vec3) bool {
	return math.Abs(a.X-b.X) < eps && math.Abs(a.Y-b.Y) < eps && math.Abs(a.Z-b.Z) < eps
}

// assertMatchesStore checks that every cubie is drawn where the store
// says it is, turned the way the store says it is turned.
func assertMatchesStore(t *testing.T, p *Presenter, s *Store) {
	t.Helper()
	for i := 0; i < 27; i++ {
		id := CubieID(i)
		want := vec(SlotPos(s.SlotOf(id)))
		if got := p.Transform(id).Position; !near(got, want) {
			t.Errorf("cubie %d drawn at %v, logical %v", id, got, want)
		}
		c := s.Cubie(id)
		for d := SidePX; d <= SideNZ; d++ {
			dir := d.Normal()
			if got, want := p.Facing(id, vec(dir)), c.Facing(dir); got != want {
				t.Errorf("cubie %d facing %v: visual side %d, logical side %d", id, dir, got, want)
			}
		}
	}
}

func TestPresenterStartsHome(t *testing.T) {
	p := NewPresenter()
	assertMatchesStore(t, p, NewStore())
	if p.Busy() {
		t.Error("new presenter should be idle")
	}
}

func TestPresenterHalfway(t *testing.T) {
	p := NewPresenter(WithTweenDuration(500 * time.Millisecond))
	t0 := time.Unix(0, 0)

	r := p.RotateFace(FaceR, NewStore().Layer(FaceR), false, t0)
	if n := p.Advance(t0.Add(250 * time.Millisecond)); n != 1 {
		t.Fatalf("Advance returned %d active rotations, want 1", n)
	}
	if r.Finished() {
		t.Fatal("rotation should still be in flight")
	}

	// Cubie 0 starts at (1, 1, -1) and swings a quarter of the way
	// toward slot 2 at (-1, 1, -1).
	want := quaternion.Vec3{X: 0, Y: math.Sqrt2, Z: -1}
	if got := p.Transform(0).Position; !near(got, want) {
		t.Errorf("halfway position = %v, want %v", got, want)
	}
	// Cubies outside the layer do not move.
	if got := p.Transform(9).Position; !near(got, vec(SlotPos(9))) {
		t.Errorf("cubie 9 moved to %v", got)
	}

	if n := p.Advance(t0.Add(500 * time.Millisecond)); n != 0 {
		t.Errorf("Advance at end returned %d", n)
	}
	select {
	case <-r.Done():
	default:
		t.Error("Done should be closed after the tween")
	}
	if got := p.Transform(0).Position; got != vec(SlotPos(2)) {
		t.Errorf("final position = %v, want exactly %v", got, vec(SlotPos(2)))
	}
}

func TestPresenterDeltasAccumulate(t *testing.T) {
	// Many small frames must land in the same place as one big one.
	a := NewPresenter()
	b := NewPresenter()
	ids := NewStore().Layer(FaceU)
	t0 := time.Unix(0, 0)

	a.RotateFace(FaceU, ids, true, t0)
	b.RotateFace(FaceU, ids, true, t0)
	for ms := 16; ms < 400; ms += 16 {
		a.Advance(t0.Add(time.Duration(ms) * time.Millisecond))
	}
	a.Advance(t0.Add(400 * time.Millisecond))
	b.Advance(t0.Add(400 * time.Millisecond))

	for _, id := range ids {
		if !near(a.Transform(id).Position, b.Transform(id).Position) {
			t.Errorf("cubie %d: stepped %v, direct %v", id, a.Transform(id).Position, b.Transform(id).Position)
		}
	}
}

func TestPresenterConvergesToStore(t *testing.T) {
	moves, err := ParseMoves("R U2 F' L D B2 R' U F2 D' L2 B")
	if err != nil {
		t.Fatal(err)
	}
	s := NewStore()
	p := NewPresenter(WithEasing(EaseInOutQuad))
	now := time.Unix(0, 0)

	for _, m := range moves {
		for _, reverse := range m.quarterTurns() {
			p.RotateFace(m.Face, s.Layer(m.Face), reverse, now)
			s.Turn(m.Face, reverse)
		}
		// Frames through the tween, ending after it so turns never overlap.
		for i := 0; i < 40; i++ {
			now = now.Add(16 * time.Millisecond)
			p.Advance(now)
		}
	}
	p.Settle()

	if p.Busy() {
		t.Error("Settle should leave nothing in flight")
	}
	assertMatchesStore(t, p, s)
}

func TestPresenterOverlappingDouble(t *testing.T) {
	s := NewStore()
	p := NewPresenter()
	t0 := time.Unix(0, 0)

	// A double turn is two concurrent quarter tweens of the same layer.
	for i := 0; i < 2; i++ {
		p.RotateFace(FaceF, s.Layer(FaceF), false, t0)
		s.Turn(FaceF, false)
	}
	if n := p.Advance(t0.Add(100 * time.Millisecond)); n != 2 {
		t.Errorf("active rotations = %d, want 2", n)
	}
	p.Advance(t0.Add(time.Second))
	assertMatchesStore(t, p, s)
}

func TestPresenterDoubleUnevenFrames(t *testing.T) {
	for _, mid := range []time.Duration{150 * time.Millisecond, 350 * time.Millisecond} {
		s := NewStore()
		p := NewPresenter()
		t0 := time.Unix(0, 0)

		for i := 0; i < 2; i++ {
			p.RotateFace(FaceF, s.Layer(FaceF), false, t0)
			s.Turn(FaceF, false)
		}
		p.Advance(t0.Add(mid))
		if n := p.Advance(t0.Add(time.Second)); n != 0 {
			t.Errorf("mid %v: active rotations = %d, want 0", mid, n)
		}
		assertMatchesStore(t, p, s)
	}
}

func TestPresenterStaggeredTurnsOnSharedCubies(t *testing.T) {
	s := NewStore()
	p := NewPresenter()
	t0 := time.Unix(0, 0)

	p.RotateFace(FaceR, s.Layer(FaceR), false, t0)
	s.Turn(FaceR, false)
	p.RotateFace(FaceR, s.Layer(FaceR), false, t0.Add(150*time.Millisecond))
	s.Turn(FaceR, false)

	// The first turn retires while the second is part-way through.
	if n := p.Advance(t0.Add(600 * time.Millisecond)); n != 1 {
		t.Fatalf("active rotations = %d, want 1", n)
	}
	p.Advance(t0.Add(2 * time.Second))
	assertMatchesStore(t, p, s)
}

func TestPresenterSettleMidDouble(t *testing.T) {
	s := NewStore()
	p := NewPresenter()
	t0 := time.Unix(0, 0)

	for i := 0; i < 2; i++ {
		p.RotateFace(FaceU, s.Layer(FaceU), true, t0)
		s.Turn(FaceU, true)
	}
	p.Advance(t0.Add(150 * time.Millisecond))
	p.Settle()
	if p.Busy() {
		t.Error("Settle should leave nothing in flight")
	}
	assertMatchesStore(t, p, s)
}

func TestPresenterMidAnimationLags(t *testing.T) {
	s := NewStore()
	p := NewPresenter()
	t0 := time.Unix(0, 0)

	p.RotateFace(FaceR, s.Layer(FaceR), false, t0)
	s.Turn(FaceR, false)

	// The store has moved; the picture has not caught up yet.
	if s.SlotOf(0) != 2 {
		t.Fatalf("store slot of cubie 0 = %d", s.SlotOf(0))
	}
	if got := p.Transform(0).Position; !near(got, vec(SlotPos(0))) {
		t.Errorf("cubie 0 drawn at %v before any frame", got)
	}
}

func TestPresenterResetClosesRotations(t *testing.T) {
	p := NewPresenter()
	r := p.RotateFace(FaceD, NewStore().Layer(FaceD), false, time.Unix(0, 0))
	p.Advance(time.Unix(0, 0).Add(100 * time.Millisecond))

	p.Reset()
	if !r.Finished() {
		t.Error("Reset should close pending rotations")
	}
	if p.Busy() {
		t.Error("Reset should clear active rotations")
	}
	assertMatchesStore(t, p, NewStore())
}

func TestEasing(t *testing.T) {
	for _, fn := range []func(float64) float64{Linear, EaseInOutQuad} {
		if fn(0) != 0 || math.Abs(fn(1)-1) > eps {
			t.Errorf("easing endpoints: f(0)=%v f(1)=%v", fn(0), fn(1))
		}
	}
	if EaseInOutQuad(0.5) != 0.5 {
		t.Errorf("EaseInOutQuad(0.5) = %v", EaseInOutQuad(0.5))
	}
}
