package gocube

import (
	"log/slog"
	"math"
	"time"

	"github.com/westphae/quaternion"
)

// Transform is the visual placement of a cubie: where it is drawn and how
// it is turned. It trails the Store's logical state while a rotation is in
// flight and matches it once every rotation has completed.
type Transform struct {
	Position    quaternion.Vec3
	Orientation quaternion.Quaternion
}

// Linear is the default easing: constant angular speed.
func Linear(t float64) float64 {
	return t
}

// EaseInOutQuad accelerates through the first half and decelerates
// through the second.
func EaseInOutQuad(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

// Rotation is one in-flight tween of a set of cubies about an axis.
type Rotation struct {
	ids   []CubieID
	axis  quaternion.Vec3
	angle float64
	start time.Time
	prev  float64 // angle already applied
	done  chan struct{}
}

// Done is closed when the rotation has reached its final angle.
func (r *Rotation) Done() <-chan struct{} {
	return r.done
}

// Finished reports whether the rotation has completed.
func (r *Rotation) Finished() bool {
	select {
	case <-r.done:
		return true
	default:
		return false
	}
}

// Presenter is the visual side of the cube. Rotations are fire-and-forget:
// Rotate starts a tween and Advance, called once per frame, moves every
// active tween forward by the angle delta since the previous frame.
type Presenter struct {
	transforms [27]Transform
	active     []*Rotation
	duration   time.Duration
	easing     func(float64) float64
	logger     *slog.Logger
}

// NewPresenter creates a presenter with every cubie at its home position.
func NewPresenter(opts ...Option) *Presenter {
	cfg := newConfig(opts)
	p := &Presenter{
		duration: cfg.tweenDuration,
		easing:   cfg.easing,
		logger:   cfg.logger,
	}
	p.Reset()
	return p
}

// Reset snaps every cubie home and drops all active rotations. Dropped
// rotations are reported as done.
func (p *Presenter) Reset() {
	for _, r := range p.active {
		close(r.done)
	}
	p.active = nil
	for i := range p.transforms {
		home := SlotPos(i)
		p.transforms[i] = Transform{
			Position:    vec(home),
			Orientation: quaternion.Identity(),
		}
	}
}

// Transform returns the current visual transform of a cubie.
func (p *Presenter) Transform(id CubieID) Transform {
	return p.transforms[id]
}

// Duration returns the length of one tween.
func (p *Presenter) Duration() time.Duration {
	return p.duration
}

// Rotate starts rotating the given cubies by angle radians about axis.
// Nothing moves until the next Advance.
func (p *Presenter) Rotate(ids []CubieID, axis GridPos, angle float64, now time.Time) *Rotation {
	r := &Rotation{
		ids:   append([]CubieID(nil), ids...),
		axis:  vec(axis),
		angle: angle,
		start: now,
		done:  make(chan struct{}),
	}
	p.active = append(p.active, r)
	return r
}

// RotateFace starts a quarter-turn tween of a face layer. Forward turns are
// -90 degrees about the face's outward axis.
func (p *Presenter) RotateFace(face Face, ids []CubieID, reverse bool, now time.Time) *Rotation {
	angle := -math.Pi / 2
	if reverse {
		angle = -angle
	}
	return p.Rotate(ids, face.Axis(), angle, now)
}

// Advance moves every active rotation to its eased angle at now and
// retires the ones that have finished. It returns the number of rotations
// still in flight.
func (p *Presenter) Advance(now time.Time) int {
	if len(p.active) == 0 {
		return 0
	}

	var retired []*Rotation
	remaining := p.active[:0]
	for _, r := range p.active {
		progress := 1.0
		if p.duration > 0 {
			progress = float64(now.Sub(r.start)) / float64(p.duration)
		}
		if progress < 0 {
			progress = 0
		}
		if progress >= 1 {
			p.finish(r)
			retired = append(retired, r)
			continue
		}

		current := r.angle * p.easing(progress)
		p.applyDelta(r, current-r.prev)
		r.prev = current
		remaining = append(remaining, r)
	}

	// Clear retired entries so the backing array does not pin them.
	for i := len(remaining); i < len(p.active); i++ {
		p.active[i] = nil
	}
	p.active = remaining
	p.rest(retired)
	return len(p.active)
}

// Settle completes every active rotation immediately.
func (p *Presenter) Settle() {
	retired := p.active
	for _, r := range retired {
		p.finish(r)
	}
	p.active = nil
	p.rest(retired)
}

// Busy reports whether any rotation is in flight.
func (p *Presenter) Busy() bool {
	return len(p.active) > 0
}

func (p *Presenter) finish(r *Rotation) {
	p.applyDelta(r, r.angle-r.prev)
	r.prev = r.angle
	close(r.done)
	p.logger.Debug("rotation finished", "cubies", len(r.ids), "angle", r.angle)
}

// rest snaps the cubies of retired rotations onto the lattice. A cubie
// still held by an active rotation sits at an intermediate angle and is
// left alone until that rotation retires too.
func (p *Presenter) rest(retired []*Rotation) {
	if len(retired) == 0 {
		return
	}
	var held [27]bool
	for _, r := range p.active {
		for _, id := range r.ids {
			held[id] = true
		}
	}
	for _, r := range retired {
		for _, id := range r.ids {
			if held[id] {
				continue
			}
			t := &p.transforms[id]
			t.Position = quaternion.Vec3{
				X: math.Round(t.Position.X),
				Y: math.Round(t.Position.Y),
				Z: math.Round(t.Position.Z),
			}
			t.Orientation = t.Orientation.Unit()
		}
	}
}

func (p *Presenter) applyDelta(r *Rotation, delta float64) {
	if delta == 0 {
		return
	}
	q := quaternion.FromAxisAngle(r.axis, delta)
	for _, id := range r.ids {
		t := &p.transforms[id]
		t.Position = q.RotateVec3(t.Position)
		// World-axis rotation: q is applied after the current orientation.
		t.Orientation = quaternion.Prod(q, t.Orientation)
	}
}

// Facing returns the local side of a cubie whose rotated normal points
// closest to dir in the current visual state.
func (p *Presenter) Facing(id CubieID, dir quaternion.Vec3) Side {
	q := p.transforms[id].Orientation
	best, bestDot := SidePX, math.Inf(-1)
	for s := SidePX; s <= SideNZ; s++ {
		n := q.RotateVec3(vec(s.Normal()))
		if d := n.Dot(dir); d > bestDot {
			best, bestDot = s, d
		}
	}
	return best
}

func vec(p GridPos) quaternion.Vec3 {
	return quaternion.Vec3{X: float64(p.X), Y: float64(p.Y), Z: float64(p.Z)}
}
