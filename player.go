package gocube

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// PlayerState is the move interpreter state.
type PlayerState int

const (
	Idle PlayerState = iota
	Running
)

func (s PlayerState) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	default:
		return "unknown"
	}
}

// Player plays a solution one move per tick. Every tick applies its move to
// the Store immediately and hands the matching quarter-turn animations to
// the Presenter, which catches up on its own frame ticks.
//
//	p := gocube.NewPlayer(store, presenter)
//	if err := p.Solve("R U R' U'"); err != nil {
//	    return err
//	}
//	p.Run(ctx)
type Player struct {
	store     *Store
	presenter *Presenter
	tracker   *Tracker
	logger    *slog.Logger

	state    PlayerState
	queue    []Move
	played   int
	inFlight []*Rotation

	moveInterval     time.Duration
	frameInterval    time.Duration
	waitForAnimation bool

	// Callbacks
	onMove func(Move)
	onDone func(played int)
}

// NewPlayer creates an idle player. presenter may be nil for headless,
// logic-only playback.
func NewPlayer(store *Store, presenter *Presenter, opts ...Option) *Player {
	cfg := newConfig(opts)
	return &Player{
		store:            store,
		presenter:        presenter,
		logger:           cfg.logger,
		moveInterval:     cfg.moveInterval,
		frameInterval:    cfg.frameInterval,
		waitForAnimation: cfg.waitForAnimation,
	}
}

// OnMove registers a callback fired after each move is applied.
func (p *Player) OnMove(fn func(Move)) {
	p.onMove = fn
}

// OnDone registers a callback fired when the queue empties.
func (p *Player) OnDone(fn func(played int)) {
	p.onDone = fn
}

// SetTracker attaches a progress tracker that observes every move.
func (p *Player) SetTracker(t *Tracker) {
	p.tracker = t
}

// State returns the current interpreter state.
func (p *Player) State() PlayerState {
	return p.state
}

// Running reports whether a solve is being played.
func (p *Player) Running() bool {
	return p.state == Running
}

// Remaining returns the moves not yet played.
func (p *Player) Remaining() []Move {
	return append([]Move(nil), p.queue...)
}

// MoveInterval returns the fixed interval between move ticks.
func (p *Player) MoveInterval() time.Duration {
	return p.moveInterval
}

// FrameInterval returns the interval between animation frame ticks.
func (p *Player) FrameInterval() time.Duration {
	return p.frameInterval
}

// Solve queues a solution and enters Running. The whole string is parsed
// before anything is queued, so a bad token rejects the solve outright.
// A solve is refused while another is running or before the cube has been
// fully colored. An empty solution completes immediately.
func (p *Player) Solve(solution string) error {
	if p.state == Running {
		return ErrSolveInProgress
	}
	if !p.store.Colored() {
		return ErrNotColored
	}

	moves, err := ParseMoves(solution)
	if err != nil {
		return err
	}

	p.queue = moves
	p.played = 0
	p.state = Running
	p.logger.Info("solve started", "moves", len(moves))

	if len(moves) == 0 {
		p.complete()
	}
	return nil
}

// Step performs one move tick at time now. It returns the move played and
// true, or false when nothing was played: the player is idle, or it is
// holding for an animation to finish.
func (p *Player) Step(now time.Time) (Move, bool) {
	if p.state != Running || len(p.queue) == 0 {
		return Move{}, false
	}
	if p.waitForAnimation && p.animating() {
		return Move{}, false
	}

	m := p.queue[0]
	p.queue = p.queue[1:]
	p.apply(m, now)
	p.played++

	if p.onMove != nil {
		p.onMove(m)
	}
	if p.tracker != nil {
		p.tracker.Observe(p.store)
	}
	p.logger.Debug("move played", "move", m.Notation(), "remaining", len(p.queue))

	if len(p.queue) == 0 {
		p.complete()
	}
	return m, true
}

// apply turns the layer in the store and starts the animations. The layer
// membership is the same before and after the turn.
func (p *Player) apply(m Move, now time.Time) {
	p.inFlight = p.inFlight[:0]
	for _, reverse := range m.quarterTurns() {
		if p.presenter != nil {
			ids := p.store.Layer(m.Face)
			p.inFlight = append(p.inFlight, p.presenter.RotateFace(m.Face, ids, reverse, now))
		}
		p.store.Turn(m.Face, reverse)
	}
}

func (p *Player) animating() bool {
	for _, r := range p.inFlight {
		if !r.Finished() {
			return true
		}
	}
	return false
}

func (p *Player) complete() {
	p.state = Idle
	p.queue = nil
	p.store.ClearColored()
	p.logger.Info("solve finished", "moves", p.played)
	if p.onDone != nil {
		p.onDone(p.played)
	}
}

// Run drives playback from a single goroutine: move ticks on the fixed
// move interval and frame ticks that advance the presenter. It returns nil
// once the player is idle and every animation has settled, or the context
// error if ctx ends first. Ending the context stops driving but does not
// abort the solve; Run may be called again to continue.
func (p *Player) Run(ctx context.Context) error {
	if p.state != Running && (p.presenter == nil || !p.presenter.Busy()) {
		return nil
	}

	moves := time.NewTicker(p.moveInterval)
	defer moves.Stop()

	var frames <-chan time.Time
	if p.presenter != nil {
		ft := time.NewTicker(p.frameInterval)
		defer ft.Stop()
		frames = ft.C
	}

	for {
		if p.state == Idle && (p.presenter == nil || !p.presenter.Busy()) {
			return nil
		}

		select {
		case <-ctx.Done():
			return fmt.Errorf("playback interrupted: %w", ctx.Err())
		case now := <-moves.C:
			p.Step(now)
		case now := <-frames:
			p.presenter.Advance(now)
		}
	}
}
