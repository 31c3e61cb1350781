package gocube

import (
	"log/slog"
	"time"
)

// Default timings. A move is played every MoveInterval while each quarter
// turn animates over TweenDuration.
const (
	DefaultMoveInterval  = time.Second
	DefaultTweenDuration = 500 * time.Millisecond
	DefaultFrameInterval = 16 * time.Millisecond
)

// Option configures Store, Presenter and Player behavior.
type Option func(*config)

type config struct {
	logger           *slog.Logger
	moveInterval     time.Duration
	tweenDuration    time.Duration
	frameInterval    time.Duration
	easing           func(float64) float64
	waitForAnimation bool
}

func defaultConfig() *config {
	return &config{
		logger:        slog.Default(),
		moveInterval:  DefaultMoveInterval,
		tweenDuration: DefaultTweenDuration,
		frameInterval: DefaultFrameInterval,
		easing:        Linear,
	}
}

func newConfig(opts []Option) *config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// WithLogger sets the structured logger. Defaults to slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithMoveInterval sets the fixed real-time interval between solve moves.
func WithMoveInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.moveInterval = d
		}
	}
}

// WithTweenDuration sets how long one quarter-turn animation lasts.
func WithTweenDuration(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.tweenDuration = d
		}
	}
}

// WithFrameInterval sets the frame tick used by Player.Run to advance
// animations.
func WithFrameInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.frameInterval = d
		}
	}
}

// WithEasing sets the tween easing function. It maps progress in [0,1] to
// [0,1]. Defaults to Linear.
func WithEasing(fn func(float64) float64) Option {
	return func(c *config) {
		if fn != nil {
			c.easing = fn
		}
	}
}

// WithWaitForAnimation makes the player hold a move tick while the
// previous move is still animating, so rotations never overlap.
// When disabled (default), moves fire on the fixed interval regardless.
func WithWaitForAnimation(enabled bool) Option {
	return func(c *config) {
		c.waitForAnimation = enabled
	}
}
