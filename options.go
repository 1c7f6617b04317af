package cubenav

import "time"

// Option configures engine behavior.
type Option func(*config)

type config struct {
	moveHistory      bool
	rotationDuration time.Duration
	easing           Easing
}

func defaultConfig() *config {
	return &config{
		moveHistory:      true,
		rotationDuration: 500 * time.Millisecond,
		easing:           EaseOutCubic,
	}
}

// WithMoveHistory enables or disables move history recording.
// When enabled (default), recorded moves are stored and accessible via
// Engine.History(). Disable for long-running demo loops to cap memory.
func WithMoveHistory(enabled bool) Option {
	return func(c *config) {
		c.moveHistory = enabled
	}
}

// WithRotationDuration sets how long a slice rotation animates.
// The widget uses 500ms; the demo uses 400ms.
func WithRotationDuration(d time.Duration) Option {
	return func(c *config) {
		c.rotationDuration = d
	}
}

// WithEasing sets the easing curve applied to the animation progress
// parameter.
func WithEasing(e Easing) Option {
	return func(c *config) {
		c.easing = e
	}
}
