package game

import (
	"context"
	"errors"
	"time"
)

// TickRate is the fixed simulation step, 60 ticks per second.
const TickRate = time.Second / 60

// ErrStopped is returned by a BeforeTick hook to end the loop cleanly.
var ErrStopped = errors.New("game loop stopped")

// Loop drives a Session on a fixed ticker and hands each snapshot to a
// Renderer.
type Loop struct {
	Session  *Session
	Renderer Renderer
	// BeforeTick runs on the loop goroutine ahead of every tick; it is
	// where menu and pause commands get applied.
	BeforeTick func(now time.Time) error
	Interval   time.Duration
	now        func() time.Time
}

// Run blocks until ctx is done, a hook returns an error, or rendering
// fails. A hook returning ErrStopped ends the loop with a nil error.
func (l *Loop) Run(ctx context.Context) error {
	interval := l.Interval
	if interval <= 0 {
		interval = TickRate
	}
	now := l.now
	if now == nil {
		now = time.Now
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if err := l.step(now()); err != nil {
				if errors.Is(err, ErrStopped) {
					return nil
				}
				return err
			}
		}
	}
}

// step runs one iteration of the loop.
func (l *Loop) step(now time.Time) error {
	if l.BeforeTick != nil {
		if err := l.BeforeTick(now); err != nil {
			return err
		}
	}
	snap := l.Session.Tick(now)
	if l.Renderer == nil {
		return nil
	}
	return l.Renderer.Render(snap)
}
