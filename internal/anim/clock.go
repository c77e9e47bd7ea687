package anim

import (
	"context"
	"time"
)

// Clock supplies the run's notion of time and frame pacing.
type Clock interface {
	Now() time.Time
	Sleep(ctx context.Context, d time.Duration)
}

type wallClock struct{}

func (wallClock) Now() time.Time { return time.Now() }

// Sleep waits for d or until ctx is done, whichever comes first.
func (wallClock) Sleep(ctx context.Context, d time.Duration) {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
	case <-t.C:
	}
}

// ManualClock advances only when slept on. Used for off-screen runs and
// deterministic tests.
type ManualClock struct {
	now time.Time
}

func NewManualClock() *ManualClock {
	return &ManualClock{now: time.Unix(0, 0)}
}

func (c *ManualClock) Now() time.Time { return c.now }

func (c *ManualClock) Sleep(_ context.Context, d time.Duration) {
	c.now = c.now.Add(d)
}
