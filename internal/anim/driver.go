package anim

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/logging"
	"github.com/san-kum/glint/internal/tty"
)

// Screen is where finished frames go. Flush must emit everything queued
// since the previous flush as one output operation.
type Screen interface {
	effect.Target
	Flush() error
}

// DiscardScreen accepts and drops every frame.
type DiscardScreen struct{}

func (DiscardScreen) Set(int, int, frame.Cell) {}
func (DiscardScreen) Clear()                   {}
func (DiscardScreen) Flush() error             { return nil }

type Driver struct {
	screen Screen
	geo    tty.Geometry
	clock  Clock
	logger *slog.Logger
}

type Option func(*Driver)

func WithLogger(l *slog.Logger) Option {
	return func(d *Driver) { d.logger = l }
}

func WithClock(c Clock) Option {
	return func(d *Driver) { d.clock = c }
}

func NewDriver(screen Screen, geo tty.Geometry, opts ...Option) *Driver {
	d := &Driver{
		screen: screen,
		geo:    geo,
		clock:  wallClock{},
		logger: logging.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Run animates e with caption text until duration elapses (0 means
// forever), the session is cancelled, or ctx is done. Screen mode setup
// and teardown are left to the caller.
func (d *Driver) Run(ctx context.Context, s *Session, e effect.Effect, text string, duration time.Duration) (Report, error) {
	report := Report{Style: e.Name()}

	if !d.geo.Valid() {
		return report, &tty.Error{Op: "size", Err: fmt.Errorf("%w: %dx%d", tty.ErrUnavailableTerminal, d.geo.Width, d.geo.Height)}
	}
	if duration < 0 {
		return report, fmt.Errorf("duration must not be negative, got %v", duration)
	}

	caption := effect.NewCaption(text, d.geo)

	var cur, prev *frame.Buffer
	if e.Strategy() == effect.Differential {
		cur = frame.New(d.geo.Width, d.geo.Height)
		prev = frame.New(d.geo.Width, d.geo.Height)
	}

	log := d.logger.With("style", e.Name())
	log.Info("animation started",
		"width", d.geo.Width,
		"height", d.geo.Height,
		"duration", duration,
		"strategy", e.Strategy().String(),
	)

	start := d.clock.Now()
	for tick := 0; ; tick++ {
		if s.Cancelled() || ctx.Err() != nil {
			report.Outcome = StoppedByCancel
			break
		}

		elapsed := d.clock.Now().Sub(start)
		if duration != 0 && elapsed >= duration {
			report.Outcome = StoppedByDuration
			break
		}

		f := effect.Frame{
			Geometry: d.geo,
			Caption:  caption,
			Elapsed:  elapsed,
			Tick:     tick,
		}

		begin := time.Now()
		if err := d.draw(e, f, cur, prev); err != nil {
			log.Error("frame failed", "tick", tick, "err", err)
			report.Elapsed = d.clock.Now().Sub(start)
			return report, err
		}
		report.addCost(time.Since(begin))
		report.Frames++

		d.clock.Sleep(ctx, e.Interval())
	}

	report.Elapsed = d.clock.Now().Sub(start)
	log.Info("animation stopped",
		"outcome", report.Outcome.String(),
		"frames", report.Frames,
		"elapsed", report.Elapsed,
	)
	return report, nil
}

func (d *Driver) draw(e effect.Effect, f effect.Frame, cur, prev *frame.Buffer) error {
	if cur == nil {
		e.Render(d.screen, f)
		f.Caption.Draw(d.screen)
	} else {
		e.Render(cur, f)
		f.Caption.Draw(cur)
		for _, c := range frame.Diff(cur, prev) {
			d.screen.Set(c.X, c.Y, c.Cell)
		}
	}

	if err := d.screen.Flush(); err != nil {
		return fmt.Errorf("anim: frame %d: %w", f.Tick, err)
	}
	if cur != nil {
		prev.CopyFrom(cur)
	}
	return nil
}
