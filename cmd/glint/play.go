package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/san-kum/glint/internal/anim"
	"github.com/san-kum/glint/internal/config"
	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/tty"
)

// terminal is a screen the CLI can own for the length of a run.
type terminal interface {
	anim.Screen
	Init() error
	Fini() error
	Size() (tty.Geometry, error)
}

// openTerminal initialises the backend and starts the Ctrl-C listener.
// The returned stop function halts the listener and restores the terminal.
func openTerminal(backend string, s *anim.Session) (terminal, func() error, error) {
	switch backend {
	case "tcell":
		ts, err := tty.NewTcellScreen()
		if err != nil {
			return nil, nil, err
		}
		if err := ts.Init(); err != nil {
			return nil, nil, err
		}
		done := ts.Listen(s)
		stop := func() error {
			err := ts.Fini()
			<-done
			return err
		}
		return ts, stop, nil
	case "ansi":
		as := tty.NewANSIScreen(os.Stdin, os.Stdout)
		if err := as.Init(); err != nil {
			if !errors.Is(err, tty.ErrUnavailableTerminal) {
				_ = as.Fini()
			}
			return nil, nil, err
		}
		keys, err := tty.ListenKeys(os.Stdin, s)
		if err != nil {
			_ = as.Fini()
			return nil, nil, err
		}
		stop := func() error {
			return errors.Join(keys.Stop(), as.Fini())
		}
		return as, stop, nil
	default:
		return nil, nil, fmt.Errorf("unknown backend: %s", backend)
	}
}

// play runs one animation on the real terminal until its duration elapses,
// the user presses Ctrl-C, or ctx is cancelled.
func play(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	eff, err := effect.NewRegistry().Get(cfg.Style)
	if err != nil {
		return err
	}

	session := anim.NewSession()
	unbind := session.Bind(ctx)
	defer unbind()

	screen, restore, err := openTerminal(cfg.Backend, session)
	if err != nil {
		log.Error("terminal unavailable", "backend", cfg.Backend, "error", err)
		return err
	}

	geo, err := screen.Size()
	if err != nil {
		return errors.Join(err, restore())
	}

	driver := anim.NewDriver(screen, geo, anim.WithLogger(log))
	report, runErr := driver.Run(ctx, session, eff, cfg.Text, cfg.Duration())
	restoreErr := restore()

	if runErr != nil {
		log.Error("animation failed", "style", eff.Name(), "frames", report.Frames, "error", runErr)
		return errors.Join(runErr, restoreErr)
	}
	if restoreErr != nil {
		log.Warn("terminal restore failed", "error", restoreErr)
		return restoreErr
	}
	log.Debug("animation finished",
		"style", report.Style,
		"outcome", report.Outcome.String(),
		"frames", report.Frames,
		"mean_cost", report.MeanCost(),
	)
	return nil
}
