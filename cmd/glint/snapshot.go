package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/san-kum/glint/internal/anim"
	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/export"
	"github.com/san-kum/glint/internal/frame"
	"github.com/san-kum/glint/internal/tty"
	"github.com/spf13/cobra"
)

// bufferScreen collects a run into a frame instead of a terminal.
type bufferScreen struct {
	*frame.Buffer
}

func (bufferScreen) Flush() error { return nil }

// renderFrame plays ticks 0..tick of e off-screen and returns the last frame.
func renderFrame(ctx context.Context, e effect.Effect, geo tty.Geometry, caption string, tick int) (*frame.Buffer, error) {
	screen := bufferScreen{frame.New(geo.Width, geo.Height)}
	driver := anim.NewDriver(screen, geo, anim.WithClock(anim.NewManualClock()))
	duration := time.Duration(tick+1) * e.Interval()
	if _, err := driver.Run(ctx, anim.NewSession(), e, caption, duration); err != nil {
		return nil, err
	}
	return screen.Buffer, nil
}

func snapshotStyle(cmd *cobra.Command, args []string) error {
	geo, err := tty.NewGeometry(snapWidth, snapHeight)
	if err != nil {
		return err
	}
	if snapTick < 0 {
		return fmt.Errorf("tick must not be negative, got %d", snapTick)
	}

	registry := effect.NewRegistry().WithRand(rand.New(rand.NewSource(snapSeed)))
	eff, err := registry.Get(args[0])
	if err != nil {
		return err
	}

	buf, err := renderFrame(cmd.Context(), eff, geo, snapText, snapTick)
	if err != nil {
		return err
	}

	svg := export.BufferToSVG(buf, snapScale)
	if snapOut == "" {
		fmt.Fprintln(cmd.OutOrStdout(), svg)
		return nil
	}
	if err := os.WriteFile(snapOut, []byte(svg), 0644); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s, tick %d)\n", snapOut, eff.Name(), snapTick)
	return nil
}
