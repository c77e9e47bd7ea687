package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/san-kum/glint/internal/anim"
	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/export"
	"github.com/san-kum/glint/internal/tty"
	"github.com/san-kum/glint/internal/tui"
	"github.com/spf13/cobra"
)

// benchStyles renders frames into a discarding screen on a manual clock so
// runs are paced by render cost alone.
func benchStyles(cmd *cobra.Command, args []string) error {
	geo, err := tty.NewGeometry(benchWidth, benchHeight)
	if err != nil {
		return err
	}
	if benchFrames <= 0 {
		return fmt.Errorf("frames must be positive, got %d", benchFrames)
	}

	registry := effect.NewRegistry().WithRand(rand.New(rand.NewSource(benchSeed)))
	styles := registry.List()
	if len(args) == 1 {
		name, err := registry.Resolve(args[0])
		if err != nil {
			return err
		}
		styles = []string{name}
	}

	log, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	out := cmd.OutOrStdout()
	var records []export.BenchRecord
	for _, name := range styles {
		eff, err := registry.Get(name)
		if err != nil {
			return err
		}
		driver := anim.NewDriver(anim.DiscardScreen{}, geo,
			anim.WithLogger(log),
			anim.WithClock(anim.NewManualClock()),
		)
		duration := time.Duration(benchFrames) * eff.Interval()
		report, err := driver.Run(cmd.Context(), anim.NewSession(), eff, benchText, duration)
		if err != nil {
			return err
		}
		fmt.Fprintln(out, tui.RenderBench(tui.BenchSummary{
			Style:  name,
			Width:  geo.Width,
			Height: geo.Height,
			Frames: report.Frames,
			Mean:   report.MeanCost(),
			Max:    report.MaxCost(),
			Costs:  report.CostMillis(),
		}))
		records = append(records, export.BenchRecord{
			Style:   name,
			Width:   geo.Width,
			Height:  geo.Height,
			Frames:  report.Frames,
			MeanMs:  millis(report.MeanCost()),
			MaxMs:   millis(report.MaxCost()),
			CostsMs: report.CostMillis(),
		})
	}

	if benchJSON != "" {
		if err := export.WriteJSON(benchJSON, records); err != nil {
			return fmt.Errorf("failed to write bench results: %w", err)
		}
		log.Info("bench results written", "path", benchJSON, "styles", len(records))
	}
	return nil
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
