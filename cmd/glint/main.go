package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/san-kum/glint/internal/config"
	"github.com/san-kum/glint/internal/effect"
	"github.com/san-kum/glint/internal/logging"
	"github.com/san-kum/glint/internal/tui"
	"github.com/spf13/cobra"
)

var (
	style      string
	text       string
	durationMs int64
	backend    string
	configFile string
	preset     string
	logFile    string
	logLevel   string
	// bench
	benchWidth  int
	benchHeight int
	benchFrames int
	benchSeed   int64
	benchText   string
	benchJSON   string
	// snapshot
	snapWidth  int
	snapHeight int
	snapTick   int
	snapScale  float64
	snapText   string
	snapOut    string
	snapSeed   int64
)

// main runs the root command, which plays a single animation. It exits with
// status 1 if the command returns an error.
func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "glint",
		Short:        "full-screen terminal effects with a centred caption",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runAnimation,
	}

	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "append logs to this file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	rootCmd.Flags().StringVar(&style, "style", config.DefaultStyle, "animation style")
	rootCmd.Flags().StringVarP(&text, "text", "t", "", "caption text")
	rootCmd.Flags().Int64VarP(&durationMs, "duration", "d", config.DefaultDurationMs, "animation duration in milliseconds (infinite if 0)")
	rootCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "terminal backend (ansi, tcell)")
	rootCmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list styles",
		Args:  cobra.NoArgs,
		RunE:  listStyles,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		RunE:  listPresets,
	}

	pickCmd := &cobra.Command{
		Use:   "pick",
		Short: "choose a style from a menu and play it",
		Args:  cobra.NoArgs,
		RunE:  pickStyle,
	}
	pickCmd.Flags().StringVarP(&text, "text", "t", "", "caption text")
	pickCmd.Flags().Int64VarP(&durationMs, "duration", "d", config.DefaultDurationMs, "animation duration in milliseconds (infinite if 0)")
	pickCmd.Flags().StringVar(&backend, "backend", config.DefaultBackend, "terminal backend (ansi, tcell)")

	benchCmd := &cobra.Command{
		Use:   "bench [style]",
		Short: "render frames off-screen and report their cost",
		Args:  cobra.MaximumNArgs(1),
		RunE:  benchStyles,
	}
	benchCmd.Flags().IntVar(&benchWidth, "width", 80, "screen width in cells")
	benchCmd.Flags().IntVar(&benchHeight, "height", 24, "screen height in cells")
	benchCmd.Flags().IntVar(&benchFrames, "frames", 120, "frames per style")
	benchCmd.Flags().Int64Var(&benchSeed, "seed", time.Now().UnixNano(), "random seed for burst colours")
	benchCmd.Flags().StringVarP(&benchText, "text", "t", "glint", "caption text")

	benchCmd.Flags().StringVar(&benchJSON, "json", "", "also write results to this JSON file")

	snapshotCmd := &cobra.Command{
		Use:   "snapshot <style>",
		Short: "render one frame off-screen as SVG",
		Args:  cobra.ExactArgs(1),
		RunE:  snapshotStyle,
	}
	snapshotCmd.Flags().IntVar(&snapWidth, "width", 80, "screen width in cells")
	snapshotCmd.Flags().IntVar(&snapHeight, "height", 24, "screen height in cells")
	snapshotCmd.Flags().IntVar(&snapTick, "tick", 30, "tick to capture")
	snapshotCmd.Flags().Float64Var(&snapScale, "scale", 8, "pixels per cell column")
	snapshotCmd.Flags().StringVarP(&snapText, "text", "t", "", "caption text")
	snapshotCmd.Flags().StringVarP(&snapOut, "output", "o", "", "output file (stdout if empty)")
	snapshotCmd.Flags().Int64Var(&snapSeed, "seed", 1, "random seed for burst colours")

	rootCmd.AddCommand(listCmd, presetsCmd, pickCmd, benchCmd, snapshotCmd)
	return rootCmd
}

func runAnimation(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	log, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}

	return play(cmd.Context(), cfg, log)
}

// resolveConfig layers preset, config file and explicit flags, in that order.
func resolveConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		cfg = p
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("style") || (preset == "" && configFile == "") {
		cfg.Style = style
	}
	if flags.Changed("text") || (preset == "" && configFile == "") {
		cfg.Text = text
	}
	if flags.Changed("duration") || (preset == "" && configFile == "") {
		cfg.DurationMs = durationMs
	}
	if flags.Changed("backend") || (preset == "" && configFile == "") {
		cfg.Backend = backend
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if _, err := effect.NewRegistry().Resolve(cfg.Style); err != nil {
		return nil, err
	}
	return cfg, nil
}

func openLogger() (*slog.Logger, io.Closer, error) {
	level, err := logging.ParseLevel(logLevel)
	if err != nil {
		return nil, nil, err
	}
	return logging.OpenFile(logFile, level)
}

func listStyles(cmd *cobra.Command, args []string) error {
	registry := effect.NewRegistry()
	rows := make([]tui.StyleRow, 0, len(registry.List()))
	for _, name := range registry.List() {
		e, err := registry.Get(name)
		if err != nil {
			return err
		}
		rows = append(rows, tui.StyleRow{
			Name:     name,
			Strategy: e.Strategy().String(),
			Interval: e.Interval(),
			Aliases:  registry.Aliases(name),
		})
	}
	fmt.Fprint(cmd.OutOrStdout(), tui.RenderStyles(rows))
	return nil
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "PRESET\tSTYLE\tDURATION\tBACKEND\tTEXT")
	for _, name := range config.ListPresets() {
		p := config.GetPreset(name)
		dur := p.Duration().String()
		if p.DurationMs == 0 {
			dur = "until cancelled"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%q\n", name, p.Style, dur, p.Backend, p.Text)
	}
	return w.Flush()
}

func pickStyle(cmd *cobra.Command, args []string) error {
	registry := effect.NewRegistry()
	chosen, err := tui.Pick(registry.List())
	if err != nil {
		return err
	}
	if chosen == "" {
		return nil
	}

	cfg := config.DefaultConfig()
	cfg.Style = chosen
	cfg.Text = text
	cfg.DurationMs = durationMs
	cfg.Backend = backend
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, closer, err := openLogger()
	if err != nil {
		return err
	}
	if closer != nil {
		defer closer.Close()
	}
	return play(cmd.Context(), cfg, log)
}
