// figdraw is a terminal figure editor: rectangles, lines, polygons and
// connecting lines that follow the figures they join.
//
// Run: go run ./cmd/figdraw/ [--script scene.js --watch]
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/cobra"

	"github.com/wesen/figdraw/internal/config"
	"github.com/wesen/figdraw/internal/editorui"
	"github.com/wesen/figdraw/internal/scene"
	"github.com/wesen/figdraw/pkg/drawing"
	"github.com/wesen/figdraw/pkg/surface"
)

type flags struct {
	config  string
	script  string
	watch   bool
	logFile string
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var f flags
	root := &cobra.Command{
		Use:           "figdraw",
		Short:         "Edit figures in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(f)
			if err != nil {
				return err
			}
			defer closeLog()
			return runEditor(cmd.Context(), cfg)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&f.config, "config", "figdraw.toml", "settings file")
	pf.StringVar(&f.script, "script", "", "scene script to load")
	pf.StringVar(&f.logFile, "log-file", "", "write logs to this file")
	root.Flags().BoolVar(&f.watch, "watch", false, "reload the scene script when it changes")

	root.AddCommand(newPrintCmd(&f), newSnapshotCmd(&f))
	return root
}

// setup loads the settings, applies flag overrides and installs the
// logger. The returned func closes the log file.
func setup(f flags) (config.Config, func(), error) {
	cfg, err := config.Load(f.config)
	if err != nil {
		return cfg, nil, err
	}
	if f.script != "" {
		cfg.Editor.Script = f.script
	}
	if f.watch {
		cfg.Editor.Watch = true
	}
	if f.logFile != "" {
		cfg.Log.File = f.logFile
	}

	closeLog := func() {}
	if cfg.Log.File != "" {
		lvl, err := cfg.Log.SlogLevel()
		if err != nil {
			return cfg, nil, err
		}
		out, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return cfg, nil, fmt.Errorf("open log: %w", err)
		}
		drawing.SetLogger(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})))
		closeLog = func() {
			drawing.SetLogger(nil)
			out.Close()
		}
	}
	return cfg, closeLog, nil
}

// loadCanvas builds the canvas from the configured script, or an empty
// one.
func loadCanvas(ctx context.Context, cfg config.Config) (*drawing.Canvas, error) {
	if cfg.Editor.Script == "" {
		return drawing.NewCanvas(cfg.CanvasOptions()), nil
	}
	return scene.Build(ctx, cfg.CanvasOptions(), cfg.Editor.Script)
}

func runEditor(ctx context.Context, cfg config.Config) error {
	cv, err := loadCanvas(ctx, cfg)
	if err != nil {
		return err
	}
	m := editorui.New(cfg, cv)
	if cfg.Editor.Watch && cfg.Editor.Script != "" {
		events, err := scene.Watch(ctx, cfg.Editor.Script)
		if err != nil {
			return err
		}
		m = m.WithScript(cfg.Editor.Script, events)
	}
	p := tea.NewProgram(m, tea.WithContext(ctx))
	_, err = p.Run()
	return err
}

func newPrintCmd(f *flags) *cobra.Command {
	var width, height int
	var styled bool
	cmd := &cobra.Command{
		Use:   "print",
		Short: "Render the scene script as text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(*f)
			if err != nil {
				return err
			}
			defer closeLog()
			cv, err := loadCanvas(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			grid := surface.Grid{CellW: cfg.Terminal.CellWidth, CellH: cfg.Terminal.CellHeight}
			term := surface.NewTerminal(width, height, grid)
			term.RedrawAll(cv)
			out := term.String()
			if styled {
				out = term.Render()
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().IntVar(&width, "width", 80, "columns")
	cmd.Flags().IntVar(&height, "height", 24, "rows")
	cmd.Flags().BoolVar(&styled, "color", false, "emit terminal colors")
	return cmd
}

func newSnapshotCmd(f *flags) *cobra.Command {
	var out string
	var opts surface.SnapshotOptions
	cmd := &cobra.Command{
		Use:   "snapshot",
		Short: "Render the scene script to a PNG file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, closeLog, err := setup(*f)
			if err != nil {
				return err
			}
			defer closeLog()
			cv, err := loadCanvas(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			r, err := surface.Snapshot(cv, opts)
			if err != nil {
				return err
			}
			if out == "" {
				out = cfg.Editor.Snapshot
			}
			if err := r.SavePNG(out); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%d figures)\n", out, len(cv.Figures()))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "output", "o", "", "PNG file (default from settings)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", 2, "pixels per world unit")
	cmd.Flags().IntVar(&opts.Padding, "padding", 10, "margin around the figures")
	cmd.Flags().BoolVar(&opts.Labels, "labels", false, "label figures with their ids")
	return cmd
}
