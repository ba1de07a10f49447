package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"theoryboard/internal/config"
	"theoryboard/internal/input"
	"theoryboard/internal/trace"
	"theoryboard/internal/ui"
)

func newRootCmd() *cobra.Command {
	cfg, envErr := config.FromEnv()

	cmd := &cobra.Command{
		Use:   "theoryboard",
		Short: "Terminal dashboard for browsing music theory notes beside a circle of fifths",
		Long: `theoryboard shows a circle-of-fifths chart next to a selectable list of
topics and a scrollable detail pane.

Keys: m, i and s focus the main board, the info pane and the select list;
up/k and down/j move or scroll inside the focused pane; ctrl+q quits.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if envErr != nil {
				return envErr
			}
			return run(cmd, cfg)
		},
	}

	f := cmd.Flags()
	f.StringVar(&cfg.DatasetPath, "dataset", cfg.DatasetPath, "dataset file (.json, .yaml or .yml); built-in when empty [$"+config.DatasetEnv+"]")
	f.DurationVar(&cfg.TickInterval, "tick", cfg.TickInterval, "idle interval before a tick is handled [$"+config.TickEnv+"]")
	f.StringVar(&cfg.DebugLog, "debug-log", cfg.DebugLog, "append debug logs to this file [$"+config.DebugLogEnv+"]")
	f.StringVar(&cfg.Replay, "replay", cfg.Replay, "replay a key script headlessly and print the final frame")
	f.IntVar(&cfg.Width, "width", cfg.Width, "frame width for --replay")
	f.IntVar(&cfg.Height, "height", cfg.Height, "frame height for --replay")
	return cmd
}

func run(cmd *cobra.Command, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.DebugLog != "" {
		logFile, err := tea.LogToFile(cfg.DebugLog, "theoryboard")
		if err != nil {
			return fmt.Errorf("opening debug log: %w", err)
		}
		defer logFile.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	ds, err := config.LoadDataset(cfg.DatasetPath)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	tracer, err := trace.NewExporter(ctx)
	if err != nil {
		log.Printf("trace: exporter disabled: %v", err)
	}
	defer func() {
		if err := tracer.Shutdown(context.Background()); err != nil {
			log.Printf("trace: shutdown: %v", err)
		}
	}()

	app := ui.NewAppModel(ds)
	app.Tracer = tracer
	app.TickInterval = cfg.TickInterval
	log.Printf("main: dataset with %d items, tick %s", len(ds.Items), cfg.TickInterval)

	if cfg.Replay != "" {
		return replay(ctx, cmd.OutOrStdout(), app, cfg)
	}

	p := tea.NewProgram(app.AsTeaModel(), tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// replay feeds a key script through the headless loop and writes the last
// frame drawn.
func replay(ctx context.Context, out io.Writer, app *ui.AppModel, cfg config.Config) error {
	f, err := os.Open(cfg.Replay)
	if err != nil {
		return fmt.Errorf("opening replay script: %w", err)
	}
	defer f.Close()

	src, err := input.ParseScript(f)
	if err != nil {
		return fmt.Errorf("replay %s: %w", cfg.Replay, err)
	}
	log.Printf("main: replaying %d steps from %s", src.Len(), cfg.Replay)

	app.SetSize(cfg.Width, cfg.Height)
	var last string
	if err := ui.Run(ctx, app, input.Pump(ctx, src, cfg.TickInterval), func(frame string) {
		last = frame
	}); err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, last)
	return err
}
