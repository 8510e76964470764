package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
)

// app is the state shared by every subcommand.
type app struct {
	cfgPath   string
	logLevel  string
	logFormat string

	cfg    config.Config
	logger *slog.Logger
	stderr io.Writer
}

func newRootCmd() *cobra.Command {
	a := &app{stderr: os.Stderr}

	root := &cobra.Command{
		Use:           "gridpath",
		Short:         "Grid shortest-path search with replayable visualization",
		Long:          `gridpath runs BFS, Dijkstra, A* and greedy best-first search over a weighted 4-connected grid and replays the recorded search events step by step.`,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.load(cmd)
		},
	}
	root.PersistentFlags().StringVarP(&a.cfgPath, "config", "c", "", "path to a YAML config file")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "override log.level (debug, info, warn, error)")
	root.PersistentFlags().StringVar(&a.logFormat, "log-format", "", "override log.format (text, json)")

	root.AddCommand(newRunCmd(a), newCompareCmd(a), newPlayCmd(a))

	return root
}

// load reads the config, applies flag overrides and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	cfg := config.Default()
	if a.cfgPath != "" {
		var err error
		if cfg, err = config.Load(a.cfgPath); err != nil {
			return err
		}
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("flags: %w", err)
	}

	a.cfg = cfg
	a.logger = cfg.Log.NewLogger(a.stderr)
	a.logger.Debug("config loaded",
		slog.String("path", a.cfgPath),
		slog.String("command", cmd.Name()),
		slog.Int("rows", cfg.Grid.Rows),
		slog.Int("columns", cfg.Grid.Columns),
	)

	return nil
}

// styledOutput reports whether w is a terminal that can show colors.
func styledOutput(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
