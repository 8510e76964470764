package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/config"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/replay"
	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/tui"
)

type runFlags struct {
	algo    string
	animate bool
	asJSON  bool
	plain   bool
	watch   bool
}

func newRunCmd(a *app) *cobra.Command {
	var f runFlags
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one search and print the replayed board",
		Long: `Run builds the configured grid, runs one search and replays its event log
onto a board. With --animate the replay is paced by replay.tick; with --watch the
search runs again every time the config file changes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if f.watch {
				if a.cfgPath == "" {
					return errors.New("--watch requires --config")
				}
				return watchConfig(cmd.Context(), a.cfgPath, a.logger, func(cfg config.Config) error {
					return runOnce(cmd.Context(), cmd.OutOrStdout(), cfg, f, a.logger)
				}, a.cfg)
			}
			return runOnce(cmd.Context(), cmd.OutOrStdout(), a.cfg, f, a.logger)
		},
	}
	cmd.Flags().StringVarP(&f.algo, "algo", "a", "", "algorithm: bfs, dijkstra, astar, greedy (default search.algorithm)")
	cmd.Flags().BoolVar(&f.animate, "animate", false, "redraw the board after every replayed event")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "print the result as JSON instead of a board")
	cmd.Flags().BoolVar(&f.plain, "plain", false, "never use colors")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "rerun whenever the config file changes")

	return cmd
}

// runResult is the JSON form of one search.
type runResult struct {
	LogID     string           `json:"log_id"`
	Reference string           `json:"greedy_reference,omitempty"`
	Summary   pathfind.Summary `json:"summary"`
	Path      []string         `json:"path"`
}

func runOnce(ctx context.Context, out io.Writer, cfg config.Config, f runFlags, logger *slog.Logger) error {
	name := f.algo
	if name == "" {
		name = cfg.Search.Algorithm
	}
	algo, err := pathfind.ParseAlgorithm(name)
	if err != nil {
		return err
	}
	ref, err := cfg.GreedyReference()
	if err != nil {
		return err
	}
	g, err := cfg.BuildGrid()
	if err != nil {
		return err
	}
	s, err := session.New(g, session.WithLogger(logger), session.WithGreedyReference(ref),
		session.WithExpensivePercent(cfg.Grid.ExpensivePercent))
	if err != nil {
		return err
	}

	res, err := s.Begin(ctx, algo)
	if err != nil {
		return err
	}
	if f.asJSON {
		return writeJSON(out, res)
	}

	styled := !f.plain && styledOutput(out)
	if f.animate {
		pacer := &drawPacer{
			inner: replay.NewRatePacer(cfg.Replay.Tick.Std()),
			draw:  func() { fmt.Fprint(out, "\033[H\033[2J"+tui.Render(s.Board(), styled)+"\n") },
		}
		if err = s.Play(ctx, pacer); err != nil {
			return err
		}
	} else {
		for s.Tick() {
		}
	}

	fmt.Fprintln(out, tui.Status(res))
	fmt.Fprintln(out, tui.Render(s.Board(), styled))

	return nil
}

func writeJSON(out io.Writer, res session.Result) error {
	rr := runResult{
		LogID:   res.LogID.String(),
		Summary: res.Summary,
		Path:    make([]string, len(res.Path)),
	}
	if res.Algorithm == pathfind.AlgoGreedy {
		rr.Reference = res.Reference.String()
	}
	for i, c := range res.Path {
		rr.Path[i] = c.String()
	}
	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	return enc.Encode(rr)
}

// drawPacer redraws before waiting on the wrapped pacer.
type drawPacer struct {
	inner replay.Pacer
	draw  func()
}

func (p *drawPacer) Wait(ctx context.Context) error {
	p.draw()
	return p.inner.Wait(ctx)
}
