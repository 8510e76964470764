package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/gridpath/session"
	"github.com/katalvlaran/gridpath/telemetry"
	"github.com/katalvlaran/gridpath/tui"
)

func newPlayCmd(a *app) *cobra.Command {
	var (
		metricsAddr string
		plain       bool
	)
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Interactive replay: 1-4 search, esc reset, g greedy reference, r terrain, q quit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			ref, err := a.cfg.GreedyReference()
			if err != nil {
				return err
			}
			g, err := a.cfg.BuildGrid()
			if err != nil {
				return err
			}

			metrics := telemetry.NewCollector()
			s, err := session.New(g,
				session.WithLogger(a.logger),
				session.WithObserver(metrics),
				session.WithGreedyReference(ref),
				session.WithExpensivePercent(a.cfg.Grid.ExpensivePercent),
				session.WithTerrain(a.cfg.BaseWeights(), a.cfg.Grid.Walls...),
			)
			if err != nil {
				return err
			}

			if metricsAddr != "" {
				stop := serveMetrics(metricsAddr, metrics, a.logger)
				defer stop()
			}

			model := tui.New(s, tui.Options{
				Tick:    a.cfg.Replay.Tick.Std(),
				Seed:    a.cfg.Grid.Seed,
				Styled:  !plain && styledOutput(cmd.OutOrStdout()),
				Context: ctx,
			})
			_, err = tea.NewProgram(model,
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()),
			).Run()
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			return err
		},
	}
	cmd.Flags().StringVar(&metricsAddr, "metrics-addr", "", "serve Prometheus metrics on this address (e.g. :9090)")
	cmd.Flags().BoolVar(&plain, "plain", false, "never use colors")

	return cmd
}

// serveMetrics starts a /metrics endpoint and returns a function that stops it.
func serveMetrics(addr string, c *telemetry.Collector, logger *slog.Logger) func() {
	mux := http.NewServeMux()
	mux.Handle("/metrics", c.Handler())
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		logger.Info("metrics listening", slog.String("addr", addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("metrics server failed", slog.String("error", err.Error()))
		}
	}()

	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}
}
