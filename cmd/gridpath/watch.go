package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/katalvlaran/gridpath/config"
)

// watchConfig calls apply with initial, then again each time the file at path
// is written or replaced with a valid config. Invalid edits are logged and
// skipped. It returns when ctx is done.
//
// The parent directory is watched rather than the file so that editors that
// save by rename keep triggering reloads.
func watchConfig(ctx context.Context, path string, logger *slog.Logger, apply func(config.Config) error, initial config.Config) error {
	if err := apply(initial); err != nil {
		return err
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	defer w.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	if err = w.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watch: %w", err)
	}
	logger.Info("watching config", slog.String("path", abs))

	for {
		select {
		case <-ctx.Done():
			if errors.Is(ctx.Err(), context.Canceled) {
				return nil
			}
			return ctx.Err()

		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || (!ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create)) {
				continue
			}
			cfg, err := config.Load(abs)
			if err != nil {
				logger.Warn("config reload rejected", slog.String("error", err.Error()))
				continue
			}
			logger.Info("config reloaded", slog.String("op", ev.Op.String()))
			if err = apply(cfg); err != nil {
				logger.Warn("rerun failed", slog.String("error", err.Error()))
			}

		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", slog.String("error", err.Error()))
		}
	}
}
