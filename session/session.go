package session

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/replay"
)

// Session owns a grid, its display board and at most one live replay.
type Session struct {
	mu         sync.Mutex
	grid       *gridgraph.Grid
	board      *replay.Board
	player     *replay.Player
	generation uint64
	last       *Result
	cfg        settings
}

// New returns a session over g with its board at the baseline.
func New(g *gridgraph.Grid, opts ...Option) (*Session, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	cfg := defaultSettings()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}
	if cfg.base == nil {
		cfg.base = g.Weights()
	} else if err := checkTerrain(g, cfg.base, cfg.walls); err != nil {
		return nil, err
	}

	return &Session{
		grid:  g,
		board: replay.NewBoard(g),
		cfg:   cfg,
	}, nil
}

// Begin stops the running replay, resets the board, runs algo from the grid's
// start to end into a fresh log and arms a replay of it. The board is not
// painted until Tick or Play advances the replay.
func (s *Session) Begin(ctx context.Context, algo pathfind.Algorithm) (Result, error) {
	s.mu.Lock()
	s.stopLocked()
	gen := s.generation
	ref := s.cfg.reference

	steps := replay.NewLog()
	start, end := s.grid.StartTile(), s.grid.EndTile()
	began := time.Now()
	path, err := pathfind.Run(algo, s.grid, start, end, steps,
		pathfind.WithContext(ctx), pathfind.WithGreedyReference(ref))
	if err != nil {
		s.mu.Unlock()
		s.cfg.logger.Warn("search failed",
			slog.String("algorithm", algo.String()),
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()),
		)
		return Result{}, err
	}

	res := Result{
		Generation: gen,
		Algorithm:  algo,
		Reference:  ref,
		Path:       coords(path),
		Summary:    pathfind.Summarize(algo, path, start, end, steps),
		LogID:      steps.ID(),
		Elapsed:    time.Since(began),
	}
	s.player = replay.NewPlayer(steps)
	s.last = &res
	s.mu.Unlock()

	s.cfg.logger.Info("search completed",
		slog.String("algorithm", algo.String()),
		slog.Uint64("generation", gen),
		slog.String("log_id", res.LogID.String()),
		slog.Bool("found", res.Summary.Found),
		slog.Int("path_length", res.Summary.PathLength),
		slog.Int("expanded", res.Summary.Expanded),
		slog.Int("events", res.Summary.Events),
		slog.Duration("elapsed", res.Elapsed),
	)
	for _, o := range s.cfg.observers {
		o.SearchCompleted(res)
	}

	return res, nil
}

// Tick applies the next event of the current replay to the board and reports
// whether one was applied.
func (s *Session) Tick() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	applied, _ := s.stepLocked(s.generation)

	return applied
}

// Play advances the current replay one event per pacer release until it is
// done. Returns ctx.Err() on cancellation, ErrStale once superseded, or nil.
func (s *Session) Play(ctx context.Context, pacer replay.Pacer) error {
	s.mu.Lock()
	gen := s.generation
	s.mu.Unlock()

	for {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		s.mu.Lock()
		applied, err := s.stepLocked(gen)
		s.mu.Unlock()
		if err != nil {
			return err
		}
		if !applied {
			return nil
		}
	}
}

// Escape stops the running replay and resets the board.
func (s *Session) Escape() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	s.cfg.logger.Debug("replay reset", slog.Uint64("generation", s.generation))
}

// Regenerate stops the running replay, restores the base terrain, scatters
// expensive tiles again from seed and puts the walls back. Returns the number
// of tiles the scatter marked.
func (s *Session) Regenerate(seed int64) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.stopLocked()
	// shape was checked in New
	_ = s.grid.SetWeights(s.cfg.base)
	marked := s.grid.ScatterExpensive(gridgraph.NewTerrainRNG(seed), s.cfg.expensivePercent)
	for _, w := range s.cfg.walls {
		_ = s.grid.SetWeight(w, gridgraph.WeightExpensive)
	}
	s.board.Reset(s.grid)
	s.cfg.logger.Info("terrain regenerated",
		slog.Int64("seed", seed),
		slog.Int("expensive", marked),
		slog.Uint64("generation", s.generation),
	)

	return marked
}

// ToggleGreedyReference flips Greedy between ReferenceCurrent and
// ReferenceGoal for later searches and returns the new value.
func (s *Session) ToggleGreedyReference() pathfind.GreedyReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cfg.reference == pathfind.ReferenceCurrent {
		s.cfg.reference = pathfind.ReferenceGoal
	} else {
		s.cfg.reference = pathfind.ReferenceCurrent
	}

	return s.cfg.reference
}

// GreedyReference returns the reference used by the next Greedy search.
func (s *Session) GreedyReference() pathfind.GreedyReference {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg.reference
}

// Board returns a snapshot of the display.
func (s *Session) Board() *replay.Board {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.board.Clone()
}

// Generation returns the current generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.generation
}

// Replaying reports whether events remain in the current replay.
func (s *Session) Replaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.player != nil && !s.player.Done()
}

// Progress returns how many events of the current replay have been applied
// and its total length.
func (s *Session) Progress() (applied, total int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.player == nil {
		return 0, 0
	}
	return s.player.Position(), s.player.Len()
}

// Last returns the most recent search result, if any.
func (s *Session) Last() (Result, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.last == nil {
		return Result{}, false
	}
	return *s.last, true
}

// Rows returns the grid height.
func (s *Session) Rows() int { return s.grid.Rows }

// Columns returns the grid width.
func (s *Session) Columns() int { return s.grid.Columns }

// stopLocked cancels the replay, bumps the generation and resets the board.
func (s *Session) stopLocked() {
	if s.player != nil {
		s.player.Cancel()
		s.player = nil
	}
	s.generation++
	s.board.Reset(s.grid)
}

// stepLocked applies one event if gen is still current.
func (s *Session) stepLocked(gen uint64) (bool, error) {
	if gen != s.generation {
		return false, ErrStale
	}
	if s.player == nil {
		return false, nil
	}

	return s.player.Step(s.board), nil
}

func coords(path []*gridgraph.Tile) []gridgraph.Coord {
	out := make([]gridgraph.Coord, len(path))
	for i, t := range path {
		out[i] = t.Coord()
	}

	return out
}

// checkTerrain applies base to a clone of g to validate its shape and walls.
func checkTerrain(g *gridgraph.Grid, base [][]int, walls []gridgraph.Coord) error {
	trial := g.Clone()
	if err := trial.SetWeights(base); err != nil {
		return fmt.Errorf("%w: terrain: %v", ErrOptionViolation, err)
	}
	for _, w := range walls {
		if err := trial.SetWeight(w, gridgraph.WeightExpensive); err != nil {
			return fmt.Errorf("%w: wall: %v", ErrOptionViolation, err)
		}
	}

	return nil
}
