package session

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

var (
	// ErrNilGrid is returned by New when grid is nil.
	ErrNilGrid = errors.New("session: grid is nil")

	// ErrStale is returned by Play when a newer Begin, Escape or Regenerate
	// superseded the replay.
	ErrStale = errors.New("session: replay superseded")

	// ErrOptionViolation is returned by New for an invalid Option.
	ErrOptionViolation = errors.New("session: invalid option supplied")
)

// Result describes one completed search.
type Result struct {
	Generation uint64
	Algorithm  pathfind.Algorithm
	Reference  pathfind.GreedyReference
	Path       []gridgraph.Coord
	Summary    pathfind.Summary
	LogID      uuid.UUID
	Elapsed    time.Duration
}

// Observer is notified of every completed search.
type Observer interface {
	SearchCompleted(Result)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Result)

// SearchCompleted calls f(r).
func (f ObserverFunc) SearchCompleted(r Result) { f(r) }

// Option configures a Session.
type Option func(*settings)

type settings struct {
	logger           *slog.Logger
	observers        []Observer
	reference        pathfind.GreedyReference
	expensivePercent int
	base             [][]int
	walls            []gridgraph.Coord
	err              error
}

func defaultSettings() settings {
	return settings{
		logger:           slog.New(slog.DiscardHandler),
		reference:        pathfind.ReferenceCurrent,
		expensivePercent: gridgraph.DefaultExpensivePercent,
	}
}

// WithLogger sets the structured logger. A nil logger keeps the silent default.
func WithLogger(l *slog.Logger) Option {
	return func(s *settings) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithObserver registers o for search completion notices.
func WithObserver(o Observer) Option {
	return func(s *settings) {
		if o == nil {
			s.err = fmt.Errorf("%w: observer is nil", ErrOptionViolation)
			return
		}
		s.observers = append(s.observers, o)
	}
}

// WithGreedyReference sets the initial Greedy reference point.
func WithGreedyReference(ref pathfind.GreedyReference) Option {
	return func(s *settings) {
		switch ref {
		case pathfind.ReferenceCurrent, pathfind.ReferenceGoal:
			s.reference = ref
		default:
			s.err = fmt.Errorf("%w: greedy reference %d", ErrOptionViolation, int(ref))
		}
	}
}

// WithExpensivePercent sets the share of tiles Regenerate marks expensive.
func WithExpensivePercent(percent int) Option {
	return func(s *settings) {
		if percent < 0 || percent > 100 {
			s.err = fmt.Errorf("%w: expensive percent %d not in [0,100]", ErrOptionViolation, percent)
			return
		}
		s.expensivePercent = percent
	}
}

// WithTerrain sets the terrain Regenerate restores before scattering: the
// base weight matrix, then walls at gridgraph.WeightExpensive on top of the
// scatter. Without it the grid's weights at New are the base.
func WithTerrain(base [][]int, walls ...gridgraph.Coord) Option {
	return func(s *settings) {
		if len(base) == 0 {
			s.err = fmt.Errorf("%w: terrain base is empty", ErrOptionViolation)
			return
		}
		s.base = base
		s.walls = walls
	}
}
