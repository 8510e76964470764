package pathfind

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// Sentinel errors for search execution.
var (
	// ErrNilGrid is returned when a nil grid is passed.
	ErrNilGrid = errors.New("pathfind: grid is nil")

	// ErrNilLog is returned when a nil event log is passed.
	ErrNilLog = errors.New("pathfind: event log is nil")

	// ErrNilTile is returned when start or end is nil.
	ErrNilTile = errors.New("pathfind: start or end tile is nil")

	// ErrForeignTile is returned when start or end does not belong to the grid.
	ErrForeignTile = errors.New("pathfind: tile does not belong to grid")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("pathfind: invalid option supplied")

	// ErrUnknownAlgorithm is returned for an unsupported Algorithm value or name.
	ErrUnknownAlgorithm = errors.New("pathfind: unknown algorithm")
)

// Func is the signature shared by BFS, Dijkstra, AStar and Greedy.
type Func func(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error)

// Algorithm names one of the four searches.
type Algorithm int

const (
	// AlgoBFS selects breadth-first search.
	AlgoBFS Algorithm = iota
	// AlgoDijkstra selects Dijkstra's algorithm.
	AlgoDijkstra
	// AlgoAStar selects A*.
	AlgoAStar
	// AlgoGreedy selects greedy best-first search.
	AlgoGreedy
)

// Algorithms lists every algorithm in hotkey order (1–4).
func Algorithms() []Algorithm {
	return []Algorithm{AlgoBFS, AlgoDijkstra, AlgoAStar, AlgoGreedy}
}

// String returns the canonical lower-case name.
func (a Algorithm) String() string {
	switch a {
	case AlgoBFS:
		return "bfs"
	case AlgoDijkstra:
		return "dijkstra"
	case AlgoAStar:
		return "astar"
	case AlgoGreedy:
		return "greedy"
	default:
		return fmt.Sprintf("algorithm(%d)", int(a))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (a Algorithm) MarshalText() ([]byte, error) {
	if _, err := Lookup(a); err != nil {
		return nil, err
	}

	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseAlgorithm.
func (a *Algorithm) UnmarshalText(text []byte) error {
	v, err := ParseAlgorithm(string(text))
	if err != nil {
		return err
	}
	*a = v

	return nil
}

// ParseAlgorithm maps a name ("bfs", "dijkstra", "astar"/"a*", "greedy",
// case-insensitive) to an Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "bfs":
		return AlgoBFS, nil
	case "dijkstra":
		return AlgoDijkstra, nil
	case "astar", "a*":
		return AlgoAStar, nil
	case "greedy":
		return AlgoGreedy, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
	}
}

// GreedyReference selects the point Greedy measures candidate distance from.
type GreedyReference int

const (
	// ReferenceCurrent measures from the tile being expanded at discovery time.
	ReferenceCurrent GreedyReference = iota
	// ReferenceGoal measures from the end tile.
	ReferenceGoal
)

// String returns "current" or "goal".
func (r GreedyReference) String() string {
	switch r {
	case ReferenceCurrent:
		return "current"
	case ReferenceGoal:
		return "goal"
	default:
		return fmt.Sprintf("reference(%d)", int(r))
	}
}

// ParseGreedyReference maps "current" or "goal" (case-insensitive; "" means
// current) to a GreedyReference.
func ParseGreedyReference(name string) (GreedyReference, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "current":
		return ReferenceCurrent, nil
	case "goal":
		return ReferenceGoal, nil
	default:
		return 0, fmt.Errorf("%w: greedy reference %q", ErrOptionViolation, name)
	}
}

// Heuristic estimates the distance between two tiles.
type Heuristic func(a, b *gridgraph.Tile) float64

// Option configures a search via functional arguments.
// Invalid values are recorded and surfaced as ErrOptionViolation when the
// search is invoked.
type Option func(*Options)

// Options holds per-search parameters.
type Options struct {
	// Ctx allows cancellation; checked once per expansion.
	Ctx context.Context

	// GreedyReference selects Greedy's distance reference point.
	GreedyReference GreedyReference

	// Heuristic is used by AStar and Greedy. Defaults to Euclidean.
	Heuristic Heuristic

	err error
}

// DefaultOptions returns Options with context.Background(), ReferenceCurrent
// and the Euclidean heuristic.
func DefaultOptions() Options {
	return Options{
		Ctx:             context.Background(),
		GreedyReference: ReferenceCurrent,
		Heuristic:       Euclidean,
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithGreedyReference selects Greedy's reference point.
func WithGreedyReference(ref GreedyReference) Option {
	return func(o *Options) {
		switch ref {
		case ReferenceCurrent, ReferenceGoal:
			o.GreedyReference = ref
		default:
			o.err = fmt.Errorf("%w: greedy reference %d", ErrOptionViolation, int(ref))
		}
	}
}

// WithHeuristic replaces the distance estimate used by AStar and Greedy.
// A nil h is an ErrOptionViolation.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h == nil {
			o.err = fmt.Errorf("%w: heuristic is nil", ErrOptionViolation)
			return
		}
		o.Heuristic = h
	}
}
