package pathfind

import (
	"context"
	"fmt"
	"slices"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// walker holds the state shared by every search.
type walker struct {
	grid  *gridgraph.Grid
	start *gridgraph.Tile
	end   *gridgraph.Tile
	steps *replay.Log
	opts  Options
	ctx   context.Context

	// seen blocks re-discovery; a tile enters it when first put on the frontier.
	seen map[*gridgraph.Tile]struct{}
}

// newWalker validates inputs and options, then resets the grid's search state.
// Validation order: grid, log, tiles, ownership, options.
func newWalker(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts []Option) (*walker, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if steps == nil {
		return nil, ErrNilLog
	}
	if start == nil || end == nil {
		return nil, ErrNilTile
	}
	if !g.Owns(start) {
		return nil, fmt.Errorf("%w: start %s", ErrForeignTile, start.Coord())
	}
	if !g.Owns(end) {
		return nil, fmt.Errorf("%w: end %s", ErrForeignTile, end.Coord())
	}

	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	g.ResetSearchState()

	return &walker{
		grid:  g,
		start: start,
		end:   end,
		steps: steps,
		opts:  o,
		ctx:   o.Ctx,
		seen:  make(map[*gridgraph.Tile]struct{}, g.Len()),
	}, nil
}

// begin emits the start and end marks and puts start on the frontier.
func (w *walker) begin() {
	w.steps.Append(replay.Start(w.start.Coord()))
	w.steps.Append(replay.End(w.end.Coord()))
	w.seen[w.start] = struct{}{}
}

// cancelled reports the context error, if any.
func (w *walker) cancelled() error {
	select {
	case <-w.ctx.Done():
		return w.ctx.Err()
	default:
		return nil
	}
}

// expand emits a visited mark for t unless it is start or end, and reports
// whether t is the end tile.
func (w *walker) expand(t *gridgraph.Tile) bool {
	if t == w.end {
		return true
	}
	if t != w.start {
		w.steps.Append(replay.Visited(t.Coord()))
	}

	return false
}

// discovered reports whether t has already been put on the frontier.
func (w *walker) discovered(t *gridgraph.Tile) bool {
	_, ok := w.seen[t]
	return ok
}

// discover records t as seen and emits e unless t is the end tile.
func (w *walker) discover(t *gridgraph.Tile, e replay.Event) {
	w.seen[t] = struct{}{}
	if t != w.end {
		w.steps.Append(e)
	}
}

// finish backtracks from end and emits a path mark per interior tile.
func (w *walker) finish() []*gridgraph.Tile {
	path := Backtrack(w.end)
	for _, t := range path {
		if t == w.start || t == w.end {
			continue
		}
		w.steps.Append(replay.Path(t.Coord()))
	}

	return path
}

// Backtrack follows Previous links from end and returns the tiles in
// start-to-end order. An end without a predecessor yields [end].
// Returns nil for a nil end.
func Backtrack(end *gridgraph.Tile) []*gridgraph.Tile {
	if end == nil {
		return nil
	}
	var path []*gridgraph.Tile
	for t := end; t != nil; t = t.Previous {
		path = append(path, t)
	}
	slices.Reverse(path)

	return path
}

// Run dispatches to the search named by algo.
func Run(algo Algorithm, g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error) {
	fn, err := Lookup(algo)
	if err != nil {
		return nil, err
	}

	return fn(g, start, end, steps, opts...)
}

// Lookup returns the search function for algo.
func Lookup(algo Algorithm) (Func, error) {
	switch algo {
	case AlgoBFS:
		return BFS, nil
	case AlgoDijkstra:
		return Dijkstra, nil
	case AlgoAStar:
		return AStar, nil
	case AlgoGreedy:
		return Greedy, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownAlgorithm, algo)
	}
}
