package pathfind

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// Outcome is the result of one algorithm inside Compare.
// Grid is the private clone the search ran on; Path tiles belong to it.
type Outcome struct {
	Algorithm Algorithm
	Grid      *gridgraph.Grid
	Path      []*gridgraph.Tile
	Log       *replay.Log
	Summary   Summary
}

// Compare runs each algorithm concurrently on its own clone of g, from
// g.Start to g.End, and returns the outcomes in the order of algos.
// g itself is not modified. The first failing search cancels the rest.
func Compare(ctx context.Context, g *gridgraph.Grid, algos []Algorithm, opts ...Option) ([]Outcome, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	for _, a := range algos {
		if _, err := Lookup(a); err != nil {
			return nil, err
		}
	}

	out := make([]Outcome, len(algos))
	eg, gctx := errgroup.WithContext(ctx)
	for i, algo := range algos {
		clone := g.Clone()
		eg.Go(func() error {
			steps := replay.NewLog()
			start, end := clone.StartTile(), clone.EndTile()
			runOpts := append(append([]Option(nil), opts...), WithContext(gctx))
			path, err := Run(algo, clone, start, end, steps, runOpts...)
			if err != nil {
				return fmt.Errorf("pathfind: compare %s: %w", algo, err)
			}
			out[i] = Outcome{
				Algorithm: algo,
				Grid:      clone,
				Path:      path,
				Log:       steps,
				Summary:   Summarize(algo, path, start, end, steps),
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}
