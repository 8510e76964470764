package pathfind

import (
	"cmp"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/minheap"
	"github.com/katalvlaran/gridpath/replay"
)

// greedyItem snapshots a tile's distance at insertion time.
type greedyItem struct {
	tile     *gridgraph.Tile
	distance float64
	seq      int
}

func compareGreedy(a, b greedyItem) int {
	if c := cmp.Compare(a.distance, b.distance); c != 0 {
		return c
	}

	return cmp.Compare(a.seq, b.seq)
}

// Greedy runs best-first search ordered by a distance snapshot. With the
// default ReferenceCurrent a candidate's distance is measured to the tile that
// discovered it; ReferenceGoal measures to end. Weights are ignored and the
// first discoverer becomes the predecessor.
//
// Frontier marks carry no cost.
//
// Complexity: O(R·C·log(R·C)) time, O(R·C) space.
func Greedy(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error) {
	w, err := newWalker(g, start, end, steps, opts)
	if err != nil {
		return nil, err
	}
	h := w.opts.Heuristic

	var seq int
	pq := minheap.New[greedyItem](compareGreedy)
	push := func(t *gridgraph.Tile, distance float64) {
		pq.Insert(greedyItem{tile: t, distance: distance, seq: seq})
		seq++
	}

	w.begin()
	push(start, 0)

	for {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		item, ok := pq.ExtractMin()
		if !ok {
			break
		}
		current := item.tile
		if w.expand(current) {
			break
		}

		ref := current
		if w.opts.GreedyReference == ReferenceGoal {
			ref = end
		}
		for n := range g.Neighbors(current) {
			if w.discovered(n) {
				continue
			}
			n.Previous = current
			w.discover(n, replay.FrontierNoCost(n.Coord()))
			push(n, h(n, ref))
		}
	}

	return w.finish(), nil
}
