package pathfind

import (
	"cmp"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/minheap"
	"github.com/katalvlaran/gridpath/replay"
)

// costItem is one heap entry for Dijkstra and AStar.
// priority is fixed at insertion; seq breaks ties first-in first-out.
type costItem struct {
	tile     *gridgraph.Tile
	priority float64
	seq      int
}

func compareItems(a, b costItem) int {
	if c := cmp.Compare(a.priority, b.priority); c != 0 {
		return c
	}

	return cmp.Compare(a.seq, b.seq)
}

// Dijkstra finds a minimum-weight route from start to end. The cost of a
// route is the sum of the weights of every tile on it except start.
//
// Frontier marks carry the neighbor's cost at discovery time. A later
// improvement to a discovered but unexpanded tile updates Cost and
// Previous silently.
//
// Complexity: O(R·C·log(R·C)) time, O(R·C) space.
func Dijkstra(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error) {
	w, err := newWalker(g, start, end, steps, opts)
	if err != nil {
		return nil, err
	}

	return w.costSearch(func(t *gridgraph.Tile) float64 {
		return float64(t.Cost)
	})
}

// AStar is Dijkstra with the heap ordered by cost plus the heuristic distance
// from the tile to end (Euclidean unless WithHeuristic says otherwise).
//
// Complexity: O(R·C·log(R·C)) time, O(R·C) space.
func AStar(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error) {
	w, err := newWalker(g, start, end, steps, opts)
	if err != nil {
		return nil, err
	}
	h := w.opts.Heuristic

	return w.costSearch(func(t *gridgraph.Tile) float64 {
		return float64(t.Cost) + h(t, end)
	})
}

// costSearch is the loop shared by Dijkstra and AStar.
func (w *walker) costSearch(priority func(*gridgraph.Tile) float64) ([]*gridgraph.Tile, error) {
	w.grid.FillCost(gridgraph.WeightInfinity)
	w.start.Cost = 0

	var seq int
	pq := minheap.New[costItem](compareItems)
	push := func(t *gridgraph.Tile) {
		pq.Insert(costItem{tile: t, priority: priority(t), seq: seq})
		seq++
	}

	// expanded holds tiles already popped and processed; later heap
	// entries for them are stale.
	expanded := make(map[*gridgraph.Tile]struct{}, w.grid.Len())

	w.begin()
	push(w.start)

	for {
		if err := w.cancelled(); err != nil {
			return nil, err
		}

		item, ok := pq.ExtractMin()
		if !ok {
			break
		}
		current := item.tile
		if _, done := expanded[current]; done {
			continue
		}
		expanded[current] = struct{}{}
		if w.expand(current) {
			break
		}

		for n := range w.grid.Neighbors(current) {
			// relax before the visited gate
			if cost := addCost(current.Cost, n.Weight); cost < n.Cost {
				n.Cost = cost
				n.Previous = current
				if _, done := expanded[n]; !done && w.discovered(n) {
					push(n)
				}
			}
			if w.discovered(n) {
				continue
			}
			w.discover(n, replay.Frontier(n.Coord(), n.Cost))
			push(n)
		}
	}

	return w.finish(), nil
}
