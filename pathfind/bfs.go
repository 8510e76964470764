package pathfind

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// BFS runs breadth-first search from start to end, ignoring tile weights.
// The first tile to discover a neighbor becomes its predecessor, so the
// returned path has the fewest steps among all routes.
//
// Events: start, end, then visited/frontier marks in expansion order, then
// path marks. Frontier marks carry no cost.
//
// Complexity: O(R·C) time and space.
func BFS(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error) {
	w, err := newWalker(g, start, end, steps, opts)
	if err != nil {
		return nil, err
	}

	w.begin()
	queue := make([]*gridgraph.Tile, 0, g.Len())
	queue = append(queue, start)

	for len(queue) > 0 {
		if err = w.cancelled(); err != nil {
			return nil, err
		}

		current := queue[0]
		queue = queue[1:]
		if w.expand(current) {
			break
		}

		for n := range g.Neighbors(current) {
			if w.discovered(n) {
				continue
			}
			n.Previous = current
			w.discover(n, replay.FrontierNoCost(n.Coord()))
			queue = append(queue, n)
		}
	}

	return w.finish(), nil
}
