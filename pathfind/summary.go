package pathfind

import (
	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// Summary describes one finished search.
type Summary struct {
	Algorithm  Algorithm `json:"algorithm"`
	Found      bool      `json:"found"`
	PathLength int       `json:"path_length"` // tiles, start and end included
	PathWeight int       `json:"path_weight"` // sum of weights after start
	Expanded   int       `json:"expanded"`    // visited marks
	Discovered int       `json:"discovered"`  // frontier marks
	Events     int       `json:"events"`
}

// Found reports whether path is a route from start to end: non-empty,
// beginning at start and ending at end. When start == end, [start] is a route.
func Found(path []*gridgraph.Tile, start, end *gridgraph.Tile) bool {
	if len(path) == 0 || start == nil || end == nil {
		return false
	}

	return path[0] == start && path[len(path)-1] == end
}

// PathWeight sums the weights of every tile in path except the first,
// saturating at gridgraph.WeightInfinity.
func PathWeight(path []*gridgraph.Tile) int {
	total := 0
	for i := 1; i < len(path); i++ {
		total = addCost(total, path[i].Weight)
	}

	return total
}

// Summarize builds a Summary from a search's returned path and event log.
// A nil log counts zero events.
func Summarize(algo Algorithm, path []*gridgraph.Tile, start, end *gridgraph.Tile, steps *replay.Log) Summary {
	s := Summary{
		Algorithm:  algo,
		Found:      Found(path, start, end),
		PathLength: len(path),
	}
	if s.Found {
		s.PathWeight = PathWeight(path)
	}
	if steps != nil {
		s.Expanded = steps.Count(replay.KindVisited)
		s.Discovered = steps.Count(replay.KindFrontier)
		s.Events = steps.Len()
	}

	return s
}
