package pathfind

import "github.com/katalvlaran/gridpath/gridgraph"

// Euclidean returns the straight-line distance between the tiles' locations.
func Euclidean(a, b *gridgraph.Tile) float64 {
	return a.Location().Sub(b.Location()).Magnitude()
}

// addCost adds a tile weight to a cumulative cost, saturating at
// gridgraph.WeightInfinity instead of overflowing.
func addCost(cost, weight int) int {
	if cost >= gridgraph.WeightInfinity-weight {
		return gridgraph.WeightInfinity
	}

	return cost + weight
}
