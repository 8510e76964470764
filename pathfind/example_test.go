package pathfind_test

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/replay"
)

////////////////////////////////////////////////////////////////////////////////
// Example: Dijkstra around an expensive tile
////////////////////////////////////////////////////////////////////////////////

// ExampleDijkstra routes around a weight-50 tile and prints the route.
func ExampleDijkstra() {
	g, _ := gridgraph.From2D([][]int{
		{1, 1, 1},
		{1, 50, 1},
		{1, 1, 1},
	}, gridgraph.WithStart(gridgraph.Coord{Row: 1, Column: 0}), gridgraph.WithEnd(gridgraph.Coord{Row: 1, Column: 2}))

	steps := replay.NewLog()
	path, _ := pathfind.Dijkstra(g, g.StartTile(), g.EndTile(), steps)
	route := make([]string, len(path))
	for i, t := range path {
		route[i] = t.Coord().String()
	}
	fmt.Println(strings.Join(route, " "))
	fmt.Println("weight:", pathfind.PathWeight(path))
	// Output:
	// (1,0) (0,0) (0,1) (0,2) (1,2)
	// weight: 4
}

////////////////////////////////////////////////////////////////////////////////
// Example: BFS event log
////////////////////////////////////////////////////////////////////////////////

// ExampleBFS prints the replayable event log for a 1×3 corridor.
func ExampleBFS() {
	g, _ := gridgraph.NewGrid(1, 3, gridgraph.WithEnd(gridgraph.Coord{Row: 0, Column: 2}))
	steps := replay.NewLog()
	_, _ = pathfind.BFS(g, g.StartTile(), g.EndTile(), steps)

	for _, e := range steps.All() {
		fmt.Println(e)
	}
	// Output:
	// start(0,0)
	// end(0,2)
	// frontier(0,1)
	// visited(0,1)
	// path(0,1)
}

////////////////////////////////////////////////////////////////////////////////
// Example: Compare
////////////////////////////////////////////////////////////////////////////////

// ExampleCompare runs every algorithm on the same grid.
func ExampleCompare() {
	g, _ := gridgraph.NewGrid(4, 4, gridgraph.WithEnd(gridgraph.Coord{Row: 3, Column: 3}))
	out, _ := pathfind.Compare(context.Background(), g, pathfind.Algorithms())
	for _, o := range out {
		fmt.Printf("%-8s found=%v length=%d weight=%d\n",
			o.Algorithm, o.Summary.Found, o.Summary.PathLength, o.Summary.PathWeight)
	}
	// Output:
	// bfs      found=true length=7 weight=6
	// dijkstra found=true length=7 weight=6
	// astar    found=true length=7 weight=6
	// greedy   found=true length=7 weight=6
}
