package pathfind_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
	"github.com/katalvlaran/gridpath/replay"
)

// benchGrid is a 64×64 grid with 20% expensive terrain, corner to corner.
func benchGrid(b *testing.B) *gridgraph.Grid {
	b.Helper()
	g, err := gridgraph.NewGrid(64, 64,
		gridgraph.WithEnd(gridgraph.Coord{Row: 63, Column: 63}),
		gridgraph.WithExpensiveArea(gridgraph.DefaultExpensivePercent, 7))
	if err != nil {
		b.Fatal(err)
	}
	return g
}

func benchmarkAlgorithm(b *testing.B, algo pathfind.Algorithm) {
	g := benchGrid(b)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := pathfind.Run(algo, g, g.StartTile(), g.EndTile(), replay.NewLog()); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBFS measures BFS on a 64×64 grid.
func BenchmarkBFS(b *testing.B) { benchmarkAlgorithm(b, pathfind.AlgoBFS) }

// BenchmarkDijkstra measures Dijkstra on a 64×64 grid.
func BenchmarkDijkstra(b *testing.B) { benchmarkAlgorithm(b, pathfind.AlgoDijkstra) }

// BenchmarkAStar measures A* on a 64×64 grid.
func BenchmarkAStar(b *testing.B) { benchmarkAlgorithm(b, pathfind.AlgoAStar) }

// BenchmarkGreedy measures greedy best-first search on a 64×64 grid.
func BenchmarkGreedy(b *testing.B) { benchmarkAlgorithm(b, pathfind.AlgoGreedy) }
