package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// BenchmarkNeighbors walks the neighbors of every tile on a 500×500 grid.
// Complexity: O(R×C×4).
func BenchmarkNeighbors(b *testing.B) {
	g, err := gridgraph.NewGrid(500, 500)
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		n := 0
		for _, tile := range g.Tiles {
			for range g.Neighbors(tile) {
				n++
			}
		}
		_ = n
	}
}

// BenchmarkClone measures deep copies of a 500×500 grid with terrain.
func BenchmarkClone(b *testing.B) {
	g, err := gridgraph.NewGrid(500, 500, gridgraph.WithExpensiveArea(20, 42))
	if err != nil {
		b.Fatalf("setup NewGrid failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Clone()
	}
}
