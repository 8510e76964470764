package minheap_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/minheap"
)

// BenchmarkMinHeap_InsertExtract fills a heap with N random keys and drains it.
// Complexity: O(N log N) per iteration.
func BenchmarkMinHeap_InsertExtract(b *testing.B) {
	const n = 10000
	rng := rand.New(rand.NewSource(1))
	keys := make([]int, n)
	for i := range keys {
		keys[i] = rng.Int()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		h := minheap.NewOrdered[int]()
		for _, k := range keys {
			h.Insert(k)
		}
		for h.Len() > 0 {
			_, _ = h.ExtractMin()
		}
	}
}
