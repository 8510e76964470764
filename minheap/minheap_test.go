package minheap_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gridpath/minheap"
)

// TestNewWithCapacity_Errors verifies constructor validation.
func TestNewWithCapacity_Errors(t *testing.T) {
	_, err := minheap.NewWithCapacity(0, func(a, b int) int { return a - b })
	assert.ErrorIs(t, err, minheap.ErrBadCapacity)

	_, err = minheap.NewWithCapacity[int](4, nil)
	assert.ErrorIs(t, err, minheap.ErrNilCompare)

	assert.Panics(t, func() { minheap.New[int](nil) }, "New with nil compare must panic")
}

// TestMinHeap_EmptySignal checks that an empty heap reports ok == false
// across 0, 1, and many prior insert/extract cycles.
func TestMinHeap_EmptySignal(t *testing.T) {
	for _, cycles := range []int{0, 1, 50} {
		h := minheap.NewOrdered[int]()
		for i := 0; i < cycles; i++ {
			h.Insert(i + 7)
			v, ok := h.ExtractMin()
			require.True(t, ok)
			require.Equal(t, i+7, v)
		}

		v, ok := h.ExtractMin()
		assert.False(t, ok, "cycles=%d: ExtractMin on empty heap", cycles)
		assert.Zero(t, v)

		p, ok := h.Peek()
		assert.False(t, ok, "cycles=%d: Peek on empty heap", cycles)
		assert.Zero(t, p)
		assert.Equal(t, 0, h.Len())
	}
}

// TestMinHeap_GrowsByDoubling inserts past the initial capacity.
func TestMinHeap_GrowsByDoubling(t *testing.T) {
	h := minheap.NewOrdered[int]()
	assert.Equal(t, minheap.DefaultCapacity, h.Cap())

	for i := 0; i < minheap.DefaultCapacity+1; i++ {
		h.Insert(i)
	}
	assert.Equal(t, 2*minheap.DefaultCapacity, h.Cap())
	assert.Equal(t, minheap.DefaultCapacity+1, h.Len())
}

// TestMinHeap_PeekTracksMinimum interleaves random inserts and extracts and
// compares Peek against a sorted reference after every operation.
func TestMinHeap_PeekTracksMinimum(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	h := minheap.NewOrdered[int]()
	var ref []int

	for step := 0; step < 2000; step++ {
		if len(ref) == 0 || rng.Intn(3) > 0 {
			x := rng.Intn(1000) - 500
			h.Insert(x)
			ref = append(ref, x)
		} else {
			got, ok := h.ExtractMin()
			require.True(t, ok)
			sort.Ints(ref)
			require.Equal(t, ref[0], got, "step %d", step)
			ref = ref[1:]
		}

		require.Equal(t, len(ref), h.Len())
		if len(ref) > 0 {
			sort.Ints(ref)
			top, ok := h.Peek()
			require.True(t, ok)
			require.Equal(t, ref[0], top, "step %d", step)
		}
	}
}

// TestMinHeap_CustomCompare orders structs by a derived key.
func TestMinHeap_CustomCompare(t *testing.T) {
	type job struct {
		name     string
		priority float64
	}
	h := minheap.New(func(a, b job) int {
		switch {
		case a.priority < b.priority:
			return -1
		case a.priority > b.priority:
			return 1
		default:
			return 0
		}
	})
	h.Insert(job{"c", 3.5})
	h.Insert(job{"a", 0.5})
	h.Insert(job{"b", 1.25})

	var order []string
	for h.Len() > 0 {
		j, _ := h.ExtractMin()
		order = append(order, j.name)
	}
	assert.Equal(t, []string{"a", "b", "c"}, order)
}

// TestMinHeap_Clear empties the heap but keeps it usable.
func TestMinHeap_Clear(t *testing.T) {
	h := minheap.NewOrdered[string]()
	h.Insert("b")
	h.Insert("a")
	h.Clear()

	assert.Equal(t, 0, h.Len())
	_, ok := h.Peek()
	assert.False(t, ok)

	h.Insert("z")
	v, ok := h.ExtractMin()
	assert.True(t, ok)
	assert.Equal(t, "z", v)
}

// TestMinHeap_Duplicates keeps equal keys and returns all of them.
func TestMinHeap_Duplicates(t *testing.T) {
	h := minheap.NewOrdered[int]()
	for _, x := range []int{2, 1, 2, 1, 2} {
		h.Insert(x)
	}
	var got []int
	for {
		x, ok := h.ExtractMin()
		if !ok {
			break
		}
		got = append(got, x)
	}
	assert.Equal(t, []int{1, 1, 2, 2, 2}, got)
}
