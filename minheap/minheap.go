package minheap

import (
	"cmp"
	"fmt"
)

// New returns an empty heap with DefaultCapacity, ordered by c.
// It panics if c is nil, mirroring the misuse of a nil sort.Less.
func New[T any](c Compare[T]) *MinHeap[T] {
	h, err := NewWithCapacity(DefaultCapacity, c)
	if err != nil {
		panic(err.Error())
	}

	return h
}

// NewWithCapacity returns an empty heap whose backing array starts at capacity.
// Returns ErrBadCapacity if capacity < 1 and ErrNilCompare if c is nil.
func NewWithCapacity[T any](capacity int, c Compare[T]) (*MinHeap[T], error) {
	if capacity < 1 {
		return nil, fmt.Errorf("%w: got %d", ErrBadCapacity, capacity)
	}
	if c == nil {
		return nil, ErrNilCompare
	}

	return &MinHeap[T]{
		items: make([]T, capacity),
		cmp:   c,
	}, nil
}

// NewOrdered returns an empty heap over an ordered type using cmp.Compare.
func NewOrdered[T cmp.Ordered]() *MinHeap[T] {
	return New(cmp.Compare[T])
}

// Len returns the number of elements currently held.
func (h *MinHeap[T]) Len() int { return h.n }

// Cap returns the size of the backing array.
func (h *MinHeap[T]) Cap() int { return len(h.items) }

// Insert adds x to the heap.
// Complexity: amortized O(log n).
func (h *MinHeap[T]) Insert(x T) {
	// 1) Double the backing array when it is full.
	if h.n == len(h.items) {
		h.grow()
	}
	// 2) Place x at the first free slot and restore order upwards.
	h.items[h.n] = x
	h.n++
	h.up(h.n - 1)
}

// ExtractMin removes and returns the smallest element.
// On an empty heap it returns the zero value and ok == false.
// Complexity: O(log n).
func (h *MinHeap[T]) ExtractMin() (x T, ok bool) {
	if h.n == 0 {
		return x, false
	}
	x = h.items[0]
	last := h.n - 1
	h.items[0] = h.items[last]
	var zero T
	h.items[last] = zero // release the reference held by the vacated slot
	h.n = last
	h.down(0)

	return x, true
}

// Peek returns the smallest element without removing it.
// On an empty heap it returns the zero value and ok == false.
// Complexity: O(1).
func (h *MinHeap[T]) Peek() (x T, ok bool) {
	if h.n == 0 {
		return x, false
	}

	return h.items[0], true
}

// Clear drops every element while keeping the backing array.
// Complexity: O(1); stale slots are overwritten by later inserts.
func (h *MinHeap[T]) Clear() {
	h.n = 0
}

// grow doubles the backing array.
func (h *MinHeap[T]) grow() {
	next := make([]T, 2*len(h.items))
	copy(next, h.items[:h.n])
	h.items = next
}

// up sifts the element at index j towards the root while it is strictly
// smaller than its parent.
func (h *MinHeap[T]) up(j int) {
	for j > 0 {
		parent := (j - 1) / 2
		if h.cmp(h.items[j], h.items[parent]) >= 0 {
			break
		}
		h.items[j], h.items[parent] = h.items[parent], h.items[j]
		j = parent
	}
}

// down sifts the element at index i towards the leaves, swapping with the
// smaller child until no child is smaller.
func (h *MinHeap[T]) down(i int) {
	for {
		smallest := i
		left, right := 2*i+1, 2*i+2
		if left < h.n && h.cmp(h.items[left], h.items[smallest]) < 0 {
			smallest = left
		}
		if right < h.n && h.cmp(h.items[right], h.items[smallest]) < 0 {
			smallest = right
		}
		if smallest == i {
			return
		}
		h.items[i], h.items[smallest] = h.items[smallest], h.items[i]
		i = smallest
	}
}
