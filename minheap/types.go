package minheap

import "errors"

// Sentinel errors for heap construction.
var (
	// ErrNilCompare indicates that a nil comparison function was supplied.
	ErrNilCompare = errors.New("minheap: compare function is nil")

	// ErrBadCapacity indicates that the initial capacity is smaller than one.
	ErrBadCapacity = errors.New("minheap: capacity must be at least 1")
)

// DefaultCapacity is the backing-array size used by New.
const DefaultCapacity = 4

// Compare ranks two elements: negative if a < b, zero if equal, positive if a > b.
type Compare[T any] func(a, b T) int

// MinHeap is a binary min-heap stored in a slice.
//
// items[:n] holds the live elements; items[n:] is spare capacity.
// Index arithmetic: parent(i) = (i-1)/2, left(i) = 2i+1, right(i) = 2i+2.
type MinHeap[T any] struct {
	items []T
	n     int
	cmp   Compare[T]
}
