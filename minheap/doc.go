// Package minheap provides a generic, array-backed binary min-heap ordered by a
// caller-supplied comparison function.
//
// What:
//
//   - MinHeap[T] keeps the element ranked smallest by Compare at the root.
//   - Insert grows the backing array by doubling when it is full.
//   - ExtractMin and Peek report an empty heap through a second boolean result;
//     a zero value is never handed out as if it were a real element.
//
// Why:
//
//   - The pathfind package needs a priority queue whose ordering is injected per
//     search (cost, cost+heuristic, or a heuristic snapshot).
//   - container/heap forces interface{} boxing and a five-method adapter per use.
//
// Complexity:
//
//   - Insert:     amortized O(log n).
//   - ExtractMin: O(log n).
//   - Peek, Len, Cap, Clear: O(1).
//
// Ordering:
//
//	Compare(a, b) < 0 means a ranks before b. Compare must be a consistent total
//	order for as long as elements live in the heap. Ties are broken arbitrarily
//	(the first smaller child wins during sift-down), so callers must not depend
//	on tie order for correctness.
//
// Errors:
//
//   - ErrNilCompare:  constructor received a nil Compare.
//   - ErrBadCapacity: constructor received a capacity < 1.
//
// Thread safety:
//
//	MinHeap is not safe for concurrent use; synchronize externally.
package minheap
