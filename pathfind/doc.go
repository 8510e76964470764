// Package pathfind runs shortest-path searches over a gridgraph.Grid and records
// their progress into a replay.Log.
//
// Four interchangeable algorithms share one contract:
//
//	func(g *gridgraph.Grid, start, end *gridgraph.Tile, steps *replay.Log, opts ...Option) ([]*gridgraph.Tile, error)
//
//   - BFS:      FIFO frontier, first discoverer becomes the predecessor, no cost.
//   - Dijkstra: min-heap by cumulative cost; relax cost[n] = min(cost[n], cost[c]+w[n]).
//   - AStar:    min-heap by cost + Euclidean distance to end; same relaxation.
//   - Greedy:   min-heap by Euclidean distance snapshot taken at insertion time;
//     predecessor fixed on first discovery, no cost.
//
// Shared behavior:
//
//  1. Reset per-search tile state (Cost, Previous); Dijkstra and AStar then set
//     every Cost to gridgraph.WeightInfinity and the start Cost to 0.
//  2. Emit a start event and an end event.
//  3. Expand tiles from the frontier; a visited set blocks re-discovery. Emit a
//     visited event per expanded tile except start/end, and a frontier event per
//     newly discovered neighbor except end.
//  4. Stop once end is expanded (not merely discovered) or the frontier empties.
//  5. Walk Previous links back from end, reverse, and emit a path event per
//     interior path tile.
//
// Unreachable end:
//
//	Not an error. The path degenerates to [end] and no path events are emitted;
//	Found reports false for it.
//
// Relaxation of discovered tiles (Dijkstra, AStar):
//
//	Cost relaxation runs before the visited check, so a tile already on the
//	frontier can receive a cheaper cost and a new predecessor. No frontier event
//	is re-emitted for it; the tile is pushed again with its new priority and the
//	outdated heap entry is skipped when popped.
//
// Greedy reference:
//
//	By default Greedy ranks a candidate by its distance to the tile being
//	expanded when it was discovered (ReferenceCurrent). WithGreedyReference
//	(ReferenceGoal) ranks by distance to end instead, which is conventional
//	greedy best-first search.
//
// Errors:
//
//   - ErrNilGrid, ErrNilLog, ErrNilTile, ErrForeignTile: invalid inputs.
//   - ErrOptionViolation: an invalid functional option.
//   - ErrUnknownAlgorithm: Run or ParseAlgorithm got an unsupported algorithm.
//   - ctx.Err(): the search context was cancelled (WithContext).
//
// Thread safety:
//
//	A search mutates tile state in place; never run two searches on the same
//	Grid at once. Compare runs algorithms concurrently on independent clones.
package pathfind
