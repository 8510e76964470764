// Package gridgraph models a fixed-size rectangular grid of weighted tiles as a
// 4-connected graph for shortest-path searches.
//
// What:
//
//   - Grid owns Rows×Columns tiles stored row-major: index = row*Columns + column.
//   - Each Tile carries a static traversal Weight plus per-search mutable state
//     (Cost and Previous) that search algorithms reset and fill in place.
//   - Neighbors yields up to four adjacent tiles in a fixed order: right, left,
//     up, down. Tiles outside the grid are skipped, never reported as errors.
//   - ScatterExpensive marks a random share of tiles with WeightExpensive to
//     simulate rough terrain; seeds make the layout reproducible.
//
// Why:
//
//   - Game maps and visualizers: uniform grids with cheap and expensive cells.
//   - A single shared topology that BFS, Dijkstra, A* and greedy search all walk.
//
// Complexity:
//
//   - TileAt, InBounds:     O(1).
//   - Neighbors:            O(1) per yielded tile, at most 4.
//   - ResetSearchState:     O(R×C).
//   - Clone:                O(R×C), Memory: O(R×C).
//
// Weights:
//
//   - WeightDefault (1):        ordinary terrain.
//   - WeightExpensive (50):     rough terrain.
//   - WeightInfinity (MaxInt):  sentinel for "unreachable cost so far"; also
//     usable as a wall weight, since searches add costs with saturation.
//
// Errors:
//
//   - ErrEmptyGrid:       zero rows or zero columns.
//   - ErrNonRectangular:  rows of differing lengths in From2D.
//   - ErrBadWeight:       a weight smaller than 1.
//   - ErrOutOfBounds:     SetWeight on a coordinate outside the grid.
//   - ErrOptionViolation: an invalid functional option.
//
// Thread safety:
//
//	A Grid is not safe for concurrent searches: every search mutates tile Cost
//	and Previous in place. Run concurrent searches on independent Clone copies.
package gridgraph
