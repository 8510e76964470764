// Package gridpath is a grid shortest-path search engine with replayable
// visualization.
//
// 🚀 What is gridpath?
//
//	Four interchangeable searches over a weighted, 4-connected grid, each
//	recording its progress as an ordered event log that a host replays at
//	its own pace:
//		• BFS: fewest steps
//		• Dijkstra: least total weight
//		• A*: least total weight, guided by Euclidean distance
//		• Greedy best-first: distance-ordered, weight-blind
//
// Packages:
//
//	minheap/    generic binary min-heap used as the priority queue
//	gridgraph/  Grid, Tile, Coord, 4-neighborhood, expensive terrain
//	pathfind/   BFS, Dijkstra, AStar, Greedy, Run, Summarize, Compare
//	replay/     Event tagged union, Log, Apply, Board, paced Player
//	session/    interactive host loop: Begin, Tick, Escape, Regenerate
//	config/     YAML configuration with validation
//	telemetry/  Prometheus metrics for completed searches
//	tui/        Bubble Tea front end and board renderer
//	cmd/gridpath  CLI: run, compare, play
//
// Quick ASCII example (3×3, S→E, after a BFS replay):
//
//	S * *
//	o o *
//	o o E
//
//	go install github.com/katalvlaran/gridpath/cmd/gridpath@latest
package gridpath
