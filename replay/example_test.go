package replay_test

import (
	"fmt"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/replay"
)

// ExamplePlayer records three events and replays them one tick at a time.
func ExamplePlayer() {
	g, _ := gridgraph.NewGrid(1, 3, gridgraph.WithEnd(gridgraph.Coord{Row: 0, Column: 2}))
	board := replay.NewBoard(g)

	log := replay.NewLog()
	log.Append(replay.Start(g.Start))
	log.Append(replay.End(g.End))
	log.Append(replay.Frontier(gridgraph.Coord{Row: 0, Column: 1}, 1))

	p := replay.NewPlayer(log)
	for tick := 1; p.Step(board); tick++ {
		e, _ := log.At(p.Position() - 1)
		fmt.Printf("tick %d: %v\n", tick, e)
	}
	fmt.Println("middle:", board.State(gridgraph.Coord{Row: 0, Column: 1}))
	// Output:
	// tick 1: start(0,0)
	// tick 2: end(0,2)
	// tick 3: frontier(0,1)=1
	// middle: frontier
}
