package replay

import (
	"errors"
	"strconv"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// ErrCancelled is returned by Player.Play after Cancel.
var ErrCancelled = errors.New("replay: cancelled")

// Kind tags an Event.
type Kind uint8

const (
	// KindStart marks the search start tile.
	KindStart Kind = iota
	// KindEnd marks the search end tile.
	KindEnd
	// KindVisited marks a tile the search expanded.
	KindVisited
	// KindFrontier marks a newly discovered tile, optionally with its cost.
	KindFrontier
	// KindPath marks an interior tile of the final path.
	KindPath
)

// String returns the lower-case kind name.
func (k Kind) String() string {
	switch k {
	case KindStart:
		return "start"
	case KindEnd:
		return "end"
	case KindVisited:
		return "visited"
	case KindFrontier:
		return "frontier"
	case KindPath:
		return "path"
	default:
		return "unknown"
	}
}

// Event is one immutable visualization instruction.
// Cost is meaningful only when HasCost is true (frontier events of cost-based
// searches).
type Event struct {
	Kind    Kind
	At      gridgraph.Coord
	Cost    int
	HasCost bool
}

// Start returns a start-mark event.
func Start(c gridgraph.Coord) Event { return Event{Kind: KindStart, At: c} }

// End returns an end-mark event.
func End(c gridgraph.Coord) Event { return Event{Kind: KindEnd, At: c} }

// Visited returns a visited-mark event.
func Visited(c gridgraph.Coord) Event { return Event{Kind: KindVisited, At: c} }

// Frontier returns a frontier-mark event carrying a cost snapshot.
func Frontier(c gridgraph.Coord, cost int) Event {
	return Event{Kind: KindFrontier, At: c, Cost: cost, HasCost: true}
}

// FrontierNoCost returns a frontier-mark event for searches that track no cost.
func FrontierNoCost(c gridgraph.Coord) Event { return Event{Kind: KindFrontier, At: c} }

// Path returns a path-mark event.
func Path(c gridgraph.Coord) Event { return Event{Kind: KindPath, At: c} }

// Label is the text a display shows for the event: the cost snapshot for
// frontier events that carry one ("∞" for WeightInfinity), otherwise "".
func (e Event) Label() string {
	if e.Kind != KindFrontier || !e.HasCost {
		return ""
	}
	if e.Cost == gridgraph.WeightInfinity {
		return "∞"
	}

	return strconv.Itoa(e.Cost)
}

// String renders the event as "kind(row,column)" with an optional "=cost".
func (e Event) String() string {
	s := e.Kind.String() + e.At.String()
	if l := e.Label(); l != "" {
		s += "=" + l
	}

	return s
}

// CellState is the display state of one cell.
type CellState uint8

const (
	// StateDefault is an ordinary tile at baseline.
	StateDefault CellState = iota
	// StateExpensive is a rough-terrain tile at baseline.
	StateExpensive
	// StateInfinity is an infinitely expensive tile at baseline.
	StateInfinity
	// StateStart marks the search start.
	StateStart
	// StateEnd marks the search end.
	StateEnd
	// StatePath marks a path tile.
	StatePath
	// StateVisited marks an expanded tile.
	StateVisited
	// StateFrontier marks a discovered tile.
	StateFrontier
)

// String returns the lower-case state name.
func (s CellState) String() string {
	switch s {
	case StateDefault:
		return "default"
	case StateExpensive:
		return "expensive"
	case StateInfinity:
		return "infinity"
	case StateStart:
		return "start"
	case StateEnd:
		return "end"
	case StatePath:
		return "path"
	case StateVisited:
		return "visited"
	case StateFrontier:
		return "frontier"
	default:
		return "unknown"
	}
}

// BaselineState maps a static weight to its resting display state.
// Weights at or above WeightExpensive (but below WeightInfinity) count as
// expensive.
func BaselineState(weight int) CellState {
	switch {
	case weight == gridgraph.WeightInfinity:
		return StateInfinity
	case weight >= gridgraph.WeightExpensive:
		return StateExpensive
	default:
		return StateDefault
	}
}

// Sink is a display that events are applied to.
type Sink interface {
	// Paint sets the display state of the cell at c.
	Paint(c gridgraph.Coord, s CellState)
	// Label sets the text shown on the cell at c; "" clears it.
	Label(c gridgraph.Coord, text string)
}
