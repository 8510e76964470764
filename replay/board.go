package replay

import "github.com/katalvlaran/gridpath/gridgraph"

// Board is an in-memory display: one CellState and one label per cell.
// It implements Sink; out-of-range coordinates are ignored.
type Board struct {
	rows    int
	columns int
	states  []CellState
	labels  []string
}

// NewBoard returns a board sized to g and reset to its baseline.
func NewBoard(g *gridgraph.Grid) *Board {
	b := &Board{}
	b.Reset(g)

	return b
}

// Reset restores the baseline derived from g's static weights, clears every
// label, and re-marks g.Start and g.End (skipped when out of range).
// It resizes the board when g's dimensions differ. Reset is idempotent.
// Complexity: O(R×C).
func (b *Board) Reset(g *gridgraph.Grid) {
	if b.rows != g.Rows || b.columns != g.Columns {
		b.rows, b.columns = g.Rows, g.Columns
		b.states = make([]CellState, g.Len())
		b.labels = make([]string, g.Len())
	}
	for i, t := range g.Tiles {
		b.states[i] = BaselineState(t.Weight)
		b.labels[i] = ""
	}
	b.Paint(g.Start, StateStart)
	b.Paint(g.End, StateEnd)
}

// Rows returns the board height.
func (b *Board) Rows() int { return b.rows }

// Columns returns the board width.
func (b *Board) Columns() int { return b.columns }

// Paint implements Sink.
func (b *Board) Paint(c gridgraph.Coord, s CellState) {
	if i, ok := b.index(c); ok {
		b.states[i] = s
	}
}

// Label implements Sink.
func (b *Board) Label(c gridgraph.Coord, text string) {
	if i, ok := b.index(c); ok {
		b.labels[i] = text
	}
}

// State returns the display state at c (StateDefault when out of range).
func (b *Board) State(c gridgraph.Coord) CellState {
	if i, ok := b.index(c); ok {
		return b.states[i]
	}

	return StateDefault
}

// Text returns the label at c ("" when out of range).
func (b *Board) Text(c gridgraph.Coord) string {
	if i, ok := b.index(c); ok {
		return b.labels[i]
	}

	return ""
}

// Count returns how many cells currently show state s.
func (b *Board) Count(s CellState) int {
	n := 0
	for _, st := range b.states {
		if st == s {
			n++
		}
	}

	return n
}

// Equal reports whether two boards show the same states and labels.
func (b *Board) Equal(o *Board) bool {
	if b.rows != o.rows || b.columns != o.columns {
		return false
	}
	for i := range b.states {
		if b.states[i] != o.states[i] || b.labels[i] != o.labels[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	cp := &Board{
		rows:    b.rows,
		columns: b.columns,
		states:  make([]CellState, len(b.states)),
		labels:  make([]string, len(b.labels)),
	}
	copy(cp.states, b.states)
	copy(cp.labels, b.labels)

	return cp
}

func (b *Board) index(c gridgraph.Coord) (int, bool) {
	if c.Row < 0 || c.Row >= b.rows || c.Column < 0 || c.Column >= b.columns {
		return 0, false
	}

	return c.Row*b.columns + c.Column, true
}
