package gridgraph

import (
	"fmt"
	"iter"
)

// neighborOffsets lists the 4-connected moves as (dRow, dColumn) in the fixed
// enumeration order right, left, up, down.
var neighborOffsets = [4]Coord{
	{Row: 0, Column: 1},
	{Row: 0, Column: -1},
	{Row: -1, Column: 0},
	{Row: 1, Column: 0},
}

// NewGrid constructs a rows×columns grid where every tile has the configured
// default weight, then applies optional expensive terrain.
// Returns ErrEmptyGrid if rows < 1 or columns < 1, ErrOptionViolation for
// invalid options.
// Complexity: O(R×C) time and memory.
func NewGrid(rows, columns int, opts ...Option) (*Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if rows < 1 || columns < 1 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, rows, columns)
	}

	g := build(rows, columns, o)
	if o.ExpensivePercent > 0 {
		g.ScatterExpensive(rngFromSeed(o.Seed), o.ExpensivePercent)
	}

	return g, nil
}

// From2D constructs a grid from a non-empty rectangular weight matrix,
// weights[row][column]. The input is copied; later edits do not leak in.
// Terrain options (WithExpensiveArea) are scattered on top of the given weights.
// Returns ErrEmptyGrid, ErrNonRectangular or ErrBadWeight on invalid input.
// Complexity: O(R×C) time and memory.
func From2D(weights [][]int, opts ...Option) (*Grid, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if len(weights) == 0 || len(weights[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(weights), len(weights[0])
	for r, row := range weights {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
		for c, weight := range row {
			if weight < 1 {
				return nil, fmt.Errorf("%w: weight %d at (%d,%d)", ErrBadWeight, weight, r, c)
			}
		}
	}

	g := build(h, w, o)
	for r := 0; r < h; r++ {
		for c := 0; c < w; c++ {
			g.Tiles[g.index(r, c)].Weight = weights[r][c]
		}
	}
	if o.ExpensivePercent > 0 {
		g.ScatterExpensive(rngFromSeed(o.Seed), o.ExpensivePercent)
	}

	return g, nil
}

// buildOptions applies opts over the defaults and surfaces recorded errors.
func buildOptions(opts []Option) (GridOptions, error) {
	o := DefaultGridOptions()
	for _, opt := range opts {
		opt(&o)
	}

	return o, o.err
}

// build allocates every tile with o.DefaultWeight.
func build(rows, columns int, o GridOptions) *Grid {
	g := &Grid{
		Rows:    rows,
		Columns: columns,
		Tiles:   make([]*Tile, rows*columns),
		Start:   o.Start,
		End:     o.End,
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < columns; c++ {
			g.Tiles[g.index(r, c)] = newTile(r, c, o.DefaultWeight)
		}
	}

	return g
}

// InBounds reports whether (row, column) lies inside the grid.
// Complexity: O(1).
func (g *Grid) InBounds(row, column int) bool {
	return row >= 0 && row < g.Rows && column >= 0 && column < g.Columns
}

// TileAt returns the tile at (row, column), or nil if out of bounds.
// Complexity: O(1).
func (g *Grid) TileAt(row, column int) *Tile {
	if !g.InBounds(row, column) {
		return nil
	}

	return g.Tiles[g.index(row, column)]
}

// Tile returns the tile at c, or nil if out of bounds.
func (g *Grid) Tile(c Coord) *Tile {
	return g.TileAt(c.Row, c.Column)
}

// StartTile returns the tile at g.Start, or nil if Start is out of bounds.
func (g *Grid) StartTile() *Tile { return g.Tile(g.Start) }

// EndTile returns the tile at g.End, or nil if End is out of bounds.
func (g *Grid) EndTile() *Tile { return g.Tile(g.End) }

// Owns reports whether t is one of g's tiles (pointer identity).
func (g *Grid) Owns(t *Tile) bool {
	return t != nil && g.TileAt(t.Row, t.Column) == t
}

// Neighbors returns a lazy, restartable sequence of the in-grid tiles adjacent
// to t, in the order right, left, up, down.
// Complexity: O(1) per step; at most 4 tiles.
func (g *Grid) Neighbors(t *Tile) iter.Seq[*Tile] {
	return func(yield func(*Tile) bool) {
		for _, d := range neighborOffsets {
			n := g.TileAt(t.Row+d.Row, t.Column+d.Column)
			if n == nil {
				continue
			}
			if !yield(n) {
				return
			}
		}
	}
}

// SetWeight changes the weight of the tile at c.
// Returns ErrOutOfBounds or ErrBadWeight on invalid input.
func (g *Grid) SetWeight(c Coord, weight int) error {
	t := g.Tile(c)
	if t == nil {
		return fmt.Errorf("%w: %s", ErrOutOfBounds, c)
	}
	if weight < 1 {
		return fmt.Errorf("%w: %d", ErrBadWeight, weight)
	}
	t.Weight = weight

	return nil
}

// SetWeights overwrites every tile weight from weights[row][column].
// Returns ErrNonRectangular when the matrix does not match the grid's shape
// and ErrBadWeight for a weight below 1; the grid is unchanged on error.
// Complexity: O(R×C).
func (g *Grid) SetWeights(weights [][]int) error {
	if len(weights) != g.Rows {
		return fmt.Errorf("%w: got %d rows, want %d", ErrNonRectangular, len(weights), g.Rows)
	}
	for r, row := range weights {
		if len(row) != g.Columns {
			return fmt.Errorf("%w: row %d has %d columns, want %d", ErrNonRectangular, r, len(row), g.Columns)
		}
		for c, w := range row {
			if w < 1 {
				return fmt.Errorf("%w: %d at %s", ErrBadWeight, w, Coord{Row: r, Column: c})
			}
		}
	}
	for r, row := range weights {
		for c, w := range row {
			g.Tiles[g.index(r, c)].Weight = w
		}
	}

	return nil
}

// ResetSearchState clears per-search state: Cost = 0 and Previous = nil on
// every tile.
// Complexity: O(R×C).
func (g *Grid) ResetSearchState() {
	for _, t := range g.Tiles {
		t.Cost = 0
		t.Previous = nil
	}
}

// FillCost assigns cost to every tile; cost-based searches use it to start
// from WeightInfinity.
// Complexity: O(R×C).
func (g *Grid) FillCost(cost int) {
	for _, t := range g.Tiles {
		t.Cost = cost
	}
}

// Weights returns a copy of the weight matrix, weights[row][column].
// Complexity: O(R×C).
func (g *Grid) Weights() [][]int {
	out := make([][]int, g.Rows)
	for r := 0; r < g.Rows; r++ {
		out[r] = make([]int, g.Columns)
		for c := 0; c < g.Columns; c++ {
			out[r][c] = g.Tiles[g.index(r, c)].Weight
		}
	}

	return out
}

// Clone returns a deep copy of g, including per-search state. Previous links
// in the copy point at the copy's own tiles.
// Complexity: O(R×C) time and memory.
func (g *Grid) Clone() *Grid {
	cp := &Grid{
		Rows:    g.Rows,
		Columns: g.Columns,
		Tiles:   make([]*Tile, len(g.Tiles)),
		Start:   g.Start,
		End:     g.End,
	}
	// 1) Copy tile values.
	for i, t := range g.Tiles {
		nt := *t
		nt.Previous = nil
		cp.Tiles[i] = &nt
	}
	// 2) Re-point predecessor links into the copy.
	for i, t := range g.Tiles {
		if t.Previous != nil {
			cp.Tiles[i].Previous = cp.Tiles[g.index(t.Previous.Row, t.Previous.Column)]
		}
	}

	return cp
}

// Len returns the number of tiles.
func (g *Grid) Len() int { return len(g.Tiles) }

// index maps (row, column) to a row-major index: row*Columns + column.
// Complexity: O(1).
func (g *Grid) index(row, column int) int {
	return row*g.Columns + column
}

// Coordinate converts a row-major index back to a Coord.
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Columns, Column: idx % g.Columns}
}
