package gridgraph

import (
	"fmt"
	"math"
)

// Well-known tile weights.
const (
	// WeightDefault is the cost of entering an ordinary tile.
	WeightDefault = 1
	// WeightExpensive is the cost of entering rough terrain.
	WeightExpensive = 50
	// WeightInfinity is the "unreachable cost so far" sentinel.
	WeightInfinity = math.MaxInt
)

// DefaultExpensivePercent is the share of tiles ScatterExpensive marks when a
// host does not pick its own value.
const DefaultExpensivePercent = 20

// Coord addresses a tile by row and column.
type Coord struct {
	Row    int `yaml:"row" json:"row"`
	Column int `yaml:"column" json:"column"`
}

// String renders the coordinate as "(row,column)".
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Column)
}

// Vec2 is a 2D location used only for geometric heuristics.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }

// Magnitude returns the Euclidean length of v.
func (v Vec2) Magnitude() float64 { return math.Hypot(v.X, v.Y) }

// Tile is one grid position.
//
// Row, Column and Weight are static after construction (Weight may be changed
// between searches). Cost and Previous are per-search state: Previous links
// form a tree rooted at the search start.
type Tile struct {
	Row    int
	Column int
	Weight int

	Cost     int
	Previous *Tile

	location Vec2
}

// newTile builds a tile at (row, column); its location is (x=column, y=row).
func newTile(row, column, weight int) *Tile {
	return &Tile{
		Row:      row,
		Column:   column,
		Weight:   weight,
		location: Vec2{X: float64(column), Y: float64(row)},
	}
}

// Coord returns the tile's grid coordinate.
func (t *Tile) Coord() Coord { return Coord{Row: t.Row, Column: t.Column} }

// Location returns the tile's 2D position.
func (t *Tile) Location() Vec2 { return t.location }

// String renders the tile as "Tile (row,column)".
func (t *Tile) String() string {
	return fmt.Sprintf("Tile (%d,%d)", t.Row, t.Column)
}

// Grid is a fixed-size rectangular collection of tiles.
// Rows and Columns never change after construction.
type Grid struct {
	Rows    int
	Columns int
	Tiles   []*Tile

	// Start and End are the designated search endpoints. They may change
	// between searches but not during one.
	Start Coord
	End   Coord
}

// GridOptions holds construction parameters.
type GridOptions struct {
	// DefaultWeight is assigned to every tile before terrain scattering.
	DefaultWeight int
	// Start and End seed Grid.Start and Grid.End.
	Start, End Coord
	// ExpensivePercent, if > 0, marks that share of tiles as WeightExpensive.
	ExpensivePercent int
	// Seed drives the terrain RNG; 0 selects a fixed default seed.
	Seed int64

	err error
}

// Option configures grid construction.
type Option func(*GridOptions)

// DefaultGridOptions returns GridOptions with DefaultWeight=WeightDefault,
// Start=End=(0,0) and no expensive terrain.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		DefaultWeight: WeightDefault,
	}
}

// WithDefaultWeight sets the weight every tile starts with.
// w < 1 is recorded and surfaced as ErrOptionViolation.
func WithDefaultWeight(w int) Option {
	return func(o *GridOptions) {
		if w < 1 {
			o.err = fmt.Errorf("%w: default weight %d < 1", ErrOptionViolation, w)
			return
		}
		o.DefaultWeight = w
	}
}

// WithStart sets the start coordinate.
func WithStart(c Coord) Option {
	return func(o *GridOptions) { o.Start = c }
}

// WithEnd sets the end coordinate.
func WithEnd(c Coord) Option {
	return func(o *GridOptions) { o.End = c }
}

// WithExpensiveArea scatters WeightExpensive over roughly percent% of tiles
// using a deterministic RNG built from seed.
// percent outside [0,100] is recorded and surfaced as ErrOptionViolation.
func WithExpensiveArea(percent int, seed int64) Option {
	return func(o *GridOptions) {
		if percent < 0 || percent > 100 {
			o.err = fmt.Errorf("%w: expensive percent %d not in [0,100]", ErrOptionViolation, percent)
			return
		}
		o.ExpensivePercent = percent
		o.Seed = seed
	}
}
