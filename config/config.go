package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gridpath/gridgraph"
	"github.com/katalvlaran/gridpath/pathfind"
)

var (
	// ErrInvalid wraps every validation failure.
	ErrInvalid = errors.New("config: invalid configuration")

	// ErrDecode wraps YAML syntax and unknown-key errors.
	ErrDecode = errors.New("config: cannot decode")
)

// Defaults used by Default.
const (
	DefaultRows    = 20
	DefaultColumns = 30
	DefaultTick    = 20 * time.Millisecond
	DefaultSeed    = 1
)

// Config is the root of a gridpath configuration file.
type Config struct {
	Grid   GridConfig   `yaml:"grid"`
	Search SearchConfig `yaml:"search"`
	Replay ReplayConfig `yaml:"replay"`
	Log    LogConfig    `yaml:"log"`
}

// GridConfig describes the grid to build.
type GridConfig struct {
	Rows             int               `yaml:"rows" validate:"gte=1,lte=1024"`
	Columns          int               `yaml:"columns" validate:"gte=1,lte=1024"`
	Start            gridgraph.Coord   `yaml:"start"`
	End              gridgraph.Coord   `yaml:"end"`
	ExpensivePercent int               `yaml:"expensive_percent" validate:"gte=0,lte=100"`
	Seed             int64             `yaml:"seed"`
	Weights          [][]int           `yaml:"weights,omitempty" validate:"omitempty,dive,min=1,dive,gte=1"`
	Walls            []gridgraph.Coord `yaml:"walls,omitempty"`
}

// SearchConfig selects the algorithm.
type SearchConfig struct {
	Algorithm       string `yaml:"algorithm" validate:"oneof=bfs dijkstra astar greedy"`
	GreedyReference string `yaml:"greedy_reference" validate:"oneof=current goal"`
}

// ReplayConfig controls animation pacing.
type ReplayConfig struct {
	Tick Duration `yaml:"tick" validate:"gte=0"`
}

// LogConfig controls the process logger.
type LogConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=text json"`
}

// Default returns the built-in configuration: a 20×30 grid corner to corner,
// 20% expensive terrain, A*, a 20ms replay tick and info-level text logs.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows:             DefaultRows,
			Columns:          DefaultColumns,
			Start:            gridgraph.Coord{Row: 0, Column: 0},
			End:              gridgraph.Coord{Row: DefaultRows - 1, Column: DefaultColumns - 1},
			ExpensivePercent: gridgraph.DefaultExpensivePercent,
			Seed:             DefaultSeed,
		},
		Search: SearchConfig{
			Algorithm:       pathfind.AlgoAStar.String(),
			GreedyReference: pathfind.ReferenceCurrent.String(),
		},
		Replay: ReplayConfig{Tick: Duration(DefaultTick)},
		Log:    LogConfig{Level: "info", Format: "text"},
	}
}

// Load reads and parses the file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	return Parse(data)
}

// unsetEnd stands in for grid.end while decoding so that Parse can tell an
// absent key from an explicit one.
var unsetEnd = gridgraph.Coord{Row: -1, Column: -1}

// Parse decodes data over Default and validates the result.
// Empty input yields Default. Explicit weights override rows and columns,
// and an absent grid.end becomes the bottom-right corner of the grid.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Grid.End = unsetEnd
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}
	if n := len(cfg.Grid.Weights); n > 0 {
		cfg.Grid.Rows = n
		cfg.Grid.Columns = len(cfg.Grid.Weights[0])
	}
	if cfg.Grid.End == unsetEnd {
		cfg.Grid.End = gridgraph.Coord{Row: cfg.Grid.Rows - 1, Column: cfg.Grid.Columns - 1}
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks field tags and grid-level rules.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}

	return nil
}

// Algorithm returns the configured search algorithm.
func (c Config) Algorithm() (pathfind.Algorithm, error) {
	return pathfind.ParseAlgorithm(c.Search.Algorithm)
}

// GreedyReference returns the configured Greedy reference point.
func (c Config) GreedyReference() (pathfind.GreedyReference, error) {
	return pathfind.ParseGreedyReference(c.Search.GreedyReference)
}

// BaseWeights returns the configured terrain before scattering and walls: a
// copy of grid.weights, or a uniform matrix of gridgraph.WeightDefault.
func (c Config) BaseWeights() [][]int {
	out := make([][]int, c.Grid.Rows)
	for r := range out {
		out[r] = make([]int, c.Grid.Columns)
		for col := range out[r] {
			if r < len(c.Grid.Weights) && col < len(c.Grid.Weights[r]) {
				out[r][col] = c.Grid.Weights[r][col]
			} else {
				out[r][col] = gridgraph.WeightDefault
			}
		}
	}

	return out
}

// BuildGrid constructs the configured grid: explicit weights when present,
// otherwise a uniform grid, then scattered terrain, then walls at
// gridgraph.WeightExpensive.
func (c Config) BuildGrid() (*gridgraph.Grid, error) {
	gc := c.Grid
	opts := []gridgraph.Option{
		gridgraph.WithStart(gc.Start),
		gridgraph.WithEnd(gc.End),
		gridgraph.WithExpensiveArea(gc.ExpensivePercent, gc.Seed),
	}

	var (
		g   *gridgraph.Grid
		err error
	)
	if len(gc.Weights) > 0 {
		g, err = gridgraph.From2D(gc.Weights, opts...)
	} else {
		g, err = gridgraph.NewGrid(gc.Rows, gc.Columns, opts...)
	}
	if err != nil {
		return nil, fmt.Errorf("config: build grid: %w", err)
	}
	for _, w := range gc.Walls {
		if err = g.SetWeight(w, gridgraph.WeightExpensive); err != nil {
			return nil, fmt.Errorf("config: wall: %w", err)
		}
	}

	return g, nil
}
