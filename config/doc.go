// Package config loads gridpath settings from YAML.
//
// A file only needs the keys it changes; everything else keeps the value from
// Default. Unknown keys are rejected. After decoding, the whole tree is
// checked with go-playground/validator tags plus grid-level rules: start, end
// and every wall inside the grid, weights rectangular.
//
// Example file:
//
//	grid:
//	  rows: 12
//	  columns: 20
//	  start: {row: 0, column: 0}
//	  end:   {row: 11, column: 19}
//	  expensive_percent: 20
//	  seed: 42
//	  walls:
//	    - {row: 5, column: 10}
//	search:
//	  algorithm: astar
//	  greedy_reference: current
//	replay:
//	  tick: 20ms
//	log:
//	  level: info
//	  format: text
//
// When grid.weights is present its shape overrides rows and columns.
package config
