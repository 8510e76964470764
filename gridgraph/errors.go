package gridgraph

import "errors"

var (
	// ErrEmptyGrid indicates the grid would have no rows or no columns.
	ErrEmptyGrid = errors.New("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridgraph: all rows must have the same length")
	// ErrBadWeight indicates a traversal weight below 1.
	ErrBadWeight = errors.New("gridgraph: weight must be positive")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = errors.New("gridgraph: coordinate out of bounds")
	// ErrOptionViolation indicates an invalid functional option.
	ErrOptionViolation = errors.New("gridgraph: invalid option supplied")
)
