package config

import (
	"github.com/go-playground/validator/v10"

	"github.com/katalvlaran/gridpath/gridgraph"
)

// validate is shared by every Config; it carries the grid-level rules.
var validate *validator.Validate

func init() {
	validate = validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterStructValidation(validateGrid, GridConfig{})
}

// validateGrid reports endpoints or walls outside the grid and ragged weights.
func validateGrid(sl validator.StructLevel) {
	gc := sl.Current().Interface().(GridConfig)

	inside := func(c gridgraph.Coord) bool {
		return c.Row >= 0 && c.Row < gc.Rows && c.Column >= 0 && c.Column < gc.Columns
	}
	if !inside(gc.Start) {
		sl.ReportError(gc.Start, "Start", "start", "inside_grid", "")
	}
	if !inside(gc.End) {
		sl.ReportError(gc.End, "End", "end", "inside_grid", "")
	}
	for _, w := range gc.Walls {
		if !inside(w) {
			sl.ReportError(gc.Walls, "Walls", "walls", "inside_grid", w.String())
			break
		}
	}
	for _, row := range gc.Weights {
		if len(row) != gc.Columns {
			sl.ReportError(gc.Weights, "Weights", "weights", "rectangular", "")
			break
		}
	}
}
