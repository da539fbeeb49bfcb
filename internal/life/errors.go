package life

import "github.com/pkg/errors"

var (
	// ErrInvalidDimensions is returned when a grid is built with a
	// non-positive width or height.
	ErrInvalidDimensions = errors.New("invalid grid dimensions")
	// ErrOutOfBounds is returned when a mutator is given a coordinate outside
	// the grid.
	ErrOutOfBounds = errors.New("coordinate out of bounds")
)
