package grid

import (
	"errors"
	"fmt"
)

// Root error kinds. Detailed errors below wrap one of them, so callers can
// match the kind with errors.Is.
var (
	// ErrConfiguration indicates invalid construction arguments.
	ErrConfiguration = errors.New("grid: invalid configuration")
	// ErrParse indicates a malformed table or serialized grid.
	ErrParse = errors.New("grid: parse error")
	// ErrIndexOutOfBounds indicates a coordinate outside the table.
	ErrIndexOutOfBounds = errors.New("grid: index out of bounds")
)

var (
	// ErrNegativeDimension indicates a negative height or width.
	ErrNegativeDimension = fmt.Errorf("%w: negative dimension", ErrConfiguration)
	// ErrEmptyTable indicates FromTable was given no rows or no columns.
	ErrEmptyTable = fmt.Errorf("%w: table must have at least one row and one column", ErrConfiguration)
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrParse)
	// ErrUnknownSymbol indicates a cell value or text symbol outside the five known states.
	ErrUnknownSymbol = fmt.Errorf("%w: unknown symbol", ErrParse)
	// ErrEmptyInput indicates Parse was given no text.
	ErrEmptyInput = fmt.Errorf("%w: empty input", ErrParse)
)
