package solve

import (
	"errors"
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

var (
	// ErrNilGrid is returned when MarkPath is handed a nil grid.
	ErrNilGrid = errors.New("solve: grid is nil")

	// ErrBlockedEndpoint indicates start or finish cannot be walked from.
	ErrBlockedEndpoint = errors.New("solve: endpoint is not an open cell")

	// ErrPathNotFound reports that start and finish are disconnected.
	// MarkPath itself never returns it; see Result.Err.
	ErrPathNotFound = errors.New("solve: path not found")
)

// Option configures optional behavior of MarkPath.
type Option func(*Options)

// Options holds configurable parameters for MarkPath.
type Options struct {
	// Rand, if non-nil, shuffles the neighbor order of every entered cell.
	// When nil the order is up, down, left, right.
	Rand *rand.Rand
}

// DefaultOptions returns Options with deterministic neighbor order.
func DefaultOptions() Options {
	return Options{Rand: nil}
}

// WithRand returns an Option that shuffles neighbor order with r.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		o.Rand = r
	}
}

// Result is the outcome of MarkPath.
type Result struct {
	// Found reports whether finish was reached from start.
	Found bool

	// Path lists the logical cells of the marked route, start first and
	// finish last. Empty when Found is false.
	Path []grid.Point

	// Visited counts distinct logical cells entered during the search.
	Visited int
}

// Len returns the number of cells on the route.
func (r *Result) Len() int { return len(r.Path) }

// Err returns ErrPathNotFound when no route was found and nil otherwise.
func (r *Result) Err() error {
	if r.Found {
		return nil
	}

	return ErrPathNotFound
}
