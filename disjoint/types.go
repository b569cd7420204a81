package disjoint

import "errors"

// Sentinel errors for disjoint-set operations.
var (
	// ErrNegativeCount indicates New was asked for a negative number of elements.
	ErrNegativeCount = errors.New("disjoint: element count must be non-negative")

	// ErrIndexOutOfBounds indicates an element index outside [0, Len()).
	ErrIndexOutOfBounds = errors.New("disjoint: index out of bounds")
)

// DisjointSet tracks a partition of the elements 0..n-1.
//
// parent[x] == x marks x as a root. size is only meaningful on roots and
// holds the number of elements in that root's set.
type DisjointSet struct {
	parent []int
	size   []int
	count  int // number of disjoint sets remaining
}
