package carve

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/grid"
)

// carver is the common shape of the three algorithms once options are resolved.
type carver func(g *grid.Grid, r *rand.Rand) (int, error)

var carvers = map[Method]carver{
	MethodDepthFirst: depthFirst,
	MethodKruskal:    kruskal,
	MethodBinaryTree: binaryTree,
}

// Compute runs the generator selected by method on g.
//
//   - MethodDepthFirst: DepthFirst.
//   - MethodKruskal:    Kruskal.
//   - MethodBinaryTree: BinaryTree.
//   - otherwise:        ErrUnknownMethod.
//
// g must be freshly built by grid.New; it is carved in place.
func Compute(g *grid.Grid, method Method, opts ...Option) (Stats, error) {
	fn, ok := carvers[method]
	if !ok {
		return Stats{}, fmt.Errorf("%w: %q", ErrUnknownMethod, method)
	}
	if g == nil {
		return Stats{}, ErrNilGrid
	}
	o := buildOptions(opts)

	start := time.Now()
	carved, err := fn(g, o.Rand)
	stats := Stats{Method: method, Carved: carved, Seed: o.Seed, Elapsed: time.Since(start)}
	if err != nil {
		return stats, fmt.Errorf("carve: %s: %w", method, err)
	}
	klog.V(2).Infof("carve: %dx%d %s", g.Height(), g.Width(), stats)

	return stats, nil
}

// Generate builds a height × width grid and carves it with method.
func Generate(height, width int, method Method, opts ...Option) (*grid.Grid, Stats, error) {
	g, err := grid.New(height, width)
	if err != nil {
		return nil, Stats{}, err
	}
	stats, err := Compute(g, method, opts...)
	if err != nil {
		return nil, stats, err
	}

	return g, stats, nil
}

// DepthFirst carves g with the randomized depth-first algorithm and returns
// the number of joints erased.
func DepthFirst(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	return depthFirst(g, buildOptions(opts).Rand)
}

// Kruskal carves g with the randomized Kruskal algorithm and returns the
// number of joints erased.
func Kruskal(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	return kruskal(g, buildOptions(opts).Rand)
}

// BinaryTree carves g with the binary-tree algorithm and returns the number
// of joints erased.
func BinaryTree(g *grid.Grid, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrNilGrid
	}

	return binaryTree(g, buildOptions(opts).Rand)
}
