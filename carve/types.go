package carve

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"time"
)

// ErrNilGrid indicates a generator was handed a nil grid.
var ErrNilGrid = errors.New("carve: grid is nil")

// ErrUnknownMethod indicates an unsupported generation method name.
var ErrUnknownMethod = errors.New("carve: unknown method")

// Method names a generation algorithm.
type Method string

const (
	// MethodDepthFirst selects the randomized depth-first carver.
	MethodDepthFirst Method = "dfs"
	// MethodKruskal selects the randomized Kruskal carver.
	MethodKruskal Method = "kruskal"
	// MethodBinaryTree selects the binary-tree carver.
	MethodBinaryTree Method = "binary-tree"
)

// Methods lists the supported methods in menu order.
func Methods() []Method {
	return []Method{MethodDepthFirst, MethodKruskal, MethodBinaryTree}
}

// ParseMethod resolves a method name. It also accepts the interactive menu
// numbers "1", "2" and "3" and a few aliases; matching is case-insensitive.
func ParseMethod(s string) (Method, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "dfs", "depth-first", "depthfirst":
		return MethodDepthFirst, nil
	case "2", "kruskal":
		return MethodKruskal, nil
	case "3", "binary-tree", "binarytree", "binary":
		return MethodBinaryTree, nil
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
}

// Options configures a generator run.
type Options struct {
	// Rand is the random source every random choice is drawn from.
	Rand *rand.Rand

	// Seed is the seed Rand was built from, when known. It is reported in
	// Stats so a maze can be regenerated.
	Seed int64
}

// Option configures Options.
type Option func(*Options)

// WithRand returns an Option that draws random choices from r.
// A nil r has no effect.
func WithRand(r *rand.Rand) Option {
	return func(o *Options) {
		if r != nil {
			o.Rand = r
			o.Seed = 0
		}
	}
}

// WithSeed returns an Option that draws random choices from a new source
// seeded with seed.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Rand = rand.New(rand.NewSource(seed))
		o.Seed = seed
	}
}

// DefaultOptions returns Options with a source seeded from the clock.
func DefaultOptions() Options {
	seed := time.Now().UnixNano()

	return Options{
		Rand: rand.New(rand.NewSource(seed)),
		Seed: seed,
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	return o
}

// Stats reports what a generator run did.
type Stats struct {
	Method  Method
	Carved  int           // joints erased
	Seed    int64         // seed of the random source, 0 if a caller-supplied *rand.Rand was used
	Elapsed time.Duration // wall time of the carve
}

// String formats s for logs and the command line.
func (s Stats) String() string {
	return fmt.Sprintf("%s: carved %d walls with seed %d in %.03f seconds",
		s.Method, s.Carved, s.Seed, s.Elapsed.Seconds())
}
