package disjoint

import "fmt"

// New constructs a DisjointSet of count elements, each in its own set.
// Returns ErrNegativeCount if count < 0.
// Complexity: O(n).
func New(count int) (*DisjointSet, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: %d", ErrNegativeCount, count)
	}
	d := &DisjointSet{
		parent: make([]int, count),
		size:   make([]int, count),
		count:  count,
	}
	for i := range d.parent {
		d.parent[i] = i
		d.size[i] = 1
	}

	return d, nil
}

// Len returns the number of elements the set was built with.
func (d *DisjointSet) Len() int {
	return len(d.parent)
}

// Count returns the number of disjoint sets remaining.
func (d *DisjointSet) Count() int {
	return d.count
}

// Find returns the root of the set containing x.
// Every element on the walked path is re-pointed directly at the root.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Find(x int) (int, error) {
	if err := d.check(x); err != nil {
		return -1, err
	}

	return d.find(x), nil
}

// Union merges the sets containing a and b. If they already share a root,
// Union does nothing; callers use that to detect that joining a and b would
// close a cycle.
// Complexity: O(α(n)) amortized.
func (d *DisjointSet) Union(a, b int) error {
	if err := d.check(a); err != nil {
		return err
	}
	if err := d.check(b); err != nil {
		return err
	}
	ra, rb := d.find(a), d.find(b)
	if ra == rb {
		return nil
	}
	// Attach the smaller tree under the larger one.
	if d.size[ra] > d.size[rb] {
		ra, rb = rb, ra
	}
	d.parent[ra] = rb
	d.size[rb] += d.size[ra]
	d.count--

	return nil
}

// Connected reports whether a and b belong to the same set.
func (d *DisjointSet) Connected(a, b int) (bool, error) {
	ra, err := d.Find(a)
	if err != nil {
		return false, err
	}
	rb, err := d.Find(b)
	if err != nil {
		return false, err
	}

	return ra == rb, nil
}

// SizeOf returns the number of elements in the set containing x.
func (d *DisjointSet) SizeOf(x int) (int, error) {
	root, err := d.Find(x)
	if err != nil {
		return 0, err
	}

	return d.size[root], nil
}

// find walks to the root, then compresses the path in a second pass.
func (d *DisjointSet) find(x int) int {
	root := x
	for d.parent[root] != root {
		root = d.parent[root]
	}
	for d.parent[x] != root {
		next := d.parent[x]
		d.parent[x] = root
		x = next
	}

	return root
}

func (d *DisjointSet) check(x int) error {
	if x < 0 || x >= len(d.parent) {
		return fmt.Errorf("%w: %d not in [0,%d)", ErrIndexOutOfBounds, x, len(d.parent))
	}

	return nil
}
