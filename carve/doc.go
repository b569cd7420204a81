// Package carve turns a freshly built grid.Grid into a perfect maze (a
// spanning tree over its logical cells) with one of three randomized
// algorithms.
//
// Algorithms Provided
//
//   - DepthFirst(g, opts...)
//
//   - Strategy: iterative depth-first search from the top-left cell (1,1)
//     with an explicit stack. Each frame carries the cell to visit and the
//     joint wall that leads into it. A popped frame whose cell was already
//     visited is dropped (the cell was pushed from several directions);
//     otherwise the joint is erased and the cell's remaining walls are
//     shuffled and pushed.
//
//   - Texture: long winding corridors, few dead ends.
//
//   - Kruskal(g, opts...)
//
//   - Strategy: enumerate every carvable joint, shuffle, and erase a joint
//     only if its two cells are still in different sets of a
//     disjoint.DisjointSet, then union them. Joints whose cells are
//     already connected are skipped, since erasing them would close a cycle.
//
//   - Texture: many short dead ends, uniform edge randomness.
//
//   - BinaryTree(g, opts...)
//
//   - Strategy: visit cells in row-major order and erase one random wall
//     leading up or left, if any. Every carve strictly decreases a
//     coordinate, so no cycle can form.
//
//   - Texture: a strong diagonal bias; the top row and left column are
//     straight corridors.
//
// All three guarantee that a fresh h×w grid ends with exactly h·w−1 carved
// joints and a single connected component.
//
// Complexity:
//
//   - DepthFirst: O(h·w) time and memory.
//   - Kruskal:    O(h·w·α(h·w)) time, O(h·w) memory.
//   - BinaryTree: O(h·w) time and memory.
//
// Randomness: every generator draws from the *rand.Rand given by WithRand or
// WithSeed; without either, a source seeded from the clock is used and its
// seed is reported in Stats.
//
// Errors:
//
//   - ErrNilGrid:       a nil grid was passed.
//   - ErrUnknownMethod: Compute or ParseMethod got an unsupported method.
package carve
