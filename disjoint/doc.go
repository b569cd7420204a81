// Package disjoint provides a fixed-size disjoint-set (union-find) structure
// over integer elements 0..n-1.
//
// What:
//
//   - Every element starts in its own singleton set.
//   - Find resolves the representative (root) of an element and compresses
//     the path it walked, so later lookups are near-constant.
//   - Union merges two sets by size: the root of the smaller set is attached
//     under the root of the larger one, whose size accumulates.
//
// Why:
//
//   - Kruskal-style maze carving: erasing a wall between two cells that are
//     already connected would close a cycle. Union-find answers "already
//     connected?" in amortized O(α(n)).
//
// Complexity:
//
//   - New:   O(n) time and memory.
//   - Find:  O(α(n)) amortized.
//   - Union: O(α(n)) amortized.
//
// Errors:
//
//   - ErrNegativeCount:    New called with a negative element count.
//   - ErrIndexOutOfBounds: an element outside [0, n) was passed.
package disjoint
