// Package solve finds and marks a route between two logical cells of a
// carved grid.Grid.
//
// The search is a backtracking depth-first walk driven by an explicit frame
// stack, so its depth is bounded by heap memory rather than the goroutine
// stack. Cells entered are marked grid.PathMark together with the joint
// stepped through; on a dead end both are reverted to grid.Open. When the
// finish is reached only the successful route remains marked.
//
// Key features:
//   - MarkPath(g, start, finish, opts...): mark a route in place.
//   - Result: explicit Found flag, the route as logical cells, visit count.
//   - WithRand(r): randomize neighbor order; the default is up, down, left, right.
//
// Complexity:
//
//   - Time:   O(V) where V = Height()·Width(), each cell is entered at most once.
//   - Memory: O(V) for the visited set and the frame stack.
//
// Errors:
//
//   - ErrNilGrid          if g is nil.
//   - ErrBlockedEndpoint  if start or finish is outside the table, not a
//     logical cell, or not Open.
//
// A disconnected start and finish is a normal outcome reported through
// Result.Found; Result.Err converts it to ErrPathNotFound for callers that
// prefer an error.
package solve
