package solve

import (
	"fmt"

	"github.com/emirpasic/gods/sets/hashset"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/grid"
)

// frame is one cell on the current route together with the candidates still
// to try from it.
type frame struct {
	cell  grid.Point
	joint grid.Point // joint stepped through to enter cell; unused for the start frame
	next  []grid.Point
	i     int
}

// walker encapsulates state during one MarkPath call.
type walker struct {
	g       *grid.Grid
	opts    Options
	visited *hashset.Set
	stack   []*frame
}

// MarkPath searches for a route from start to finish over Open logical cells
// of g and marks it in place: start becomes grid.Start, finish becomes
// grid.Finish, and every cell and joint in between becomes grid.PathMark.
//
// Start is marked before the search and finish after it, so when
// start == finish the single cell ends as grid.Finish and Path is [start].
// When the endpoints are disconnected both are still marked, no PathMark is
// left anywhere, and the returned Result has Found == false with a nil error.
//
// g is mutated; callers that need the unmarked maze should pass g.Clone().
func MarkPath(g *grid.Grid, start, finish grid.Point, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := checkEndpoint(g, "start", start); err != nil {
		return nil, err
	}
	if err := checkEndpoint(g, "finish", finish); err != nil {
		return nil, err
	}

	// 2. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}

	w := &walker{
		g:       g,
		opts:    o,
		visited: hashset.New(),
		stack:   make([]*frame, 0, g.Height()+g.Width()),
	}

	// 3. Walk
	g.MarkStart(start)
	found := w.walk(start, finish)
	g.MarkFinish(finish)

	// 4. Collect the route from the surviving frames
	res := &Result{Found: found, Visited: w.visited.Size()}
	if found {
		res.Path = make([]grid.Point, len(w.stack))
		for i, f := range w.stack {
			res.Path[i] = f.cell
		}
	}
	klog.V(3).Infof("solve: %s -> %s found=%v len=%d visited=%d",
		start, finish, res.Found, len(res.Path), res.Visited)

	return res, nil
}

// walk runs the backtracking search and reports whether finish was reached.
// On success the stack holds the route; otherwise it is empty.
func (w *walker) walk(start, finish grid.Point) bool {
	w.enter(&frame{cell: start})
	for len(w.stack) > 0 {
		top := w.stack[len(w.stack)-1]
		if top.cell == finish {
			return true
		}

		// Advance to the first candidate not yet visited.
		for top.i < len(top.next) && w.visited.Contains(top.next[top.i]) {
			top.i++
		}
		if top.i < len(top.next) {
			next := top.next[top.i]
			top.i++
			joint := grid.Between(top.cell, next)
			w.g.MarkCell(joint)
			w.g.MarkCell(next)
			w.enter(&frame{cell: next, joint: joint})

			continue
		}

		// Dead end: unmark and drop back to the parent.
		w.stack = w.stack[:len(w.stack)-1]
		if len(w.stack) > 0 {
			w.g.UnmarkCell(top.cell)
			w.g.UnmarkCell(top.joint)
		}
	}

	return false
}

// enter records f as visited, computes its candidates and pushes it.
func (w *walker) enter(f *frame) {
	w.visited.Add(f.cell)
	f.next = w.g.AdjacentCells(f.cell)
	if w.opts.Rand != nil {
		w.opts.Rand.Shuffle(len(f.next), func(i, j int) {
			f.next[i], f.next[j] = f.next[j], f.next[i]
		})
	}
	w.stack = append(w.stack, f)
}

func checkEndpoint(g *grid.Grid, name string, p grid.Point) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %s %s: %w", ErrBlockedEndpoint, name, p, grid.ErrIndexOutOfBounds)
	}
	if !g.IsLogical(p) || !g.IsCellEmpty(p) {
		return fmt.Errorf("%w: %s %s", ErrBlockedEndpoint, name, p)
	}

	return nil
}
