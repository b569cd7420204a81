package carve

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/disjoint"
	"github.com/katalvlaran/labyrinth/grid"
)

// kruskal implements Kruskal.
//
// Steps:
//  1. Build a DisjointSet over the Height()·Width() logical cells, indexed
//     by grid.CellIndex ((row/2)·width + col/2), which is collision-free for
//     any aspect ratio.
//  2. Collect every carvable joint with g.Walls() and shuffle them.
//  3. For each joint: if its two cells are in different sets, union them and
//     erase the joint; otherwise skip it (erasing would close a cycle).
//
// Complexity: O(E·α(V)) with E ≈ 2·V joints. Memory: O(V + E).
func kruskal(g *grid.Grid, r *rand.Rand) (int, error) {
	sets, err := disjoint.New(g.Height() * g.Width())
	if err != nil {
		return 0, err
	}
	walls := g.Walls()
	r.Shuffle(len(walls), func(i, j int) {
		walls[i], walls[j] = walls[j], walls[i]
	})

	carved := 0
	for _, w := range walls {
		a, b := g.CellIndex(w.A), g.CellIndex(w.B)
		joined, err := sets.Connected(a, b)
		if err != nil {
			return carved, err
		}
		if joined {
			continue
		}
		if err = sets.Union(a, b); err != nil {
			return carved, err
		}
		g.EraseWall(w.Pos)
		carved++
	}

	return carved, nil
}
