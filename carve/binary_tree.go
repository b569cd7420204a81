package carve

import (
	"math/rand"

	"github.com/katalvlaran/labyrinth/grid"
)

// binaryTree implements BinaryTree. The cell list is taken once, before any
// carving, so erased joints are never visited as cells.
func binaryTree(g *grid.Grid, r *rand.Rand) (int, error) {
	carved := 0
	for _, cell := range g.Cells() {
		walls := g.AdjacentWalls(cell)
		candidates := walls[:0]
		for _, w := range walls {
			if w.Row < cell.Row || w.Col < cell.Col {
				candidates = append(candidates, w)
			}
		}
		if len(candidates) == 0 {
			continue
		}
		g.EraseWall(candidates[r.Intn(len(candidates))])
		carved++
	}

	return carved, nil
}
