package carve

import (
	"math/rand"

	"github.com/emirpasic/gods/stacks/arraystack"

	"github.com/katalvlaran/labyrinth/grid"
)

// frame is one pending visit: the cell to enter and the joint that leads
// into it from the cell that discovered it.
type frame struct {
	cell    grid.Point
	joint   grid.Point
	hasWall bool // false only for the start frame
}

// depthFirst implements DepthFirst.
//
// Steps:
//  1. Push the start frame for (1,1).
//  2. Pop a frame. If its cell was visited already, drop it.
//  3. Mark the cell visited and erase the carried joint.
//  4. Shuffle the cell's adjacent walls and push a frame for every wall whose
//     far cell is still unvisited.
//  5. Repeat until the stack is empty.
func depthFirst(g *grid.Grid, r *rand.Rand) (int, error) {
	if g.Height() == 0 || g.Width() == 0 {
		return 0, nil
	}
	visited := make([]bool, g.Height()*g.Width())
	stack := arraystack.New()
	stack.Push(frame{cell: grid.Point{Row: 1, Col: 1}})

	carved := 0
	for !stack.Empty() {
		top, _ := stack.Pop()
		f := top.(frame)
		idx := g.CellIndex(f.cell)
		if visited[idx] {
			continue
		}
		visited[idx] = true
		if f.hasWall {
			g.EraseWall(f.joint)
			carved++
		}

		walls := g.AdjacentWalls(f.cell)
		r.Shuffle(len(walls), func(i, j int) {
			walls[i], walls[j] = walls[j], walls[i]
		})
		for _, w := range walls {
			next := grid.Beyond(f.cell, w)
			if !visited[g.CellIndex(next)] {
				stack.Push(frame{cell: next, joint: w, hasWall: true})
			}
		}
	}

	return carved, nil
}
