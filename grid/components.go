package grid

// Components finds the connected regions of non-Wall positions under
// 4-connectivity. Components are discovered in row-major order of their
// first position; positions inside a component are in BFS order.
//
// Route marks (PathMark, Start, Finish) count as passable, so a marked grid
// reports the same components as its unmarked copy.
//
// Time:   O(R×C).
// Memory: O(R×C) for seen flags and output.
func (g *Grid) Components() [][]Point {
	seen := make([]bool, g.rows*g.cols)
	index := func(p Point) int { return p.Row*g.cols + p.Col }
	var comps [][]Point

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p0 := Point{Row: r, Col: c}
			if g.table[r][c] == Wall || seen[index(p0)] {
				continue
			}
			queue := []Point{p0}
			seen[index(p0)] = true
			for qi := 0; qi < len(queue); qi++ {
				u := queue[qi]
				for _, d := range directions {
					v := u.Offset(d[0], d[1])
					if !g.InBounds(v) || g.table[v.Row][v.Col] == Wall || seen[index(v)] {
						continue
					}
					seen[index(v)] = true
					queue = append(queue, v)
				}
			}
			comps = append(comps, queue)
		}
	}

	return comps
}

// ErasedJoints counts interior joint positions (exactly one even coordinate)
// that are no longer Wall. A spanning maze of h×w cells has h·w−1.
func (g *Grid) ErasedJoints() int {
	n := 0
	for i := 1; i < g.rows-1; i++ {
		for j := 1; j < g.cols-1; j++ {
			if (i+j)%2 == 1 && g.table[i][j] != Wall {
				n++
			}
		}
	}

	return n
}

// IsPerfect reports whether the logical cells form a spanning tree: one
// connected component and exactly Height()·Width()−1 carved joints.
func (g *Grid) IsPerfect() bool {
	cells := g.Height() * g.Width()
	if cells == 0 {
		return true
	}

	return len(g.Components()) == 1 && g.ErasedJoints() == cells-1
}
