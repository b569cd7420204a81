package grid

// AdjacentWalls returns the positions next to p (up, down, left, right)
// that are still Wall and lie strictly inside the table; the permanent
// border is never returned.
// Complexity: O(1).
func (g *Grid) AdjacentWalls(p Point) []Point {
	if !g.InBounds(p) {
		return nil
	}
	walls := make([]Point, 0, 4)
	if p.Row > 1 && g.table[p.Row-1][p.Col] == Wall {
		walls = append(walls, p.Offset(-1, 0))
	}
	if p.Row < g.rows-2 && g.table[p.Row+1][p.Col] == Wall {
		walls = append(walls, p.Offset(1, 0))
	}
	if p.Col > 1 && g.table[p.Row][p.Col-1] == Wall {
		walls = append(walls, p.Offset(0, -1))
	}
	if p.Col < g.cols-2 && g.table[p.Row][p.Col+1] == Wall {
		walls = append(walls, p.Offset(0, 1))
	}

	return walls
}

// AdjacentCells returns the logical cells two steps from p (up, down, left,
// right) that are Open and reachable through an Open joint, i.e. without
// crossing an uncarved wall.
// Complexity: O(1).
func (g *Grid) AdjacentCells(p Point) []Point {
	if !g.InBounds(p) {
		return nil
	}
	cells := make([]Point, 0, 4)
	for _, d := range directions {
		far := p.Offset(2*d[0], 2*d[1])
		if !g.InBounds(far) {
			continue
		}
		joint := p.Offset(d[0], d[1])
		if g.table[joint.Row][joint.Col] == Open && g.table[far.Row][far.Col] == Open {
			cells = append(cells, far)
		}
	}

	return cells
}

// Between returns the joint position separating two logical cells two steps
// apart in one axis.
func Between(a, b Point) Point {
	return Point{Row: (a.Row + b.Row) / 2, Col: (a.Col + b.Col) / 2}
}

// Beyond returns the logical cell on the far side of wall w as seen from p.
func Beyond(p, w Point) Point {
	return Point{Row: 2*w.Row - p.Row, Col: 2*w.Col - p.Col}
}

// Cells returns every interior Open position in row-major order.
// Complexity: O(R×C).
func (g *Grid) Cells() []Point {
	var cells []Point
	for i := 1; i < g.rows-1; i++ {
		for j := 1; j < g.cols-1; j++ {
			if g.table[i][j] == Open {
				cells = append(cells, Point{Row: i, Col: j})
			}
		}
	}

	return cells
}

// Walls returns every interior joint (odd row and even column, or even row
// and odd column) that is still Wall and separates two Open logical cells,
// in row-major order. Pillars (even/even) are never joints.
// Complexity: O(R×C).
func (g *Grid) Walls() []Joint {
	var walls []Joint
	for i := 1; i < g.rows-1; i++ {
		for j := 1; j < g.cols-1; j++ {
			if g.table[i][j] != Wall {
				continue
			}
			horizontal := i%2 == 1 && j%2 == 0
			vertical := i%2 == 0 && j%2 == 1
			if horizontal && g.table[i][j-1] == Open && g.table[i][j+1] == Open {
				walls = append(walls, Joint{
					A:   Point{Row: i, Col: j - 1},
					Pos: Point{Row: i, Col: j},
					B:   Point{Row: i, Col: j + 1},
				})
			}
			if vertical && g.table[i-1][j] == Open && g.table[i+1][j] == Open {
				walls = append(walls, Joint{
					A:   Point{Row: i - 1, Col: j},
					Pos: Point{Row: i, Col: j},
					B:   Point{Row: i + 1, Col: j},
				})
			}
		}
	}

	return walls
}

// IsCellEmpty reports whether p is inside the table and Open.
func (g *Grid) IsCellEmpty(p Point) bool {
	return g.InBounds(p) && g.table[p.Row][p.Col] == Open
}
