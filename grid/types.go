package grid

import "fmt"

// Cell is the state of one table position.
// Wall and Open are structural; PathMark, Start and Finish only annotate a
// drawn route.
type Cell uint8

const (
	// Wall is a border, an uncarved joint, or any blocked position.
	Wall Cell = iota
	// Open is a carved, traversable position.
	Open
	// PathMark is a position on a drawn route.
	PathMark
	// Start is the route's first endpoint.
	Start
	// Finish is the route's last endpoint.
	Finish
)

// String implements fmt.Stringer.
func (c Cell) String() string {
	switch c {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case PathMark:
		return "path"
	case Start:
		return "start"
	case Finish:
		return "finish"
	}

	return fmt.Sprintf("Cell(%d)", uint8(c))
}

// Valid reports whether c is one of the five known states.
func (c Cell) Valid() bool {
	return c <= Finish
}

// Point is a (row, column) position in the table.
type Point struct {
	Row, Col int
}

// Offset returns p moved by dr rows and dc columns.
func (p Point) Offset(dr, dc int) Point {
	return Point{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Joint identifies a carvable wall: A and B are the logical cells it
// separates (A is left of or above B) and Pos is the wall position to erase
// to connect them.
type Joint struct {
	A, Pos, B Point
}

// directions lists neighbor offsets in query order: up, down, left, right.
var directions = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Grid is a rectangular table of Cells. The table is owned by the Grid and
// only reachable through its methods.
type Grid struct {
	table      [][]Cell
	rows, cols int
}
