package grid

import "fmt"

// New builds an empty maze table for height × width logical cells: every
// position Wall except the odd/odd logical cells, which are Open.
// Returns ErrNegativeDimension if height or width is negative.
// Complexity: O(R×C) time and memory.
func New(height, width int) (*Grid, error) {
	if height < 0 || width < 0 {
		return nil, fmt.Errorf("%w: height=%d width=%d", ErrNegativeDimension, height, width)
	}
	rows, cols := 2*height+1, 2*width+1
	table := make([][]Cell, rows)
	for r := range table {
		table[r] = make([]Cell, cols) // zero value is Wall
	}
	g := &Grid{table: table, rows: rows, cols: cols}
	for i := 0; i < height; i++ {
		for j := 0; j < width; j++ {
			g.EraseWall(Point{Row: 2*i + 1, Col: 2*j + 1})
		}
	}

	return g, nil
}

// FromTable wraps a deep copy of an existing table, e.g. one loaded from
// storage. The odd/even layout is assumed, not checked.
// Returns ErrEmptyTable if rows is empty, ErrNonRectangular if row lengths
// differ, ErrUnknownSymbol if a value is not a known Cell.
func FromTable(rows [][]Cell) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyTable
	}
	h, w := len(rows), len(rows[0])
	table := make([][]Cell, h)
	for r, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, r, len(row), w)
		}
		for c, v := range row {
			if !v.Valid() {
				return nil, fmt.Errorf("%w: %v at (%d,%d)", ErrUnknownSymbol, v, r, c)
			}
		}
		table[r] = make([]Cell, w)
		copy(table[r], row)
	}

	return &Grid{table: table, rows: h, cols: w}, nil
}

// Rows returns the number of table rows (2·Height()+1 for generated grids).
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of table columns (2·Width()+1 for generated grids).
func (g *Grid) Cols() int { return g.cols }

// Height returns the number of logical cell rows.
func (g *Grid) Height() int { return (g.rows - 1) / 2 }

// Width returns the number of logical cell columns.
func (g *Grid) Width() int { return (g.cols - 1) / 2 }

// InBounds reports whether p lies within the table.
func (g *Grid) InBounds(p Point) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// IsLogical reports whether p is a logical cell position (odd row, odd column).
func (g *Grid) IsLogical(p Point) bool {
	return g.InBounds(p) && p.Row%2 == 1 && p.Col%2 == 1
}

// CellIndex maps a logical cell to its row-major index among the
// Height()×Width() logical cells: (row/2)·Width() + col/2.
func (g *Grid) CellIndex(p Point) int {
	return (p.Row/2)*g.Width() + p.Col/2
}

// CellAt converts a logical index produced by CellIndex back to its position.
func (g *Grid) CellAt(idx int) Point {
	w := g.Width()
	if w == 0 {
		return Point{Row: 1, Col: 1}
	}

	return Point{Row: 2*(idx/w) + 1, Col: 2*(idx%w) + 1}
}

// At returns the state at p.
// Returns ErrIndexOutOfBounds if p is outside the table.
func (g *Grid) At(p Point) (Cell, error) {
	if !g.InBounds(p) {
		return Wall, fmt.Errorf("%w: %v in %dx%d table", ErrIndexOutOfBounds, p, g.rows, g.cols)
	}

	return g.table[p.Row][p.Col], nil
}

// Set writes c at p.
// Returns ErrIndexOutOfBounds if p is outside the table, ErrUnknownSymbol if
// c is not a known state.
func (g *Grid) Set(p Point, c Cell) error {
	if !g.InBounds(p) {
		return fmt.Errorf("%w: %v in %dx%d table", ErrIndexOutOfBounds, p, g.rows, g.cols)
	}
	if !c.Valid() {
		return fmt.Errorf("%w: %v", ErrUnknownSymbol, c)
	}
	g.table[p.Row][p.Col] = c

	return nil
}

// EraseWall carves p to Open. Coordinates are the caller's responsibility.
func (g *Grid) EraseWall(p Point) { g.table[p.Row][p.Col] = Open }

// MarkCell marks p as part of a route.
func (g *Grid) MarkCell(p Point) { g.table[p.Row][p.Col] = PathMark }

// UnmarkCell clears a route mark at p back to Open.
func (g *Grid) UnmarkCell(p Point) { g.table[p.Row][p.Col] = Open }

// MarkStart tags p as the route start.
func (g *Grid) MarkStart(p Point) { g.table[p.Row][p.Col] = Start }

// MarkFinish tags p as the route finish.
func (g *Grid) MarkFinish(p Point) { g.table[p.Row][p.Col] = Finish }

// ClearMarks turns every PathMark, Start and Finish back into Open.
func (g *Grid) ClearMarks() {
	for _, row := range g.table {
		for c, v := range row {
			if v == PathMark || v == Start || v == Finish {
				row[c] = Open
			}
		}
	}
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	table := make([][]Cell, g.rows)
	for r := range g.table {
		table[r] = make([]Cell, g.cols)
		copy(table[r], g.table[r])
	}

	return &Grid{table: table, rows: g.rows, cols: g.cols}
}

// Equal reports whether g and other have identical dimensions and states.
func (g *Grid) Equal(other *Grid) bool {
	if other == nil || g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for r := range g.table {
		for c := range g.table[r] {
			if g.table[r][c] != other.table[r][c] {
				return false
			}
		}
	}

	return true
}

// Table returns a deep copy of the underlying table.
func (g *Grid) Table() [][]Cell {
	return g.Clone().table
}
