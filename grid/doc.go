// Package grid holds the rectangular cell table every maze generator and the
// path finder operate on.
//
// What:
//
//   - Grid wraps a [][]Cell table of 2·height+1 rows and 2·width+1 columns
//     for a logical maze of height × width rooms.
//   - Logical cells sit at odd/odd positions. Every other position is either
//     permanent border Wall or a joint Wall between two logical cells.
//     Carving a joint (EraseWall) connects its two cells.
//   - Neighbor queries (AdjacentWalls, AdjacentCells), enumeration (Cells,
//     Walls) and route marks (MarkCell, MarkStart, MarkFinish).
//   - A line-oriented text form, one rune per cell (String, Parse, Symbols).
//   - Connectivity analysis of open positions (Components).
//
// Why:
//
//   - Generators carve in place and never allocate a second table, so all
//     mutation flows through one owned buffer with checked accessors.
//
// Complexity:
//
//   - New, FromTable, Parse, String, Cells, Walls, Components: O(R×C).
//   - AdjacentWalls, AdjacentCells, IsCellEmpty, marks: O(1).
//
// Errors:
//
//   - ErrConfiguration:    invalid construction arguments (negative size, no table).
//   - ErrParse:            malformed table or text (ragged rows, unknown symbol).
//   - ErrIndexOutOfBounds: coordinate outside the table in a checked accessor.
//
// The border is always treated as closed: no neighbor query wraps around or
// returns a position outside the table.
package grid
