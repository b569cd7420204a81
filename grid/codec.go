package grid

import (
	"fmt"
	"strings"
)

// Symbols maps each Cell state to the single rune used in the text form.
type Symbols struct {
	Wall, Open, PathMark, Start, Finish rune
}

// Emoji is the default symbol set.
var Emoji = Symbols{
	Wall:     '🔳',
	Open:     '⬛',
	PathMark: '⬜',
	Start:    '🟩',
	Finish:   '🛑',
}

// ASCII is a symbol set for terminals without emoji support.
var ASCII = Symbols{
	Wall:     '#',
	Open:     ' ',
	PathMark: '.',
	Start:    'S',
	Finish:   'F',
}

// Symbol returns the rune for c, or '?' for an unknown state.
func (s Symbols) Symbol(c Cell) rune {
	switch c {
	case Wall:
		return s.Wall
	case Open:
		return s.Open
	case PathMark:
		return s.PathMark
	case Start:
		return s.Start
	case Finish:
		return s.Finish
	}

	return '?'
}

// Cell returns the state encoded by r.
func (s Symbols) Cell(r rune) (Cell, bool) {
	switch r {
	case s.Wall:
		return Wall, true
	case s.Open:
		return Open, true
	case s.PathMark:
		return PathMark, true
	case s.Start:
		return Start, true
	case s.Finish:
		return Finish, true
	}

	return Wall, false
}

// Encode renders g as lines joined by "\n", one rune per cell, without a
// trailing newline.
func (s Symbols) Encode(g *Grid) string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols*4 + 1))
	for r, row := range g.table {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, c := range row {
			sb.WriteRune(s.Symbol(c))
		}
	}

	return sb.String()
}

// Decode parses text produced by Encode. One trailing newline is tolerated,
// and "\r\n" line endings are accepted.
// Returns ErrEmptyInput for empty text, ErrNonRectangular when line lengths
// (in runes) differ, ErrUnknownSymbol for a rune outside the set.
func (s Symbols) Decode(text string) (*Grid, error) {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyInput
	}
	lines := strings.Split(text, "\n")
	table := make([][]Cell, len(lines))
	width := -1
	for r, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		row := make([]Cell, 0, len(line))
		col := 0
		for _, ch := range line {
			c, ok := s.Cell(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at line %d column %d", ErrUnknownSymbol, ch, r+1, col+1)
			}
			row = append(row, c)
			col++
		}
		if width < 0 {
			width = len(row)
		} else if len(row) != width {
			return nil, fmt.Errorf("%w: line %d has %d symbols, want %d", ErrNonRectangular, r+1, len(row), width)
		}
		table[r] = row
	}
	if width == 0 {
		return nil, ErrEmptyInput
	}

	return &Grid{table: table, rows: len(table), cols: width}, nil
}

// Parse decodes text written with the Emoji symbol set.
func Parse(text string) (*Grid, error) {
	return Emoji.Decode(text)
}

// ParseAny decodes text written with either the Emoji or the ASCII set.
// When neither set matches, the error reported is the one of the set the
// first rune belongs to (Emoji if it belongs to neither).
func ParseAny(text string) (*Grid, error) {
	g, err := Emoji.Decode(text)
	if err == nil {
		return g, nil
	}
	g2, errASCII := ASCII.Decode(text)
	if errASCII == nil {
		return g2, nil
	}
	for _, r := range text {
		if _, ok := ASCII.Cell(r); ok {
			return nil, errASCII
		}
		break
	}

	return nil, err
}

// String renders g with the Emoji symbol set.
func (g *Grid) String() string {
	return Emoji.Encode(g)
}

// MarshalText implements encoding.TextMarshaler using the Emoji set.
func (g *Grid) MarshalText() ([]byte, error) {
	return []byte(Emoji.Encode(g)), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using the Emoji set.
func (g *Grid) UnmarshalText(text []byte) error {
	parsed, err := Emoji.Decode(string(text))
	if err != nil {
		return err
	}
	*g = *parsed

	return nil
}
