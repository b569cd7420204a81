package archive

import (
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
)

// Record is one archived maze.
type Record struct {
	ID        uuid.UUID    `json:"id"`
	Method    carve.Method `json:"method"`
	Height    int          `json:"height"`
	Width     int          `json:"width"`
	Seed      int64        `json:"seed"`
	CreatedAt time.Time    `json:"created_at"`
	Maze      string       `json:"maze"` // emoji encoding, see grid.Emoji
}

// NewRecord describes g as carved with stats. ID and CreatedAt are filled in
// by Store.Put.
func NewRecord(g *grid.Grid, stats carve.Stats) Record {
	return Record{
		Method: stats.Method,
		Height: g.Height(),
		Width:  g.Width(),
		Seed:   stats.Seed,
		Maze:   grid.Emoji.Encode(g),
	}
}

// Grid decodes the stored maze.
func (r Record) Grid() (*grid.Grid, error) {
	g, err := grid.Parse(r.Maze)
	if err != nil {
		return nil, errors.Wrapf(err, "archive: record %s", r.ID)
	}

	return g, nil
}
