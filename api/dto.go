package api

import (
	"time"

	"github.com/katalvlaran/labyrinth/archive"
	"github.com/katalvlaran/labyrinth/grid"
)

// CreateRequest is the body of POST /mazes.
type CreateRequest struct {
	Height int    `json:"height" binding:"min=0"`
	Width  int    `json:"width" binding:"min=0"`
	Method string `json:"method"`
	Seed   int64  `json:"seed"`
}

// MazeResponse describes one archived maze.
type MazeResponse struct {
	ID        string    `json:"id"`
	Method    string    `json:"method"`
	Height    int       `json:"height"`
	Width     int       `json:"width"`
	Seed      int64     `json:"seed"`
	CreatedAt time.Time `json:"created_at"`
	Maze      string    `json:"maze"`
}

// PointDTO is a table position.
type PointDTO struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// PathResponse is the body of GET /mazes/:id/path.
type PathResponse struct {
	Found   bool       `json:"found"`
	Path    []PointDTO `json:"path"`
	Visited int        `json:"visited"`
	Maze    string     `json:"maze"`
}

func newMazeResponse(rec archive.Record, syms grid.Symbols) (MazeResponse, error) {
	resp := MazeResponse{
		ID:        rec.ID.String(),
		Method:    string(rec.Method),
		Height:    rec.Height,
		Width:     rec.Width,
		Seed:      rec.Seed,
		CreatedAt: rec.CreatedAt,
		Maze:      rec.Maze,
	}
	if syms != grid.Emoji {
		g, err := rec.Grid()
		if err != nil {
			return MazeResponse{}, err
		}
		resp.Maze = syms.Encode(g)
	}

	return resp, nil
}
