package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/archive"
	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/solve"
)

// Archive is the storage the maze controller needs.
type Archive interface {
	Put(rec archive.Record) (uuid.UUID, error)
	Get(id uuid.UUID) (archive.Record, error)
	List() ([]archive.Record, error)
	Delete(id uuid.UUID) error
}

// MazeServer handles HTTP requests for generating, listing and solving mazes.
type MazeServer struct {
	store        Archive
	maxDimension int
	symbols      grid.Symbols
}

// NewMazeServer creates a MazeServer. Mazes are limited to maxDimension
// cells per side and rendered with symbols unless a request asks otherwise.
func NewMazeServer(store Archive, maxDimension int, symbols grid.Symbols) *MazeServer {
	return &MazeServer{
		store:        store,
		maxDimension: maxDimension,
		symbols:      symbols,
	}
}

// Register registers the maze routes.
func (c *MazeServer) Register(route *gin.RouterGroup) {
	mazes := route.Group("/mazes")
	{
		mazes.POST("", c.create)
		mazes.GET("", c.list)
		mazes.GET("/:id", c.get)
		mazes.GET("/:id/path", c.path)
		mazes.DELETE("/:id", c.remove)
	}
}

// create generates a maze and archives it.
func (c *MazeServer) create(ctx *gin.Context) {
	var request CreateRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if request.Height > c.maxDimension || request.Width > c.maxDimension {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error": "height and width must not exceed " + strconv.Itoa(c.maxDimension),
		})
		return
	}
	method := carve.MethodDepthFirst
	if request.Method != "" {
		m, err := carve.ParseMethod(request.Method)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		method = m
	}

	var opts []carve.Option
	if request.Seed != 0 {
		opts = append(opts, carve.WithSeed(request.Seed))
	}
	g, stats, err := carve.Generate(request.Height, request.Width, method, opts...)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rec := archive.NewRecord(g, stats)
	id, err := c.store.Put(rec)
	if err != nil {
		c.internalError(ctx, err)
		return
	}
	rec, err = c.store.Get(id)
	if err != nil {
		c.internalError(ctx, err)
		return
	}
	c.respondRecord(ctx, http.StatusCreated, rec)
}

// list returns every archived maze, oldest first.
func (c *MazeServer) list(ctx *gin.Context) {
	recs, err := c.store.List()
	if err != nil {
		c.internalError(ctx, err)
		return
	}
	syms, ok := c.symbolsFor(ctx)
	if !ok {
		return
	}
	response := make([]MazeResponse, 0, len(recs))
	for _, rec := range recs {
		r, err := newMazeResponse(rec, syms)
		if err != nil {
			c.internalError(ctx, err)
			return
		}
		response = append(response, r)
	}
	ctx.JSON(http.StatusOK, response)
}

// get returns one maze, as JSON or with ?format=text as plain text.
func (c *MazeServer) get(ctx *gin.Context) {
	rec, ok := c.lookup(ctx)
	if !ok {
		return
	}
	c.respondRecord(ctx, http.StatusOK, rec)
}

// path marks a route between ?start=r,c and ?finish=r,c on a copy of the
// archived maze.
func (c *MazeServer) path(ctx *gin.Context) {
	rec, ok := c.lookup(ctx)
	if !ok {
		return
	}
	syms, ok := c.symbolsFor(ctx)
	if !ok {
		return
	}
	g, err := rec.Grid()
	if err != nil {
		c.internalError(ctx, err)
		return
	}

	start, err := ParsePoint(ctx.DefaultQuery("start", "1,1"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	finish, err := ParsePoint(ctx.DefaultQuery("finish",
		strconv.Itoa(g.Rows()-2)+","+strconv.Itoa(g.Cols()-2)))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := solve.MarkPath(g, start, finish)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	response := PathResponse{
		Found:   res.Found,
		Path:    make([]PointDTO, 0, len(res.Path)),
		Visited: res.Visited,
		Maze:    syms.Encode(g),
	}
	for _, p := range res.Path {
		response.Path = append(response.Path, PointDTO{Row: p.Row, Col: p.Col})
	}
	ctx.JSON(http.StatusOK, response)
}

// remove deletes one maze.
func (c *MazeServer) remove(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return
	}
	if err = c.store.Delete(id); err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.internalError(ctx, err)
		return
	}
	ctx.Status(http.StatusNoContent)
}

// lookup resolves the :id parameter, writing the error response itself.
func (c *MazeServer) lookup(ctx *gin.Context) (archive.Record, bool) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid maze id"})
		return archive.Record{}, false
	}
	rec, err := c.store.Get(id)
	if err != nil {
		if errors.Is(err, archive.ErrNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return archive.Record{}, false
		}
		c.internalError(ctx, err)
		return archive.Record{}, false
	}

	return rec, true
}

// symbolsFor reads ?symbols=emoji|ascii, defaulting to the server's set.
func (c *MazeServer) symbolsFor(ctx *gin.Context) (grid.Symbols, bool) {
	switch strings.ToLower(ctx.Query("symbols")) {
	case "":
		return c.symbols, true
	case "emoji":
		return grid.Emoji, true
	case "ascii":
		return grid.ASCII, true
	}
	ctx.JSON(http.StatusBadRequest, gin.H{"error": "symbols must be emoji or ascii"})

	return grid.Symbols{}, false
}

func (c *MazeServer) respondRecord(ctx *gin.Context, status int, rec archive.Record) {
	syms, ok := c.symbolsFor(ctx)
	if !ok {
		return
	}
	response, err := newMazeResponse(rec, syms)
	if err != nil {
		c.internalError(ctx, err)
		return
	}
	if ctx.Query("format") == "text" {
		ctx.String(status, response.Maze+"\n")
		return
	}
	ctx.JSON(status, response)
}

func (c *MazeServer) internalError(ctx *gin.Context, err error) {
	klog.Errorf("api: %s %s: %v", ctx.Request.Method, ctx.Request.URL.Path, err)
	ctx.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// ParsePoint parses "row,col".
func ParsePoint(s string) (grid.Point, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return grid.Point{}, errors.Errorf("api: point %q must be row,col", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return grid.Point{}, errors.Wrapf(err, "api: point %q row", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return grid.Point{}, errors.Wrapf(err, "api: point %q col", s)
	}

	return grid.Point{Row: row, Col: col}, nil
}
