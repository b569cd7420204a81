package api_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/archive"
	"github.com/katalvlaran/labyrinth/grid"
)

func newServer(t *testing.T) http.Handler {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store, err := archive.Open("")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	router := api.NewRouter(api.Config{
		Controllers: []api.Controller{api.NewMazeServer(store, 20, grid.ASCII)},
	})

	return router.Handler()
}

func do(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	return w
}

func create(t *testing.T, h http.Handler, req api.CreateRequest) api.MazeResponse {
	t.Helper()
	w := do(t, h, http.MethodPost, "/mazes", req)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var resp api.MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	return resp
}

func TestCreateGet(t *testing.T) {
	h := newServer(t)
	created := create(t, h, api.CreateRequest{Height: 3, Width: 4, Method: "kruskal", Seed: 7})
	assert.Equal(t, "kruskal", created.Method)
	assert.Equal(t, 3, created.Height)
	assert.Equal(t, 4, created.Width)
	assert.Equal(t, int64(7), created.Seed)

	g, err := grid.ASCII.Decode(created.Maze)
	require.NoError(t, err)
	assert.True(t, g.IsPerfect())

	w := do(t, h, http.MethodGet, "/mazes/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var got api.MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, created.Maze, got.Maze)

	// Emoji on request.
	w = do(t, h, http.MethodGet, "/mazes/"+created.ID+"?symbols=emoji", nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	ge, err := grid.Parse(got.Maze)
	require.NoError(t, err)
	assert.True(t, g.Equal(ge))

	// Plain text.
	w = do(t, h, http.MethodGet, "/mazes/"+created.ID+"?format=text", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, created.Maze+"\n", w.Body.String())
	assert.True(t, strings.HasPrefix(w.Header().Get("Content-Type"), "text/plain"))
}

func TestCreate_DefaultMethod(t *testing.T) {
	h := newServer(t)
	created := create(t, h, api.CreateRequest{Height: 2, Width: 2})
	assert.Equal(t, "dfs", created.Method)
	assert.NotZero(t, created.Seed)
}

func TestCreate_BadRequests(t *testing.T) {
	h := newServer(t)
	cases := map[string]interface{}{
		"too tall":       api.CreateRequest{Height: 21, Width: 2},
		"negative width": api.CreateRequest{Height: 2, Width: -1},
		"unknown method": api.CreateRequest{Height: 2, Width: 2, Method: "wilson"},
		"not json":       "[[",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			w := do(t, h, http.MethodPost, "/mazes", body)
			assert.Equal(t, http.StatusBadRequest, w.Code, w.Body.String())
		})
	}
}

func TestList(t *testing.T) {
	h := newServer(t)
	w := do(t, h, http.MethodGet, "/mazes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	a := create(t, h, api.CreateRequest{Height: 1, Width: 1, Seed: 1})
	b := create(t, h, api.CreateRequest{Height: 2, Width: 3, Seed: 2})

	w = do(t, h, http.MethodGet, "/mazes", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var list []api.MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
	require.Len(t, list, 2)
	ids := []string{list[0].ID, list[1].ID}
	assert.ElementsMatch(t, []string{a.ID, b.ID}, ids)
}

func TestPath(t *testing.T) {
	h := newServer(t)
	created := create(t, h, api.CreateRequest{Height: 5, Width: 5, Method: "binary-tree", Seed: 3})

	w := do(t, h, http.MethodGet, "/mazes/"+created.ID+"/path?start=1,1&finish=9,9", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var resp api.PathResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.True(t, resp.Found)
	assert.Equal(t, api.PointDTO{Row: 1, Col: 1}, resp.Path[0])
	assert.Equal(t, api.PointDTO{Row: 9, Col: 9}, resp.Path[len(resp.Path)-1])
	assert.Contains(t, resp.Maze, "S")
	assert.Contains(t, resp.Maze, "F")

	// Defaults are the opposite corners.
	w = do(t, h, http.MethodGet, "/mazes/"+created.ID+"/path", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var def api.PathResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &def))
	assert.Equal(t, resp.Path, def.Path)

	// The archived maze stays unmarked.
	w = do(t, h, http.MethodGet, "/mazes/"+created.ID, nil)
	var got api.MazeResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.NotContains(t, got.Maze, "S")
}

func TestPath_BadEndpoints(t *testing.T) {
	h := newServer(t)
	created := create(t, h, api.CreateRequest{Height: 2, Width: 2, Seed: 1})

	for _, q := range []string{"start=x,1", "start=1", "start=0,0", "finish=99,99"} {
		w := do(t, h, http.MethodGet, "/mazes/"+created.ID+"/path?"+q, nil)
		assert.Equal(t, http.StatusBadRequest, w.Code, q)
	}
}

func TestNotFoundAndInvalidID(t *testing.T) {
	h := newServer(t)
	missing := uuid.New().String()

	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/mazes/"+missing, nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/mazes/"+missing+"/path", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodDelete, "/mazes/"+missing, nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/mazes/not-a-uuid", nil).Code)
	assert.Equal(t, http.StatusBadRequest, do(t, h, http.MethodGet, "/mazes?symbols=braille", nil).Code)
}

func TestDelete(t *testing.T) {
	h := newServer(t)
	created := create(t, h, api.CreateRequest{Height: 2, Width: 2, Seed: 1})

	w := do(t, h, http.MethodDelete, "/mazes/"+created.ID, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/mazes/"+created.ID, nil).Code)
}

func TestParsePoint(t *testing.T) {
	p, err := api.ParsePoint(" 3, 5")
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 3, Col: 5}, p)

	for _, bad := range []string{"", "3", "3,5,7", "a,1", "1,b"} {
		_, err := api.ParsePoint(bad)
		assert.Error(t, err, bad)
	}
}

func TestRouter_RunStopsOnCancel(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := api.NewRouter(api.Config{Addr: "127.0.0.1:0"})

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- router.Run(ctx) }()
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRouter_BaseURL(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store, err := archive.Open("")
	require.NoError(t, err)
	defer store.Close()

	h := api.NewRouter(api.Config{
		BaseURL:     "/api/v1",
		Controllers: []api.Controller{api.NewMazeServer(store, 5, grid.Emoji)},
	}).Handler()

	assert.Equal(t, http.StatusOK, do(t, h, http.MethodGet, "/api/v1/mazes", nil).Code)
	assert.Equal(t, http.StatusNotFound, do(t, h, http.MethodGet, "/mazes", nil).Code)
}
