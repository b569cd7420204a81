package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/mazefile"
)

// isolate points MAZE_SAVE_DIR at a fresh directory and returns it with a
// path to a .env file that does not exist.
func isolate(t *testing.T) (saveDir, envFile string) {
	t.Helper()
	saveDir = t.TempDir()
	t.Setenv(config.EnvSaveDir, saveDir)
	t.Setenv(config.EnvSymbols, "ascii")

	return saveDir, filepath.Join(saveDir, "missing.env")
}

func savedFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, mazefile.FilePrefix+"*"))
	require.NoError(t, err)

	return matches
}

//----------------------------------------------------------------------------//
// Batch mode
//----------------------------------------------------------------------------//

func TestRun_BatchGenerateSolveSave(t *testing.T) {
	dir, env := isolate(t)
	var out, errOut bytes.Buffer

	code := run([]string{
		"-env", env, "-method", "kruskal", "-height", "3", "-width", "4",
		"-seed", "5", "-solve", "1,1:5,7", "-save",
	}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())

	text := out.String()
	assert.Contains(t, text, "\n#S", "start marked at (1,1)")
	assert.Contains(t, text, "F")
	assert.Contains(t, text, "Maze has been saved in file")

	files := savedFiles(t, dir)
	require.Len(t, files, 1)
	g, err := mazefile.Load(files[0])
	require.NoError(t, err)
	assert.Equal(t, 3, g.Height())
	assert.Equal(t, 4, g.Width())
	assert.True(t, g.IsPerfect(), "the saved maze is unmarked")
}

func TestRun_BatchLoad(t *testing.T) {
	dir, env := isolate(t)
	g, _, err := carve.Generate(2, 2, carve.MethodDepthFirst, carve.WithSeed(1))
	require.NoError(t, err)
	path, err := mazefile.Save(dir, g, grid.Emoji)
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	code := run([]string{"-env", env, "-load", path, "-ascii"}, strings.NewReader(""), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t, grid.ASCII.Encode(g)+"\n", out.String())
}

func TestRun_BatchNoPath(t *testing.T) {
	dir, env := isolate(t)
	g, err := grid.ASCII.Decode("#####\n# # #\n#####")
	require.NoError(t, err)
	path, err := mazefile.SaveAt(dir, g, grid.ASCII, time.Unix(1, 0))
	require.NoError(t, err)

	var out, errOut bytes.Buffer
	code := run([]string{"-env", env, "-load", path, "-solve", "1,1:1,3"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, exitNotFound, code)
	assert.Contains(t, out.String(), "No path between (1,1) and (1,3)")
}

func TestRun_BatchErrors(t *testing.T) {
	_, env := isolate(t)
	cases := map[string]struct {
		args []string
		code int
	}{
		"unknown flag":   {[]string{"-bogus"}, exitUsage},
		"unknown method": {[]string{"-method", "wilson"}, exitFailure},
		"bad route":      {[]string{"-method", "dfs", "-height", "2", "-width", "2", "-solve", "1,1"}, exitUsage},
		"wall endpoint":  {[]string{"-method", "dfs", "-height", "2", "-width", "2", "-solve", "0,0:3,3"}, exitUsage},
		"missing file":   {[]string{"-load", "/nonexistent/maze"}, exitFailure},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var out, errOut bytes.Buffer
			code := run(append([]string{"-env", env}, tc.args...), strings.NewReader(""), &out, &errOut)
			assert.Equal(t, tc.code, code, errOut.String())
		})
	}
}

func TestRun_BadConfig(t *testing.T) {
	_, env := isolate(t)
	t.Setenv(config.EnvHeight, "tall")
	var out, errOut bytes.Buffer
	code := run([]string{"-env", env, "-method", "dfs"}, strings.NewReader(""), &out, &errOut)
	assert.Equal(t, exitUsage, code)
	assert.Contains(t, errOut.String(), config.EnvHeight)
}

//----------------------------------------------------------------------------//
// Interactive mode
//----------------------------------------------------------------------------//

func TestRun_InteractiveGenerate(t *testing.T) {
	dir, env := isolate(t)
	input := strings.Join([]string{
		"9",    // invalid command, retried
		"2",    // Kruskal
		"3 x",  // invalid size, retried
		"-1 3", // negative, retried
		"3 4",  // size
		"y",    // find a path
		"0 0",  // wall, retried
		"1 1",  // start
		"2 2",  // not a logical cell, retried
		"5 7",  // finish
		"y",    // save
	}, "\n") + "\n"

	var out, errOut bytes.Buffer
	code := run([]string{"-env", env, "-seed", "3"}, strings.NewReader(input), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())

	text := out.String()
	assert.Contains(t, text, "Welcome to MazeGenerator!")
	assert.Equal(t, 4, strings.Count(text, "Enter your command: "), "menu twice, then two confirmations")
	assert.Equal(t, 3, strings.Count(text, "Enter <height> <width>: "))
	assert.Equal(t, 2, strings.Count(text, "Enter start cell"))
	assert.Equal(t, 2, strings.Count(text, "Enter finish cell"))
	assert.Contains(t, text, "\n#S", "start marked at (1,1)")
	assert.Contains(t, text, "Maze has been saved in file")
	assert.Len(t, savedFiles(t, dir), 1)
}

func TestRun_InteractiveLoad(t *testing.T) {
	dir, env := isolate(t)
	g, _, err := carve.Generate(2, 3, carve.MethodBinaryTree, carve.WithSeed(2))
	require.NoError(t, err)
	path, err := mazefile.SaveAt(dir, g, grid.Emoji, time.Unix(5, 0))
	require.NoError(t, err)

	input := strings.Join([]string{
		"4",
		filepath.Join(dir, "nope"), // missing, retried
		path,
		"n", // no path
		"n", // no save
	}, "\n") + "\n"

	var out, errOut bytes.Buffer
	code := run([]string{"-env", env}, strings.NewReader(input), &out, &errOut)
	require.Equal(t, exitOK, code, errOut.String())
	assert.Equal(t, 2, strings.Count(out.String(), "Enter path to maze: "))
	assert.Contains(t, out.String(), grid.ASCII.Encode(g))
	assert.NotContains(t, out.String(), "saved")
	assert.Len(t, savedFiles(t, dir), 1, "only the fixture")
}

func TestRun_InteractiveEOF(t *testing.T) {
	_, env := isolate(t)
	var out, errOut bytes.Buffer
	code := run([]string{"-env", env}, strings.NewReader("1\n"), &out, &errOut)
	assert.Equal(t, exitFailure, code)
}

//----------------------------------------------------------------------------//
// Helpers
//----------------------------------------------------------------------------//

func TestParsePair(t *testing.T) {
	a, b, ok := parsePair(" 3   4 ")
	assert.True(t, ok)
	assert.Equal(t, 3, a)
	assert.Equal(t, 4, b)

	for _, bad := range []string{"", "3", "3 4 5", "a 1", "1 -1"} {
		_, _, ok = parsePair(bad)
		assert.False(t, ok, bad)
	}
}

func TestParseRoute(t *testing.T) {
	start, finish, err := parseRoute("1,1:3,5")
	require.NoError(t, err)
	assert.Equal(t, grid.Point{Row: 1, Col: 1}, start)
	assert.Equal(t, grid.Point{Row: 3, Col: 5}, finish)

	_, _, err = parseRoute("1,1")
	assert.Error(t, err)
}

func TestServe_StopsOnCancel(t *testing.T) {
	cfg := config.Default()
	cfg.HTTPAddr = "127.0.0.1:0"
	cfg.ArchiveDir = filepath.Join(t.TempDir(), "archive")

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- serve(ctx, cfg) }()
	time.Sleep(100 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(10 * time.Second):
		t.Fatal("serve did not return")
	}
	_, err := os.Stat(cfg.ArchiveDir)
	assert.NoError(t, err, "badger created its directory")
}

func TestNewFlagSet_KlogFlags(t *testing.T) {
	var errOut bytes.Buffer
	fset := newFlagSet("mazegen", &errOut)

	f := fset.Lookup("logtostderr")
	require.NotNil(t, f)
	assert.Equal(t, "true", f.Value.String())
	assert.NotNil(t, fset.Lookup("v"), "verbosity flag registered")
	assert.Empty(t, errOut.String())
}
