// Package mazefile reads and writes mazes as text files.
package mazefile

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/grid"
)

// FilePrefix starts the name of every saved maze.
const FilePrefix = "maze"

// FileName returns the name a maze saved at t gets: FilePrefix followed by
// the Unix time in seconds.
func FileName(t time.Time) string {
	return fmt.Sprintf("%s%d", FilePrefix, t.Unix())
}

// Load reads the maze stored at path. Both the emoji and the ASCII symbol
// sets are accepted.
func Load(path string) (*grid.Grid, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "mazefile: reading %q", path)
	}
	g, err := grid.ParseAny(string(buf))
	if err != nil {
		return nil, errors.Wrapf(err, "mazefile: parsing %q", path)
	}
	klog.V(2).Infof("mazefile: loaded %dx%d maze from %q", g.Height(), g.Width(), path)

	return g, nil
}

// Exists reports whether path names a regular file.
func Exists(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.Mode().IsRegular()
}

// Save writes g into dir under FileName(time.Now()) and returns the full path.
func Save(dir string, g *grid.Grid, syms grid.Symbols) (string, error) {
	return SaveAt(dir, g, syms, time.Now())
}

// SaveAt is Save with an explicit timestamp.
func SaveAt(dir string, g *grid.Grid, syms grid.Symbols, t time.Time) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "mazefile: creating %q", dir)
	}
	path := filepath.Join(dir, FileName(t))
	if err := os.WriteFile(path, []byte(syms.Encode(g)), 0o644); err != nil {
		return "", errors.Wrapf(err, "mazefile: writing %q", path)
	}
	klog.V(2).Infof("mazefile: saved %dx%d maze to %q", g.Height(), g.Width(), path)

	return path, nil
}

// Write prints g to w followed by a newline.
func Write(w io.Writer, g *grid.Grid, syms grid.Symbols) error {
	_, err := io.WriteString(w, syms.Encode(g)+"\n")
	return errors.Wrap(err, "mazefile: write")
}
