// Package config resolves the labyrinth settings from the environment and an
// optional .env file.
package config

import (
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/grid"
)

// Environment variable names.
const (
	EnvHeight       = "MAZE_HEIGHT"
	EnvWidth        = "MAZE_WIDTH"
	EnvMethod       = "MAZE_METHOD"
	EnvSeed         = "MAZE_SEED"
	EnvSaveDir      = "MAZE_SAVE_DIR"
	EnvArchiveDir   = "MAZE_ARCHIVE_DIR"
	EnvHTTPAddr     = "MAZE_HTTP_ADDR"
	EnvSymbols      = "MAZE_SYMBOLS"
	EnvMaxDimension = "MAZE_MAX_DIMENSION"
)

// ErrInvalid is wrapped by every error Load reports for a bad value.
var ErrInvalid = errors.New("config: invalid value")

// Config holds the application's configuration values.
type Config struct {
	Height       int          // default maze height in logical cells
	Width        int          // default maze width in logical cells
	Method       carve.Method // default generation method
	Seed         int64        // random seed, 0 draws one from the clock
	SaveDir      string       // directory saved maze files go to
	ArchiveDir   string       // Badger directory, empty keeps the archive in memory
	HTTPAddr     string       // listen address of the serve command
	Symbols      string       // "emoji" or "ascii"
	MaxDimension int          // upper bound for height and width accepted by the API
}

// Default returns the configuration used when nothing is set.
func Default() Config {
	return Config{
		Height:       10,
		Width:        10,
		Method:       carve.MethodDepthFirst,
		Seed:         0,
		SaveDir:      ".",
		ArchiveDir:   "",
		HTTPAddr:     ":8080",
		Symbols:      "emoji",
		MaxDimension: 200,
	}
}

// Load builds a Config from the process environment, falling back to the
// given .env files (".env" when none are named) and then to Default.
// Variables already present in the environment win over the files.
// A missing .env file is not an error.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	fileVars := map[string]string{}
	for _, f := range files {
		vars, err := godotenv.Read(f)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				klog.V(1).Infof("config: %s not found, using environment only", f)
				continue
			}
			return Config{}, errors.Wrapf(err, "config: reading %s", f)
		}
		for k, v := range vars {
			if _, seen := fileVars[k]; !seen {
				fileVars[k] = v
			}
		}
	}

	return FromLookup(func(key string) (string, bool) {
		if v, ok := os.LookupEnv(key); ok {
			return v, true
		}
		v, ok := fileVars[key]
		return v, ok
	})
}

// FromLookup builds a Config from lookup, which reports the value of a
// variable and whether it is set.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()
	var err error

	get := func(key, def string) string {
		if v, ok := lookup(key); ok && strings.TrimSpace(v) != "" {
			return strings.TrimSpace(v)
		}
		return def
	}
	getInt := func(key string, def int) int {
		if err != nil {
			return def
		}
		raw := get(key, "")
		if raw == "" {
			return def
		}
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			err = errors.Wrapf(ErrInvalid, "%s=%q must be a non-negative integer", key, raw)
			return def
		}
		return n
	}

	c.Height = getInt(EnvHeight, c.Height)
	c.Width = getInt(EnvWidth, c.Width)
	c.MaxDimension = getInt(EnvMaxDimension, c.MaxDimension)
	if err != nil {
		return Config{}, err
	}

	if raw := get(EnvSeed, ""); raw != "" {
		seed, convErr := strconv.ParseInt(raw, 10, 64)
		if convErr != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "%s=%q must be an integer", EnvSeed, raw)
		}
		c.Seed = seed
	}

	if raw := get(EnvMethod, ""); raw != "" {
		m, parseErr := carve.ParseMethod(raw)
		if parseErr != nil {
			return Config{}, errors.Wrapf(ErrInvalid, "%s: %v", EnvMethod, parseErr)
		}
		c.Method = m
	}

	c.Symbols = strings.ToLower(get(EnvSymbols, c.Symbols))
	if c.Symbols != "emoji" && c.Symbols != "ascii" {
		return Config{}, errors.Wrapf(ErrInvalid, "%s=%q must be emoji or ascii", EnvSymbols, c.Symbols)
	}

	c.SaveDir = get(EnvSaveDir, c.SaveDir)
	c.HTTPAddr = get(EnvHTTPAddr, c.HTTPAddr)
	if v, ok := lookup(EnvArchiveDir); ok {
		c.ArchiveDir = strings.TrimSpace(v)
	}

	return c, nil
}

// SymbolSet returns the grid symbols selected by Symbols.
func (c Config) SymbolSet() grid.Symbols {
	if c.Symbols == "ascii" {
		return grid.ASCII
	}
	return grid.Emoji
}
