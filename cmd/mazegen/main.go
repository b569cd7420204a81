// Command mazegen generates, loads, solves and saves mazes.
//
// Without generation flags it runs the interactive MazeGenerator session:
//
//	mazegen
//
// With flags it works in one shot:
//
//	mazegen -method kruskal -height 10 -width 20 -solve 1,1:19,39 -save
//	mazegen -load maze1700000000 -ascii
//
// The serve subcommand exposes the generator and a maze archive over HTTP:
//
//	mazegen serve -addr :8080 -archive /var/lib/mazegen
//
// Defaults come from MAZE_* environment variables and an optional .env file.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/api"
	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/mazefile"
	"github.com/katalvlaran/labyrinth/solve"
)

// Exit codes.
const (
	exitOK       = 0
	exitFailure  = 1
	exitUsage    = 2
	exitNotFound = 3
)

func main() {
	code := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	klog.Flush()
	os.Exit(code)
}

// options are the parsed command line of the generator mode.
type options struct {
	envFile string
	method  string
	height  int
	width   int
	seed    int64
	load    string
	solve   string
	save    bool
	ascii   bool
}

// run is main without the process globals.
func run(args []string, in io.Reader, out, errOut io.Writer) int {
	if len(args) > 0 && args[0] == "serve" {
		return runServe(args[1:], errOut)
	}

	fset := newFlagSet("mazegen", errOut)
	var o options
	fset.StringVar(&o.envFile, "env", ".env", "`file` with MAZE_* defaults")
	fset.StringVar(&o.method, "method", "", "generation `method`: dfs, kruskal or binary-tree")
	fset.IntVar(&o.height, "height", -1, "maze height in cells (default MAZE_HEIGHT)")
	fset.IntVar(&o.width, "width", -1, "maze width in cells (default MAZE_WIDTH)")
	fset.Int64Var(&o.seed, "seed", 0, "random seed, 0 uses MAZE_SEED or the clock")
	fset.StringVar(&o.load, "load", "", "load the maze stored in `file` instead of generating one")
	fset.StringVar(&o.solve, "solve", "", "mark a route between `r1,c1:r2,c2`")
	fset.BoolVar(&o.save, "save", false, "save the maze into MAZE_SAVE_DIR")
	fset.BoolVar(&o.ascii, "ascii", false, "print with ASCII symbols instead of emoji")
	if err := fset.Parse(args); err != nil {
		return exitUsage
	}

	cfg, err := config.Load(o.envFile)
	if err != nil {
		fmt.Fprintln(errOut, "mazegen:", err)
		return exitUsage
	}
	syms := cfg.SymbolSet()
	if o.ascii {
		syms = grid.ASCII
	}

	interactive := true
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "method", "height", "width", "load", "solve", "save":
			interactive = false
		}
	})
	if interactive {
		s := &session{
			in:   bufio.NewScanner(in),
			out:  out,
			cfg:  cfg,
			seed: o.seed,
			syms: syms,
			now:  time.Now,
		}
		if err = s.run(); err != nil {
			klog.Errorf("mazegen: %v", err)
			return exitFailure
		}
		return exitOK
	}

	return runBatch(o, cfg, syms, out, errOut)
}

// newFlagSet builds a flag set that also carries the klog flags.
func newFlagSet(name string, errOut io.Writer) *flag.FlagSet {
	fset := flag.NewFlagSet(name, flag.ContinueOnError)
	fset.SetOutput(errOut)
	klog.InitFlags(fset)
	if err := fset.Set("logtostderr", "true"); err != nil {
		fmt.Fprintf(errOut, "mazegen: logtostderr: %v\n", err)
	}
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          false,
	})

	return fset
}

// runBatch generates or loads one maze and optionally solves and saves it.
func runBatch(o options, cfg config.Config, syms grid.Symbols, out, errOut io.Writer) int {
	g, err := obtainGrid(o, cfg)
	if err != nil {
		fmt.Fprintln(errOut, "mazegen:", err)
		return exitFailure
	}
	if err = mazefile.Write(out, g, syms); err != nil {
		fmt.Fprintln(errOut, "mazegen:", err)
		return exitFailure
	}

	code := exitOK
	if o.solve != "" {
		start, finish, err := parseRoute(o.solve)
		if err != nil {
			fmt.Fprintln(errOut, "mazegen:", err)
			return exitUsage
		}
		marked := g.Clone()
		marked.ClearMarks()
		res, err := solve.MarkPath(marked, start, finish)
		if err != nil {
			fmt.Fprintln(errOut, "mazegen:", err)
			return exitUsage
		}
		fmt.Fprintln(out)
		if err = mazefile.Write(out, marked, syms); err != nil {
			fmt.Fprintln(errOut, "mazegen:", err)
			return exitFailure
		}
		if !res.Found {
			fmt.Fprintf(out, "No path between %s and %s\n", start, finish)
			code = exitNotFound
		} else {
			fmt.Fprintf(out, "Path of %d cells\n", res.Len())
		}
	}

	if o.save {
		path, err := mazefile.Save(cfg.SaveDir, g, syms)
		if err != nil {
			fmt.Fprintln(errOut, "mazegen:", err)
			return exitFailure
		}
		fmt.Fprintf(out, "Maze has been saved in file %s\n", path)
	}

	return code
}

// obtainGrid loads o.load or generates a maze from the flags and config.
func obtainGrid(o options, cfg config.Config) (*grid.Grid, error) {
	if o.load != "" {
		return mazefile.Load(o.load)
	}

	method := cfg.Method
	if o.method != "" {
		m, err := carve.ParseMethod(o.method)
		if err != nil {
			return nil, err
		}
		method = m
	}
	height, width := cfg.Height, cfg.Width
	if o.height >= 0 {
		height = o.height
	}
	if o.width >= 0 {
		width = o.width
	}

	g, stats, err := carve.Generate(height, width, method, carveOptions(o.seed, cfg)...)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("mazegen: %dx%d %s", height, width, stats)

	return g, nil
}

// carveOptions picks the seed: the flag, then MAZE_SEED, then the clock.
func carveOptions(seed int64, cfg config.Config) []carve.Option {
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		return nil
	}

	return []carve.Option{carve.WithSeed(seed)}
}

// parseRoute parses "r1,c1:r2,c2".
func parseRoute(s string) (grid.Point, grid.Point, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return grid.Point{}, grid.Point{}, errors.Errorf("route %q must be r1,c1:r2,c2", s)
	}
	start, err := api.ParsePoint(parts[0])
	if err != nil {
		return grid.Point{}, grid.Point{}, err
	}
	finish, err := api.ParsePoint(parts[1])
	if err != nil {
		return grid.Point{}, grid.Point{}, err
	}

	return start, finish, nil
}
