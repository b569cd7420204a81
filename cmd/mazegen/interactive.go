package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/labyrinth/carve"
	"github.com/katalvlaran/labyrinth/config"
	"github.com/katalvlaran/labyrinth/grid"
	"github.com/katalvlaran/labyrinth/mazefile"
	"github.com/katalvlaran/labyrinth/solve"
)

// session is one interactive MazeGenerator run. Every prompt is repeated
// until the answer is valid.
type session struct {
	in   *bufio.Scanner
	out  io.Writer
	cfg  config.Config
	seed int64
	syms grid.Symbols
	now  func() time.Time
}

func (s *session) run() error {
	fmt.Fprintln(s.out, "Welcome to MazeGenerator!")
	fmt.Fprintln(s.out, "Possible commands:")
	fmt.Fprintln(s.out, "(1) generate maze with random DFS")
	fmt.Fprintln(s.out, "(2) generate maze with random Kruskal algorithm")
	fmt.Fprintln(s.out, "(3) generate maze with random binary tree")
	fmt.Fprintln(s.out, "(4) open maze, generated with MazeGenerator")
	fmt.Fprintln(s.out, "If command is invalid you should retry")

	var command string
	for command != "1" && command != "2" && command != "3" && command != "4" {
		var err error
		if command, err = s.ask("Enter your command: "); err != nil {
			return err
		}
	}

	var g *grid.Grid
	var err error
	if command == "4" {
		g, err = s.loadMaze()
	} else {
		g, err = s.generate(command)
	}
	if err != nil {
		return err
	}
	if err = mazefile.Write(s.out, g, s.syms); err != nil {
		return err
	}

	yes, err := s.confirm("Do you want MazeGenerator to find the path in this maze?")
	if err != nil {
		return err
	}
	if yes {
		if err = s.findPath(g); err != nil {
			return err
		}
	}

	yes, err = s.confirm("Do you want to save this maze?")
	if err != nil || !yes {
		return err
	}
	path, err := mazefile.SaveAt(s.cfg.SaveDir, g, s.syms, s.now())
	if err != nil {
		return err
	}
	fmt.Fprintf(s.out, "Maze has been saved in file %s\n", path)

	return nil
}

func (s *session) generate(command string) (*grid.Grid, error) {
	method, err := carve.ParseMethod(command)
	if err != nil {
		return nil, err
	}
	var height, width int
	for {
		answer, err := s.ask("Enter <height> <width>: ")
		if err != nil {
			return nil, err
		}
		var ok bool
		if height, width, ok = parsePair(answer); ok {
			break
		}
	}

	g, stats, err := carve.Generate(height, width, method, carveOptions(s.seed, s.cfg)...)
	if err != nil {
		return nil, err
	}
	klog.V(1).Infof("mazegen: %dx%d %s", height, width, stats)

	return g, nil
}

func (s *session) loadMaze() (*grid.Grid, error) {
	fmt.Fprintln(s.out, "If path is invalid you should retry")
	for {
		path, err := s.ask("Enter path to maze: ")
		if err != nil {
			return nil, err
		}
		if !mazefile.Exists(path) {
			continue
		}
		g, err := mazefile.Load(path)
		if err != nil {
			fmt.Fprintf(s.out, "Cannot read maze: %v\n", err)
			continue
		}
		return g, nil
	}
}

// findPath marks a route on a copy of g and prints it; g stays unmarked.
func (s *session) findPath(g *grid.Grid) error {
	marked := g.Clone()
	marked.ClearMarks()

	start, err := s.askCell("Enter start cell (<row> <col>): ", marked)
	if err != nil {
		return err
	}
	finish, err := s.askCell("Enter finish cell (<row> <col>): ", marked)
	if err != nil {
		return err
	}

	res, err := solve.MarkPath(marked, start, finish)
	if err != nil {
		return err
	}
	if err = mazefile.Write(s.out, marked, s.syms); err != nil {
		return err
	}
	if !res.Found {
		fmt.Fprintf(s.out, "No path between %s and %s\n", start, finish)
	}

	return nil
}

// askCell repeats prompt until the answer names an open logical cell of g.
func (s *session) askCell(prompt string, g *grid.Grid) (grid.Point, error) {
	for {
		answer, err := s.ask(prompt)
		if err != nil {
			return grid.Point{}, err
		}
		r, c, ok := parsePair(answer)
		p := grid.Point{Row: r, Col: c}
		if ok && g.IsLogical(p) && g.IsCellEmpty(p) {
			return p, nil
		}
	}
}

func (s *session) confirm(question string) (bool, error) {
	fmt.Fprintln(s.out, question)
	fmt.Fprintln(s.out, "Enter 'y', if you want, 'n', if you don't")
	answer, err := s.ask("Enter your command: ")

	return answer == "y", err
}

// ask prints prompt and returns the next trimmed input line.
func (s *session) ask(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.in.Scan() {
		if err := s.in.Err(); err != nil {
			return "", err
		}
		return "", io.ErrUnexpectedEOF
	}

	return strings.TrimSpace(s.in.Text()), nil
}

// parsePair parses two whitespace-separated non-negative integers.
func parsePair(s string) (int, int, bool) {
	fields := strings.Fields(s)
	if len(fields) != 2 {
		return 0, 0, false
	}
	a, errA := strconv.Atoi(fields[0])
	b, errB := strconv.Atoi(fields[1])
	if errA != nil || errB != nil || a < 0 || b < 0 {
		return 0, 0, false
	}

	return a, b, true
}
