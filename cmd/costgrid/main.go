// Command costgrid runs one least-cost path search on a generated or loaded
// cost map and reports its duration and final cost.
//
// Usage:
//
//	costgrid [flags] <algorithm>
//
// Algorithms: GrassFire, Dijkstra, AstarL1, AstarL2, AstarOctile, WAstarL1,
// WAstarL2, WAstarOctile.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/costmap"
	"github.com/katalvlaran/costgrid/grid"
	"github.com/katalvlaran/costgrid/internal/solver"
)

// Exit codes.
const (
	exitOK     = 0
	exitNoPath = 1
	exitUsage  = 2
	exitError  = 3
)

type options struct {
	gridSize        int
	obstacles       int
	maxObstacleSize int
	seed            int64
	mapFile         string
	xs, ys, xf, yf  int
	weight          float64
	maxIterations   int
	orthogonal      bool
	render          bool
	logLevel        string
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("costgrid", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: costgrid [flags] <%s>\n", strings.Join(solver.Algorithms, "|"))
		fs.PrintDefaults()
	}

	var o options
	fs.IntVar(&o.gridSize, "grid-size", 100, "width and height of the generated map")
	fs.IntVar(&o.obstacles, "number-obstacles", costmap.DefaultObstacles, "number of generated obstacles")
	fs.IntVar(&o.maxObstacleSize, "max-obstacle-size", costmap.DefaultMaxObstacle, "largest obstacle side")
	fs.Int64Var(&o.seed, "seed", 0, "random seed of the generated map (0 selects a fixed default)")
	fs.StringVar(&o.mapFile, "map", "", "read the cost map from a text file instead of generating one")
	fs.IntVar(&o.xs, "xs", 0, "source x")
	fs.IntVar(&o.ys, "ys", 0, "source y")
	fs.IntVar(&o.xf, "xf", -1, "goal x (default min(30, width-1))")
	fs.IntVar(&o.yf, "yf", -1, "goal y (default height-1)")
	fs.Float64Var(&o.weight, "weight", solver.DefaultWeight, "ε of the weighted A* variants")
	fs.IntVar(&o.maxIterations, "max-iterations", astar.DefaultMaxIterations, "expansion cap, 0 disables it")
	fs.BoolVar(&o.orthogonal, "conn4", false, "restrict best-first searches to 4-connected moves")
	fs.BoolVar(&o.render, "render", false, "print the cost map with the path overlaid")
	fs.StringVar(&o.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}
	if fs.NArg() != 1 {
		fs.Usage()
		return exitUsage
	}
	algo, err := solver.Canonical(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitUsage
	}

	var level slog.Level
	if err = level.UnmarshalText([]byte(o.logLevel)); err != nil {
		fmt.Fprintf(stderr, "costgrid: bad -log-level %q\n", o.logLevel)
		return exitUsage
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	g, err := loadGrid(o)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	src := grid.Coordinate{X: o.xs, Y: o.ys}
	goal := defaultGoal(o, g)
	logger.Debug("costgrid: map ready", "width", g.Width, "height", g.Height,
		"source", src, "goal", goal, "algorithm", algo)

	start := time.Now()
	out, err := solver.Solve(g, src, goal, algo, solver.Options{
		Weight:        o.weight,
		MaxIterations: o.maxIterations,
		Orthogonal:    o.orthogonal,
		Logger:        logger,
	})
	elapsed := time.Since(start)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}

	ms := float64(elapsed.Nanoseconds()) / 1e6
	if out.Status != astar.Found {
		fmt.Fprintf(stdout, "Path search took %.3fms, no path: %s (expanded %d)", ms, out.Status, out.Expanded)
		conn := grid.Conn8
		if o.orthogonal || algo == solver.GrassFire {
			conn = grid.Conn4
		}
		if out.Status == astar.Exhausted && !g.Connected(src, goal, conn) {
			fmt.Fprint(stdout, " (goal in a different region)")
		}
		fmt.Fprintln(stdout)
		return exitNoPath
	}
	fmt.Fprintf(stdout, "Path search took %.3fms, final cost: %g (%d steps, expanded %d)\n",
		ms, out.Cost, len(out.Path), out.Expanded)
	if o.render {
		fmt.Fprintln(stdout, g.CostToGoString())
		fmt.Fprintln(stdout)
		fmt.Fprintln(stdout, g.PathString(out.Path))
	}
	return exitOK
}

func loadGrid(o options) (*grid.Grid, error) {
	if o.mapFile != "" {
		b, err := os.ReadFile(o.mapFile)
		if err != nil {
			return nil, fmt.Errorf("costgrid: %w", err)
		}
		m, err := costmap.Parse(string(b))
		if err != nil {
			return nil, fmt.Errorf("costgrid: %s: %w", o.mapFile, err)
		}
		return m.Grid()
	}
	if o.obstacles < 0 || o.maxObstacleSize < 1 {
		return nil, fmt.Errorf("costgrid: -number-obstacles must be ≥ 0 and -max-obstacle-size ≥ 1")
	}

	m, err := costmap.Random(o.gridSize, o.gridSize,
		costmap.WithSeed(o.seed),
		costmap.WithObstacles(o.obstacles),
		costmap.WithMaxObstacleSize(o.maxObstacleSize),
		costmap.WithClearCells([2]int{o.xs, o.ys}, goalXY(o, o.gridSize, o.gridSize)),
	)
	if err != nil {
		return nil, fmt.Errorf("costgrid: %w", err)
	}
	return m.Grid()
}

func defaultGoal(o options, g *grid.Grid) grid.Coordinate {
	xy := goalXY(o, g.Width, g.Height)
	return grid.Coordinate{X: xy[0], Y: xy[1]}
}

func goalXY(o options, w, h int) [2]int {
	x, y := o.xf, o.yf
	if x < 0 {
		x = min(30, w-1)
	}
	if y < 0 {
		y = h - 1
	}
	return [2]int{x, y}
}
