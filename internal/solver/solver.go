// Package solver dispatches a named algorithm to the matching search package
// and normalizes the outcome for the CLI and the HTTP API.
package solver

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/dijkstra"
	"github.com/katalvlaran/costgrid/grassfire"
	"github.com/katalvlaran/costgrid/grid"
)

// ErrUnknownAlgorithm is returned for a name outside Algorithms.
var ErrUnknownAlgorithm = errors.New("solver: unknown algorithm")

// Algorithm names accepted by Solve.
const (
	GrassFire    = "GrassFire"
	Dijkstra     = "Dijkstra"
	AstarL1      = "AstarL1"
	AstarL2      = "AstarL2"
	AstarOctile  = "AstarOctile"
	WAstarL1     = "WAstarL1"
	WAstarL2     = "WAstarL2"
	WAstarOctile = "WAstarOctile"
)

// Algorithms lists every accepted name in display order.
var Algorithms = []string{GrassFire, Dijkstra, AstarL1, AstarL2, AstarOctile, WAstarL1, WAstarL2, WAstarOctile}

// DefaultWeight is the ε used by the weighted variants when none is given.
const DefaultWeight = 1.5

// Options tunes one Solve call.
type Options struct {
	// Weight is ε for the WAstar variants; 0 selects DefaultWeight.
	Weight float64
	// MaxIterations caps best-first expansions; 0 disables the cap.
	MaxIterations int
	// Orthogonal restricts the best-first variants to 4-connected moves.
	Orthogonal bool
	// Logger receives search diagnostics. Nil keeps the searches silent.
	Logger *slog.Logger
}

// Outcome is the algorithm-independent result of Solve.
type Outcome struct {
	Algorithm string
	Status    astar.Status
	Path      grid.Path
	// Cost is Path.Cost(): +Inf unless Status is astar.Found.
	Cost float64
	// Expanded counts expansions (best-first) or worklist pops (GrassFire).
	Expanded int
	// Pushed counts frontier insertions (best-first) or relaxations (GrassFire).
	Pushed int
}

// Canonical returns the accepted spelling of name, matching case-insensitively.
func Canonical(name string) (string, error) {
	for _, a := range Algorithms {
		if strings.EqualFold(a, name) {
			return a, nil
		}
	}
	return "", fmt.Errorf("%w: %q (want one of %s)", ErrUnknownAlgorithm, name, strings.Join(Algorithms, ", "))
}

// Solve runs the named algorithm from src to goal on g.
func Solve(g *grid.Grid, src, goal grid.Coordinate, name string, o Options) (Outcome, error) {
	algo, err := Canonical(name)
	if err != nil {
		return Outcome{}, err
	}
	if algo == GrassFire {
		return solveGrassFire(g, src, goal, o)
	}

	conn := grid.Conn8
	if o.Orthogonal {
		conn = grid.Conn4
	}
	opts := []astar.Option{
		astar.WithMaxIterations(o.MaxIterations),
		astar.WithConnectivity(conn),
		astar.WithLogger(o.Logger),
	}
	var res astar.Result
	if algo == Dijkstra {
		res, err = dijkstra.ShortestPath(g, src, goal, opts...)
	} else {
		var h astar.Heuristic
		if h, err = heuristicFor(algo, o.Weight); err != nil {
			return Outcome{}, err
		}
		res, err = astar.Search(g, src, goal, append(opts, astar.WithHeuristic(h))...)
	}
	if err != nil {
		return Outcome{}, err
	}
	return Outcome{
		Algorithm: algo,
		Status:    res.Status,
		Path:      res.Path,
		Cost:      res.Cost,
		Expanded:  res.Expanded,
		Pushed:    res.Pushed,
	}, nil
}

func heuristicFor(algo string, weight float64) (astar.Heuristic, error) {
	eps := 1.0
	if strings.HasPrefix(algo, "WAstar") {
		eps = weight
		if eps == 0 {
			eps = DefaultWeight
		}
	}
	base := strings.ToLower(algo[strings.Index(algo, "star")+len("star"):])
	return astar.ParseHeuristic(base, eps)
}

func solveGrassFire(g *grid.Grid, src, goal grid.Coordinate, o Options) (Outcome, error) {
	if g == nil {
		return Outcome{}, grassfire.ErrNilGrid
	}
	if err := g.Check(goal); err != nil {
		return Outcome{}, fmt.Errorf("grassfire: goal: %w", err)
	}
	r, err := grassfire.Propagate(g, src, grassfire.WithLogger(o.Logger))
	if err != nil {
		return Outcome{}, err
	}
	path, err := r.PathTo(goal)
	if err != nil {
		return Outcome{}, err
	}
	out := Outcome{
		Algorithm: GrassFire,
		Status:    astar.Found,
		Path:      path,
		Cost:      path.Cost(),
		Expanded:  r.Stats.Pops,
		Pushed:    r.Stats.Relaxations,
	}
	if path.Empty() {
		out.Status = astar.Exhausted
	}
	return out, nil
}
