package solver_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/costmap"
	"github.com/katalvlaran/costgrid/grid"
	"github.com/katalvlaran/costgrid/internal/solver"
)

func xy(x, y int) grid.Coordinate { return grid.Coordinate{X: x, Y: y} }

func TestCanonical(t *testing.T) {
	got, err := solver.Canonical("astarl2")
	require.NoError(t, err)
	assert.Equal(t, solver.AstarL2, got)

	_, err = solver.Canonical("BFS")
	assert.ErrorIs(t, err, solver.ErrUnknownAlgorithm)
}

func TestSolve_AllAlgorithms(t *testing.T) {
	src, goal := xy(0, 0), xy(39, 39)
	// Every obstacle crossable, so a route always exists.
	m, err := costmap.Random(40, 40, costmap.WithSeed(3), costmap.WithObstacles(20),
		costmap.WithMaxObstacleSize(8), costmap.WithCrossableRatio(1))
	require.NoError(t, err)
	g, err := m.Grid()
	require.NoError(t, err)

	opt, err := solver.Solve(g, src, goal, solver.Dijkstra, solver.Options{})
	require.NoError(t, err)
	require.Equal(t, astar.Found, opt.Status)

	for _, name := range solver.Algorithms {
		t.Run(name, func(t *testing.T) {
			out, err := solver.Solve(g, src, goal, name, solver.Options{})
			require.NoError(t, err)
			assert.Equal(t, name, out.Algorithm)
			require.Equal(t, astar.Found, out.Status)
			assert.Equal(t, src, out.Path.Coordinates()[0])
			assert.Equal(t, goal, out.Path.Coordinates()[len(out.Path)-1])
			assert.Equal(t, out.Path.Cost(), out.Cost)
			assert.Positive(t, out.Expanded)

			switch name {
			case solver.AstarL2, solver.AstarOctile:
				assert.InDelta(t, opt.Cost, out.Cost, 1e-6)
			case solver.WAstarL2, solver.WAstarOctile:
				assert.LessOrEqual(t, out.Cost, solver.DefaultWeight*opt.Cost+1e-6)
			}
		})
	}
}

func TestSolve_GrassFireNoPath(t *testing.T) {
	g, _ := grid.New(3, 1, func(x, _ int) float64 {
		if x == 1 {
			return grid.Impassable
		}
		return 1
	})
	out, err := solver.Solve(g, xy(0, 0), xy(2, 0), solver.GrassFire, solver.Options{})
	require.NoError(t, err)
	assert.Equal(t, astar.Exhausted, out.Status)
	assert.True(t, out.Path.Empty())
	assert.True(t, math.IsInf(out.Cost, 1))
}

func TestSolve_Options(t *testing.T) {
	g, _ := grid.New(20, 20, nil)

	out, err := solver.Solve(g, xy(0, 0), xy(19, 19), solver.AstarL2, solver.Options{MaxIterations: 2})
	require.NoError(t, err)
	assert.Equal(t, astar.BudgetExceeded, out.Status)

	out, err = solver.Solve(g, xy(0, 0), xy(3, 3), solver.Dijkstra, solver.Options{Orthogonal: true})
	require.NoError(t, err)
	assert.InDelta(t, 6.0, out.Cost, 1e-9)

	_, err = solver.Solve(g, xy(0, 0), xy(3, 3), solver.WAstarL1, solver.Options{Weight: -2})
	assert.ErrorIs(t, err, astar.ErrOptionViolation)

	_, err = solver.Solve(g, xy(0, 0), xy(30, 3), solver.GrassFire, solver.Options{})
	assert.ErrorIs(t, err, grid.ErrOutOfBounds)

	_, err = solver.Solve(nil, xy(0, 0), xy(3, 3), solver.AstarL1, solver.Options{})
	assert.ErrorIs(t, err, astar.ErrNilGrid)
}
