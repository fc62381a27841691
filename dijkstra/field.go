package dijkstra

import (
	"fmt"
	"math"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/grid"
)

// At returns the distance of (x, y), +Inf if unreached.
// Panics if (x, y) lies outside the field.
func (f *Field) At(x, y int) float64 {
	if x < 0 || x >= f.Width || y < 0 || y >= f.Height {
		panic(fmt.Sprintf("dijkstra: (%d,%d) outside %d×%d field", x, y, f.Width, f.Height))
	}
	return f.Dist[y*f.Width+x]
}

// Rows returns the distances as rows indexed [y][x].
func (f *Field) Rows() [][]float64 {
	out := make([][]float64, f.Height)
	for y := range out {
		out[y] = append([]float64(nil), f.Dist[y*f.Width:(y+1)*f.Width]...)
	}
	return out
}

// PathTo rebuilds the shortest path from the source to goal.
// Returns a nil path and nil error if goal was not reached, and
// ErrNoPredecessors if the field was built without WithReturnPath.
func (f *Field) PathTo(goal grid.Coordinate) (grid.Path, error) {
	if f.Prev == nil {
		return nil, ErrNoPredecessors
	}
	if goal.X < 0 || goal.X >= f.Width || goal.Y < 0 || goal.Y >= f.Height {
		return nil, fmt.Errorf("dijkstra: goal: %w: (%d,%d)", grid.ErrOutOfBounds, goal.X, goal.Y)
	}
	idx := goal.Y*f.Width + goal.X
	if math.IsInf(f.Dist[idx], 1) {
		return nil, nil
	}

	var rev grid.Path
	for idx != grid.NoParent && len(rev) <= len(f.Dist) {
		rev = append(rev, grid.Step{X: idx % f.Width, Y: idx / f.Width, Cost: f.Dist[idx]})
		idx = f.Prev[idx]
	}
	out := make(grid.Path, len(rev))
	for i, s := range rev {
		out[len(rev)-1-i] = s
	}
	return out, nil
}

// ShortestPath finds a least-cost path from src to goal with astar.Search
// and the Zero heuristic, which is Dijkstra's algorithm. The Zero heuristic
// is applied after opts and overrides any heuristic they set.
func ShortestPath(g *grid.Grid, src, goal grid.Coordinate, opts ...astar.Option) (astar.Result, error) {
	all := make([]astar.Option, 0, len(opts)+1)
	all = append(all, opts...)
	all = append(all, astar.WithHeuristic(astar.Zero{}))
	return astar.Search(g, src, goal, all...)
}
