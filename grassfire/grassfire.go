package grassfire

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/costgrid/grid"
)

// Propagate computes the accumulated cost from src to every reachable cell
// of g, storing it in each cell's Cost field. Impassable cells are never
// entered; an impassable source is still seeded with cost 0.
//
// The grid lock is held for the whole run.
func Propagate(g *grid.Grid, src grid.Coordinate, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Check(src); err != nil {
		return nil, fmt.Errorf("grassfire: source: %w", err)
	}
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	g.Lock()
	defer g.Unlock()

	g.Reset()
	start := g.Index(src.X, src.Y)
	g.At(start).Cost = 0

	var st Stats
	offsets := grid.Offsets(grid.Conn4)
	work := []int{start}
	for len(work) > 0 {
		u := work[len(work)-1]
		work = work[:len(work)-1]
		st.Pops++

		cur := g.At(u)
		for _, d := range offsets {
			nx, ny := cur.X+d[0], cur.Y+d[1]
			next := g.TryCell(nx, ny)
			if next == nil || !next.Passable() {
				continue
			}
			cost := cur.Cost + next.CostToGo
			if next.Cost <= cost {
				continue
			}
			next.Cost = cost
			st.Relaxations++
			work = append(work, g.Index(nx, ny))
		}
	}

	cfg.Logger.Debug("grassfire: propagation done",
		"source_x", src.X, "source_y", src.Y,
		"pops", st.Pops, "relaxations", st.Relaxations)

	return &Result{Source: src, Stats: st, g: g}, nil
}

// Cost returns the accumulated cost of (x,y), +Inf if unreached.
// (x,y) must be inside the grid.
func (r *Result) Cost(x, y int) float64 {
	r.g.Lock()
	defer r.g.Unlock()
	return r.g.Cell(x, y).Cost
}

// Costs returns a snapshot of the accumulated cost table indexed [y][x].
// Unreached cells hold +Inf.
func (r *Result) Costs() [][]float64 {
	r.g.Lock()
	defer r.g.Unlock()

	out := make([][]float64, r.g.Height)
	for y := range out {
		out[y] = make([]float64, r.g.Width)
		for x := range out[y] {
			out[y][x] = r.g.At(r.g.Index(x, y)).Cost
		}
	}
	return out
}

// String renders the accumulated cost map.
func (r *Result) String() string {
	r.g.Lock()
	defer r.g.Unlock()
	return r.g.AccumulatedString()
}

// PathTo reconstructs a least-cost path from the source to goal by descent
// over accumulated costs. It returns an empty Path if the goal was not
// reached.
//
// From each cell the walk only steps to a neighbor n with
// n.Cost + cur.CostToGo == cur.Cost, trying the lowest row-major index first.
// On zero-cost plateaus a branch can dead-end, so the walk backtracks; every
// cell is entered at most once.
func (r *Result) PathTo(goal grid.Coordinate) (grid.Path, error) {
	g := r.g
	if err := g.Check(goal); err != nil {
		return nil, fmt.Errorf("grassfire: goal: %w", err)
	}
	g.Lock()
	defer g.Unlock()

	at := g.Index(goal.X, goal.Y)
	if !g.At(at).Reached() {
		return nil, nil
	}
	src := g.Index(r.Source.X, r.Source.Y)

	// next[v] is the cell v was entered from, one step closer to the goal.
	next := map[int]int{at: -1}
	stack := []int{at}
	offsets := grid.Offsets(grid.Conn4)
	cand := make([]int, 0, len(offsets))
	found := false
	for len(stack) > 0 {
		u := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if u == src {
			found = true
			break
		}

		cur := g.At(u)
		cand = cand[:0]
		for _, d := range offsets {
			n := g.TryCell(cur.X+d[0], cur.Y+d[1])
			if n == nil || !n.Reached() {
				continue
			}
			ni := g.Index(n.X, n.Y)
			if !n.Passable() && ni != src {
				continue
			}
			if _, seen := next[ni]; seen {
				continue
			}
			if n.Cost+cur.CostToGo == cur.Cost {
				cand = append(cand, ni)
			}
		}
		// Push the highest index first so the lowest is explored first.
		sort.Sort(sort.Reverse(sort.IntSlice(cand)))
		for _, ni := range cand {
			next[ni] = u
			stack = append(stack, ni)
		}
	}
	if !found {
		c := g.At(at)
		return nil, fmt.Errorf("%w: from (%d,%d)", ErrBrokenChain, c.X, c.Y)
	}

	var path grid.Path
	for v := src; v >= 0; v = next[v] {
		c := g.At(v)
		path = append(path, grid.Step{X: c.X, Y: c.Y, Cost: c.Cost})
	}
	return path, nil
}

// ComputePath propagates costs from src and reconstructs the path to goal.
func ComputePath(g *grid.Grid, src, goal grid.Coordinate, opts ...Option) (grid.Path, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Check(goal); err != nil {
		return nil, fmt.Errorf("grassfire: goal: %w", err)
	}
	r, err := Propagate(g, src, opts...)
	if err != nil {
		return nil, err
	}
	return r.PathTo(goal)
}
