package astar

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/costgrid/grid"
)

// noGoal makes the runner settle every reachable cell.
const noGoal = -1

// Search finds a least-cost path from src to goal on g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGrid).
//  2. src and goal must lie inside g (grid.ErrOutOfBounds, wrapped).
//  3. options must be valid (ErrOptionViolation).
//
// An unreachable goal or an exhausted iteration budget is reported through
// Result.Status with a nil error. The grid lock is held for the whole run and
// the per-cell state it leaves behind (Cost, Parent, H) stays readable until
// the next search.
//
// Complexity:
//
//   - Time:  O(N·d·log N) worst case for N cells and d = 4 or 8 neighbors;
//     an informative heuristic expands far fewer cells.
//   - Each cell may be pushed once per improvement, so the frontier holds up
//     to N·d entries under lazy decrease-key; stale ones are skipped on pop.
//   - Space: O(N) for the grid state plus the frontier.
func Search(g *grid.Grid, src, goal grid.Coordinate, opts ...Option) (Result, error) {
	// 1) Validate grid and endpoints
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := g.Check(src); err != nil {
		return Result{}, fmt.Errorf("astar: source: %w", err)
	}
	if err := g.Check(goal); err != nil {
		return Result{}, fmt.Errorf("astar: goal: %w", err)
	}
	// 2) Build and validate Options
	cfg, err := build(opts)
	if err != nil {
		return Result{}, err
	}

	// 3) Run under the grid lock
	g.Lock()
	defer g.Unlock()

	r := newRunner(g, cfg, src, g.Index(goal.X, goal.Y))
	return r.run(), nil
}

// SearchAll expands every cell reachable from src and leaves the accumulated
// cost of each in the grid. The heuristic is ignored. The returned Status is
// Exhausted, or BudgetExceeded if the cap was hit first.
func SearchAll(g *grid.Grid, src grid.Coordinate, opts ...Option) (Result, error) {
	if g == nil {
		return Result{}, ErrNilGrid
	}
	if err := g.Check(src); err != nil {
		return Result{}, fmt.Errorf("astar: source: %w", err)
	}
	cfg, err := build(opts)
	if err != nil {
		return Result{}, err
	}

	g.Lock()
	defer g.Unlock()

	r := newRunner(g, cfg, src, noGoal)
	return r.run(), nil
}

func build(opts []Option) (Options, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return Options{}, cfg.err
	}
	return cfg, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g       *grid.Grid      // searched grid; its per-cell state is rewritten
	cfg     Options         // validated options
	src     grid.Coordinate // search source
	goal    int             // row-major goal index or noGoal
	gx, gy  int             // goal coordinates, for the heuristic
	offsets [][2]int        // neighbor offsets of cfg.Conn
	pq      frontier        // (f, h, seq) min-heap of entries
	seq     uint64          // insertion counter for FIFO ties
	res     Result          // counters accumulated during the run
}

func newRunner(g *grid.Grid, cfg Options, src grid.Coordinate, goal int) *runner {
	r := &runner{
		g:       g,
		cfg:     cfg,
		src:     src,
		goal:    goal,
		offsets: grid.Offsets(cfg.Conn),
		pq:      make(frontier, 0, 64),
	}
	if goal != noGoal {
		r.gx, r.gy = g.Coordinate(goal)
	}
	return r
}

// init resets the grid and pushes the source with g = 0.
func (r *runner) init() {
	// 1) Cost = +Inf, Parent = NoParent, H = 0 for every cell.
	r.g.Reset()
	heap.Init(&r.pq)

	// 2) The source costs nothing to stand on.
	start := r.g.Index(r.src.X, r.src.Y)
	c := r.g.At(start)
	c.Cost = 0

	// 3) Seed the frontier with f = h(source).
	c.H = r.estimate(r.src.X, r.src.Y)
	r.push(start, 0, c.H)
}

func (r *runner) estimate(x, y int) float64 {
	if r.goal == noGoal {
		return 0
	}
	return r.cfg.Heuristic.Estimate(x, y, r.gx, r.gy)
}

func (r *runner) push(idx int, g, h float64) {
	heap.Push(&r.pq, entry{idx: idx, g: g, h: h, f: g + h, seq: r.seq})
	r.seq++
	r.res.Pushed++
}

// run is the main loop: pop the best entry, stop on the goal or the budget,
// otherwise relax its neighbors.
func (r *runner) run() Result {
	r.init()
	log := r.cfg.Logger

	for r.pq.Len() > 0 {
		// 1) Pop the entry with the lowest (f, h, seq).
		it := heap.Pop(&r.pq).(entry)
		cur := r.g.At(it.idx)

		// 2) Skip stale entries: a cheaper one was pushed after this one.
		if it.g > cur.Cost {
			r.res.Stale++
			continue
		}

		// 3) Goal closed on pop: its cost is final.
		if it.idx == r.goal {
			r.res.Status = Found
			r.res.Path = r.g.Reconstruct(it.idx)
			r.res.Cost = cur.Cost
			log.Debug("astar: goal reached",
				"cost", cur.Cost, "expanded", r.res.Expanded, "pushed", r.res.Pushed)
			return r.res
		}

		// 4) Budget check before expanding.
		if r.cfg.MaxIterations > 0 && r.res.Expanded >= r.cfg.MaxIterations {
			log.Warn("astar: iteration budget exhausted",
				"max_iterations", r.cfg.MaxIterations,
				"frontier", r.pq.Len(),
				"source_x", r.src.X, "source_y", r.src.Y)
			return r.finish(BudgetExceeded)
		}

		// 5) Expand.
		r.res.Expanded++
		r.cfg.OnExpand(grid.Coordinate{X: cur.X, Y: cur.Y})
		r.relax(it.idx, cur)
	}

	// 6) Frontier empty: the goal is unreachable.
	if r.goal != noGoal {
		log.Debug("astar: frontier exhausted without reaching the goal",
			"expanded", r.res.Expanded, "pushed", r.res.Pushed)
	}
	return r.finish(Exhausted)
}

func (r *runner) finish(s Status) Result {
	out := notFound(s)
	out.Expanded, out.Pushed, out.Stale = r.res.Expanded, r.res.Pushed, r.res.Stale
	return out
}

// relax tries to improve every neighbor of cur (stored at index u).
func (r *runner) relax(u int, cur *grid.Cell) {
	// An impassable source is settled but never left.
	if !cur.Passable() {
		return
	}

	for _, d := range r.offsets {
		// 1) Skip out-of-bounds and impassable neighbors.
		nx, ny := cur.X+d[0], cur.Y+d[1]
		next := r.g.TryCell(nx, ny)
		if next == nil || !next.Passable() {
			continue
		}

		// 2) Tentative g through cur.
		step := r.stepCost(cur, next, d)
		if math.IsInf(step, 1) {
			continue
		}
		ng := cur.Cost + step

		// 3) No improvement.
		if next.Cost <= ng {
			continue
		}

		// 4) Record the better route and push; older entries go stale.
		next.Cost = ng
		next.Parent = u
		next.H = r.estimate(nx, ny)
		r.push(r.g.Index(nx, ny), ng, next.H)
	}
}

func (r *runner) stepCost(cur, next *grid.Cell, d [2]int) float64 {
	if r.cfg.Step == StepEnter {
		return next.CostToGo
	}
	dist := 1.0
	if d[0] != 0 && d[1] != 0 {
		dist = math.Sqrt2
	}
	return dist * (cur.CostToGo + next.CostToGo) / 2
}
