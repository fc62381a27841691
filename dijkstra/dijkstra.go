package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/grid"
)

// Dijkstra computes shortest distances from Options.Source to every cell of g.
//
// Preconditions and validation (in order):
//  1. Source must be supplied (ErrNoSource).
//  2. g must be non-nil (ErrNilGrid).
//  3. Source must lie inside g (grid.ErrOutOfBounds, wrapped).
//
// Cell costs are validated non-negative by grid.New, so no edge pre-scan is
// needed. A source that is itself a wall (Impassable, or CostToGo at or above
// InfCellThreshold) is settled at distance 0 and never expanded.
//
// Complexity:
//
//   - Time:  O(N·d·log N) for N cells and d = 4 or 8 neighbors.
//   - Each cell is settled at most once: N extractions from the heap.
//   - Each relaxation may push a duplicate entry: up to N·d pushes.
//   - Space: O(N) for Dist, Prev and visited, O(N·d) worst case for the heap
//     under lazy decrease-key.
func Dijkstra(g *grid.Grid, opts ...Option) (*Field, error) {
	// 1) Build Options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 2) Validate Source, grid, bounds
	if !cfg.hasSource {
		return nil, ErrNoSource
	}
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := g.Check(cfg.Source); err != nil {
		return nil, fmt.Errorf("dijkstra: source: %w", err)
	}

	// 3) Allocate the field. Prev only when paths are requested.
	n := g.Len()
	f := &Field{
		Width:  g.Width,
		Height: g.Height,
		Source: cfg.Source,
		Dist:   make([]float64, n),
	}
	if cfg.ReturnPath {
		f.Prev = make([]int, n)
	}

	// 4) Run
	r := &runner{
		g:       g,
		options: cfg,
		field:   f,
		visited: make([]bool, n),
		offsets: grid.Offsets(cfg.Conn),
		pq:      make(nodePQ, 0, 64),
	}
	r.init()
	r.process()

	return f, nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *grid.Grid // read-only: only static costs are used
	options Options
	field   *Field
	visited []bool // distance of the cell is final
	offsets [][2]int
	pq      nodePQ // min-heap of *nodeItem, lazy decrease-key
}

// init sets every distance to +Inf, every predecessor to NoParent and pushes
// the source at distance 0.
func (r *runner) init() {
	// 1) Dist = +Inf, Prev = NoParent everywhere.
	for i := range r.field.Dist {
		r.field.Dist[i] = math.Inf(1)
	}
	for i := range r.field.Prev {
		r.field.Prev[i] = grid.NoParent
	}

	// 2) Distance to the source is zero.
	src := r.g.Index(r.options.Source.X, r.options.Source.Y)
	r.field.Dist[src] = 0

	// 3) Seed the heap with the source.
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: src, dist: 0})
}

// process pops the closest unsettled cell until the heap empties or the
// closest distance exceeds MaxDistance.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		// 1) Extract the closest entry.
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.idx

		// 2) Stale duplicate of a settled cell.
		if r.visited[u] {
			continue
		}

		// 3) Heap is ordered, so nothing closer remains.
		if item.dist > r.options.MaxDistance {
			break
		}

		// 4) Settle and relax.
		r.visited[u] = true
		r.field.Settled++
		r.relax(u)
	}
}

func (r *runner) passable(c *grid.Cell) bool {
	return c.Passable() && c.CostToGo < r.options.InfCellThreshold
}

// relax improves the distance of every neighbor of u that is not yet settled.
func (r *runner) relax(u int) {
	cur := r.g.At(u)
	// Only a wall source gets here without being passable.
	if !r.passable(cur) {
		return
	}

	for _, d := range r.offsets {
		// 1) Skip out-of-bounds, walls and settled cells.
		next := r.g.TryCell(cur.X+d[0], cur.Y+d[1])
		if next == nil || !r.passable(next) {
			continue
		}
		v := r.g.Index(next.X, next.Y)
		if r.visited[v] {
			continue
		}

		// 2) Tentative distance through u.
		w := r.step(cur, next, d)
		if math.IsInf(w, 1) {
			continue
		}
		nd := r.field.Dist[u] + w

		// 3) Keep only improvements within MaxDistance.
		if nd > r.options.MaxDistance || nd >= r.field.Dist[v] {
			continue
		}

		// 4) Record and push a fresh entry; the old one goes stale.
		r.field.Dist[v] = nd
		if r.field.Prev != nil {
			r.field.Prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{idx: v, dist: nd})
	}
}

func (r *runner) step(cur, next *grid.Cell, d [2]int) float64 {
	if r.options.Step == astar.StepEnter {
		return next.CostToGo
	}
	dist := 1.0
	if d[0] != 0 && d[1] != 0 {
		dist = math.Sqrt2
	}
	return dist * (cur.CostToGo + next.CostToGo) / 2
}

// nodeItem is a cell index and its tentative distance from the source.
type nodeItem struct {
	idx  int
	dist float64
}

// nodePQ is a min-heap of *nodeItem ordered by dist. Outdated entries stay in
// the heap and are skipped when popped (visited check).
type nodePQ []*nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

// Pop removes and returns the last element.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
