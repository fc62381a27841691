package grid

import (
	"fmt"
	"math"
	"sync"
)

// Grid is a rectangular arena of cells indexed by flattened coordinate.
// Width and Height are fixed at construction; only search-scoped cell state
// changes afterwards.
type Grid struct {
	Width, Height int

	cells []Cell
	mu    sync.Mutex
}

// New builds a Grid of w×h cells with CostToGo = cost(x, y).
// A nil cost assigns DefaultCost to every cell.
// Returns ErrEmptyGrid if w or h is not positive and ErrNegativeCost if any
// cell cost is negative or NaN.
// Complexity: O(W×H) time and memory.
func New(w, h int, cost CostFunc) (*Grid, error) {
	if w <= 0 || h <= 0 {
		return nil, fmt.Errorf("%w: got %d×%d", ErrEmptyGrid, w, h)
	}
	g := &Grid{Width: w, Height: h, cells: make([]Cell, w*h)}
	for i := range g.cells {
		x, y := g.Coordinate(i)
		c := DefaultCost
		if cost != nil {
			c = cost(x, y)
		}
		if c < 0 || math.IsNaN(c) {
			return nil, fmt.Errorf("%w: cell (%d,%d) cost=%v", ErrNegativeCost, x, y, c)
		}
		g.cells[i] = Cell{X: x, Y: y, CostToGo: c}
	}
	g.Reset()

	return g, nil
}

// Uniform builds a w×h grid where every cell costs c.
func Uniform(w, h int, c float64) (*Grid, error) {
	return New(w, h, func(int, int) float64 { return c })
}

// Len returns the number of cells.
func (g *Grid) Len() int { return len(g.cells) }

// Contains reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) Contains(x, y int) bool {
	return x >= 0 && x < g.Width && y >= 0 && y < g.Height
}

// Index maps (x,y) to a row-major index: y*Width + x.
// Complexity: O(1).
func (g *Grid) Index(x, y int) int {
	return y*g.Width + x
}

// Coordinate converts a row-major index back to (x,y).
// Complexity: O(1).
func (g *Grid) Coordinate(idx int) (x, y int) {
	return idx % g.Width, idx / g.Width
}

// Cell returns the cell at (x,y). It panics if (x,y) is out of bounds;
// use TryCell when the coordinate is not known to be valid.
func (g *Grid) Cell(x, y int) *Cell {
	if !g.Contains(x, y) {
		panic(fmt.Sprintf("grid: cell (%d,%d) outside %d×%d", x, y, g.Width, g.Height))
	}
	return &g.cells[g.Index(x, y)]
}

// TryCell returns the cell at (x,y), or nil if out of bounds.
func (g *Grid) TryCell(x, y int) *Cell {
	if !g.Contains(x, y) {
		return nil
	}
	return &g.cells[g.Index(x, y)]
}

// At returns the cell stored at row-major index idx.
func (g *Grid) At(idx int) *Cell { return &g.cells[idx] }

// Check returns a wrapped ErrOutOfBounds if c lies outside the grid.
func (g *Grid) Check(c Coordinate) error {
	if !g.Contains(c.X, c.Y) {
		return fmt.Errorf("%w: (%d,%d) outside %d×%d", ErrOutOfBounds, c.X, c.Y, g.Width, g.Height)
	}
	return nil
}

// Neighbors4 returns the in-bounds orthogonal neighbors of (x,y) in N, E, S, W order.
func (g *Grid) Neighbors4(x, y int) []Coordinate { return g.Neighbors(x, y, Conn4) }

// Neighbors8 returns the in-bounds neighbors of (x,y) including diagonals,
// clockwise from N. (x,y) itself is never included.
func (g *Grid) Neighbors8(x, y int) []Coordinate { return g.Neighbors(x, y, Conn8) }

// Neighbors returns the in-bounds neighbors of (x,y) under conn.
func (g *Grid) Neighbors(x, y int, conn Connectivity) []Coordinate {
	offsets := Offsets(conn)
	out := make([]Coordinate, 0, len(offsets))
	for _, d := range offsets {
		nx, ny := x+d[0], y+d[1]
		if g.Contains(nx, ny) {
			out = append(out, Coordinate{X: nx, Y: ny})
		}
	}
	return out
}

// Reset clears search-scoped state: Cost = +Inf, Parent = NoParent, H = 0.
// Complexity: O(W×H).
func (g *Grid) Reset() {
	inf := math.Inf(1)
	for i := range g.cells {
		c := &g.cells[i]
		c.Cost = inf
		c.Parent = NoParent
		c.H = 0
	}
}

// Clone returns a grid with the same static costs and fresh search state.
func (g *Grid) Clone() *Grid {
	out := &Grid{Width: g.Width, Height: g.Height, cells: make([]Cell, len(g.cells))}
	for i, c := range g.cells {
		out.cells[i] = Cell{X: c.X, Y: c.Y, CostToGo: c.CostToGo}
	}
	out.Reset()

	return out
}

// Lock acquires exclusive use of the grid's search state for one run.
func (g *Grid) Lock() { g.mu.Lock() }

// Unlock releases the lock taken by Lock.
func (g *Grid) Unlock() { g.mu.Unlock() }

// Reconstruct walks Parent links from the cell at index goal back to the
// source and returns the path source-first. It returns an empty Path if the
// goal was not reached. Parent chains are acyclic by construction; a chain
// longer than the grid is treated as broken and yields an empty Path.
// Complexity: O(path length).
func (g *Grid) Reconstruct(goal int) Path {
	if goal < 0 || goal >= len(g.cells) || !g.cells[goal].Reached() {
		return nil
	}
	var path Path
	for at := goal; at != NoParent; at = g.cells[at].Parent {
		if len(path) > len(g.cells) {
			return nil
		}
		c := &g.cells[at]
		path = append(path, Step{X: c.X, Y: c.Y, Cost: c.Cost})
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
