package grid

import (
	"errors"
	"math"
)

// Sentinel errors for grid operations.
var (
	// ErrEmptyGrid indicates a non-positive width or height.
	ErrEmptyGrid = errors.New("grid: width and height must be positive")
	// ErrNegativeCost indicates a cell cost below zero (or NaN).
	ErrNegativeCost = errors.New("grid: cell cost must be non-negative")
	// ErrOutOfBounds indicates a coordinate outside [0,Width) × [0,Height).
	ErrOutOfBounds = errors.New("grid: coordinate out of bounds")
)

// DefaultCost is the cost-to-go of every cell when New receives a nil CostFunc.
const DefaultCost = 1.0

// NoParent marks a cell with no predecessor on the current search tree.
const NoParent = -1

// Impassable is the cost-to-go of an obstacle cell.
var Impassable = math.Inf(1)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// String returns "conn4" or "conn8".
func (c Connectivity) String() string {
	if c == Conn8 {
		return "conn8"
	}
	return "conn4"
}

var (
	offsets4 = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the neighbor offsets for conn. The slice is shared;
// callers must not modify it.
func Offsets(conn Connectivity) [][2]int {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// CostFunc yields the cost-to-go of cell (x, y). Return Impassable for an obstacle.
type CostFunc func(x, y int) float64

// Coordinate is a cell position on the grid.
type Coordinate struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Cell is the per-coordinate record owned by a Grid.
type Cell struct {
	X, Y int

	// CostToGo is the static cost of entering this cell; Impassable for obstacles.
	CostToGo float64

	// Cost is the best known accumulated cost from the search source, +Inf if unknown.
	Cost float64
	// Parent is the row-major index of the predecessor, or NoParent.
	Parent int
	// H is the heuristic estimate to the goal (best-first search only).
	H float64
}

// Passable reports whether the cell can be entered.
func (c *Cell) Passable() bool { return !math.IsInf(c.CostToGo, 1) }

// Reached reports whether the current search assigned the cell a finite cost.
func (c *Cell) Reached() bool { return !math.IsInf(c.Cost, 1) }

// Step is one cell of a Path together with its accumulated cost.
type Step struct {
	X    int     `json:"x"`
	Y    int     `json:"y"`
	Cost float64 `json:"cost"`
}

// Path is an ordered sequence of steps from source to goal, both inclusive.
// An empty Path means no path was found; a single-step Path is a search whose
// source equals its goal.
type Path []Step

// Empty reports whether p represents "no path".
func (p Path) Empty() bool { return len(p) == 0 }

// Cost returns the accumulated cost of the last step, or +Inf for an empty path.
func (p Path) Cost() float64 {
	if len(p) == 0 {
		return math.Inf(1)
	}
	return p[len(p)-1].Cost
}

// Coordinates returns the positions of p in order.
func (p Path) Coordinates() []Coordinate {
	out := make([]Coordinate, len(p))
	for i, s := range p {
		out[i] = Coordinate{X: s.X, Y: s.Y}
	}
	return out
}

// Index returns the position of (x, y) in p, or -1.
func (p Path) Index(x, y int) int {
	for i, s := range p {
		if s.X == x && s.Y == y {
			return i
		}
	}
	return -1
}
