package dijkstra

import (
	"errors"
	"math"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/grid"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNoSource indicates that Source was not supplied.
	ErrNoSource = errors.New("dijkstra: source cell not set")

	// ErrNilGrid indicates that a nil *grid.Grid was passed to Dijkstra.
	ErrNilGrid = errors.New("dijkstra: grid is nil")

	// ErrNoPredecessors indicates that a path was requested from a Field
	// computed without WithReturnPath.
	ErrNoPredecessors = errors.New("dijkstra: field has no predecessor table")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfCellThreshold was set to zero or
	// a negative value, which would wall off every cell.
	ErrBadInfThreshold = errors.New("dijkstra: InfCellThreshold must be positive")
)

// Options configures the behavior of the Dijkstra algorithm.
//
// Source           – starting cell (required).
// ReturnPath       – if true, keep the predecessor table in the Field.
// MaxDistance      – cells farther than this are left unsettled. Default +Inf.
// InfCellThreshold – cells whose CostToGo ≥ threshold are impassable. Default +Inf.
// Conn, Step       – neighbor set and step-cost model, as in astar.
type Options struct {
	Source           grid.Coordinate
	ReturnPath       bool
	MaxDistance      float64
	InfCellThreshold float64
	Conn             grid.Connectivity
	Step             astar.StepCost

	hasSource bool
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting cell. Must be supplied.
func Source(c grid.Coordinate) Option {
	return func(o *Options) {
		o.Source = c
		o.hasSource = true
	}
}

// WithReturnPath keeps the predecessor table so Field.PathTo works.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a distance cap. Cells whose shortest distance would
// exceed max are not settled. Panics with ErrBadMaxDistance if max < 0 or NaN.
func WithMaxDistance(max float64) Option {
	if max < 0 || math.IsNaN(max) {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfCellThreshold treats every cell with CostToGo ≥ t as a wall.
// Panics with ErrBadInfThreshold if t <= 0 or NaN.
func WithInfCellThreshold(t float64) Option {
	if t <= 0 || math.IsNaN(t) {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfCellThreshold = t
	}
}

// WithConnectivity selects 4- or 8-connected moves. Unknown values are ignored.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c == grid.Conn4 || c == grid.Conn8 {
			o.Conn = c
		}
	}
}

// WithStepCost selects the step-cost model. Unknown values are ignored.
func WithStepCost(s astar.StepCost) Option {
	return func(o *Options) {
		if s == astar.StepAverage || s == astar.StepEnter {
			o.Step = s
		}
	}
}

// DefaultOptions returns an Options struct initialized with sensible defaults.
//
// Defaults:
//   - ReturnPath:       false.
//   - MaxDistance:      +Inf (explore all reachable cells).
//   - InfCellThreshold: +Inf (only Impassable cells are walls).
//   - Conn8 moves, StepAverage costs.
func DefaultOptions() Options {
	return Options{
		MaxDistance:      math.Inf(1),
		InfCellThreshold: math.Inf(1),
		Conn:             grid.Conn8,
		Step:             astar.StepAverage,
	}
}

// Field is a single-source distance table over a grid.
type Field struct {
	Width, Height int
	Source        grid.Coordinate

	// Dist holds the accumulated cost of each cell in row-major order,
	// +Inf for unreached or unsettled cells.
	Dist []float64
	// Prev holds the row-major predecessor of each cell (grid.NoParent for
	// the source and unreached cells). Nil unless ReturnPath was set.
	Prev []int
	// Settled counts the cells whose distance is final.
	Settled int
}
