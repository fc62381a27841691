package astar

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math"
	"sync"

	"github.com/katalvlaran/costgrid/grid"
)

// Sentinel errors for best-first search.
var (
	// ErrNilGrid is returned if a nil grid pointer is passed.
	ErrNilGrid = errors.New("astar: grid is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("astar: invalid option supplied")
)

// DefaultMaxIterations caps the number of expansions of a single search.
const DefaultMaxIterations = 1_000_000

// Status is the outcome of a search.
type Status int

const (
	// Found means the goal was reached.
	Found Status = iota
	// Exhausted means the frontier emptied before reaching the goal.
	Exhausted
	// BudgetExceeded means MaxIterations expansions ran out first.
	BudgetExceeded
)

var statusNames = [...]string{"found", "exhausted", "budget_exceeded"}

// String returns the status name.
func (s Status) String() string {
	if s < 0 || int(s) >= len(statusNames) {
		return fmt.Sprintf("status(%d)", int(s))
	}
	return statusNames[s]
}

// MarshalText encodes the status name.
func (s Status) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// StepCost selects how moving between adjacent cells is charged.
type StepCost int

const (
	// StepAverage charges distance × (CostToGo(cur) + CostToGo(next)) / 2.
	StepAverage StepCost = iota
	// StepEnter charges CostToGo(next), ignoring move length.
	StepEnter
)

// Option configures a search via functional arguments.
// If an Option is invalid it is recorded internally and surfaced as
// ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
type Options struct {
	// Heuristic guides the search toward the goal. Defaults to Zero.
	Heuristic Heuristic

	// MaxIterations bounds the number of expansions. 0 disables the cap.
	MaxIterations int

	// Conn selects 4- or 8-connected moves. Defaults to grid.Conn8.
	Conn grid.Connectivity

	// Step selects the step-cost model. Defaults to StepAverage.
	Step StepCost

	// OnExpand is called with each cell just before its neighbors are relaxed.
	OnExpand func(c grid.Coordinate)

	// Logger receives diagnostics. Defaults to a discard logger.
	Logger *slog.Logger

	// internal error recorded during option parsing
	err error
}

var discard = sync.OnceValue(func() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
})

// DefaultOptions returns Options with sane defaults:
//   - Zero heuristic
//   - MaxIterations = DefaultMaxIterations
//   - Conn8 moves, StepAverage costs
//   - no-op OnExpand, discard logger.
func DefaultOptions() Options {
	return Options{
		Heuristic:     Zero{},
		MaxIterations: DefaultMaxIterations,
		Conn:          grid.Conn8,
		Step:          StepAverage,
		OnExpand:      func(grid.Coordinate) {},
		Logger:        discard(),
	}
}

// WithHeuristic sets the heuristic. A nil heuristic is ignored.
func WithHeuristic(h Heuristic) Option {
	return func(o *Options) {
		if h != nil {
			o.Heuristic = h
		}
	}
}

// WithMaxIterations caps the number of expansions.
//
//	n > 0: at most n expansions
//	n == 0: no cap
//	n < 0: invalid option → ErrOptionViolation
func WithMaxIterations(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxIterations cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxIterations = n
	}
}

// WithConnectivity selects 4- or 8-connected moves.
func WithConnectivity(c grid.Connectivity) Option {
	return func(o *Options) {
		if c != grid.Conn4 && c != grid.Conn8 {
			o.err = fmt.Errorf("%w: unknown connectivity %d", ErrOptionViolation, int(c))
			return
		}
		o.Conn = c
	}
}

// WithStepCost selects the step-cost model.
func WithStepCost(s StepCost) Option {
	return func(o *Options) {
		if s != StepAverage && s != StepEnter {
			o.err = fmt.Errorf("%w: unknown step cost %d", ErrOptionViolation, int(s))
			return
		}
		o.Step = s
	}
}

// WithOnExpand registers a callback run on every expansion.
func WithOnExpand(fn func(c grid.Coordinate)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnExpand = fn
		}
	}
}

// WithLogger routes diagnostics to l. A nil logger is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Path runs from source to goal; empty unless Status == Found.
	Path grid.Path
	// Cost is the accumulated cost of the goal, +Inf unless Status == Found.
	Cost float64
	// Status tells found, exhausted and budget-exceeded apart.
	Status Status
	// Expanded counts the cells whose neighbors were relaxed.
	Expanded int
	// Pushed counts frontier insertions, including the source.
	Pushed int
	// Stale counts popped entries skipped because the cell had improved since.
	Stale int
}

// Found reports whether the search reached the goal.
func (r Result) Found() bool { return r.Status == Found }

func notFound(s Status) Result {
	return Result{Cost: math.Inf(1), Status: s}
}
