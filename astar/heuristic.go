package astar

import (
	"fmt"
	"math"
	"strings"
)

// Heuristic estimates the remaining cost from (xs,ys) to (xf,yf).
// It must be a pure function of the coordinates.
type Heuristic interface {
	Estimate(xs, ys, xf, yf int) float64
}

// HeuristicFunc adapts an ordinary function to Heuristic.
type HeuristicFunc func(xs, ys, xf, yf int) float64

// Estimate calls f.
func (f HeuristicFunc) Estimate(xs, ys, xf, yf int) float64 { return f(xs, ys, xf, yf) }

// Zero always estimates 0, turning A* into Dijkstra.
type Zero struct{}

// Estimate returns 0.
func (Zero) Estimate(_, _, _, _ int) float64 { return 0 }

// L1 is the Manhattan distance |dx| + |dy|.
type L1 struct{}

// Estimate returns |xs-xf| + |ys-yf|.
func (L1) Estimate(xs, ys, xf, yf int) float64 {
	return math.Abs(float64(xs-xf)) + math.Abs(float64(ys-yf))
}

// L2 is the Euclidean distance.
type L2 struct{}

// Estimate returns sqrt(dx² + dy²).
func (L2) Estimate(xs, ys, xf, yf int) float64 {
	return math.Hypot(float64(xs-xf), float64(ys-yf))
}

// Octile is the 8-connected distance with unit cardinal and √2 diagonal moves.
type Octile struct{}

// Estimate returns max(|dx|,|dy|) + (√2-1)·min(|dx|,|dy|).
func (Octile) Estimate(xs, ys, xf, yf int) float64 {
	dx := math.Abs(float64(xs - xf))
	dy := math.Abs(float64(ys - yf))
	return math.Max(dx, dy) + (math.Sqrt2-1)*math.Min(dx, dy)
}

// Weighted scales Base by Epsilon. Epsilon = 1 recovers Base exactly; a nil
// Base estimates 0 like Zero.
type Weighted struct {
	Epsilon float64
	Base    Heuristic
}

// Estimate returns Epsilon × Base.Estimate(...).
func (w Weighted) Estimate(xs, ys, xf, yf int) float64 {
	if w.Base == nil {
		return 0
	}
	return w.Epsilon * w.Base.Estimate(xs, ys, xf, yf)
}

// ParseHeuristic maps a name (zero, l1, l2, octile; case-insensitive) to a
// heuristic, wrapping it in Weighted when eps != 1.
func ParseHeuristic(name string, eps float64) (Heuristic, error) {
	var h Heuristic
	switch strings.ToLower(name) {
	case "", "zero", "dijkstra":
		h = Zero{}
	case "l1", "manhattan":
		h = L1{}
	case "l2", "euclidean":
		h = L2{}
	case "octile":
		h = Octile{}
	default:
		return nil, fmt.Errorf("%w: unknown heuristic %q", ErrOptionViolation, name)
	}
	if eps <= 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		return nil, fmt.Errorf("%w: weight must be positive and finite (%v)", ErrOptionViolation, eps)
	}
	if eps != 1 {
		h = Weighted{Epsilon: eps, Base: h}
	}
	return h, nil
}
