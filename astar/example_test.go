package astar_test

import (
	"fmt"

	"github.com/katalvlaran/costgrid/astar"
	"github.com/katalvlaran/costgrid/grid"
)

// ExampleSearch routes around a wall on the 10×5 demo map with the
// Euclidean heuristic. Diagonal moves cost √2 × the mean of both cells.
func ExampleSearch() {
	g, _ := grid.New(10, 5, func(x, y int) float64 {
		if x >= 3 && x < 9 && y < 3 {
			return grid.Impassable
		}
		return 1
	})

	res, err := astar.Search(g,
		grid.Coordinate{X: 1, Y: 2},
		grid.Coordinate{X: 9, Y: 0},
		astar.WithHeuristic(astar.L2{}),
	)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%s cost=%.3f\n", res.Status, res.Cost)
	// Output: found cost=10.828
}

// ExampleSearch_budget shows the iteration cap reported apart from "no path".
func ExampleSearch_budget() {
	g, _ := grid.New(50, 1, nil)
	res, _ := astar.Search(g,
		grid.Coordinate{X: 0, Y: 0},
		grid.Coordinate{X: 49, Y: 0},
		astar.WithMaxIterations(3),
	)
	fmt.Println(res.Status, res.Expanded, res.Path.Empty())
	// Output: budget_exceeded 3 true
}

// ExampleParseHeuristic builds a weighted heuristic from its name.
func ExampleParseHeuristic() {
	h, err := astar.ParseHeuristic("l1", 2)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(h.Estimate(0, 0, 3, 4))
	// Output: 14
}
