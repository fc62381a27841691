package dijkstra_test

import (
	"fmt"

	"github.com/katalvlaran/costgrid/dijkstra"
	"github.com/katalvlaran/costgrid/grid"
)

// ExampleDijkstra builds a distance field on a uniform 3×3 grid.
// Orthogonal moves cost 1 and diagonal moves √2.
func ExampleDijkstra() {
	g, _ := grid.New(3, 3, nil)
	f, err := dijkstra.Dijkstra(g, dijkstra.Source(grid.Coordinate{X: 0, Y: 0}))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("(2,0)=%.3f (2,1)=%.3f (2,2)=%.3f\n", f.At(2, 0), f.At(2, 1), f.At(2, 2))
	// Output: (2,0)=2.000 (2,1)=2.414 (2,2)=2.828
}

// ExampleWithMaxDistance stops exploring past a distance cap.
func ExampleWithMaxDistance() {
	g, _ := grid.New(6, 1, nil)
	f, _ := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.Coordinate{X: 0, Y: 0}),
		dijkstra.WithMaxDistance(3),
	)
	fmt.Println(f.Settled, f.Dist)
	// Output: 4 [0 1 2 3 +Inf +Inf]
}

// ExampleField_PathTo reconstructs a path from the predecessor table.
func ExampleField_PathTo() {
	g, _ := grid.New(4, 1, nil)
	f, _ := dijkstra.Dijkstra(g,
		dijkstra.Source(grid.Coordinate{X: 0, Y: 0}),
		dijkstra.WithReturnPath(),
	)
	p, _ := f.PathTo(grid.Coordinate{X: 3, Y: 0})
	fmt.Println(p.Coordinates(), p.Cost())
	// Output: [{0 0} {1 0} {2 0} {3 0}] 3
}
