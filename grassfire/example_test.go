package grassfire_test

import (
	"fmt"

	"github.com/katalvlaran/costgrid/grassfire"
	"github.com/katalvlaran/costgrid/grid"
)

// ExamplePropagate floods a 5×3 unit map from the top-left corner and
// prints the accumulated cost of every cell.
func ExamplePropagate() {
	g, _ := grid.New(5, 3, nil)
	r, _ := grassfire.Propagate(g, grid.Coordinate{X: 0, Y: 0})
	fmt.Println(r)
	// Output:
	//    0    1    2    3    4
	//    1    2    3    4    5
	//    2    3    4    5    6
}

// ExampleComputePath walks around a wall and prints the path overlay.
func ExampleComputePath() {
	g, _ := grid.New(4, 3, func(x, y int) float64 {
		if x == 1 && y < 2 {
			return grid.Impassable
		}
		return 1
	})
	path, _ := grassfire.ComputePath(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 2, Y: 0})
	fmt.Println("cost:", path.Cost())
	fmt.Println(g.PathString(path))
	// Output:
	// cost: 6
	//    0    X    6    X
	//    1    X    5    X
	//    2    3    4    X
}
