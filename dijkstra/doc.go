// Package dijkstra computes single-source distance fields on a grid.Grid
// and exposes Dijkstra as the zero-heuristic instance of astar.Search.
//
// Overview:
//
//   - Dijkstra settles every cell reachable from a source cell in order of
//     increasing accumulated cost, using a min-heap with lazy decrease-key.
//   - Step costs follow the same model as astar: an orthogonal move costs the
//     mean CostToGo of both cells, a diagonal move √2 times that
//     (StepAverage), or the destination CostToGo alone (StepEnter).
//   - The result is a Field: a dense distance table plus, on request, the
//     predecessor of every settled cell.
//   - ShortestPath answers a single source→goal query by running astar.Search
//     with the Zero heuristic.
//
// Key features:
//
//   - Source(c): required starting coordinate.
//   - WithReturnPath(): keep predecessors so Field.PathTo can rebuild paths.
//   - WithMaxDistance(d): stop once the closest unsettled cell is farther than d.
//   - WithInfCellThreshold(t): treat cells with CostToGo ≥ t as walls.
//   - WithConnectivity / WithStepCost: neighbor set and step-cost model.
//
// Performance and complexity:
//
//   - Time:  O(N log N) for N = W×H cells (each cell has at most 8 edges).
//   - Space: O(N) for the field plus O(N) heap entries in the worst case.
//
// Error handling (sentinel errors):
//
//   - ErrNoSource: Source was never set.
//   - ErrNilGrid: the grid pointer is nil.
//   - grid.ErrOutOfBounds (wrapped): the source lies outside the grid.
//   - ErrNoPredecessors: Field.PathTo on a field built without WithReturnPath.
//   - ErrBadMaxDistance, ErrBadInfThreshold: raised via panic by the option
//     constructors on meaningless input.
//
// Thread safety:
//
//	Dijkstra reads only the static CostToGo of each cell and keeps its state
//	in the Field, so it does not take the grid lock and may run alongside
//	other searches on the same Grid.
package dijkstra
