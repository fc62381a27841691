// Package grassfire implements cost propagation ("grass fire" flood fill)
// over a grid.Grid: single-source shortest accumulated cost under 4-connected
// movement, where entering a cell costs that cell's CostToGo.
//
// Algorithm:
//
//  1. Reset every cell (Cost = +Inf) and seed the source with Cost = 0.
//  2. Pop a cell from a LIFO worklist and relax each in-bounds, passable
//     orthogonal neighbor: cost(next) = cost(cur) + CostToGo(next).
//  3. Push every neighbor whose cost strictly improved; stop when the
//     worklist is empty.
//
// The worklist is unordered, so a cell may be relaxed several times before
// its cost settles (a Bellman-Ford-style worklist). Termination follows from
// non-negative step costs: each push strictly lowers a cell's cost.
//
// Path reconstruction does not use parent links. PathTo descends from the
// goal through neighbors whose accumulated cost plus the current cell's
// CostToGo equals the current cost, breaking ties on the lowest row-major
// index, and backtracks out of dead ends on zero-cost plateaus.
//
// Complexity:
//
//   - Propagate: O(W×H×k) relaxations, k the number of times a cell improves
//     (1 on uniform maps). Memory O(W×H).
//   - PathTo: O(W×H) worst case, O(path length) without zero-cost plateaus.
//
// Errors:
//
//   - ErrNilGrid: a nil *grid.Grid was passed.
//   - grid.ErrOutOfBounds: source or goal outside the grid (wrapped).
//   - ErrBrokenChain: descent found no way back to the source. Propagate
//     always leaves such a way, so this marks a corrupted cost table.
package grassfire
