// Package grid models a rectangular 2-D cost map as a graph of cells,
// the shared substrate for every search in costgrid.
//
// What:
//
//   - Grid owns one Cell per coordinate in [0,Width) × [0,Height), stored
//     row-major (index = y*Width + x).
//   - Each Cell carries a static CostToGo (math.Inf(1) marks an obstacle)
//     and search-scoped state: accumulated Cost, Parent index and the
//     heuristic estimate H.
//   - Neighbor enumeration under Conn4 (N, E, S, W) or Conn8 (adds
//     diagonals); the cell itself is never its own neighbor.
//   - Path reconstruction by walking Parent links back to the source.
//   - Fixed-width text renderings of the cost map, an accumulated-cost map
//     and a path overlay, used for diagnostics and golden tests.
//
// Ownership:
//
//	The Grid exclusively owns its cells. Searches mutate Cost/Parent/H in
//	place and must call Reset before each independent run; they also hold
//	the grid lock (Lock/Unlock) for the whole run, so two searches on the
//	same Grid serialize. Use Clone to search the same map concurrently.
//
// Complexity:
//
//   - New, Reset, Clone: O(W×H) time and memory.
//   - Contains, Index, Coordinate, Cell, TryCell: O(1).
//   - Neighbors4/Neighbors8: O(1).
//   - Reconstruct: O(path length).
//
// Errors:
//
//   - ErrEmptyGrid: non-positive width or height.
//   - ErrNegativeCost: the cost function produced a negative value or NaN.
//   - ErrOutOfBounds: a coordinate outside the grid was handed to a search.
package grid
