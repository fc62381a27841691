// Package costgrid is a small toolkit for least-cost path search on 2-D
// cost grids, from the grid model itself to a CLI and an HTTP service.
//
// Every cell of a grid carries a non-negative traversal cost, or
// grid.Impassable for walls. The searches share one grid type and one path
// representation:
//
//	grid/      - Grid, Cell, Path, neighbourhoods, regions and text rendering
//	grassfire/ - 4-connected cost propagation (flood fill) with greedy descent
//	astar/     - best-first search: Dijkstra, A*, weighted A*, pluggable heuristics
//	dijkstra/  - single-source distance fields over a grid
//	costmap/   - seeded random obstacle maps and a plain-text map format
//
// Binaries:
//
//	cmd/costgrid  - run one search on a generated or loaded map
//	cmd/costgridd - serve searches over HTTP (gin), with Prometheus metrics
//	                and an optional Redis result cache
//
// Quick start:
//
//	g, _ := grid.Uniform(10, 10, 1)
//	res, _ := astar.Search(g, grid.Coordinate{X: 0, Y: 0}, grid.Coordinate{X: 9, Y: 9},
//		astar.WithHeuristic(astar.Octile{}))
//	fmt.Println(res.Status, res.Cost)
//
// A grid is stateful: each search resets and rewrites the per-cell search
// fields under the grid lock, so one grid serves one search at a time.
// Clone a grid to run searches concurrently.
package costgrid
