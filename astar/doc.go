// Package astar implements best-first search over a grid.Grid: A*, weighted
// A* and (with the Zero heuristic) Dijkstra, from one source to one goal.
//
// Movement and cost:
//
//   - Conn8 by default; a move (dx,dy) between adjacent cells costs
//     sqrt(dx²+dy²) × (CostToGo(cur) + CostToGo(next)) / 2, modelling
//     center-to-center travel through both cells.
//   - WithStepCost(StepEnter) charges CostToGo(next) instead, and
//     WithConnectivity(grid.Conn4) restricts moves to N, E, S, W; together
//     they give the same cost model as package grassfire.
//   - Impassable cells are never entered.
//
// Frontier:
//
//	A container/heap min-heap ordered by (f, h, insertion order), where
//	f = g + h. On equal f the entry closer to the goal (smaller h) wins.
//	Decrease-key is lazy: an improved cell is pushed again and the stale
//	entry is skipped when popped, because its g no longer matches the
//	cell's live Cost. The goal is tested on pop, so with an admissible
//	heuristic the returned path is optimal.
//
// Outcomes:
//
//   - Found: Result.Path holds the path, source first.
//   - Exhausted: the frontier emptied; the goal is unreachable.
//   - BudgetExceeded: MaxIterations expansions ran without reaching the
//     goal. A warning is logged.
//
// Both failure statuses return an empty Path and a nil error: they are
// ordinary outcomes. Errors are reserved for invalid input.
//
// Heuristics:
//
//   - Zero: Dijkstra.
//   - L1: Manhattan distance.
//   - L2: Euclidean distance; admissible on Conn8 when every cell costs ≥ 1.
//   - Octile: exact distance on an obstacle-free 8-connected unit grid.
//   - Weighted{Epsilon, Base}: ε×Base; with ε > 1 the path cost is at most
//     ε times optimal.
//
// Complexity: O(N log N) time with N = W×H×d pushes (d = 4 or 8), O(W×H + N) memory.
package astar
