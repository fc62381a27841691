// Package costmap produces cost maps for grid.New: random obstacle fields
// for benchmarks and demos, and maps parsed from a plain-text layout.
//
// Random maps:
//
//	Random(w, h, opts...) drops a number of axis-aligned rectangular
//	obstacles with random corners and side lengths in [1, maxSize]. Each
//	obstacle is crossable at a cost drawn from [2, 10) with probability
//	CrossableRatio (default 0.2) and impassable otherwise. Later obstacles
//	overwrite earlier ones. Cells covered by no obstacle cost 1.
//
// Determinism:
//
//	Every draw comes from a *rand.Rand seeded through WithSeed; seed 0
//	maps to a fixed default seed, so identical options give identical maps.
//
// Text maps:
//
//	Parse reads one row per line, cells separated by whitespace. A cell is
//	a non-negative number or X (impassable). Blank lines are skipped.
//
//	    1 1 X
//	    1 5 1
package costmap
