package grid

// NoRegion labels impassable cells in the output of Regions.
const NoRegion = -1

// Regions labels the contiguous passable regions of g under conn.
// labels[idx] is the region of the cell at row-major idx, counted from 0 in
// scan order, or NoRegion for an impassable cell. n is the number of regions.
//
// Regions reads only the static costs, so it does not take the grid lock.
// Time: O(W·H·d) for d = 4 or 8. Memory: O(W·H).
func (g *Grid) Regions(conn Connectivity) (labels []int, n int) {
	labels = make([]int, len(g.cells))
	for i := range labels {
		labels[i] = NoRegion
	}
	offsets := Offsets(conn)

	queue := make([]int, 0, 64)
	for i0 := range g.cells {
		if labels[i0] != NoRegion || !g.cells[i0].Passable() {
			continue
		}
		labels[i0] = n
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			u := &g.cells[queue[qi]]
			for _, d := range offsets {
				v := g.TryCell(u.X+d[0], u.Y+d[1])
				if v == nil || !v.Passable() {
					continue
				}
				vi := g.Index(v.X, v.Y)
				if labels[vi] == NoRegion {
					labels[vi] = n
					queue = append(queue, vi)
				}
			}
		}
		n++
	}
	return labels, n
}

// Connected reports whether a and b are passable cells of the same region
// under conn. Coordinates outside the grid are never connected.
func (g *Grid) Connected(a, b Coordinate, conn Connectivity) bool {
	if !g.Contains(a.X, a.Y) || !g.Contains(b.X, b.Y) {
		return false
	}
	labels, _ := g.Regions(conn)
	la := labels[g.Index(a.X, a.Y)]
	return la != NoRegion && la == labels[g.Index(b.X, b.Y)]
}
