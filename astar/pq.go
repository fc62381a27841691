package astar

// entry is a frontier record. Several entries may exist for one cell; only
// the one whose g matches the cell's live Cost is current.
type entry struct {
	idx int     // row-major cell index
	g   float64 // accumulated cost when pushed
	h   float64 // heuristic estimate when pushed
	f   float64 // g + h
	seq uint64  // insertion order, breaks exact ties FIFO
}

// frontier is a min-heap of entries ordered by (f, h, seq).
type frontier []entry

// Len returns the number of entries in the heap.
func (pq frontier) Len() int { return len(pq) }

// Less prefers lower f, then lower h (closer to the goal), then older entries.
func (pq frontier) Less(i, j int) bool {
	a, b := &pq[i], &pq[j]
	if a.f != b.f {
		return a.f < b.f
	}
	if a.h != b.h {
		return a.h < b.h
	}
	return a.seq < b.seq
}

// Swap swaps two elements in the heap.
func (pq frontier) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type entry.
func (pq *frontier) Push(x interface{}) { *pq = append(*pq, x.(entry)) }

// Pop removes and returns the last element.
// Called by heap.Pop; returns interface{} that must be cast to entry.
func (pq *frontier) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
