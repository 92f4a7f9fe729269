package atsp

// Snapshot is a dense view of the selection values of all arcs at one point
// of the search, indexed [from][to]. Values come from the engine and are
// never assumed to be exactly 0 or 1; an arc counts as selected when its
// value exceeds 0.5. The diagonal is unused.
type Snapshot [][]float64

// SnapshotFromValues reshapes a flat variable-value array (lexicographic arc
// order) into a Snapshot.
func SnapshotFromValues(vals []float64, n int) Snapshot {
	snap := make(Snapshot, n)
	for i := 0; i < n; i++ {
		snap[i] = make([]float64, n)
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			snap[i][j] = vals[ArcIndex(i, j, n)]
		}
	}
	return snap
}

// NextVertex returns the lowest-indexed j != i whose arc (i, j) is selected
// in the snapshot, or -1 if vertex i has no selected outgoing arc.
func NextVertex(snap Snapshot, i int) int {
	for j := 0; j < len(snap); j++ {
		if j == i {
			continue
		}
		if snap[i][j] > 0.5 {
			return j
		}
	}
	return -1
}

// TourStartingAt follows selected arcs from start until the walk returns to
// start (closed cycle, start is not re-appended), reaches the sink, or hits
// a vertex with no selected successor. The length bound caps the walk at n
// vertices, so it terminates on any snapshot.
func TourStartingAt(snap Snapshot, start, sink int) []int {
	tour := []int{start}
	node := start
	for len(tour) < len(snap) {
		next := NextVertex(snap, node)
		if next < 0 || next == start {
			break
		}
		tour = append(tour, next)
		if next == sink {
			break
		}
		node = next
	}
	return tour
}

// FindIllegalSubtours decodes the snapshot into walks and collects every
// closed cycle that cannot be part of a source-to-sink path. Vertices without
// a selected outgoing arc are skipped (they are outside the current support).
// As soon as one walk turns out legal - it ends at the sink - the scan stops
// without looking at the remaining vertices, so cycles disjoint from an
// already-found legal walk can go unreported until a later candidate.
func FindIllegalSubtours(snap Snapshot, sink int) [][]int {
	n := len(snap)
	seen := make([]bool, n)
	var subtours [][]int
	for start := 0; start < n; start++ {
		if seen[start] {
			continue
		}
		tour := TourStartingAt(snap, start, sink)
		if len(tour) < 2 {
			seen[start] = true
			continue
		}
		if tour[len(tour)-1] == sink {
			break
		}
		for _, v := range tour {
			seen[v] = true
		}
		subtours = append(subtours, tour)
	}
	return subtours
}
