package atsp_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/atsp"
	"github.com/stretchr/testify/require"
)

// makeSnapshot builds a snapshot with the given arcs selected. Values carry
// rounding noise on purpose: selected arcs sit near 1, the rest near 0.
func makeSnapshot(n int, arcs ...[2]int) atsp.Snapshot {
	snap := make(atsp.Snapshot, n)
	for i := range snap {
		snap[i] = make([]float64, n)
		for j := range snap[i] {
			snap[i][j] = 0.0001
		}
	}
	for _, arc := range arcs {
		snap[arc[0]][arc[1]] = 0.9997
	}
	return snap
}

func TestNextVertex(t *testing.T) {
	snap := makeSnapshot(4)
	require.Equal(t, -1, atsp.NextVertex(snap, 0), "no selected arc")

	snap = makeSnapshot(4, [2]int{0, 2})
	require.Equal(t, 2, atsp.NextVertex(snap, 0), "single selected arc")

	// Multiple selected arcs from the same vertex: the lowest index wins.
	snap = makeSnapshot(4, [2]int{0, 3}, [2]int{0, 1})
	require.Equal(t, 1, atsp.NextVertex(snap, 0))

	// Below-threshold values never count as selected.
	snap = makeSnapshot(4)
	snap[0][1] = 0.49
	require.Equal(t, -1, atsp.NextVertex(snap, 0))
}

func TestTourStartingAt_ClosedCycle(t *testing.T) {
	snap := makeSnapshot(6, [2]int{1, 3}, [2]int{3, 2}, [2]int{2, 1})
	require.Equal(t, []int{1, 3, 2}, atsp.TourStartingAt(snap, 1, 5))
}

func TestTourStartingAt_StopsAtSink(t *testing.T) {
	snap := makeSnapshot(4, [2]int{0, 1}, [2]int{1, 3}, [2]int{3, 2})
	require.Equal(t, []int{0, 1, 3}, atsp.TourStartingAt(snap, 0, 3))
}

func TestTourStartingAt_DanglingPath(t *testing.T) {
	snap := makeSnapshot(5, [2]int{1, 2}, [2]int{2, 3})
	require.Equal(t, []int{1, 2, 3}, atsp.TourStartingAt(snap, 1, 4))
}

func TestTourStartingAt_Terminates(t *testing.T) {
	// Lollipop: 0 feeds a loop that never returns to 0. The walk must stop
	// within n appended vertices.
	snap := makeSnapshot(4, [2]int{0, 1}, [2]int{1, 2}, [2]int{2, 1})
	tour := atsp.TourStartingAt(snap, 0, 3)
	require.LessOrEqual(t, len(tour), 4)
	require.Equal(t, 0, tour[0])

	// Closed loop not containing the start's walk at all.
	snap = makeSnapshot(4, [2]int{1, 2}, [2]int{2, 1})
	require.Equal(t, []int{0}, atsp.TourStartingAt(snap, 0, 3))
}

func TestFindIllegalSubtours_TwoDisjointCycles(t *testing.T) {
	snap := makeSnapshot(6,
		[2]int{1, 2}, [2]int{2, 1},
		[2]int{3, 4}, [2]int{4, 3},
	)
	subtours := atsp.FindIllegalSubtours(snap, 5)
	require.Equal(t, [][]int{{1, 2}, {3, 4}}, subtours)
}

func TestFindIllegalSubtours_TwoDisjointCyclesOtherOrder(t *testing.T) {
	// Interleaved vertex sets flip which cycle is discovered first.
	snap := makeSnapshot(6,
		[2]int{1, 4}, [2]int{4, 1},
		[2]int{2, 3}, [2]int{3, 2},
	)
	subtours := atsp.FindIllegalSubtours(snap, 5)
	require.Equal(t, [][]int{{1, 4}, {2, 3}}, subtours)
}

func TestFindIllegalSubtours_LegalWalkStopsScan(t *testing.T) {
	// The walk from 0 reaches the sink, so the scan stops before ever
	// looking at the cycle on {3,4}.
	snap := makeSnapshot(6,
		[2]int{0, 1}, [2]int{1, 5},
		[2]int{3, 4}, [2]int{4, 3},
	)
	require.Empty(t, atsp.FindIllegalSubtours(snap, 5))
}

func TestFindIllegalSubtours_CycleBeforeLegalWalk(t *testing.T) {
	// A cycle on lower-indexed vertices is emitted before the legal walk
	// from a higher-indexed vertex ends the scan.
	snap := makeSnapshot(6,
		[2]int{1, 2}, [2]int{2, 1},
		[2]int{3, 5},
	)
	subtours := atsp.FindIllegalSubtours(snap, 5)
	require.Equal(t, [][]int{{1, 2}}, subtours)
}

func TestFindIllegalSubtours_DanglingPathIsIllegal(t *testing.T) {
	snap := makeSnapshot(6, [2]int{1, 2}, [2]int{2, 3})
	subtours := atsp.FindIllegalSubtours(snap, 5)
	require.Equal(t, [][]int{{1, 2, 3}}, subtours)
}

func TestFindIllegalSubtours_EmptySnapshot(t *testing.T) {
	require.Empty(t, atsp.FindIllegalSubtours(makeSnapshot(4), 3))
}
