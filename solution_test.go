package atsp_test

import (
	"testing"

	"git.solver4all.com/azaryc2s/atsp"
	"github.com/stretchr/testify/require"
)

func TestNewSolution_RequiresCostOrInstance(t *testing.T) {
	_, err := atsp.NewSolution([]int{0, 1, 2}, nil, nil)
	require.Error(t, err)
	var invalid *atsp.InvalidInputError
	require.ErrorAs(t, err, &invalid)
}

func TestNewSolution_ExplicitMatchesDerived(t *testing.T) {
	// (0,1)=2.5, (0,2)=9, (1,0)=4, (1,2)=-1.5, (2,0)=7, (2,1)=3
	inst, err := atsp.NewInstance(make([]float64, 3), make([]float64, 3), []float64{2.5, 9, 4, -1.5, 7, 3})
	require.NoError(t, err)

	tour := []int{0, 1, 2}
	derived, err := atsp.NewSolution(tour, nil, inst)
	require.NoError(t, err)
	require.Equal(t, 1.0, derived.Cost)

	cost := 1.0
	explicit, err := atsp.NewSolution(tour, &cost, nil)
	require.NoError(t, err)
	require.Equal(t, derived.Cost, explicit.Cost)
	require.Equal(t, derived.Tour, explicit.Tour)
}

func TestTourCost_ConsecutivePairsOnly(t *testing.T) {
	inst, err := atsp.NewInstance(make([]float64, 3), make([]float64, 3), []float64{1, 10, 100, 2, 1000, 10000})
	require.NoError(t, err)

	// Open path: the closing arc (2,0) must not be added.
	cost, err := atsp.TourCost([]int{0, 1, 2}, inst)
	require.NoError(t, err)
	require.Equal(t, 3.0, cost)

	cost, err = atsp.TourCost([]int{1}, inst)
	require.NoError(t, err)
	require.Equal(t, 0.0, cost)
}

func TestTourCost_UnknownArc(t *testing.T) {
	inst, err := atsp.NewInstance(make([]float64, 3), make([]float64, 3), make([]float64, 6))
	require.NoError(t, err)

	_, err = atsp.TourCost([]int{0, 3}, inst)
	var unknown *atsp.UnknownArcError
	require.ErrorAs(t, err, &unknown)
}

func TestSolution_String(t *testing.T) {
	cost := 3.5
	sol, err := atsp.NewSolution([]int{0, 2, 1}, &cost, nil)
	require.NoError(t, err)
	require.Equal(t, "[0 2 1] (cost 3.50)", sol.String())
}
