package atsp

import "fmt"

// NewSolution wraps a tour. The cost is taken verbatim when cost is non-nil,
// otherwise it is derived from inst by summing cost(tour[k], tour[k+1]) over
// consecutive pairs. One of the two must be supplied.
func NewSolution(tour []int, cost *float64, inst *Instance) (*Solution, error) {
	if cost == nil && inst == nil {
		return nil, &InvalidInputError{Reason: "solution needs an explicit cost or an instance to derive it from"}
	}
	sol := &Solution{Tour: append([]int(nil), tour...)}
	if cost != nil {
		sol.Cost = *cost
		return sol, nil
	}
	derived, err := TourCost(tour, inst)
	if err != nil {
		return nil, err
	}
	sol.Cost = derived
	return sol, nil
}

// TourCost sums the arc costs along consecutive pairs of the tour. The tour
// is treated as an open path; closing arcs are not added.
func TourCost(tour []int, inst *Instance) (float64, error) {
	sum := 0.0
	for k := 0; k+1 < len(tour); k++ {
		c, err := inst.Cost(tour[k], tour[k+1])
		if err != nil {
			return 0, err
		}
		sum += c
	}
	return sum, nil
}

func (sol *Solution) String() string {
	return fmt.Sprintf("%v (cost %.2f)", sol.Tour, sol.Cost)
}
