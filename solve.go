/* Copyright 2021, Arkadiusz Zarychta */

/*
  Solve an asymmetric traveling salesman path problem: a minimum-cost
  Hamiltonian path from a source vertex to a sink vertex. The base MIP model
  only carries degree and flow-conservation constraints, so integer solutions
  may contain subtours - closed cycles avoiding source and sink. The lazy
  constraint callback adds subtour elimination constraints to cut them off.
*/
package atsp

import (
	"fmt"
	"time"
)

// PathSolver owns the model lifecycle for one solve. It implements
// CandidateListener: the engine calls OnCandidate on every integer-feasible
// candidate; the instance is read-only across invocations and the submitted
// SECs are append-only and owned by the engine.
type PathSolver struct {
	inst     *Instance
	eng      Engine
	varCount int
	SECCount int
}

// NewPathSolver validates the instance and builds the base model on eng.
func NewPathSolver(inst *Instance, eng Engine) (*PathSolver, error) {
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	s := &PathSolver{inst: inst, eng: eng}
	if err := s.buildModel(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *PathSolver) buildModel() error {
	n := s.inst.Dimension
	source := s.inst.SourceVertex
	sink := s.inst.SinkVertex

	/* Add variables - one for every ordered pair of vertices */
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			cost, err := s.inst.Cost(i, j)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("x_%d_%d", i, j)
			if err := s.eng.AddVar(cost, name); err != nil {
				return err
			}
			s.varCount++
		}
	}

	outArcs := func(v int) []int32 {
		var ind []int32
		for j := 0; j < n; j++ {
			if j == v {
				continue
			}
			ind = append(ind, int32(ArcIndex(v, j, n)))
		}
		return ind
	}
	inArcs := func(v int) []int32 {
		var ind []int32
		for i := 0; i < n; i++ {
			if i == v {
				continue
			}
			ind = append(ind, int32(ArcIndex(i, v, n)))
		}
		return ind
	}
	ones := func(k int) []float64 {
		val := make([]float64, k)
		for i := range val {
			val[i] = 1.0
		}
		return val
	}

	/* The source is left exactly once and never entered */
	ind := outArcs(source)
	err := s.eng.AddConstr(ind, ones(len(ind)), Equal, 1.0, fmt.Sprintf("deg_out_%d", source))
	if err != nil {
		return err
	}
	ind = inArcs(source)
	err = s.eng.AddConstr(ind, ones(len(ind)), Equal, 0.0, fmt.Sprintf("deg_in_%d", source))
	if err != nil {
		return err
	}

	/* The sink is entered exactly once and never left */
	ind = inArcs(sink)
	err = s.eng.AddConstr(ind, ones(len(ind)), Equal, 1.0, fmt.Sprintf("deg_in_%d", sink))
	if err != nil {
		return err
	}
	ind = outArcs(sink)
	err = s.eng.AddConstr(ind, ones(len(ind)), Equal, 0.0, fmt.Sprintf("deg_out_%d", sink))
	if err != nil {
		return err
	}

	/* Flow conservation for interior vertices: if entered, must be left */
	for v := 0; v < n; v++ {
		if v == source || v == sink {
			continue
		}
		ind = append(outArcs(v), inArcs(v)...)
		val := make([]float64, len(ind))
		for i := range val {
			if i < n-1 {
				val[i] = 1.0
			} else {
				val[i] = -1.0
			}
		}
		err = s.eng.AddConstr(ind, val, Equal, 0.0, fmt.Sprintf("flow_%d", v))
		if err != nil {
			return err
		}
	}

	/* At most one successor per vertex - simple path structure */
	for v := 0; v < n; v++ {
		ind = outArcs(v)
		err = s.eng.AddConstr(ind, ones(len(ind)), LessEqual, 1.0, fmt.Sprintf("succ_%d", v))
		if err != nil {
			return err
		}
	}
	return nil
}

/* Subtour elimination callback. Whenever a feasible solution is found, decode
   it into walks and add a subtour elimination constraint for every closed
   cycle that avoids the sink. */

func (s *PathSolver) OnCandidate(state SearchState) error {
	vals, err := state.LiveValues(s.varCount)
	if err != nil {
		return err
	}
	snap := SnapshotFromValues(vals, s.inst.Dimension)
	if logLevel >= 4 {
		Log(4, "Looking for subtours in snapshot:\n%s", Print2DArray(snap))
	}
	for _, subtour := range FindIllegalSubtours(snap, s.inst.SinkVertex) {
		ind, val, rhs := s.subtourSEC(subtour)
		if err := state.SubmitLazy(ind, val, LessEqual, rhs); err != nil {
			return err
		}
		s.SECCount++
		Log(3, "Adding SEC nr.%d for subtour: %v", s.SECCount, subtour)
	}
	return nil
}

// subtourSEC builds sum of the arcs along the closed cycle through the
// subtour's consecutive vertices <= |T|-1, forbidding exactly that cycle.
func (s *PathSolver) subtourSEC(subtour []int) (ind []int32, val []float64, rhs float64) {
	n := s.inst.Dimension
	for i := 0; i < len(subtour); i++ {
		j := (i + 1) % len(subtour)
		ind = append(ind, int32(ArcIndex(subtour[i], subtour[j], n)))
		val = append(val, 1.0)
	}
	return ind, val, float64(len(subtour) - 1)
}

// Solve runs the engine's search and decodes the optimal source-to-sink
// path. Any terminal state other than optimal surfaces as SolveFailedError;
// no partial result is returned and no retry is attempted.
func (s *PathSolver) Solve() (*Solution, error) {
	startTime := time.Now()
	if err := s.eng.Optimize(s); err != nil {
		return nil, &SolveFailedError{Status: StatusUnknown, Reason: err.Error()}
	}
	Log(2, "---OPTIMIZATION DONE---")

	status, err := s.eng.Status()
	if err != nil {
		return nil, &SolveFailedError{Status: StatusUnknown, Reason: err.Error()}
	}
	if status != StatusOptimal {
		return nil, &SolveFailedError{Status: status}
	}

	objval, err := s.eng.ObjVal()
	if err != nil {
		return nil, &SolveFailedError{Status: status, Reason: err.Error()}
	}
	vals, err := s.eng.FinalValues(s.varCount)
	if err != nil {
		return nil, &SolveFailedError{Status: status, Reason: err.Error()}
	}

	snap := SnapshotFromValues(vals, s.inst.Dimension)
	tour := TourStartingAt(snap, s.inst.SourceVertex, s.inst.SinkVertex)
	sol := &Solution{
		Cost:     objval,
		Optimal:  true,
		Tour:     tour,
		SECCount: s.SECCount,
		Time:     time.Since(startTime).String(),
	}
	Log(2, "Found a path with cost %.2f: %v", sol.Cost, sol.Tour)
	return sol, nil
}

// Solve is the convenience entry point using a gurobi engine.
func Solve(inst *Instance) (*Solution, error) {
	eng, err := NewGurobiEngine("atsp-path.log")
	if err != nil {
		return nil, &SolveFailedError{Status: StatusUnknown, Reason: err.Error()}
	}
	defer eng.Free()

	solver, err := NewPathSolver(inst, eng)
	if err != nil {
		return nil, err
	}
	return solver.Solve()
}
