package atsp

// Engine is the external integer-programming collaborator. The controller
// only needs binary minimization variables, linear constraints over subsets
// of them and a lazy-constraint search; everything else (relaxation,
// branching, presolve, cut management) stays behind this interface.
//
// FinalValues is valid only after Optimize returned with an optimal Status;
// values of a candidate solution mid-search must be read through the
// SearchState handed to the listener instead. The two accessors are distinct
// operations on purpose - which one applies is decided by the caller's state,
// never by probing for errors.
type Engine interface {
	AddVar(obj float64, name string) error
	AddConstr(ind []int32, val []float64, sense int8, rhs float64, name string) error
	Optimize(listener CandidateListener) error
	Status() (Status, error)
	ObjVal() (float64, error)
	FinalValues(count int) ([]float64, error)
}

// SearchState is the engine's view of one integer-feasible candidate. It is
// only valid for the duration of a single OnCandidate call. LiveValues reads
// the candidate's variable values, SubmitLazy adds a constraint to the live
// pool without restarting the search.
type SearchState interface {
	LiveValues(count int) ([]float64, error)
	SubmitLazy(ind []int32, val []float64, sense int8, rhs float64) error
}

// CandidateListener is invoked by the engine on every integer-feasible
// candidate found during search. The engine guarantees at most one invocation
// runs at a time per solve; the listener must not retain the SearchState.
type CandidateListener interface {
	OnCandidate(state SearchState) error
}

// Constraint senses.
const (
	Equal        int8 = '='
	LessEqual    int8 = '<'
	GreaterEqual int8 = '>'
)

// Status is the engine's terminal search state.
type Status int32

const (
	StatusUnknown Status = iota
	StatusOptimal
	StatusInfeasible
	StatusTimeLimit
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "OPTIMAL"
	case StatusInfeasible:
		return "INFEASIBLE"
	case StatusTimeLimit:
		return "TIME_LIMIT"
	}
	return "UNKNOWN"
}
