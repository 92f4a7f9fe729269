/* Copyright 2021, Arkadiusz Zarychta */
/* Copyright 2021, Gurobi Optimization, LLC */

package atsp

import (
	"git.solver4all.com/azaryc2s/gorobi/gurobi"
)

// GurobiEngine implements Engine on top of the gorobi bindings.
type GurobiEngine struct {
	env   *gurobi.Env
	model *gurobi.Model
}

func NewGurobiEngine(logFile string) (*GurobiEngine, error) {
	env, err := gurobi.LoadEnv(logFile)
	if err != nil {
		return nil, err
	}
	env.SetIntParam("LogToConsole", int32(0))

	model, err := env.NewModel("atsp-path", 0, nil, nil, nil, nil, nil)
	if err != nil {
		env.Free()
		return nil, err
	}

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		model.Free()
		env.Free()
		return nil, err
	}
	return &GurobiEngine{env: env, model: model}, nil
}

func (e *GurobiEngine) Free() {
	e.model.Free()
	e.env.SetIntParam("LogToConsole", int32(1))
	e.env.Free()
}

// Threads reports the thread count gurobi is configured with.
func (e *GurobiEngine) Threads() int {
	threads, _ := e.env.GetIntParam(gurobi.INT_PAR_THREADS)
	return int(threads)
}

// WriteModel dumps the current model to fileName (format chosen by gurobi
// from the extension, e.g. ".lp").
func (e *GurobiEngine) WriteModel(fileName string) error {
	return e.model.Write(fileName)
}

func (e *GurobiEngine) AddVar(obj float64, name string) error {
	return e.model.AddVar(nil, nil, obj, 0.0, 1.0, gurobi.BINARY, name)
}

func (e *GurobiEngine) AddConstr(ind []int32, val []float64, sense int8, rhs float64, name string) error {
	return e.model.AddConstr(ind, val, gurobiSense(sense), rhs, name)
}

func gurobiSense(sense int8) int8 {
	switch sense {
	case Equal:
		return gurobi.EQUAL
	case GreaterEqual:
		return gurobi.GREATER_EQUAL
	default:
		return gurobi.LESS_EQUAL
	}
}

// gurobiSearchState wraps the callback-specific accessors. It is only valid
// inside the CB_MIPSOL invocation it was created for.
type gurobiSearchState struct {
	cbdata gurobi.CPVoid
	where  int32
}

func (s *gurobiSearchState) LiveValues(count int) ([]float64, error) {
	return gurobi.CbGetDblArray(s.cbdata, s.where, gurobi.CB_MIPSOL_SOL, count)
}

func (s *gurobiSearchState) SubmitLazy(ind []int32, val []float64, sense int8, rhs float64) error {
	return gurobi.CbLazy(s.cbdata, len(ind), ind, val, gurobiSense(sense), rhs)
}

func candidateCallback(model *gurobi.Model, cbdata gurobi.CPVoid, where int32, usrdata interface{}) int32 {
	if where == gurobi.CB_MIPSOL {
		state := &gurobiSearchState{cbdata: cbdata, where: where}
		err := usrdata.(CandidateListener).OnCandidate(state)
		if err != nil {
			Log(1, err.Error())
		}
	}
	return 0
}

func (e *GurobiEngine) Optimize(listener CandidateListener) error {
	/* Must set LazyConstraints parameter when using lazy constraints */
	err := e.model.SetIntParam(gurobi.INT_PAR_LAZYCONSTRAINTS, 1)
	if err != nil {
		return err
	}

	err = e.model.SetCallbackFuncGo(candidateCallback, listener)
	if err != nil {
		return err
	}

	return e.model.Optimize()
}

func (e *GurobiEngine) Status() (Status, error) {
	optimstatus, err := e.model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return StatusUnknown, err
	}
	switch optimstatus {
	case gurobi.OPTIMAL:
		return StatusOptimal, nil
	case gurobi.INF_OR_UNBD:
		return StatusInfeasible, nil
	case gurobi.TIME_LIMIT:
		return StatusTimeLimit, nil
	}
	return StatusUnknown, nil
}

func (e *GurobiEngine) ObjVal() (float64, error) {
	return e.model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
}

func (e *GurobiEngine) FinalValues(count int) ([]float64, error) {
	return e.model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(count))
}
