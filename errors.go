package atsp

import "fmt"

// InvalidInputError reports malformed construction data. It is raised before
// any engine resources are allocated and is never silently coerced.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("invalid input: %s", e.Reason)
}

// UnknownArcError reports a cost lookup for a pair that is not an arc of the
// instance (self-loop or out-of-range vertex).
type UnknownArcError struct {
	From, To int
}

func (e *UnknownArcError) Error() string {
	return fmt.Sprintf("unknown arc (%d,%d)", e.From, e.To)
}

// SolveFailedError is the sole termination signal for a search that did not
// prove optimality. Status carries the engine's reported terminal state so
// callers can tell infeasibility from resource exhaustion.
type SolveFailedError struct {
	Status Status
	Reason string
}

func (e *SolveFailedError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("solve failed (%s): %s", e.Status, e.Reason)
	}
	return fmt.Sprintf("solve failed: engine reported %s", e.Status)
}
