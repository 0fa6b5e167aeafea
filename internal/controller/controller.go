// Package controller implements the dispatch strategies that decide, each
// timestep, how much of the EV and battery load to commit. Controllers are
// pure functions of their inputs: no hidden state, no RNG, no I/O. Anything
// a controller needs to remember across steps (like a greedy controller's
// precomputed lookahead) must be computed once at construction time from
// data it is explicitly handed, never sampled or read at dispatch time.
package controller

import "vppsim/internal/simtypes"

// Controller maps one timestep's inputs and state snapshot to a dispatch
// decision. Implementations must not mutate shared state or depend on
// anything but their arguments and their own construction-time data.
type Controller interface {
	Name() string
	Dispatch(input simtypes.StepInput, state simtypes.StepState) simtypes.StepDispatch
}
