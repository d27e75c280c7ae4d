// Package walk implements the random-walk engine over a built chain.
//
// The engine repeatedly walks the chain from a starting-state specification
// (a fixed index or a probability distribution) until each walk hits a
// terminal state, collecting every completed trajectory. Two driving modes
// are supported:
//
//   - Step-budgeted (WithSteps): one continuous stream of steps with a fixed
//     total budget. Whenever the current state is terminal the walk is
//     closed out and a fresh one starts from a newly sampled starting state.
//     The walk in progress when the budget runs out is discarded; only
//     walks that actually reached termination are kept. Closing a walk
//     consumes one budget unit, so a budget of k performs exactly k
//     iterations. Too small a budget simply yields an empty result — that
//     is not an error.
//   - Walk-budgeted (WithWalks): a fixed number of independent walks, each
//     stepping until absorption with no per-walk bound. Every iteration
//     yields exactly one completed walk. PRECONDITION: at least one
//     terminal state must be reachable from the starting distribution;
//     otherwise the mode never terminates. The engine rejects an empty
//     terminal set up front (ErrNoTerminal) but performs no reachability
//     analysis — reachability is the caller's responsibility.
//
// A walk whose very first state is terminal is closed immediately as a
// valid length-1 walk, in both modes.
//
// Per walk the engine is an explicit two-state machine: Running from the
// moment the first state is fixed or sampled, Terminated the step the
// current state belongs to the terminal set. Terminated is absorbing.
//
// When holding times are requested (WithHoldingTimes), every state of a
// completed walk — terminal state included — receives one independent
// exponential draw with that state's leaving rate. The walk and its times
// are separate artifacts: if a time draw fails (zero leaving rate), the
// already-collected walks, including the state walk that triggered the
// failure, are returned alongside the error.
package walk
