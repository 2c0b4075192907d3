// Package clock advances the simulated training run.
//
// A [Clock] owns the [State] of one playground view. Each [Clock.Tick] adds a
// fixed step to the progress counter and appends one log line; the tick that
// reaches the ceiling stops the run and appends the completion lines exactly
// once. Ticks are counted, not timed: a late tick still adds one step.
//
// The clock never schedules itself. Callers drive it from a bubbletea tick
// command or the headless runner, and cancel a run by dropping its ticks.
package clock
