// Package throttle wraps a function so that sustained call pressure collapses
// into at most one execution per delay window.
//
// # Model
//
// A Limiter owns a single window at a time. The first call while idle may run
// immediately (leading edge), arms a timer, and opens the window. Calls landing
// inside an open window are coalesced: only the most recent call's arguments
// are remembered, earlier ones in the same window are dropped. When the window's
// deadline elapses, the remembered call (if any) runs (trailing edge) and a fresh
// window opens, which yields a steady cadence of one execution per delay for as
// long as calls keep arriving. A window whose deadline passes with nothing
// pending closes, and the limiter returns to idle.
//
// In debounce mode every call inside an open window slides the deadline forward,
// so the trailing execution happens only after a full delay of silence.
//
// # Control surface
//
// Beyond the call itself, a Limiter exposes two operations:
//
//   - Flush runs the deadline transition now: a pending call is delivered (or
//     discarded, when trailing is off) and never left behind.
//   - Clear cancels the window and discards the pending call without running it,
//     returning the limiter to its freshly constructed state.
//
// # Shape
//
// The core is Limiter[T], wrapping func(T). For multi-parameter functions the
// ThrottleI1..I3 wrappers return a closure with the original signature plus the
// Limiter as control handle:
//
//	limited, ctl, err := throttle.ThrottleI2(save, 100*time.Millisecond)
//	limited("doc-7", payload)
//	ctl.Flush()
//
// Timing comes from a clock.TimeSource, so tests drive the state machine with a
// mocked clock instead of sleeping.
package throttle
