// Package replay records search progress as an ordered log of self-contained
// visualization events and plays it back later, one event per external tick.
//
// What:
//
//   - Event is a tagged union: Start, End, Visited, Frontier (with an optional
//     cost snapshot) and Path, each addressed by grid coordinate.
//   - Log is the caller-owned, append-only event sequence a search fills in.
//   - Apply switches on Event.Kind and drives a Sink (the display).
//   - Board is an in-memory Sink: per-cell state plus label text, with a Reset
//     that restores the baseline derived from static tile weights.
//   - Player replays a Log step by step; Cancel stops it without applying the
//     remaining events.
//
// Why:
//
//	"Compute now, animate later": the search runs to completion at full speed
//	and the display advances at its own pace. Events carry every value they
//	need, so replay never reads live search state.
//
// Pacing:
//
//	Player.Step is driven by any external tick (a UI frame, a timer message).
//	Player.Play blocks on a Pacer between events; *rate.Limiter from
//	golang.org/x/time/rate satisfies Pacer directly (see NewRatePacer).
//
// Errors:
//
//   - ErrCancelled: Play stopped because Cancel was called.
package replay
