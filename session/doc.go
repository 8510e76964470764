// Package session drives interactive searches over one grid: it runs a search
// into a fresh event log, arms a replay of it, and advances the replay one
// event per external tick onto a replay.Board.
//
// Lifecycle:
//
//	s, _ := session.New(grid)
//	res, _ := s.Begin(ctx, pathfind.AlgoAStar) // stop replay, reset, search, arm
//	for s.Tick() { ... }                       // one event per frame
//	s.Escape()                                 // stop replay, reset board
//
// Every Begin, Escape and Regenerate bumps a generation counter. A replay
// started under an older generation never applies another event, so a
// search request always supersedes the replay in flight.
//
// All methods are safe for concurrent use. Observers are called synchronously
// from Begin after the search completes, outside the session lock.
package session
