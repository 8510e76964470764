// Package tui is an interactive terminal host for a session.Session built on
// Bubble Tea. Number keys start a search, every frame replays one event, and
// the board is drawn with Lip Gloss colors (or plain ASCII when styling is off).
package tui
