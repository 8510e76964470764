package replay

import (
	"iter"

	"github.com/google/uuid"
)

// Log is an append-only, strictly ordered sequence of events produced by one
// search. The caller owns it and passes it empty to a search.
type Log struct {
	id     uuid.UUID
	events []Event
}

// NewLog returns an empty log tagged with a fresh random ID.
func NewLog() *Log {
	return &Log{id: uuid.New()}
}

// ID identifies the search run that filled this log.
func (l *Log) ID() uuid.UUID { return l.id }

// Append adds e at the end of the log.
func (l *Log) Append(e Event) { l.events = append(l.events, e) }

// Len returns the number of events.
func (l *Log) Len() int { return len(l.events) }

// At returns the i-th event, or ok == false if i is out of range.
func (l *Log) At(i int) (e Event, ok bool) {
	if i < 0 || i >= len(l.events) {
		return e, false
	}

	return l.events[i], true
}

// Events returns a copy of the events in order.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)

	return out
}

// All iterates over (index, event) pairs in order.
func (l *Log) All() iter.Seq2[int, Event] {
	return func(yield func(int, Event) bool) {
		for i, e := range l.events {
			if !yield(i, e) {
				return
			}
		}
	}
}

// Count returns how many events of kind k the log holds.
func (l *Log) Count(k Kind) int {
	n := 0
	for _, e := range l.events {
		if e.Kind == k {
			n++
		}
	}

	return n
}
