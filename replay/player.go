package replay

import (
	"context"
	"sync/atomic"
	"time"

	"golang.org/x/time/rate"
)

// Pacer blocks until the next replay step may run.
// *rate.Limiter satisfies Pacer.
type Pacer interface {
	Wait(ctx context.Context) error
}

// NewRatePacer returns a limiter that releases one step per interval.
// interval <= 0 releases steps without delay.
func NewRatePacer(interval time.Duration) *rate.Limiter {
	if interval <= 0 {
		return rate.NewLimiter(rate.Inf, 1)
	}

	return rate.NewLimiter(rate.Every(interval), 1)
}

// Player replays a snapshot of a Log, one event per Step.
//
// The snapshot is taken at construction, so a Player never observes events
// appended afterwards. Cancel may be called from any goroutine; after it
// returns, at most the step already in progress completes.
type Player struct {
	events    []Event
	next      int
	cancelled atomic.Bool
}

// NewPlayer snapshots l for replay.
func NewPlayer(l *Log) *Player {
	return &Player{events: l.Events()}
}

// Step applies the next event to sink and reports whether one was applied.
// It returns false once the replay is done or cancelled.
func (p *Player) Step(sink Sink) bool {
	if p.cancelled.Load() || p.next >= len(p.events) {
		return false
	}
	Apply(p.events[p.next], sink)
	p.next++

	return true
}

// Play applies every remaining event to sink, waiting on pacer before each.
// Returns ctx.Err() on context cancellation, ErrCancelled after Cancel, or
// nil once every event has been applied.
func (p *Player) Play(ctx context.Context, sink Sink, pacer Pacer) error {
	for !p.Done() {
		if err := pacer.Wait(ctx); err != nil {
			return err
		}
		if p.cancelled.Load() {
			return ErrCancelled
		}
		p.Step(sink)
	}
	if p.cancelled.Load() {
		return ErrCancelled
	}

	return nil
}

// Cancel stops the replay; remaining events are never applied.
func (p *Player) Cancel() { p.cancelled.Store(true) }

// Cancelled reports whether Cancel was called.
func (p *Player) Cancelled() bool { return p.cancelled.Load() }

// Done reports whether no further event will be applied.
func (p *Player) Done() bool {
	return p.cancelled.Load() || p.next >= len(p.events)
}

// Position returns how many events have been applied.
func (p *Player) Position() int { return p.next }

// Remaining returns how many events are still queued (0 after Cancel).
func (p *Player) Remaining() int {
	if p.cancelled.Load() {
		return 0
	}

	return len(p.events) - p.next
}

// Len returns the total number of events in the snapshot.
func (p *Player) Len() int { return len(p.events) }
