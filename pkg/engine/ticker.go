// pkg/engine/ticker.go
package engine

import (
	"time"
)

// Ticker converts elapsed frame time into a count of fixed-rate ticks.
// The first tick is due after firstDelay, each later one interval after
// the previous.
type Ticker struct {
	firstDelay time.Duration
	interval   time.Duration
	untilNext  time.Duration
	ticks      uint64

	maxPerAdvance int
	dropped       uint64
}

// DefaultMaxCatchUp bounds the ticks delivered for one frame by the hosts
const DefaultMaxCatchUp = 10

// NewTicker creates a ticker. interval must be positive.
func NewTicker(firstDelay, interval time.Duration) *Ticker {
	if interval <= 0 {
		panic("engine: non-positive tick interval")
	}
	if firstDelay < 0 {
		firstDelay = 0
	}
	return &Ticker{
		firstDelay: firstDelay,
		interval:   interval,
		untilNext:  firstDelay,
	}
}

// Limit caps the ticks returned by one Advance call. Ticks beyond the cap
// are dropped, so a stalled host resumes without replaying the backlog.
// Zero means no cap.
func (t *Ticker) Limit(n int) *Ticker {
	if n < 0 {
		n = 0
	}
	t.maxPerAdvance = n
	return t
}

// Advance consumes elapsed time and returns the number of ticks that fell due.
func (t *Ticker) Advance(elapsed time.Duration) int {
	if elapsed <= 0 {
		return 0
	}
	if elapsed < t.untilNext {
		t.untilNext -= elapsed
		return 0
	}

	elapsed -= t.untilNext
	due := 1 + int(elapsed/t.interval)
	t.untilNext = t.interval - elapsed%t.interval

	if t.maxPerAdvance > 0 && due > t.maxPerAdvance {
		t.dropped += uint64(due - t.maxPerAdvance)
		due = t.maxPerAdvance
	}
	t.ticks += uint64(due)
	return due
}

// Dropped returns the number of ticks discarded by Limit
func (t *Ticker) Dropped() uint64 {
	return t.dropped
}

// Ticks returns the total number of ticks delivered
func (t *Ticker) Ticks() uint64 {
	return t.ticks
}

// UntilNext returns the time remaining before the next tick
func (t *Ticker) UntilNext() time.Duration {
	return t.untilNext
}

// Interval returns the steady-state interval
func (t *Ticker) Interval() time.Duration {
	return t.interval
}
