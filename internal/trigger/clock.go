package trigger

import "sync/atomic"

// Clock hands out the sequence numbers a Driver stamps onto each commit
// pass. It issues 1, 2, 3, ... on successive calls to Next; it never
// issues 0, since that number is reserved for the reactor contract's
// standing replay/late-subscriber probe (§3).
type Clock struct {
	issued atomic.Int64
}

// NewClock returns a Clock that has not issued anything yet; its first
// Next call returns 1.
func NewClock() *Clock {
	return new(Clock)
}

// NewClockAt returns a Clock that resumes issuing after start, for a
// driver restarting against a replaylog that already holds commits up
// through start.
func NewClockAt(start int64) *Clock {
	c := new(Clock)
	c.issued.Store(start)
	return c
}

// Current reports the most recently issued sequence number without
// issuing a new one.
func (c *Clock) Current() int64 {
	return c.issued.Load()
}

// Next issues and returns the next sequence number. Safe for concurrent
// use: each call, from any goroutine, returns a distinct, increasing
// value.
func (c *Clock) Next() int64 {
	return c.issued.Add(1)
}
