package trigger

import "sync"

// Trigger is the wake-up handover between producer goroutines (pushing
// values into BasicReactors) and the Driver goroutine pumping commits. It
// follows the same mutex-plus-buffered-signal-channel shape as the
// teacher's eventQueue, but coalesces wake-ups instead of queuing
// discrete events: since Commit is idempotent and a Driver always walks
// every root on each wake, a burst of SignalUpdate calls between two
// drains collapses into a single wake, not one per call.
type Trigger struct {
	mu     sync.Mutex
	closed bool
	signal chan struct{}
}

// NewTrigger returns a ready-to-use Trigger.
func NewTrigger() *Trigger {
	return &Trigger{
		signal: make(chan struct{}, 1),
	}
}

// SignalUpdate wakes a Driver waiting on Wait. Safe to call from any
// goroutine, any number of times; wake-ups that arrive before the Driver
// drains the previous one are coalesced into a single pass. A no-op after
// Close.
func (t *Trigger) SignalUpdate() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	select {
	case t.signal <- struct{}{}:
	default:
	}
}

// Wait returns a channel that receives when SignalUpdate has been called
// since the last receive, or is closed once Close is called.
func (t *Trigger) Wait() <-chan struct{} {
	return t.signal
}

// Close shuts the trigger down, causing any blocked or future Wait
// receive to fire. Idempotent.
func (t *Trigger) Close() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return
	}
	t.closed = true
	close(t.signal)
}
