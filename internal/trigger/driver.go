// Package trigger provides the driver that sits outside the reactor core:
// it issues sequence numbers, walks a set of root reactors, and pumps
// Commit until they are all complete or its context is cancelled. It
// mirrors the teacher's single-writer engine.Engine.Run loop (see
// internal/engine/engine.go, internal/engine/doc.go in the reference
// project): one goroutine owns every Commit call, producers elsewhere
// only ever push values and call SignalUpdate.
package trigger

import (
	"context"
	"log/slog"

	"github.com/fenwick-systems/reactors/internal/reactor"
)

// Driver is the single-writer commit pump. All Commit calls against its
// roots happen from the goroutine running Run; producers feeding the
// graph's BasicReactors call Update/SetComplete from any goroutine and
// then SignalUpdate to wake the driver.
type Driver struct {
	roots   []reactor.BaseReactor
	clock   *Clock
	trigger *Trigger
}

// DriverOption configures a Driver at construction, mirroring the
// teacher's EngineOption pattern.
type DriverOption func(*Driver)

// WithClock overrides the driver's sequence clock, for resuming against a
// replay log that already holds commits up to some sequence.
func WithClock(c *Clock) DriverOption {
	return func(d *Driver) {
		d.clock = c
	}
}

// WithTrigger overrides the driver's wake-up trigger, for sharing one
// Trigger across drivers or tests that need a handle to SignalUpdate
// before the driver is built.
func WithTrigger(t *Trigger) DriverOption {
	return func(d *Driver) {
		d.trigger = t
	}
}

// NewDriver builds a Driver over roots. roots are committed in the order
// given on every pass (§5: "children are committed deterministically in
// construction order").
func NewDriver(roots []reactor.BaseReactor, opts ...DriverOption) *Driver {
	d := &Driver{
		roots:   roots,
		clock:   NewClock(),
		trigger: NewTrigger(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Trigger returns the driver's wake-up handle, for producers to call
// SignalUpdate on after pushing a value.
func (d *Driver) Trigger() *Trigger {
	return d.trigger
}

// Clock returns the driver's sequence clock.
func (d *Driver) Clock() *Clock {
	return d.clock
}

// Run pumps commits until every root is complete or ctx is cancelled.
// Must be called from exactly one goroutine.
//
// Each pass issues one new sequence number and commits every root at it;
// if none of the roots reported EVAL or COMPLETE, the pass was a no-op
// and Run parks on the trigger until the next SignalUpdate or context
// cancellation, exactly like the teacher's Run loop parking on
// eventQueue.Wait().
func (d *Driver) Run(ctx context.Context) error {
	slog.Info("driver starting", "roots", len(d.roots))

	for {
		select {
		case <-ctx.Done():
			slog.Info("driver stopping: context cancelled")
			d.trigger.Close()
			return ctx.Err()
		default:
		}

		seq := int(d.clock.Next())
		allComplete := true
		progressed := false
		for i, root := range d.roots {
			switch root.Commit(seq) {
			case reactor.EVAL:
				progressed = true
				slog.Debug("root evaluated", "root", i, "seq", seq)
			case reactor.COMPLETE:
				progressed = true
				slog.Debug("root complete", "root", i, "seq", seq)
			}
			if !root.IsComplete() {
				allComplete = false
			}
		}

		if allComplete {
			slog.Info("driver stopping: all roots complete", "seq", seq)
			return nil
		}
		if progressed {
			continue
		}

		select {
		case <-ctx.Done():
			slog.Info("driver stopping: context cancelled")
			d.trigger.Close()
			return ctx.Err()
		case _, ok := <-d.trigger.Wait():
			if !ok {
				slog.Info("driver stopping: trigger closed")
				return nil
			}
		}
	}
}

// ReplayRoot issues the seq-0 late-subscriber probe (§3.4) against a
// single root outside the regular Run loop, for a subscriber joining
// after the graph already has a value. Safe to call concurrently with
// Run only if the caller otherwise guarantees no other goroutine commits
// this same reactor at the same time; ordinarily call it before Run
// starts, or from inside Run's own goroutine.
func ReplayRoot(root reactor.BaseReactor) reactor.Update {
	return root.Commit(0)
}
