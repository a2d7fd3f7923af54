// Package reactor implements an incremental, pull-driven dataflow engine.
//
// A Reactor is a node that, given a monotonically increasing sequence
// number, reports whether it has a new value, has terminated, or is
// unchanged, and on demand produces its current value. A driver (see the
// sibling trigger package) issues sequence numbers and walks root reactors;
// each reactor recursively commits its children before computing its own
// state.
//
// ARCHITECTURE:
//
// Pull, not push:
// Nothing in this package schedules work or owns a goroutine. Commit is a
// synchronous state transition driven entirely by the caller. Producers
// feed values into a BasicReactor from any goroutine; everything else only
// moves forward when Commit is called.
//
// Memoisation and replay:
// Every combinator shares the same commit prelude (see commitState in
// base.go): repeated commits at the same sequence return the cached
// outcome, and sequence 0 is a standing "replay" probe that answers EVAL if
// the reactor holds a value, COMPLETE if it terminated without one, and NONE
// otherwise, without re-deriving anything.
//
// Errors as values:
// A user function panicking or returning an error never unwinds past
// Commit. It is captured into the reactor's Expected[T] and observed by
// callers of Eval, exactly like any other value.
//
// CRITICAL PATTERNS:
//
// No cycles:
// The evaluation subgraph passed to MakeFold must reference the fold's
// parameter reactors, never the fold itself. CheckAcyclic (cycle.go) is an
// optional, debug-time validator for this invariant; it is not on the
// commit hot path.
package reactor
