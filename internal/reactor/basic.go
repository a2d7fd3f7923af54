package reactor

import "sync"

// basicItem is one pending entry in a BasicReactor's queue: either a value
// or a terminal marker (with an optional error).
type basicItem[T any] struct {
	value    T
	terminal bool
	err      error
}

// BasicReactor is an externally fed source (§4.3). Producers call Update or
// SetComplete/SetCompleteErr from any goroutine; Commit is driver-serial and
// dequeues at most one pending item per call. The queue is the handover
// point between producer goroutines and the single commit-driving
// goroutine, mirroring the mutex-protected handover the teacher's event
// queue uses between producers and its single-writer Run loop.
type BasicReactor[T any] struct {
	state commitState

	mu      sync.Mutex
	pending []basicItem[T]

	current Expected[T]
}

// MakeBasic builds an empty BasicReactor awaiting its first Update or
// SetComplete call.
func MakeBasic[T any]() *BasicReactor[T] {
	return &BasicReactor[T]{state: newCommitState(), current: Err[T](ErrUnavailable)}
}

// Update enqueues a new value to be installed on the next Commit.
// Thread-safe: callable from any producer goroutine.
func (b *BasicReactor[T]) Update(value T) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, basicItem[T]{value: value})
}

// SetComplete enqueues a terminal marker with no value.
// Thread-safe: callable from any producer goroutine.
func (b *BasicReactor[T]) SetComplete() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, basicItem[T]{terminal: true})
}

// SetCompleteErr enqueues a terminal marker carrying a producer error; it is
// surfaced identically to a user-function error downstream (§7, kind 3).
// Thread-safe: callable from any producer goroutine.
func (b *BasicReactor[T]) SetCompleteErr(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.pending = append(b.pending, basicItem[T]{terminal: true, err: err})
}

func (b *BasicReactor[T]) dequeue() (basicItem[T], bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if len(b.pending) == 0 {
		return basicItem[T]{}, false
	}
	item := b.pending[0]
	b.pending[0] = basicItem[T]{}
	b.pending = b.pending[1:]
	return item, true
}

func (b *BasicReactor[T]) Commit(seq int) Update {
	if update, ok := b.state.prelude(seq); ok {
		return update
	}

	item, hasItem := b.dequeue()
	if !hasItem {
		b.state.advance(seq, NONE)
		return NONE
	}

	var update Update
	if item.terminal {
		if item.err != nil {
			// A terminal marker carrying an error still carries a value
			// (the error) on this tick: per §3, that is encoded as EVAL
			// plus a sticky complete flag rather than a bare COMPLETE.
			b.current = Err[T](newProducerError(item.err))
			b.state.advance(seq, EVAL)
			b.state.complete = true
			return EVAL
		}
		update = COMPLETE
	} else {
		b.current = Ok(item.value)
		update = EVAL
	}
	b.state.advance(seq, update)
	return update
}

func (b *BasicReactor[T]) IsComplete() bool {
	return b.state.IsComplete()
}

func (b *BasicReactor[T]) Eval() (T, error) {
	if !b.state.hasValue {
		var zero T
		return zero, ErrUnavailable
	}
	return b.current.Get()
}
