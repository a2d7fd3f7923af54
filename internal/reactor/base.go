package reactor

// Update is the tri-state outcome of a commit.
type Update int

const (
	// NONE indicates no change at this sequence.
	NONE Update = iota
	// EVAL indicates a fresh value (or a newly raised error) is available
	// via Eval.
	EVAL
	// COMPLETE indicates the reactor has terminated; future commits will
	// never produce new values.
	COMPLETE
)

func (u Update) String() string {
	switch u {
	case NONE:
		return "NONE"
	case EVAL:
		return "EVAL"
	case COMPLETE:
		return "COMPLETE"
	default:
		return "UNKNOWN"
	}
}

// BaseReactor is the untyped reactor contract: a node that can be driven to
// a sequence number and asked whether it has terminated.
type BaseReactor interface {
	// Commit advances this reactor to seq, returning whether it produced a
	// fresh value, terminated, or is unchanged. Commit is idempotent for a
	// given seq and must never block.
	Commit(seq int) Update

	// IsComplete reports whether this reactor has reached its terminal
	// state. Once true it stays true.
	IsComplete() bool
}

// Reactor is the typed reactor contract: BaseReactor plus access to the
// current value.
type Reactor[T any] interface {
	BaseReactor

	// Eval returns the reactor's current value. It is only meaningful
	// after a Commit returned EVAL (or COMPLETE carrying a final value);
	// calling it before that returns ErrUnavailable.
	Eval() (T, error)
}

// commitState is the memoisation and replay prelude shared by every
// combinator in this package (§4.1): identical sequence replays the cached
// outcome, seq 0 is the standing late-subscriber probe, and a terminated
// reactor answers NONE to anything else. Combinators hold one as their state
// field and consult prelude before doing their own work.
type commitState struct {
	currentSequence int
	cachedUpdate    Update
	hasValue        bool
	complete        bool
}

func newCommitState() commitState {
	return commitState{currentSequence: -1}
}

// prelude implements the shared first step of Commit described in §4.1. ok
// is true when the caller should return immediately with the returned
// Update; ok is false when the combinator must compute a fresh outcome (and
// is then responsible for calling advance to record it).
func (s *commitState) prelude(seq int) (update Update, ok bool) {
	if seq == s.currentSequence {
		return s.cachedUpdate, true
	}
	if seq == 0 && s.currentSequence != -1 {
		if s.hasValue {
			return EVAL, true
		}
		if s.complete {
			return COMPLETE, true
		}
		return NONE, true
	}
	if s.complete {
		return NONE, true
	}
	return NONE, false
}

// advance records the freshly computed outcome for seq, per §4.1: "After
// computing a fresh outcome, set currentSequence = seq and cache the
// outcome."
func (s *commitState) advance(seq int, update Update) {
	s.currentSequence = seq
	s.cachedUpdate = update
	if update == EVAL {
		s.hasValue = true
	}
	if update == COMPLETE {
		s.complete = true
	}
}

func (s *commitState) IsComplete() bool {
	return s.complete
}
