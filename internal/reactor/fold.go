package reactor

// FoldParameterReactor is a placeholder reactor fed internally by its
// owning FoldReactor, never by an external producer (§4.5). It tracks a
// currently-published (value, sequence) pair and a queued (nextValue,
// nextSequence) pair so the evaluation subgraph can read both the value
// just assigned at seq and whatever was assigned at some earlier sequence,
// without ambiguity.
type FoldParameterReactor[T any] struct {
	value        Expected[T]
	sequence     int
	nextValue    Expected[T]
	nextSequence int
	hasNext      bool
}

// MakeFoldParameter builds an unset fold parameter. The caller builds the
// left and right parameters with it, wires them into the evaluation
// subgraph, and then passes all three to MakeFold.
func MakeFoldParameter[T any]() *FoldParameterReactor[T] {
	return &FoldParameterReactor[T]{
		value:        Err[T](ErrUnavailable),
		sequence:     -1,
		nextValue:    Err[T](ErrUnavailable),
		nextSequence: -1,
	}
}

// set queues value to become current at seq. Only the owning FoldReactor
// calls this, during its own Commit.
func (p *FoldParameterReactor[T]) set(value Expected[T], seq int) {
	p.nextValue = value
	p.nextSequence = seq
	p.hasNext = true
}

func (p *FoldParameterReactor[T]) Commit(seq int) Update {
	if seq == p.sequence {
		return EVAL
	}
	if p.hasNext && seq == p.nextSequence {
		p.value = p.nextValue
		p.sequence = p.nextSequence
		p.hasNext = false
		p.nextSequence = -1
		return EVAL
	}
	return NONE
}

// IsComplete is permanently false: a fold parameter lives as long as its
// fold (§4.5).
func (p *FoldParameterReactor[T]) IsComplete() bool {
	return false
}

func (p *FoldParameterReactor[T]) Eval() (T, error) {
	return p.value.Get()
}

// FoldReactor reduces a producer stream by evaluating a user-supplied
// evaluation reactor that reads two FoldParameterReactors: left (the
// previous fold result) and right (the current producer value) (§4.5). The
// first producer value is consumed as a seed and never itself emitted (the
// "fold seeding" testable property).
type FoldReactor[T any] struct {
	state         commitState
	evaluation    Reactor[T]
	left, right   *FoldParameterReactor[T]
	producer      Reactor[T]
	previousValue *Expected[T]
	value         Expected[T]
}

// MakeFold builds a FoldReactor. evaluation must reference left and right
// (and nothing else that forms a cycle back to the fold); producer may be a
// Reactor[T] or a plain T (see Lift).
func MakeFold[T any](evaluation Reactor[T], left, right *FoldParameterReactor[T], producer any) *FoldReactor[T] {
	return &FoldReactor[T]{
		state:      newCommitState(),
		evaluation: evaluation,
		left:       left,
		right:      right,
		producer:   Lift[T](producer),
		value:      Err[T](ErrUnavailable),
	}
}

func (f *FoldReactor[T]) Commit(seq int) Update {
	if update, ok := f.state.prelude(seq); ok {
		return update
	}

	producerUpdate := f.producer.Commit(seq)
	if producerUpdate == NONE {
		f.state.advance(seq, NONE)
		return NONE
	}
	if producerUpdate == COMPLETE {
		f.state.advance(seq, COMPLETE)
		return COMPLETE
	}

	if f.previousValue == nil {
		// First tick: seed, emit nothing (§4.5 step 3; testable property
		// "fold seeding").
		seed := Try(func() (T, error) { return f.producer.Eval() })
		f.previousValue = &seed
		f.state.advance(seq, NONE)
		return NONE
	}

	f.left.set(*f.previousValue, seq)
	current := Try(func() (T, error) { return f.producer.Eval() })
	f.right.set(current, seq)

	update := f.evaluation.Commit(seq)
	if update == EVAL {
		result := Try(func() (T, error) { return f.evaluation.Eval() })
		f.value = result
		f.previousValue = &result
	}
	f.state.advance(seq, update)
	return update
}

// Children implements ChildrenProvider for CheckAcyclic. It exposes the
// producer and the evaluation subgraph; left and right are leaves fed
// internally by set and are not walked here.
func (f *FoldReactor[T]) Children() []BaseReactor {
	return []BaseReactor{f.producer, f.evaluation}
}

func (f *FoldReactor[T]) IsComplete() bool {
	return f.state.IsComplete()
}

func (f *FoldReactor[T]) Eval() (T, error) {
	if !f.state.hasValue {
		var zero T
		return zero, ErrUnavailable
	}
	return f.value.Get()
}
