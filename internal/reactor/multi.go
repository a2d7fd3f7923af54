package reactor

// MultiReactor applies a function over a dynamic slice of homogeneous
// children: every child is lifted to a Reactor[T] and the function receives
// the children's evaluated values as a []T, with no accessor or downcast.
// Use this when the number of inputs isn't known at construction time; for
// a small fixed arity of differently-typed inputs use MakeFunction1..4.
type MultiReactor[T, R any] struct {
	state    commitState
	children *childSet
	typed    []Reactor[T]
	f        func([]T) (R, bool, error)
	value    Expected[R]
}

// MakeMulti builds a MultiReactor applying f to the evaluated values of
// children (lifted) whenever any of them ticks. f may return (_, false, nil)
// to filter a tick into NONE, matching the optional-result convention.
func MakeMulti[T, R any](f func([]T) (R, bool, error), children []any) *MultiReactor[T, R] {
	typed := make([]Reactor[T], len(children))
	base := make([]BaseReactor, len(children))
	for i, c := range children {
		r := Lift[T](c)
		typed[i] = r
		base[i] = r
	}
	return &MultiReactor[T, R]{
		state:    newCommitState(),
		children: newChildSet(base),
		typed:    typed,
		f:        f,
		value:    Err[R](ErrUnavailable),
	}
}

func (m *MultiReactor[T, R]) Commit(seq int) Update {
	if update, ok := m.state.prelude(seq); ok {
		return update
	}

	aggregate := m.children.commit(seq)
	result := aggregate

	switch aggregate {
	case EVAL:
		values := make([]T, len(m.typed))
		var evalErr error
		for i, child := range m.typed {
			v, err := child.Eval()
			if err != nil {
				evalErr = err
				break
			}
			values[i] = v
		}

		var ok bool
		var err error
		var value R
		if evalErr != nil {
			err = evalErr
		} else {
			// A panic from f is recovered at this boundary and captured as
			// the node's value, the same as FunctionReactor's apply (§4.4
			// step 3, §7).
			value, ok, err = TryOptional(func() (R, bool, error) { return m.f(values) })
		}
		hasEval := ok || err != nil
		if err != nil {
			m.value = Err[R](newUserFunctionError(err))
		} else if ok {
			m.value = Ok(value)
		}
		if m.children.allComplete() {
			m.state.complete = true
		}
		if !hasEval {
			if m.children.empty() {
				result = COMPLETE
			} else {
				result = NONE
			}
		}
	case COMPLETE:
		if m.children.allComplete() {
			m.state.complete = true
		} else {
			result = NONE
		}
	}

	m.state.advance(seq, result)
	return result
}

// Children implements ChildrenProvider for CheckAcyclic.
func (m *MultiReactor[T, R]) Children() []BaseReactor {
	return m.children.list()
}

func (m *MultiReactor[T, R]) IsComplete() bool {
	return m.state.IsComplete()
}

func (m *MultiReactor[T, R]) Eval() (R, error) {
	if !m.state.hasValue {
		var zero R
		return zero, ErrUnavailable
	}
	return m.value.Get()
}
