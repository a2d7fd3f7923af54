package reactor

// FunctionReactor applies a function over a fixed tuple of typed child
// reactors, emitting a new value whenever any argument ticks (§4.4). Use
// MakeFunction1..MakeFunction4 to build one; for a dynamic number of
// children of uniform type, use MultiReactor instead.
type FunctionReactor[R any] struct {
	state    commitState
	children *childSet
	apply    func(seq int) (R, bool, error)
	value    Expected[R]
}

func newFunctionReactor[R any](children []BaseReactor, apply func(seq int) (R, bool, error)) *FunctionReactor[R] {
	return &FunctionReactor[R]{
		state:    newCommitState(),
		children: newChildSet(children),
		apply:    apply,
		value:    Err[R](ErrUnavailable),
	}
}

func (f *FunctionReactor[R]) Commit(seq int) Update {
	if update, ok := f.state.prelude(seq); ok {
		return update
	}

	aggregate := f.children.commit(seq)
	result := aggregate

	switch aggregate {
	case EVAL:
		value, ok, err := f.apply(seq)
		hasEval := ok || err != nil
		if err != nil {
			f.value = Err[R](newUserFunctionError(err))
		} else if ok {
			f.value = Ok(value)
		}
		if f.children.allComplete() {
			// Every child is permanently done (§4.4 step 5); this may be
			// silent (reported only through IsComplete) when this tick
			// also carried a fresh value.
			f.state.complete = true
		}
		if !hasEval {
			// Optional-result convention (§4.4 step 4): no value this
			// tick.
			if f.children.empty() {
				result = COMPLETE
			} else {
				result = NONE
			}
		}
	case COMPLETE:
		if f.children.allComplete() {
			f.state.complete = true
		} else {
			result = NONE
		}
	}

	f.state.advance(seq, result)
	return result
}

// Children implements ChildrenProvider for CheckAcyclic.
func (f *FunctionReactor[R]) Children() []BaseReactor {
	return f.children.list()
}

func (f *FunctionReactor[R]) IsComplete() bool {
	return f.state.IsComplete()
}

func (f *FunctionReactor[R]) Eval() (R, error) {
	if !f.state.hasValue {
		var zero R
		return zero, ErrUnavailable
	}
	return f.value.Get()
}

// MakeFunction1 applies f to a single reactor argument. a may be a
// Reactor[A] or a plain A value (see Lift). Per §4.4 step 3 and §7, a panic
// from f is recovered at this boundary and captured as the node's value
// like any other error; it never unwinds past Commit.
func MakeFunction1[A, R any](f func(A) (R, error), a any) *FunctionReactor[R] {
	ra := Lift[A](a)
	return newFunctionReactor[R]([]BaseReactor{ra}, func(int) (R, bool, error) {
		av, err := ra.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		v, err := Try(func() (R, error) { return f(av) }).Get()
		return v, true, err
	})
}

// MakeFunction2 applies f to two reactor (or plain-value) arguments, with
// the same panic-capture boundary as MakeFunction1.
func MakeFunction2[A, B, R any](f func(A, B) (R, error), a, b any) *FunctionReactor[R] {
	ra, rb := Lift[A](a), Lift[B](b)
	return newFunctionReactor[R]([]BaseReactor{ra, rb}, func(int) (R, bool, error) {
		av, err := ra.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		bv, err := rb.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		v, err := Try(func() (R, error) { return f(av, bv) }).Get()
		return v, true, err
	})
}

// MakeFunction3 applies f to three reactor (or plain-value) arguments, with
// the same panic-capture boundary as MakeFunction1.
func MakeFunction3[A, B, C, R any](f func(A, B, C) (R, error), a, b, c any) *FunctionReactor[R] {
	ra, rb, rc := Lift[A](a), Lift[B](b), Lift[C](c)
	return newFunctionReactor[R]([]BaseReactor{ra, rb, rc}, func(int) (R, bool, error) {
		av, err := ra.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		bv, err := rb.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		cv, err := rc.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		v, err := Try(func() (R, error) { return f(av, bv, cv) }).Get()
		return v, true, err
	})
}

// MakeFunction4 applies f to four reactor (or plain-value) arguments, with
// the same panic-capture boundary as MakeFunction1.
func MakeFunction4[A, B, C, D, R any](f func(A, B, C, D) (R, error), a, b, c, d any) *FunctionReactor[R] {
	ra, rb, rc, rd := Lift[A](a), Lift[B](b), Lift[C](c), Lift[D](d)
	return newFunctionReactor[R]([]BaseReactor{ra, rb, rc, rd}, func(int) (R, bool, error) {
		av, err := ra.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		bv, err := rb.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		cv, err := rc.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		dv, err := rd.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		v, err := Try(func() (R, error) { return f(av, bv, cv, dv) }).Get()
		return v, true, err
	})
}

// MakeFilter1 is MakeFunction1's optional-result form: f returns (_, false)
// to convert this tick into NONE, the filtering convention in §4.4 step 4.
// A panic from f is recovered the same way as the fixed-arity forms above.
func MakeFilter1[A, R any](f func(A) (R, bool, error), a any) *FunctionReactor[R] {
	ra := Lift[A](a)
	return newFunctionReactor[R]([]BaseReactor{ra}, func(int) (R, bool, error) {
		av, err := ra.Eval()
		if err != nil {
			var zero R
			return zero, false, err
		}
		return TryOptional(func() (R, bool, error) { return f(av) })
	})
}
