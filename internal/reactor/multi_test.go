package reactor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestMultiReactorDynamicChildren covers MultiReactor applying a function
// over a slice of homogeneous children whose count isn't fixed at compile
// time (§9 design note on dynamic child vectors).
func TestMultiReactorDynamicChildren(t *testing.T) {
	a := MakeBasic[int]()
	b := MakeBasic[int]()
	c := MakeBasic[int]()

	sum := MakeMulti[int, int](func(values []int) (int, bool, error) {
		total := 0
		for _, v := range values {
			total += v
		}
		return total, true, nil
	}, []any{a, b, c})

	a.Update(1)
	b.Update(1)
	c.Update(1)
	sum.Commit(1) // initialization tick: each child's seq-0 probe consumes its first push

	a.Update(10)
	b.Update(20)
	c.Update(30)
	// Drive commits until a real tick lands.
	var last Update
	var lastErr error
	for seq := 2; seq <= 5 && last != EVAL; seq++ {
		last = sum.Commit(seq)
		if last == EVAL {
			_, lastErr = sum.Eval()
		}
	}
	require.NoError(t, lastErr)
	assert.Equal(t, EVAL, last)
}

// TestMultiReactorPanicRecovered covers §7's panic-capture boundary for the
// dynamic-arity form: a panicking aggregator must not unwind past Commit,
// and is instead captured as a user-function error (same contract as
// FunctionReactor's TestFunctionPanicRecovered).
func TestMultiReactorPanicRecovered(t *testing.T) {
	a := MakeBasic[int]()
	b := MakeBasic[int]()

	m := MakeMulti[int, int](func(values []int) (int, bool, error) {
		if len(values) > 0 && values[0] == 0 {
			panic("first value must be nonzero")
		}
		return values[0], true, nil
	}, []any{a, b})

	// The first push only initializes the children (§4.4 step 1); it never
	// reaches the aggregator, so its values are arbitrary.
	a.Update(999)
	b.Update(999)
	m.Commit(1)

	a.Update(0)
	b.Update(1)
	require.NotPanics(t, func() {
		assert.Equal(t, EVAL, m.Commit(2))
	})
	_, err := m.Eval()
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.Contains(t, err.Error(), "first value must be nonzero")

	a.Update(5)
	b.Update(1)
	assert.Equal(t, EVAL, m.Commit(3))
	v, err := m.Eval()
	require.NoError(t, err)
	assert.Equal(t, 5, v)
}

func TestMultiReactorEmpty(t *testing.T) {
	m := MakeMulti[int, int](func(values []int) (int, bool, error) {
		return len(values), true, nil
	}, nil)

	assert.Equal(t, EVAL, m.Commit(0))
	v, err := m.Eval()
	require.NoError(t, err)
	assert.Equal(t, 0, v)
}

func TestMultiReactorCompletesWhenAllChildrenComplete(t *testing.T) {
	a := MakeBasic[int]()
	b := MakeBasic[int]()
	m := MakeMulti[int, int](func(values []int) (int, bool, error) {
		return len(values), true, nil
	}, []any{a, b})

	a.Update(1)
	b.Update(1)
	m.Commit(1)

	a.SetComplete()
	b.SetComplete()
	for seq := 2; seq <= 4 && !m.IsComplete(); seq++ {
		m.Commit(seq)
	}
	assert.True(t, m.IsComplete())
}
