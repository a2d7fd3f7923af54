package reactor

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestScenarioSumFold is scenario 1 from §8: a producer pushes 1, 2, 3, 4
// into a sum fold (left+right); triggering after each push, the fold emits
// 3, 6, 10 (the first push seeds the accumulator and is never itself
// emitted).
func TestScenarioSumFold(t *testing.T) {
	producer := MakeBasic[int]()
	left := MakeFoldParameter[int]()
	right := MakeFoldParameter[int]()
	evaluation := MakeFunction2(func(l, r int) (int, error) { return l + r, nil }, left, right)
	sum := MakeFold[int](evaluation, left, right, producer)

	var emitted []int
	for seq, push := range []int{1, 2, 3, 4} {
		producer.Update(push)
		if sum.Commit(seq+1) == EVAL {
			v, err := sum.Eval()
			require.NoError(t, err)
			emitted = append(emitted, v)
		}
	}

	assert.Equal(t, []int{3, 6, 10}, emitted)
}

// TestScenarioErrorPropagationOverConstant is scenario 3 from §8: a
// throwing function applied to a constant. The graph's very first commit
// (seq 0, a valid replay-probe query against a freshly built graph) returns
// EVAL; Eval raises the captured error.
func TestScenarioErrorPropagationOverConstant(t *testing.T) {
	boom := errors.New("boom")
	f := MakeFunction1(func(int) (int, error) { return 0, boom }, MakeConstant(7))

	assert.Equal(t, EVAL, f.Commit(0))
	_, err := f.Eval()
	require.Error(t, err)
	assert.True(t, IsUserError(err))
	assert.ErrorIs(t, err, boom)
}

// TestScenarioCompleteBeforeSeed is scenario 4 from §8: a producer that
// completes without ever emitting leaves its fold COMPLETE with no EVAL
// ever issued, and the fold's Eval raises "unavailable".
func TestScenarioCompleteBeforeSeed(t *testing.T) {
	producer := MakeBasic[int]()
	left := MakeFoldParameter[int]()
	right := MakeFoldParameter[int]()
	evaluation := MakeFunction2(func(l, r int) (int, error) { return l + r, nil }, left, right)
	sum := MakeFold[int](evaluation, left, right, producer)

	producer.SetComplete()
	assert.Equal(t, COMPLETE, sum.Commit(1))
	assert.True(t, sum.IsComplete())

	_, err := sum.Eval()
	assert.True(t, IsUnavailable(err))
}

// TestScenarioLateSubscriberReplay is scenario 5 from §8: a chain
// producer->function emits a value at some sequence; a driver that later
// issues Commit(0) observes the same value replayed via EVAL.
func TestScenarioLateSubscriberReplay(t *testing.T) {
	producer := MakeBasic[int]()
	f := MakeFunction1(func(x int) (int, error) { return x * 10, nil }, producer)

	producer.Update(1) // consumed by the child initialization probe
	f.Commit(1)

	for seq := 2; seq <= 7; seq++ {
		producer.Update(seq)
		f.Commit(seq)
	}

	lastValue, err := f.Eval()
	require.NoError(t, err)

	assert.Equal(t, EVAL, f.Commit(0))
	replayed, err := f.Eval()
	require.NoError(t, err)
	assert.Equal(t, lastValue, replayed)
}

// TestScenarioFilterViaOptional is scenario 6 from §8: a producer emits
// 1, 2, 3, 4; a filtering function returns the value when even, empty
// otherwise. The observed per-tick outcomes are NONE, EVAL(2), NONE,
// EVAL(4).
func TestScenarioFilterViaOptional(t *testing.T) {
	producer := MakeBasic[int]()
	evens := MakeFilter1(func(x int) (int, bool, error) {
		if x%2 != 0 {
			return 0, false, nil
		}
		return x, true, nil
	}, producer)

	var outcomes []Update
	var values []int
	for seq, push := range []int{1, 2, 3, 4} {
		producer.Update(push)
		update := evens.Commit(seq + 1)
		outcomes = append(outcomes, update)
		if update == EVAL {
			v, err := evens.Eval()
			require.NoError(t, err)
			values = append(values, v)
		}
	}

	assert.Equal(t, []Update{NONE, EVAL, NONE, EVAL}, outcomes)
	assert.Equal(t, []int{2, 4}, values)
}
