package reactortest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// EmittedValues returns the value of every tick in result.Trace that
// emitted one, in order, dropping ticks that returned NONE or carried an
// error. This is the sequence a scenario's author most often wants to
// compare against (§8's worked scenarios express expectations this way:
// "the fold emits 3, 6, 10").
func EmittedValues(result *Result) []int {
	var values []int
	for _, entry := range result.Trace {
		if entry.Value != nil {
			values = append(values, *entry.Value)
		}
	}
	return values
}

// AssertEmittedValues asserts that result emitted exactly want, in order.
func AssertEmittedValues(t *testing.T, result *Result, want []int) {
	t.Helper()
	assert.Equal(t, want, EmittedValues(result))
}

// AssertUpdates asserts the per-tick Update sequence, e.g.
// []string{"NONE", "EVAL", "NONE", "EVAL"}.
func AssertUpdates(t *testing.T, result *Result, want []string) {
	t.Helper()
	got := make([]string, len(result.Trace))
	for i, entry := range result.Trace {
		got[i] = entry.Update
	}
	assert.Equal(t, want, got)
}

// AssertNoErrors asserts that no tick in result.Trace carried an error.
func AssertNoErrors(t *testing.T, result *Result) {
	t.Helper()
	for _, entry := range result.Trace {
		assert.Empty(t, entry.Err, "tick %d carried an unexpected error", entry.Seq)
	}
}

// AssertPass asserts that result's own Expect-clause validation passed,
// printing the recorded errors on failure.
func AssertPass(t *testing.T, result *Result) {
	t.Helper()
	assert.True(t, result.Pass, "scenario %q failed: %v", result.Name, result.Errors)
}
