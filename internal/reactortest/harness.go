package reactortest

import (
	"fmt"

	"github.com/fenwick-systems/reactors/internal/reactor"
)

// TraceEntry is one tick's observed outcome.
type TraceEntry struct {
	Seq    int    `json:"seq"`
	Update string `json:"update"`
	Value  *int   `json:"value,omitempty"`
	Err    string `json:"err,omitempty"`
}

// Result is the outcome of running a Scenario.
type Result struct {
	Name   string       `json:"name"`
	Trace  []TraceEntry `json:"trace"`
	Pass   bool         `json:"pass"`
	Errors []string     `json:"errors,omitempty"`
}

// NewResult returns a passing, empty Result for name.
func NewResult(name string) *Result {
	return &Result{Name: name, Pass: true}
}

// AddError records a validation failure and marks the result as failed.
func (r *Result) AddError(msg string) {
	r.Errors = append(r.Errors, msg)
	r.Pass = false
}

// Run drives scenario against root, pushing each step's value into the
// named BasicReactor in sources, committing root at the next sequence
// number, and recording the observed Update (and, on EVAL, the value read
// via Eval). If scenario.Expect is non-empty, the recorded trace is
// validated against it.
func Run(scenario *Scenario, sources map[string]*reactor.BasicReactor[int], root reactor.Reactor[int]) (*Result, error) {
	result := NewResult(scenario.Name)

	for i, step := range scenario.Pushes {
		src, ok := sources[step.Source]
		if !ok {
			return nil, fmt.Errorf("reactortest: scenario %q: unknown source %q", scenario.Name, step.Source)
		}
		src.Update(step.Value)

		seq := i + 1
		update := root.Commit(seq)
		entry := TraceEntry{Seq: seq, Update: update.String()}

		if update == reactor.EVAL {
			v, err := root.Eval()
			if err != nil {
				entry.Err = err.Error()
			} else {
				entry.Value = &v
			}
		}
		result.Trace = append(result.Trace, entry)
	}

	if len(scenario.Expect) > 0 {
		validateExpectations(result, scenario.Expect)
	}
	return result, nil
}

func validateExpectations(result *Result, expect []ExpectStep) {
	if len(expect) != len(result.Trace) {
		result.AddError(fmt.Sprintf("expected %d ticks, got %d", len(expect), len(result.Trace)))
		return
	}
	for i, want := range expect {
		got := result.Trace[i]
		if got.Update != want.Update {
			result.AddError(fmt.Sprintf("tick %d: update = %s, want %s", i+1, got.Update, want.Update))
			continue
		}
		if want.Value != nil {
			if got.Value == nil {
				result.AddError(fmt.Sprintf("tick %d: no value emitted, want %d", i+1, *want.Value))
			} else if *got.Value != *want.Value {
				result.AddError(fmt.Sprintf("tick %d: value = %d, want %d", i+1, *got.Value, *want.Value))
			}
		}
	}
}
