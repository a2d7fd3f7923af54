package reactortest

import (
	"encoding/json"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/fenwick-systems/reactors/internal/reactor"
)

// RunWithGolden executes scenario against root and sources, then compares
// the resulting trace against testdata/golden/{scenario.Name}.golden,
// failing t on mismatch. Modelled on the teacher's
// harness.RunWithGolden: run "go test ./... -update" to regenerate golden
// files after an intentional trace change.
func RunWithGolden(t *testing.T, scenario *Scenario, sources map[string]*reactor.BasicReactor[int], root reactor.Reactor[int]) (*Result, error) {
	t.Helper()

	result, err := Run(scenario, sources, root)
	if err != nil {
		return nil, err
	}

	traceJSON, err := json.MarshalIndent(result.Trace, "", "  ")
	if err != nil {
		return nil, err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenario.Name, traceJSON)

	return result, nil
}
