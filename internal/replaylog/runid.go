package replaylog

import "github.com/google/uuid"

// RunIDGenerator produces the run_id every commit in a driver's lifetime
// is tagged with, so replaying a stream can be scoped to one driver run.
// Modelled on the teacher's FlowTokenGenerator (internal/engine/flow.go):
// production code uses UUIDv7Generator for time-sortable IDs, tests use a
// FixedGenerator for deterministic golden output.
type RunIDGenerator interface {
	Generate() string
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
type UUIDv7Generator struct{}

// Generate returns a new UUIDv7 as a hyphenated string.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined run IDs in order, for deterministic
// tests.
type FixedGenerator struct {
	ids []string
	idx int
}

// NewFixedGenerator builds a generator returning ids in order; Generate
// panics once they are used up.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next predetermined ID.
//
// Panics if all ids have been consumed, the same fail-fast behavior as
// the teacher's FixedGenerator: a test asking for more runs than it
// stocked ids for is a test bug, not a runtime condition to recover from.
func (g *FixedGenerator) Generate() string {
	if g.idx >= len(g.ids) {
		panic("replaylog: FixedGenerator: all run ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}
