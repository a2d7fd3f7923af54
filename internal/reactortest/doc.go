// Package reactortest provides scenario-driven conformance testing for
// reactor graphs, modelled on the teacher project's harness package
// (internal/harness/scenario.go, golden.go, assertions.go): scenarios are
// loaded from YAML, strict-field validated, executed against a running
// graph, and optionally compared against a golden trace.
//
// Where the teacher's harness drives CUE-compiled concept specs through
// an engine, this harness drives a caller-supplied reactor graph: a
// Scenario names a sequence of pushes into BasicReactor sources and
// (optionally) the Update/value sequence expected back from a root
// reactor after each push.
package reactortest
