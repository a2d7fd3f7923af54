package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldSumEmitsRunningTotal(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1\n2\n3\n4\n"))
	cmd.SetArgs([]string{"--op", "sum"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "3\n6\n10\n", out.String())
}

func TestFoldProductEmitsRunningProduct(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("2\n3\n4\n"))
	cmd.SetArgs([]string{"--op", "product"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "6\n24\n", out.String())
}

func TestFoldUnknownOpFails(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1\n2\n"))
	cmd.SetArgs([]string{"--op", "nope"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown --op")
}

func TestFoldInvalidIntegerFails(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1\nabc\n"))
	cmd.SetArgs([]string{"--op", "sum"})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid integer")
}

func TestFoldJSONOutput(t *testing.T) {
	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "json"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1\n2\n3\n"))
	cmd.SetArgs([]string{"--op", "sum"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, out.String(), `"data": 3`)
	assert.Contains(t, out.String(), `"data": 6`)
}

func TestFoldRecordsToReplaylog(t *testing.T) {
	dir := t.TempDir()
	dbPath := dir + "/fold.db"

	out := &bytes.Buffer{}
	cmd := NewFoldCommand(&RootOptions{Format: "text"})
	cmd.SetOut(out)
	cmd.SetIn(strings.NewReader("1\n2\n3\n"))
	cmd.SetArgs([]string{"--op", "sum", "--db", dbPath, "--stream", "s"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "3\n6\n", out.String())
}
