package replaylog

import (
	"context"
	"path/filepath"
	"testing"
)

func TestAppendAndReplay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	runID := "run-1"

	records := []Record{
		{RunID: runID, Stream: "sum", Seq: 1, Value: 3},
		{RunID: runID, Stream: "sum", Seq: 2, Value: 6},
		{RunID: runID, Stream: "sum", Seq: 3, Value: 10},
	}
	for _, r := range records {
		if err := l.Append(ctx, r); err != nil {
			t.Fatalf("Append() failed: %v", err)
		}
	}

	entries, err := l.Replay(ctx, runID, "sum")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}

	for i, want := range []int{3, 6, 10} {
		got, err := DecodeValue[int](entries[i])
		if err != nil {
			t.Fatalf("DecodeValue() failed: %v", err)
		}
		if got != want {
			t.Errorf("entries[%d] = %d, want %d", i, got, want)
		}
	}
}

func TestAppendIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	r := Record{RunID: "run-1", Stream: "sum", Seq: 1, Value: 3}

	if err := l.Append(ctx, r); err != nil {
		t.Fatalf("first Append() failed: %v", err)
	}
	if err := l.Append(ctx, r); err != nil {
		t.Fatalf("second Append() failed: %v", err)
	}

	entries, err := l.Replay(ctx, "run-1", "sum")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (duplicate append should be a no-op)", len(entries))
	}
}

func TestAppendStreamsAreIsolatedByRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	if err := l.Append(ctx, Record{RunID: "run-1", Stream: "sum", Seq: 1, Value: 1}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}
	if err := l.Append(ctx, Record{RunID: "run-2", Stream: "sum", Seq: 1, Value: 99}); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	entries, err := l.Replay(ctx, "run-1", "sum")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries for run-1, want 1", len(entries))
	}
	got, err := DecodeValue[int](entries[0])
	if err != nil {
		t.Fatalf("DecodeValue() failed: %v", err)
	}
	if got != 1 {
		t.Errorf("run-1 entry = %d, want 1", got)
	}
}

func TestAppendTerminalError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.db")
	l, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer l.Close()

	ctx := context.Background()
	r := Record{RunID: "run-1", Stream: "sum", Seq: 5, Err: "producer dropped", Complete: true}
	if err := l.Append(ctx, r); err != nil {
		t.Fatalf("Append() failed: %v", err)
	}

	entries, err := l.Replay(ctx, "run-1", "sum")
	if err != nil {
		t.Fatalf("Replay() failed: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(entries))
	}
	if entries[0].Err != "producer dropped" {
		t.Errorf("Err = %q, want %q", entries[0].Err, "producer dropped")
	}
	if !entries[0].Complete {
		t.Error("Complete = false, want true")
	}
	if len(entries[0].RawValue) != 0 {
		t.Errorf("RawValue = %q, want empty", entries[0].RawValue)
	}
}
