package replaylog

import (
	"context"
	"fmt"
)

// Record is one persisted commit outcome: a reactor in stream reported
// EVAL (Value set, Complete false), COMPLETE with a final value (Value
// set, Complete true), a terminal error (Err set, Complete true), or an
// EVAL carrying an error per the "COMPLETE may coincide with a final
// EVAL" encoding (§3) (Err set, Complete false).
type Record struct {
	RunID    string
	Stream   string
	Seq      int64
	Value    any
	Err      string
	Complete bool
}

// Append writes r to the log. Idempotent: a duplicate (run_id, stream,
// seq) is silently ignored, matching the teacher's
// "ON CONFLICT DO NOTHING" idempotent-write pattern (internal/store/write.go)
// so a driver that crashes mid-append and replays from its last known seq
// never double-records a commit.
func (l *Log) Append(ctx context.Context, r Record) error {
	var valueJSON string
	if r.Value != nil {
		encoded, err := marshalValue(r.Value)
		if err != nil {
			return fmt.Errorf("replaylog: append: %w", err)
		}
		valueJSON = encoded
	}

	complete := 0
	if r.Complete {
		complete = 1
	}

	_, err := l.db.ExecContext(ctx, `
		INSERT INTO commits (run_id, stream, seq, value, error, complete)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(run_id, stream, seq) DO NOTHING
	`,
		r.RunID, r.Stream, r.Seq, nullIfEmpty(valueJSON), nullIfEmpty(r.Err), complete,
	)
	if err != nil {
		return fmt.Errorf("replaylog: append: %w", err)
	}
	return nil
}

func nullIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}
