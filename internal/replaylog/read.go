package replaylog

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
)

// Entry is one row read back from the log.
type Entry struct {
	RunID    string
	Stream   string
	Seq      int64
	RawValue json.RawMessage
	Err      string
	Complete bool
}

// DecodeValue unmarshals e's stored value into T. Returns the zero value
// and no error if the entry carried no value (a terminal marker with no
// final value, or an error-only entry).
func DecodeValue[T any](e Entry) (T, error) {
	var out T
	if len(e.RawValue) == 0 {
		return out, nil
	}
	if err := json.Unmarshal(e.RawValue, &out); err != nil {
		return out, fmt.Errorf("replaylog: decode value: %w", err)
	}
	return out, nil
}

// Replay returns every commit recorded for (runID, stream), in sequence
// order, so a late subscriber can reconstruct the full history a driver
// observed in an earlier (possibly crashed) process.
func (l *Log) Replay(ctx context.Context, runID, stream string) ([]Entry, error) {
	rows, err := l.db.QueryContext(ctx, `
		SELECT run_id, stream, seq, value, error, complete
		FROM commits
		WHERE run_id = ? AND stream = ?
		ORDER BY seq ASC
	`, runID, stream)
	if err != nil {
		return nil, fmt.Errorf("replaylog: replay: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("replaylog: replay: %w", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("replaylog: replay: %w", err)
	}
	return entries, nil
}

// Latest returns the most recent commit recorded for (runID, stream), the
// backing data for answering a Commit(0) late-subscriber probe (§3.4)
// across a process restart. ok is false if the stream has no commits yet.
func (l *Log) Latest(ctx context.Context, runID, stream string) (entry Entry, ok bool, err error) {
	row := l.db.QueryRowContext(ctx, `
		SELECT run_id, stream, seq, value, error, complete
		FROM commits
		WHERE run_id = ? AND stream = ?
		ORDER BY seq DESC
		LIMIT 1
	`, runID, stream)

	entry, err = scanEntry(row)
	if err == sql.ErrNoRows {
		return Entry{}, false, nil
	}
	if err != nil {
		return Entry{}, false, fmt.Errorf("replaylog: latest: %w", err)
	}
	return entry, true, nil
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows, letting Replay
// and Latest share one scan routine.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanEntry(scanner rowScanner) (Entry, error) {
	var (
		e          Entry
		value, err string
		complete   int
	)
	scanErr := scanner.Scan(&e.RunID, &e.Stream, &e.Seq, &nullString{&value}, &nullString{&err}, &complete)
	if scanErr != nil {
		return Entry{}, scanErr
	}
	if value != "" {
		e.RawValue = json.RawMessage(value)
	}
	e.Err = err
	e.Complete = complete != 0
	return e, nil
}

// nullString scans a nullable TEXT column into s, leaving it empty on
// SQL NULL instead of erroring.
type nullString struct {
	s *string
}

func (n *nullString) Scan(src any) error {
	if src == nil {
		*n.s = ""
		return nil
	}
	switch v := src.(type) {
	case string:
		*n.s = v
	case []byte:
		*n.s = string(v)
	default:
		return fmt.Errorf("replaylog: unsupported scan type %T", src)
	}
	return nil
}
