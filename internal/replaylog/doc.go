// Package replaylog provides a durable, append-only record of reactor
// commit outcomes, backed by SQLite (github.com/mattn/go-sqlite3), so a
// late subscriber's seq-0 replay probe (§3.4 of the reactor contract) can
// be answered even by a process that was not the one which produced the
// value. It is modelled on the teacher project's store package
// (internal/store/store.go, write.go, read.go, marshal.go): single-writer
// SQLite opened with WAL journaling, idempotent inserts via
// "ON CONFLICT DO NOTHING", and canonical JSON value encoding.
package replaylog
