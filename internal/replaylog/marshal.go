package replaylog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// marshalValue encodes v as canonical-leaning JSON text for storage: HTML
// escaping disabled and the resulting text NFC-normalized, following the
// same two concerns the teacher's ir.MarshalCanonical addresses
// (internal/ir/canonical.go) for deterministic, replayable output. Go's
// encoding/json already sorts map keys byte-wise, which this module treats
// as sufficient determinism for replay without reimplementing RFC 8785's
// UTF-16 key ordering.
func marshalValue(v any) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("replaylog: marshal value: %w", err)
	}
	text := bytes.TrimRight(buf.Bytes(), "\n")
	return norm.NFC.String(string(text)), nil
}
