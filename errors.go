// Package gedcom models genealogical records read from GEDCOM files. Each
// GEDCOM line carries a level, an optional cross-reference id, a tag and a
// data payload; lines at the next deeper level are its children.
//
// The central type is List, an ordered collection of records that keeps a
// per-tag index in lockstep with the primary sequence. Every record owns a
// List of its children, and the typed structures (Individual, Family,
// Source, Event) are read-only views that query those lists by tag.
package gedcom

import (
	"errors"
	"fmt"
)

// Sentinel errors for programmatic handling. Callers use errors.Is to tell
// caller mistakes (ErrIndexOutOfRange, ErrNotFound) apart from malformed
// input (ErrMalformedLine, ErrLineTooLong, ErrCorruptSnapshot).
var (
	ErrIndexOutOfRange = errors.New("index out of range")
	ErrNotFound        = errors.New("record not found")
	ErrInvariant       = errors.New("index invariant violated")
	ErrMalformedLine   = errors.New("malformed line")
	ErrLineTooLong     = errors.New("line exceeds maximum size")
	ErrCorruptSnapshot = errors.New("corrupt snapshot")
	ErrInvalidPattern  = errors.New("invalid regex pattern")
	ErrDecompress      = errors.New("decompression failed")
)

// LineError reports a parse failure together with the 1-based line number
// it occurred on.
type LineError struct {
	Line int
	Text string
	Err  error
}

func (e *LineError) Error() string {
	if e.Text == "" {
		return fmt.Sprintf("line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
}

func (e *LineError) Unwrap() error {
	return e.Err
}

// outOfRange wraps ErrIndexOutOfRange with the offending position.
func outOfRange(op string, pos, n int) error {
	return fmt.Errorf("%s: position %d, length %d: %w", op, pos, n, ErrIndexOutOfRange)
}
