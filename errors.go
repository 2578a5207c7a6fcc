package tabhash

import (
	"errors"
	"fmt"
)

// ErrMalformedRecord is returned when a serialized hash function cannot be
// parsed into a table at all, before any shape checking happens.
var ErrMalformedRecord = errors.New("malformed hash function record")

// ErrShapeMismatch indicates a decoded table whose dimensions disagree with
// the fixed shape of the target variant. Column is -1 when the outer column
// count is wrong, otherwise the index of the offending column.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrShapeMismatch struct {
	Column   int
	Expected int
	Actual   int
	cause    error
}

func (e *ErrShapeMismatch) Error() string {
	if e.Column < 0 {
		return fmt.Sprintf("table shape mismatch: expected %d columns, got %d", e.Expected, e.Actual)
	}
	return fmt.Sprintf("table shape mismatch: column %d expected %d rows, got %d", e.Column, e.Expected, e.Actual)
}

func (e *ErrShapeMismatch) Unwrap() error { return e.cause }
