package tally

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	ErrColumnOutOfRange = errors.New("column index out of range")
	ErrEmptyTable       = errors.New("table has no rows")
	ErrNonNumeric       = errors.New("value is not numeric")
	ErrUnknownCombiner  = errors.New("unknown combiner")
)

// SchemaError reports a row whose field count does not match the schema.
// All three error types here are unrecoverable at the point of detection
// and carry the 1-based input line number.
type SchemaError struct {
	Line int
	Want int
	Got  int
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("line %d: expected %d fields, got %d", e.Line, e.Want, e.Got)
}

// FormatError reports a field that could not be coerced to its column's
// declared kind.
type FormatError struct {
	Line   int
	Column string
	Kind   Kind
	Raw    string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("line %d: column %q: cannot parse %q as %s", e.Line, e.Column, e.Raw, e.Kind)
}
