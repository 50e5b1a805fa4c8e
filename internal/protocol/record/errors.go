package record

import (
	"errors"
	"fmt"
)

var (
	ErrNilRecord        = errors.New("record: nil record")
	ErrValueCount       = errors.New("record: value count does not match schema")
	ErrCountValue       = errors.New("record: count field does not hold an unsigned integer")
	ErrRecordTooLong    = errors.New("record: body longer than 65535 bytes")
	ErrLengthDivergence = errors.New("record: emitted body differs from computed length")
)

// FieldError names the record kind and, when known, the field at fault.
type FieldError struct {
	Kind  string
	Field string
	Err   error
}

func (e *FieldError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("record %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("record %s field %s: %v", e.Kind, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error { return e.Err }
