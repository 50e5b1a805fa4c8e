package wire

import "errors"

var (
	ErrTypeMismatch  = errors.New("wire: value type mismatch")
	ErrUnknownType   = errors.New("wire: unknown field type")
	ErrStringTooLong = errors.New("wire: string longer than 255 bytes")
	ErrBitsTooLong   = errors.New("wire: bit field longer than 65535 bits")
	ErrNotASCII      = errors.New("wire: non-ASCII character")
	ErrNibbleRange   = errors.New("wire: nibble value above 0x0f")
	ErrCountMismatch = errors.New("wire: array length does not match count")
	ErrTruncated     = errors.New("wire: truncated data")
)
