// Package wire owns the elementary STDF V4 field types.
//
// Ownership boundary:
// - the closed set of field types and their byte widths
// - encode of scalars, length-prefixed strings, bit fields and count-governed arrays
// - a reciprocal decoder for the same shapes
//
// Multi-byte values use one byte order per encoder, little-endian unless the
// caller picks big-endian for a CPU_TYPE 1 file.
package wire
