package wire

import (
	"encoding/binary"
	"math"
)

// Variant is a self-describing value: it writes its own type tag ahead of its
// payload.
type Variant interface {
	WireSize() (int, error)
	EncodeTo(e *Encoder) error
}

// Options tune an Encoder.
type Options struct {
	// Order defaults to little-endian.
	Order ByteOrder
	// AllowNonASCII lets C1 and Cn carry arbitrary bytes.
	AllowNonASCII bool
}

// Encoder appends wire values to an in-memory buffer. Nothing reaches an
// output stream until the caller takes Bytes.
type Encoder struct {
	buf  []byte
	opts Options
}

// NewEncoder returns an encoder with room for size bytes.
func NewEncoder(size int, opts Options) *Encoder {
	if opts.Order == nil {
		opts.Order = binary.LittleEndian
	}
	return &Encoder{buf: make([]byte, 0, size), opts: opts}
}

// Bytes returns the encoded bytes.
func (e *Encoder) Bytes() []byte { return e.buf }

// Len returns the number of bytes encoded so far.
func (e *Encoder) Len() int { return len(e.buf) }

// Order returns the encoder byte order.
func (e *Encoder) Order() ByteOrder { return e.opts.Order }

func (e *Encoder) PutU1(v uint8) { e.buf = append(e.buf, v) }

func (e *Encoder) PutU2(v uint16) { e.buf = e.opts.Order.AppendUint16(e.buf, v) }

func (e *Encoder) PutU4(v uint32) { e.buf = e.opts.Order.AppendUint32(e.buf, v) }

func (e *Encoder) PutU8(v uint64) { e.buf = e.opts.Order.AppendUint64(e.buf, v) }

func (e *Encoder) PutI1(v int8) { e.PutU1(uint8(v)) }

func (e *Encoder) PutI2(v int16) { e.PutU2(uint16(v)) }

func (e *Encoder) PutI4(v int32) { e.PutU4(uint32(v)) }

func (e *Encoder) PutI8(v int64) { e.PutU8(uint64(v)) }

func (e *Encoder) PutR4(v float32) { e.PutU4(math.Float32bits(v)) }

func (e *Encoder) PutR8(v float64) { e.PutU8(math.Float64bits(v)) }

// PutC1 writes one ASCII character.
func (e *Encoder) PutC1(c byte) error {
	if !e.opts.AllowNonASCII && c > 0x7f {
		return ErrNotASCII
	}
	e.PutU1(c)
	return nil
}

// PutN1 writes a single nibble in the low half of one byte.
func (e *Encoder) PutN1(v uint8) error {
	if v > NibbleMax {
		return ErrNibbleRange
	}
	e.PutU1(v)
	return nil
}

// PutCn writes a length-prefixed ASCII string. An empty string is a single
// zero byte.
func (e *Encoder) PutCn(s string) error {
	if len(s) > MaxShortLen {
		return ErrStringTooLong
	}
	if !e.opts.AllowNonASCII {
		for i := 0; i < len(s); i++ {
			if s[i] > 0x7f {
				return ErrNotASCII
			}
		}
	}
	e.PutU1(uint8(len(s)))
	e.buf = append(e.buf, s...)
	return nil
}

// PutBn writes a length-prefixed raw byte string.
func (e *Encoder) PutBn(b []byte) error {
	if len(b) > MaxShortLen {
		return ErrStringTooLong
	}
	e.PutU1(uint8(len(b)))
	e.buf = append(e.buf, b...)
	return nil
}

// PutDn writes a bit field: a 2-byte bit count of 8 bits per element followed
// by one byte per element.
func (e *Encoder) PutDn(b []byte) error {
	if len(b)*8 > MaxBitCount {
		return ErrBitsTooLong
	}
	e.PutU2(uint16(len(b) * 8))
	e.buf = append(e.buf, b...)
	return nil
}

// PutNibbles packs nibbles two per byte, the first in the low four bits. An odd
// count leaves the high half of the last byte zero.
func (e *Encoder) PutNibbles(v []uint8) error {
	for i := 0; i < len(v); i += 2 {
		lo := v[i]
		var hi uint8
		if i+1 < len(v) {
			hi = v[i+1]
		}
		if lo > NibbleMax || hi > NibbleMax {
			return ErrNibbleRange
		}
		e.PutU1(lo | hi<<4)
	}
	return nil
}

// Put writes v under wire type t. v must have the Go type that t maps to:
// uint8 for C1/B1/N1/U1, uint16 for U2, string for Cn, []byte for Bn/Dn, a
// Variant for Vn, and so on.
func (e *Encoder) Put(t Type, v any) error {
	switch t {
	case C1:
		c, ok := v.(byte)
		if !ok {
			return ErrTypeMismatch
		}
		return e.PutC1(c)
	case B1, U1:
		x, ok := v.(uint8)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutU1(x)
	case N1:
		x, ok := v.(uint8)
		if !ok {
			return ErrTypeMismatch
		}
		return e.PutN1(x)
	case U2:
		x, ok := v.(uint16)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutU2(x)
	case U4:
		x, ok := v.(uint32)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutU4(x)
	case U8:
		x, ok := v.(uint64)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutU8(x)
	case I1:
		x, ok := v.(int8)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutI1(x)
	case I2:
		x, ok := v.(int16)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutI2(x)
	case I4:
		x, ok := v.(int32)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutI4(x)
	case I8:
		x, ok := v.(int64)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutI8(x)
	case R4:
		x, ok := v.(float32)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutR4(x)
	case R8:
		x, ok := v.(float64)
		if !ok {
			return ErrTypeMismatch
		}
		e.PutR8(x)
	case Cn:
		s, ok := v.(string)
		if !ok {
			return ErrTypeMismatch
		}
		return e.PutCn(s)
	case Bn:
		b, ok := v.([]byte)
		if !ok {
			return ErrTypeMismatch
		}
		return e.PutBn(b)
	case Dn:
		b, ok := v.([]byte)
		if !ok {
			return ErrTypeMismatch
		}
		return e.PutDn(b)
	case Vn:
		x, ok := v.(Variant)
		if !ok || x == nil {
			return ErrTypeMismatch
		}
		return x.EncodeTo(e)
	default:
		return ErrUnknownType
	}
	return nil
}

// PutArray writes exactly n elements of type t taken from the slice v. A slice
// shorter than n is padded with zero elements; a longer one is rejected. N1
// arrays are nibble packed into (n+1)/2 bytes. Variant arrays must hold exactly
// n elements.
func (e *Encoder) PutArray(t Type, v any, n int) error {
	l, err := arrayLen(t, v)
	if err != nil {
		return err
	}
	if l > n || (t == Vn && l != n) {
		return ErrCountMismatch
	}
	if t == N1 {
		nibbles := make([]uint8, n)
		if src, ok := v.([]uint8); ok {
			copy(nibbles, src)
		}
		return e.PutNibbles(nibbles)
	}
	for i := 0; i < n; i++ {
		if err := e.Put(t, arrayElem(t, v, i)); err != nil {
			return err
		}
	}
	return nil
}
