package wire

import (
	"encoding/binary"
	"math"
)

// Decoder reads wire values back out of a byte slice. The first short read
// sticks: later reads return zero values and Err reports ErrTruncated.
type Decoder struct {
	buf   []byte
	off   int
	order binary.ByteOrder
	err   error
}

// NewDecoder reads buf using order; a nil order means little-endian.
func NewDecoder(buf []byte, order binary.ByteOrder) *Decoder {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Decoder{buf: buf, order: order}
}

// Err returns the first error hit while decoding.
func (d *Decoder) Err() error { return d.err }

// Remaining returns the number of unread bytes.
func (d *Decoder) Remaining() int { return len(d.buf) - d.off }

func (d *Decoder) take(n int) []byte {
	if d.err != nil {
		return nil
	}
	if n > d.Remaining() {
		d.err = ErrTruncated
		return nil
	}
	b := d.buf[d.off : d.off+n]
	d.off += n
	return b
}

func (d *Decoder) U1() uint8 {
	b := d.take(1)
	if b == nil {
		return 0
	}
	return b[0]
}

func (d *Decoder) U2() uint16 {
	b := d.take(2)
	if b == nil {
		return 0
	}
	return d.order.Uint16(b)
}

func (d *Decoder) U4() uint32 {
	b := d.take(4)
	if b == nil {
		return 0
	}
	return d.order.Uint32(b)
}

func (d *Decoder) U8() uint64 {
	b := d.take(8)
	if b == nil {
		return 0
	}
	return d.order.Uint64(b)
}

func (d *Decoder) I1() int8 { return int8(d.U1()) }

func (d *Decoder) I2() int16 { return int16(d.U2()) }

func (d *Decoder) I4() int32 { return int32(d.U4()) }

func (d *Decoder) I8() int64 { return int64(d.U8()) }

func (d *Decoder) R4() float32 { return math.Float32frombits(d.U4()) }

func (d *Decoder) R8() float64 { return math.Float64frombits(d.U8()) }

func (d *Decoder) C1() byte { return d.U1() }

func (d *Decoder) Cn() string {
	n := int(d.U1())
	return string(d.take(n))
}

func (d *Decoder) Bn() []byte {
	n := int(d.U1())
	return copyBytes(d.take(n))
}

// Dn reads a bit field written by Encoder.PutDn.
func (d *Decoder) Dn() []byte {
	bits := int(d.U2())
	return copyBytes(d.take((bits + 7) / 8))
}

// Nibbles unpacks n nibbles written by Encoder.PutNibbles.
func (d *Decoder) Nibbles(n int) []uint8 {
	packed := d.take((n + 1) / 2)
	if packed == nil && n > 0 {
		return nil
	}
	out := make([]uint8, n)
	for i := range out {
		b := packed[i/2]
		if i%2 == 0 {
			out[i] = b & NibbleMax
		} else {
			out[i] = b >> 4
		}
	}
	return out
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
