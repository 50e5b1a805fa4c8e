package wire

import (
	"encoding/binary"
	"fmt"
)

// Type identifies the wire shape of one field.
type Type uint8

// Field types from the STDF V4 data dictionary.
const (
	C1 Type = iota + 1 // one ASCII character
	B1                 // one raw byte
	N1                 // one nibble carried in a byte; nibble-packed in arrays
	U1
	U2
	U4
	U8
	I1
	I2
	I4
	I8
	R4
	R8
	Cn // [u8 len][len ASCII bytes]
	Bn // [u8 len][len raw bytes]
	Dn // [u16 bit count][one byte per element]
	Vn // [u8 tag][payload], self-describing
)

const (
	// MaxShortLen caps the payload of Cn and Bn fields.
	MaxShortLen = 255
	// MaxBitCount caps the bit count of a Dn field.
	MaxBitCount = 65535
	// NibbleMax is the largest value an N1 field carries.
	NibbleMax = 0x0f
)

var typeNames = map[Type]string{
	C1: "C1", B1: "B1", N1: "N1",
	U1: "U1", U2: "U2", U4: "U4", U8: "U8",
	I1: "I1", I2: "I2", I4: "I4", I8: "I8",
	R4: "R4", R8: "R8",
	Cn: "Cn", Bn: "Bn", Dn: "Dn", Vn: "Vn",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", uint8(t))
}

// Valid reports whether t is one of the declared field types.
func (t Type) Valid() bool {
	_, ok := typeNames[t]
	return ok
}

// Width returns the encoded byte width of a fixed-width type. Variable-length
// types report false: their size depends on the value.
func (t Type) Width() (int, bool) {
	switch t {
	case C1, B1, N1, U1, I1:
		return 1, true
	case U2, I2:
		return 2, true
	case U4, I4, R4:
		return 4, true
	case U8, I8, R8:
		return 8, true
	default:
		return 0, false
	}
}

// Unsigned reports whether t is an unsigned integer type usable as a count.
func (t Type) Unsigned() bool {
	switch t {
	case U1, U2, U4, U8:
		return true
	default:
		return false
	}
}

// ByteOrder is satisfied by binary.LittleEndian and binary.BigEndian.
type ByteOrder interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// CPU type codes carried by the file attributes record.
const (
	CPUSun   uint8 = 1 // big-endian
	CPUIntel uint8 = 2 // little-endian
)

// OrderFor returns the byte order implied by a CPU type code. Anything other
// than CPUSun maps to little-endian.
func OrderFor(cpuType uint8) ByteOrder {
	if cpuType == CPUSun {
		return binary.BigEndian
	}
	return binary.LittleEndian
}
