package variant

import (
	"errors"
	"fmt"

	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// Tag is the one-byte type code written ahead of every generic data value.
type Tag uint8

// Type tags from the generic data record definition. Tag 9 is unassigned.
const (
	TagPad Tag = 0
	TagU1  Tag = 1
	TagU2  Tag = 2
	TagU4  Tag = 3
	TagI1  Tag = 4
	TagI2  Tag = 5
	TagI4  Tag = 6
	TagR4  Tag = 7
	TagR8  Tag = 8
	TagCn  Tag = 10
	TagBn  Tag = 11
	TagDn  Tag = 12
	TagN1  Tag = 13
)

var ErrUnknownTag = errors.New("variant: unknown type tag")

var tagTypes = map[Tag]wire.Type{
	TagU1: wire.U1,
	TagU2: wire.U2,
	TagU4: wire.U4,
	TagI1: wire.I1,
	TagI2: wire.I2,
	TagI4: wire.I4,
	TagR4: wire.R4,
	TagR8: wire.R8,
	TagCn: wire.Cn,
	TagBn: wire.Bn,
	TagDn: wire.Dn,
	TagN1: wire.N1,
}

// Type returns the wire type carried under t. The pad tag has no payload and
// reports false, as does any unassigned tag.
func (t Tag) Type() (wire.Type, bool) {
	typ, ok := tagTypes[t]
	return typ, ok
}

// Valid reports whether t is an assigned tag.
func (t Tag) Valid() bool {
	if t == TagPad {
		return true
	}
	_, ok := tagTypes[t]
	return ok
}

func (t Tag) String() string {
	if t == TagPad {
		return "B0"
	}
	if typ, ok := tagTypes[t]; ok {
		return typ.String()
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// Value is one self-describing generic data field.
type Value struct {
	Tag Tag
	V   any
}

func Pad() Value { return Value{Tag: TagPad} }

func U1(v uint8) Value { return Value{Tag: TagU1, V: v} }

func U2(v uint16) Value { return Value{Tag: TagU2, V: v} }

func U4(v uint32) Value { return Value{Tag: TagU4, V: v} }

func I1(v int8) Value { return Value{Tag: TagI1, V: v} }

func I2(v int16) Value { return Value{Tag: TagI2, V: v} }

func I4(v int32) Value { return Value{Tag: TagI4, V: v} }

func R4(v float32) Value { return Value{Tag: TagR4, V: v} }

func R8(v float64) Value { return Value{Tag: TagR8, V: v} }

func Cn(v string) Value { return Value{Tag: TagCn, V: v} }

func Bn(v []byte) Value { return Value{Tag: TagBn, V: v} }

func Dn(v []byte) Value { return Value{Tag: TagDn, V: v} }

func N1(v uint8) Value { return Value{Tag: TagN1, V: v} }

// WireSize returns the tag byte plus the payload size.
func (v Value) WireSize() (int, error) {
	if v.Tag == TagPad {
		return 1, nil
	}
	typ, ok := v.Tag.Type()
	if !ok {
		return 0, ErrUnknownTag
	}
	n, err := wire.Size(typ, v.V)
	if err != nil {
		return 0, err
	}
	return 1 + n, nil
}

// EncodeTo writes the tag byte then the payload under the tag's wire rule.
func (v Value) EncodeTo(e *wire.Encoder) error {
	if v.Tag == TagPad {
		e.PutU1(uint8(TagPad))
		return nil
	}
	typ, ok := v.Tag.Type()
	if !ok {
		return ErrUnknownTag
	}
	e.PutU1(uint8(v.Tag))
	return e.Put(typ, v.V)
}

// List is an ordered run of generic data values. Tags may repeat.
type List []Value

func (l List) Len() int { return len(l) }

func (l List) At(i int) wire.Variant { return l[i] }

// Size returns the encoded size of every value in l.
func (l List) Size() (int, error) {
	total := 0
	for i, v := range l {
		n, err := v.WireSize()
		if err != nil {
			return 0, fmt.Errorf("value %d (%s): %w", i, v.Tag, err)
		}
		total += n
	}
	return total, nil
}

// Decode reads one tagged value.
func Decode(d *wire.Decoder) (Value, error) {
	tag := Tag(d.U1())
	if err := d.Err(); err != nil {
		return Value{}, err
	}
	var v any
	switch tag {
	case TagPad:
		return Pad(), nil
	case TagU1:
		v = d.U1()
	case TagU2:
		v = d.U2()
	case TagU4:
		v = d.U4()
	case TagI1:
		v = d.I1()
	case TagI2:
		v = d.I2()
	case TagI4:
		v = d.I4()
	case TagR4:
		v = d.R4()
	case TagR8:
		v = d.R8()
	case TagCn:
		v = d.Cn()
	case TagBn:
		v = d.Bn()
	case TagDn:
		v = d.Dn()
	case TagN1:
		v = d.U1()
	default:
		return Value{}, ErrUnknownTag
	}
	if err := d.Err(); err != nil {
		return Value{}, err
	}
	return Value{Tag: tag, V: v}, nil
}
