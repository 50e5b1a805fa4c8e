package record

import (
	"io"

	"github.com/danmuck/stdfkit/internal/protocol/frame"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// Record is one instance of a record kind: the kind's schema plus one value
// per schema field, in schema order.
type Record interface {
	Schema() *Schema
	Values() []any
}

// Codec runs the two-phase length-then-write protocol with fixed wire options.
type Codec struct {
	opts wire.Options
}

func NewCodec(opts wire.Options) *Codec {
	return &Codec{opts: opts}
}

var defaultCodec = NewCodec(wire.Options{})

// Size returns the body length of rec under default options.
func Size(rec Record) (int, error) { return defaultCodec.Size(rec) }

// Encode returns header plus body of rec under default options.
func Encode(rec Record) ([]byte, error) { return defaultCodec.Encode(rec) }

// Write encodes rec under default options and writes it to w in one call.
func Write(w io.Writer, rec Record) (int, error) { return defaultCodec.Write(w, rec) }

// Size is the length pass: the exact number of body bytes Encode will emit
// after the header.
func (c *Codec) Size(rec Record) (int, error) {
	s, vals, err := unpack(rec)
	if err != nil {
		return 0, err
	}
	return bodyLen(s, vals)
}

// Encode is the emit pass. It writes the header carrying the length pass
// result, then every field in schema order, and checks the two agree.
func (c *Codec) Encode(rec Record) ([]byte, error) {
	s, vals, err := unpack(rec)
	if err != nil {
		return nil, err
	}
	n, err := bodyLen(s, vals)
	if err != nil {
		return nil, err
	}

	e := wire.NewEncoder(frame.HeaderLen+n, c.opts)
	frame.PutHeader(e, frame.Header{Len: uint16(n), Typ: s.Typ, Sub: s.Sub})
	for i, f := range s.Fields {
		if err := putField(e, s, vals, i); err != nil {
			return nil, &FieldError{Kind: s.Name, Field: f.Name, Err: err}
		}
	}
	if e.Len() != frame.HeaderLen+n {
		return nil, &FieldError{Kind: s.Name, Err: ErrLengthDivergence}
	}
	return e.Bytes(), nil
}

// Write encodes rec fully in memory and hands it to w in a single Write, so a
// failing record never leaves partial bytes on the stream.
func (c *Codec) Write(w io.Writer, rec Record) (int, error) {
	b, err := c.Encode(rec)
	if err != nil {
		return 0, err
	}
	return w.Write(b)
}

func unpack(rec Record) (*Schema, []any, error) {
	if rec == nil {
		return nil, nil, ErrNilRecord
	}
	s := rec.Schema()
	if s == nil {
		return nil, nil, ErrNilRecord
	}
	vals := rec.Values()
	if len(vals) != len(s.Fields) {
		return nil, nil, &FieldError{Kind: s.Name, Err: ErrValueCount}
	}
	return s, vals, nil
}

func bodyLen(s *Schema, vals []any) (int, error) {
	total := 0
	for i, f := range s.Fields {
		n, err := fieldSize(s, vals, i)
		if err != nil {
			return 0, &FieldError{Kind: s.Name, Field: f.Name, Err: err}
		}
		total += n
	}
	if total > frame.MaxBodyLen {
		return 0, &FieldError{Kind: s.Name, Err: ErrRecordTooLong}
	}
	return total, nil
}

func fieldSize(s *Schema, vals []any, i int) (int, error) {
	f := s.Fields[i]
	if s.count[i] < 0 {
		return wire.Size(f.Type, vals[i])
	}
	n, err := countValue(vals[s.count[i]])
	if err != nil {
		return 0, err
	}
	return wire.ArraySize(f.Type, vals[i], n)
}

func putField(e *wire.Encoder, s *Schema, vals []any, i int) error {
	f := s.Fields[i]
	if s.count[i] < 0 {
		return e.Put(f.Type, vals[i])
	}
	n, err := countValue(vals[s.count[i]])
	if err != nil {
		return err
	}
	return e.PutArray(f.Type, vals[i], n)
}

func countValue(v any) (int, error) {
	switch x := v.(type) {
	case uint8:
		return int(x), nil
	case uint16:
		return int(x), nil
	case uint32:
		if x > frame.MaxBodyLen {
			return 0, ErrRecordTooLong
		}
		return int(x), nil
	case uint64:
		if x > frame.MaxBodyLen {
			return 0, ErrRecordTooLong
		}
		return int(x), nil
	default:
		return 0, ErrCountValue
	}
}
