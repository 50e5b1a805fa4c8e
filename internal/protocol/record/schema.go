package record

import (
	"fmt"

	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

// Field declares one schema entry. A non-empty Count names the sibling field
// whose value is the element count, which makes this field an array.
type Field struct {
	Name  string
	Type  wire.Type
	Count string
}

// Schema is the ordered field list of one record kind. Both the length pass
// and the emit pass walk Fields in this order.
type Schema struct {
	Name   string
	Typ    uint8
	Sub    uint8
	Fields []Field

	index map[string]int
	count []int // index of the governing count field, -1 for scalars
}

// NewSchema compiles a schema. Count references must name an earlier
// unsigned scalar field.
func NewSchema(name string, typ, sub uint8, fields ...Field) (*Schema, error) {
	s := &Schema{
		Name:   name,
		Typ:    typ,
		Sub:    sub,
		Fields: fields,
		index:  make(map[string]int, len(fields)),
		count:  make([]int, len(fields)),
	}
	for i, f := range fields {
		if !f.Type.Valid() {
			return nil, fmt.Errorf("schema %s: field %s: %w", name, f.Name, wire.ErrUnknownType)
		}
		if _, dup := s.index[f.Name]; dup {
			return nil, fmt.Errorf("schema %s: duplicate field %s", name, f.Name)
		}
		s.count[i] = -1
		if f.Count != "" {
			ci, ok := s.index[f.Count]
			if !ok {
				return nil, fmt.Errorf("schema %s: field %s: count field %s must precede it", name, f.Name, f.Count)
			}
			cf := fields[ci]
			if cf.Count != "" || !cf.Type.Unsigned() {
				return nil, fmt.Errorf("schema %s: field %s: count field %s is not an unsigned scalar", name, f.Name, f.Count)
			}
			s.count[i] = ci
		}
		s.index[f.Name] = i
	}
	return s, nil
}

// MustSchema is NewSchema for package-level tables; it panics on a malformed
// schema.
func MustSchema(name string, typ, sub uint8, fields ...Field) *Schema {
	s, err := NewSchema(name, typ, sub, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Index returns the position of the named field, or -1.
func (s *Schema) Index(name string) int {
	if i, ok := s.index[name]; ok {
		return i
	}
	return -1
}

// CountOf returns the name of the count field governing the named array, or
// "" for scalar and unknown fields.
func (s *Schema) CountOf(name string) string {
	i := s.Index(name)
	if i < 0 || s.count[i] < 0 {
		return ""
	}
	return s.Fields[s.count[i]].Name
}

func (s *Schema) String() string {
	return fmt.Sprintf("%s(%d,%d)", s.Name, s.Typ, s.Sub)
}
