package script

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/variant"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/stdf"
)

var (
	ErrMissingKind  = errors.New("script: record has no kind")
	ErrUnknownKey   = errors.New("script: unknown top-level key")
	ErrUnknownField = errors.New("script: unknown field")
	ErrFieldType    = errors.New("script: value has the wrong type")
	ErrFieldRange   = errors.New("script: value out of range")
)

// KindKey names the record kind inside each [[record]] table.
const KindKey = "kind"

// EntryError locates a failure by record position and, when known, kind and
// field.
type EntryError struct {
	Index int
	Kind  string
	Field string
	Err   error
}

func (e *EntryError) Error() string {
	switch {
	case e.Field != "":
		return fmt.Sprintf("script record %d (%s) field %s: %v", e.Index, e.Kind, e.Field, e.Err)
	case e.Kind != "":
		return fmt.Sprintf("script record %d (%s): %v", e.Index, e.Kind, e.Err)
	default:
		return fmt.Sprintf("script record %d: %v", e.Index, e.Err)
	}
}

func (e *EntryError) Unwrap() error { return e.Err }

type document struct {
	Record []map[string]any `toml:"record"`
}

// Load reads a record script from path and builds its records against the
// default registry.
func Load(path string) ([]record.Record, error) {
	var doc document
	meta, err := toml.DecodeFile(path, &doc)
	if err != nil {
		return nil, fmt.Errorf("script load failed (%s): %w", path, err)
	}
	return build(meta, doc, stdf.Default())
}

// Parse builds the records of an in-memory script.
func Parse(src string) ([]record.Record, error) {
	var doc document
	meta, err := toml.Decode(src, &doc)
	if err != nil {
		return nil, fmt.Errorf("script parse failed: %w", err)
	}
	return build(meta, doc, stdf.Default())
}

func build(meta toml.MetaData, doc document, reg *stdf.Registry) ([]record.Record, error) {
	for _, key := range meta.Keys() {
		if len(key) == 1 && key[0] != "record" {
			return nil, fmt.Errorf("%w: %s", ErrUnknownKey, key)
		}
	}
	return Build(doc.Record, reg)
}

// Build turns decoded [[record]] tables into records. Every table starts from
// the kind's defaults; listed fields override them. A count field left out of
// the table is raised to the length of the longest array it governs.
func Build(entries []map[string]any, reg *stdf.Registry) ([]record.Record, error) {
	recs := make([]record.Record, 0, len(entries))
	for i, entry := range entries {
		rec, err := buildEntry(entry, reg)
		if err != nil {
			var ee *EntryError
			if errors.As(err, &ee) {
				ee.Index = i
				return nil, ee
			}
			return nil, &EntryError{Index: i, Err: err}
		}
		recs = append(recs, rec)
	}
	return recs, nil
}

func buildEntry(entry map[string]any, reg *stdf.Registry) (record.Record, error) {
	kind, ok := entry[KindKey].(string)
	if !ok || strings.TrimSpace(kind) == "" {
		return nil, &EntryError{Err: ErrMissingKind}
	}
	rec, err := reg.New(kind)
	if err != nil {
		return nil, &EntryError{Kind: kind, Err: err}
	}
	kind = rec.Schema().Name

	rv := reflect.ValueOf(rec)
	if rv.Kind() != reflect.Pointer || rv.Elem().Kind() != reflect.Struct {
		return nil, &EntryError{Kind: kind, Err: fmt.Errorf("%w: %T is not a struct pointer", ErrFieldType, rec)}
	}
	rv = rv.Elem()
	fields := fieldsOf(rv.Type())

	keys := make([]string, 0, len(entry))
	for k := range entry {
		if k != KindKey {
			keys = append(keys, k)
		}
	}
	sort.Strings(keys)

	for _, key := range keys {
		idx, ok := fields[key]
		if !ok {
			return nil, &EntryError{Kind: kind, Field: key, Err: ErrUnknownField}
		}
		if err := assign(rv.Field(idx), entry[key]); err != nil {
			return nil, &EntryError{Kind: kind, Field: key, Err: err}
		}
	}
	if err := fillCounts(rec.Schema(), rv, fields, entry); err != nil {
		return nil, &EntryError{Kind: kind, Field: err.field, Err: err.err}
	}
	return rec, nil
}

type countError struct {
	field string
	err   error
}

func fillCounts(s *record.Schema, rv reflect.Value, fields map[string]int, entry map[string]any) *countError {
	for _, f := range s.Fields {
		name := s.CountOf(f.Name)
		if name == "" {
			continue
		}
		if _, given := entry[name]; given {
			continue
		}
		arr, cnt := rv.Field(fields[f.Name]), rv.Field(fields[name])
		n := uint64(arr.Len())
		if n <= cnt.Uint() {
			continue
		}
		if cnt.OverflowUint(n) {
			return &countError{field: name, err: fmt.Errorf("%w: %s holds %d elements", ErrFieldRange, f.Name, n)}
		}
		cnt.SetUint(n)
	}
	return nil
}

var fieldCache sync.Map

// fieldsOf maps stdf tags to struct field indexes.
func fieldsOf(t reflect.Type) map[string]int {
	if m, ok := fieldCache.Load(t); ok {
		return m.(map[string]int)
	}
	m := make(map[string]int, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		if tag := t.Field(i).Tag.Get("stdf"); tag != "" {
			m[tag] = i
		}
	}
	fieldCache.Store(t, m)
	return m
}

var listType = reflect.TypeOf(variant.List(nil))

func assign(dst reflect.Value, raw any) error {
	switch dst.Kind() {
	case reflect.Uint8:
		if s, ok := raw.(string); ok {
			if len(s) != 1 {
				return fmt.Errorf("%w: want a single character, got %q", ErrFieldType, s)
			}
			dst.SetUint(uint64(s[0]))
			return nil
		}
		return setUint(dst, raw)
	case reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return setUint(dst, raw)
	case reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return setInt(dst, raw)
	case reflect.Float32, reflect.Float64:
		return setFloat(dst, raw)
	case reflect.String:
		s, ok := raw.(string)
		if !ok {
			return fmt.Errorf("%w: want string, got %T", ErrFieldType, raw)
		}
		dst.SetString(s)
		return nil
	case reflect.Slice:
		if dst.Type() == listType {
			return setVariants(dst, raw)
		}
		if s, ok := raw.(string); ok && dst.Type().Elem().Kind() == reflect.Uint8 {
			dst.SetBytes([]byte(s))
			return nil
		}
		items, ok := raw.([]any)
		if !ok {
			return fmt.Errorf("%w: want array, got %T", ErrFieldType, raw)
		}
		out := reflect.MakeSlice(dst.Type(), len(items), len(items))
		for i, item := range items {
			if err := assign(out.Index(i), item); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
		dst.Set(out)
		return nil
	default:
		return fmt.Errorf("%w: unsupported field type %s", ErrFieldType, dst.Type())
	}
}

func setUint(dst reflect.Value, raw any) error {
	v, ok := raw.(int64)
	if !ok {
		return fmt.Errorf("%w: want integer, got %T", ErrFieldType, raw)
	}
	if v < 0 || dst.OverflowUint(uint64(v)) {
		return fmt.Errorf("%w: %d does not fit %s", ErrFieldRange, v, dst.Type())
	}
	dst.SetUint(uint64(v))
	return nil
}

func setInt(dst reflect.Value, raw any) error {
	v, ok := raw.(int64)
	if !ok {
		return fmt.Errorf("%w: want integer, got %T", ErrFieldType, raw)
	}
	if dst.OverflowInt(v) {
		return fmt.Errorf("%w: %d does not fit %s", ErrFieldRange, v, dst.Type())
	}
	dst.SetInt(v)
	return nil
}

func setFloat(dst reflect.Value, raw any) error {
	var v float64
	switch x := raw.(type) {
	case float64:
		v = x
	case int64:
		v = float64(x)
	default:
		return fmt.Errorf("%w: want number, got %T", ErrFieldType, raw)
	}
	if dst.OverflowFloat(v) {
		return fmt.Errorf("%w: %g does not fit %s", ErrFieldRange, v, dst.Type())
	}
	dst.SetFloat(v)
	return nil
}

var variantGoTypes = map[wire.Type]reflect.Type{
	wire.U1: reflect.TypeOf(uint8(0)),
	wire.N1: reflect.TypeOf(uint8(0)),
	wire.U2: reflect.TypeOf(uint16(0)),
	wire.U4: reflect.TypeOf(uint32(0)),
	wire.I1: reflect.TypeOf(int8(0)),
	wire.I2: reflect.TypeOf(int16(0)),
	wire.I4: reflect.TypeOf(int32(0)),
	wire.R4: reflect.TypeOf(float32(0)),
	wire.R8: reflect.TypeOf(float64(0)),
	wire.Cn: reflect.TypeOf(""),
	wire.Bn: reflect.TypeOf([]byte(nil)),
	wire.Dn: reflect.TypeOf([]byte(nil)),
}

// setVariants reads an array of { tag = N, value = V } tables. The pad tag
// takes no value.
func setVariants(dst reflect.Value, raw any) error {
	items, ok := raw.([]any)
	if !ok {
		return fmt.Errorf("%w: want array of tagged values, got %T", ErrFieldType, raw)
	}
	list := make(variant.List, 0, len(items))
	for i, item := range items {
		v, err := parseVariant(item)
		if err != nil {
			return fmt.Errorf("element %d: %w", i, err)
		}
		list = append(list, v)
	}
	dst.Set(reflect.ValueOf(list))
	return nil
}

func parseVariant(item any) (variant.Value, error) {
	tbl, ok := item.(map[string]any)
	if !ok {
		return variant.Value{}, fmt.Errorf("%w: want table, got %T", ErrFieldType, item)
	}
	rawTag, ok := tbl["tag"].(int64)
	if !ok {
		return variant.Value{}, fmt.Errorf("%w: tag must be an integer", ErrFieldType)
	}
	if rawTag < 0 || rawTag > 255 {
		return variant.Value{}, fmt.Errorf("%w: tag %d", ErrFieldRange, rawTag)
	}
	tag := variant.Tag(rawTag)
	if !tag.Valid() {
		return variant.Value{}, fmt.Errorf("%w: %d", variant.ErrUnknownTag, rawTag)
	}
	if tag == variant.TagPad {
		return variant.Pad(), nil
	}
	typ, _ := tag.Type()
	val, ok := tbl["value"]
	if !ok {
		return variant.Value{}, fmt.Errorf("%w: tag %d needs a value", ErrFieldType, rawTag)
	}
	tmp := reflect.New(variantGoTypes[typ]).Elem()
	if err := assign(tmp, val); err != nil {
		return variant.Value{}, err
	}
	return variant.Value{Tag: tag, V: tmp.Interface()}, nil
}
