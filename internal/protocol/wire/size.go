package wire

// Size returns the encoded size of v under wire type t. Type and length limits
// are checked here; ASCII and nibble range are left to the encoder.
func Size(t Type, v any) (int, error) {
	if w, ok := t.Width(); ok {
		if !fixedMatches(t, v) {
			return 0, ErrTypeMismatch
		}
		return w, nil
	}
	switch t {
	case Cn:
		s, ok := v.(string)
		if !ok {
			return 0, ErrTypeMismatch
		}
		if len(s) > MaxShortLen {
			return 0, ErrStringTooLong
		}
		return 1 + len(s), nil
	case Bn:
		b, ok := v.([]byte)
		if !ok {
			return 0, ErrTypeMismatch
		}
		if len(b) > MaxShortLen {
			return 0, ErrStringTooLong
		}
		return 1 + len(b), nil
	case Dn:
		b, ok := v.([]byte)
		if !ok {
			return 0, ErrTypeMismatch
		}
		if len(b)*8 > MaxBitCount {
			return 0, ErrBitsTooLong
		}
		return 2 + len(b), nil
	case Vn:
		x, ok := v.(Variant)
		if !ok || x == nil {
			return 0, ErrTypeMismatch
		}
		return x.WireSize()
	default:
		return 0, ErrUnknownType
	}
}

// ArraySize returns the encoded size of an n-element array of type t held in
// v. The count n governs the size, not len(v).
func ArraySize(t Type, v any, n int) (int, error) {
	l, err := arrayLen(t, v)
	if err != nil {
		return 0, err
	}
	if l > n || (t == Vn && l != n) {
		return 0, ErrCountMismatch
	}
	if t == N1 {
		return (n + 1) / 2, nil
	}
	if w, ok := t.Width(); ok {
		return n * w, nil
	}
	total := 0
	for i := 0; i < n; i++ {
		s, err := Size(t, arrayElem(t, v, i))
		if err != nil {
			return 0, err
		}
		total += s
	}
	return total, nil
}

func fixedMatches(t Type, v any) bool {
	switch t {
	case C1, B1, N1, U1:
		_, ok := v.(uint8)
		return ok
	case U2:
		_, ok := v.(uint16)
		return ok
	case U4:
		_, ok := v.(uint32)
		return ok
	case U8:
		_, ok := v.(uint64)
		return ok
	case I1:
		_, ok := v.(int8)
		return ok
	case I2:
		_, ok := v.(int16)
		return ok
	case I4:
		_, ok := v.(int32)
		return ok
	case I8:
		_, ok := v.(int64)
		return ok
	case R4:
		_, ok := v.(float32)
		return ok
	case R8:
		_, ok := v.(float64)
		return ok
	}
	return false
}

// arrayLen returns the element count of an array value. A nil value is an
// omitted array of length zero.
func arrayLen(t Type, v any) (int, error) {
	if v == nil {
		return 0, nil
	}
	switch t {
	case C1, B1, N1, U1:
		if x, ok := v.([]uint8); ok {
			return len(x), nil
		}
	case U2:
		if x, ok := v.([]uint16); ok {
			return len(x), nil
		}
	case U4:
		if x, ok := v.([]uint32); ok {
			return len(x), nil
		}
	case U8:
		if x, ok := v.([]uint64); ok {
			return len(x), nil
		}
	case I1:
		if x, ok := v.([]int8); ok {
			return len(x), nil
		}
	case I2:
		if x, ok := v.([]int16); ok {
			return len(x), nil
		}
	case I4:
		if x, ok := v.([]int32); ok {
			return len(x), nil
		}
	case I8:
		if x, ok := v.([]int64); ok {
			return len(x), nil
		}
	case R4:
		if x, ok := v.([]float32); ok {
			return len(x), nil
		}
	case R8:
		if x, ok := v.([]float64); ok {
			return len(x), nil
		}
	case Cn:
		if x, ok := v.([]string); ok {
			return len(x), nil
		}
	case Bn, Dn:
		if x, ok := v.([][]byte); ok {
			return len(x), nil
		}
	case Vn:
		if x, ok := v.([]Variant); ok {
			return len(x), nil
		}
		if x, ok := v.(VariantList); ok {
			return x.Len(), nil
		}
	default:
		return 0, ErrUnknownType
	}
	return 0, ErrTypeMismatch
}

// arrayElem returns element i of v, or the zero element of t once i runs
// past the end of the slice.
func arrayElem(t Type, v any, i int) any {
	switch x := v.(type) {
	case []uint8:
		if i < len(x) {
			return x[i]
		}
	case []uint16:
		if i < len(x) {
			return x[i]
		}
	case []uint32:
		if i < len(x) {
			return x[i]
		}
	case []uint64:
		if i < len(x) {
			return x[i]
		}
	case []int8:
		if i < len(x) {
			return x[i]
		}
	case []int16:
		if i < len(x) {
			return x[i]
		}
	case []int32:
		if i < len(x) {
			return x[i]
		}
	case []int64:
		if i < len(x) {
			return x[i]
		}
	case []float32:
		if i < len(x) {
			return x[i]
		}
	case []float64:
		if i < len(x) {
			return x[i]
		}
	case []string:
		if i < len(x) {
			return x[i]
		}
	case [][]byte:
		if i < len(x) {
			return x[i]
		}
	case []Variant:
		if i < len(x) {
			return x[i]
		}
	case VariantList:
		if i < x.Len() {
			return x.At(i)
		}
	}
	return zero(t)
}

func zero(t Type) any {
	switch t {
	case C1:
		return byte(' ')
	case B1, N1, U1:
		return uint8(0)
	case U2:
		return uint16(0)
	case U4:
		return uint32(0)
	case U8:
		return uint64(0)
	case I1:
		return int8(0)
	case I2:
		return int16(0)
	case I4:
		return int32(0)
	case I8:
		return int64(0)
	case R4:
		return float32(0)
	case R8:
		return float64(0)
	case Cn:
		return ""
	case Bn, Dn:
		return []byte{}
	}
	return nil
}

// VariantList is implemented by typed slices of variants so callers need not
// convert them to []Variant.
type VariantList interface {
	Len() int
	At(i int) Variant
}
