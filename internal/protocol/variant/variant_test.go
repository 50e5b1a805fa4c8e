package variant

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danmuck/stdfkit/internal/protocol/wire"
)

func TestTagDispatch(t *testing.T) {
	values := []Value{
		U1(0xfe),
		U2(0xbeef),
		U4(0xdeadbeef),
		I1(-2),
		I2(-300),
		I4(-70000),
		R4(1.5),
		R8(-2.25),
		Cn("volts"),
		Bn([]byte{0x01, 0x02, 0x03}),
		Dn([]byte{0xf0}),
		N1(0x0a),
	}
	for _, v := range values {
		t.Run(v.Tag.String(), func(t *testing.T) {
			require := require.New(t)
			typ, ok := v.Tag.Type()
			require.True(ok)

			want := wire.NewEncoder(16, wire.Options{})
			want.PutU1(uint8(v.Tag))
			require.NoError(want.Put(typ, v.V))

			got := wire.NewEncoder(16, wire.Options{})
			require.NoError(v.EncodeTo(got))
			require.Equal(want.Bytes(), got.Bytes())

			size, err := v.WireSize()
			require.NoError(err)
			require.Equal(got.Len(), size)

			back, err := Decode(wire.NewDecoder(got.Bytes(), nil))
			require.NoError(err)
			require.Equal(v, back)
		})
	}
}

func TestPadIsOneByte(t *testing.T) {
	require := require.New(t)
	e := wire.NewEncoder(1, wire.Options{})
	require.NoError(Pad().EncodeTo(e))
	require.Equal([]byte{0}, e.Bytes())
	size, err := Pad().WireSize()
	require.NoError(err)
	require.Equal(1, size)
}

func TestUnassignedTag(t *testing.T) {
	require := require.New(t)
	v := Value{Tag: 9, V: uint8(1)}
	require.False(v.Tag.Valid())
	_, err := v.WireSize()
	require.ErrorIs(err, ErrUnknownTag)
	e := wire.NewEncoder(0, wire.Options{})
	require.ErrorIs(v.EncodeTo(e), ErrUnknownTag)
	require.Zero(e.Len())

	_, err = Decode(wire.NewDecoder([]byte{9, 1}, nil))
	require.ErrorIs(err, ErrUnknownTag)
}

func TestPayloadTypeMismatch(t *testing.T) {
	require := require.New(t)
	_, err := Value{Tag: TagU2, V: uint8(1)}.WireSize()
	require.ErrorIs(err, wire.ErrTypeMismatch)
}

func TestListRepeatsTags(t *testing.T) {
	require := require.New(t)
	l := List{U1(1), U1(2), Pad(), Cn("ab")}
	size, err := l.Size()
	require.NoError(err)
	require.Equal(2+2+1+4, size)

	arr, err := wire.ArraySize(wire.Vn, l, l.Len())
	require.NoError(err)
	require.Equal(size, arr)

	e := wire.NewEncoder(size, wire.Options{})
	require.NoError(e.PutArray(wire.Vn, l, l.Len()))
	require.Equal([]byte{1, 1, 1, 2, 0, 10, 2, 'a', 'b'}, e.Bytes())

	_, err = wire.ArraySize(wire.Vn, l, l.Len()+1)
	require.ErrorIs(err, wire.ErrCountMismatch)
}
