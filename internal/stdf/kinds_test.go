package stdf

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/danmuck/stdfkit/internal/protocol/frame"
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/variant"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestDefaultKindsEncodeWithConsistentHeaders(t *testing.T) {
	testlog.Start(t)

	want := map[string]int{
		"FAR": 2, "ATR": 5, "MIR": 45, "MRR": 7, "PCR": 22, "HBR": 10, "SBR": 10,
		"PMR": 9, "PGR": 5, "PLR": 2, "RDR": 2, "SDR": 19, "WIR": 7, "WRR": 32,
		"WCR": 20, "PIR": 2, "PRR": 20, "TSR": 43, "PTR": 38, "MPR": 47, "FTR": 50,
		"BPS": 1, "EPS": 0, "GDR": 2, "DTR": 1,
	}

	kinds := Default().List()
	require.Len(t, kinds, len(want))
	for _, k := range kinds {
		rec := k.New()
		b, err := record.Encode(rec)
		require.NoError(t, err, k.Schema.Name)

		h, err := frame.DecodeHeader(b, binary.LittleEndian)
		require.NoError(t, err)
		require.Equal(t, k.Schema.Typ, h.Typ, k.Schema.Name)
		require.Equal(t, k.Schema.Sub, h.Sub, k.Schema.Name)
		require.Equal(t, len(b)-frame.HeaderLen, int(h.Len), k.Schema.Name)
		require.Equal(t, want[k.Schema.Name], int(h.Len), k.Schema.Name)
		require.Len(t, rec.Values(), len(k.Schema.Fields), k.Schema.Name)
	}
}

func TestRegistryOrderAndLookup(t *testing.T) {
	kinds := Default().List()
	require.Equal(t, "FAR", kinds[0].Schema.Name)
	require.Equal(t, "DTR", kinds[len(kinds)-1].Schema.Name)

	k, ok := Lookup(" mir ")
	require.True(t, ok)
	require.Equal(t, "MIR(1,10)", k.Schema.String())

	k, ok = Default().ByCode(15, 15)
	require.True(t, ok)
	require.Equal(t, "MPR", k.Schema.Name)

	_, ok = Default().ByCode(99, 1)
	require.False(t, ok)

	_, err := Default().New("XYZ")
	require.ErrorIs(t, err, ErrUnknownKind)
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	r := NewRegistry()
	require.NoError(t, r.Register(Kind{Schema: farSchema, New: func() record.Record { return DefaultFAR() }}))
	require.ErrorIs(t, r.Register(Kind{Schema: farSchema, New: func() record.Record { return DefaultFAR() }}), ErrKindExists)

	clash := record.MustSchema("XFA", 0, 10)
	require.ErrorIs(t, r.Register(Kind{Schema: clash, New: func() record.Record { return NewEPS() }}), ErrKindExists)
	require.ErrorIs(t, r.Register(Kind{}), ErrKindNil)
}

func TestMIRDefaults(t *testing.T) {
	mir := NewMIR(1546102685, 1546102693, 1, "LOT", "PART", "NODE", "TSTR", "JOB")
	require.Equal(t, Space, mir.ModeCod)
	require.Equal(t, Space, mir.CmodCod)
	require.Equal(t, uint16(65535), mir.BurnTim)

	n, err := record.Size(mir)
	require.NoError(t, err)
	require.Equal(t, 45+3+4+4+4+3, n)
}

func TestPGRCountGovernsIndexArray(t *testing.T) {
	pgr := NewPGR(32769, 74, 76)
	pgr.GrpNam = "POSITIVE"

	b, err := record.Encode(pgr)
	require.NoError(t, err)
	require.Equal(t, []byte{
		17, 0, 1, 62,
		0x01, 0x80,
		8, 'P', 'O', 'S', 'I', 'T', 'I', 'V', 'E',
		2, 0,
		74, 0, 76, 0,
	}, b)

	pgr.IndxCnt = 1
	_, err = record.Encode(pgr)
	require.ErrorIs(t, err, wire.ErrCountMismatch)
}

func TestPLRPadsOmittedTrailingArrays(t *testing.T) {
	plr := NewPLR(1, 2)
	plr.PgmChar = []string{"***", "***"}

	b, err := record.Encode(plr)
	require.NoError(t, err)
	require.Equal(t, []byte{
		2, 0,
		1, 0, 2, 0,
		0, 0, 0, 0,
		0, 0,
		3, '*', '*', '*', 3, '*', '*', '*',
		0, 0,
		0, 0,
		0, 0,
	}, b[frame.HeaderLen:])
}

func TestMPRPacksReturnStates(t *testing.T) {
	mpr := NewMPR(7, 1, 0, 0, 0, []uint8{1, 2, 3}, []float32{1.5})

	n, err := record.Size(mpr)
	require.NoError(t, err)
	require.Equal(t, 47+2+4+6, n)

	b, err := record.Encode(mpr)
	require.NoError(t, err)
	body := b[frame.HeaderLen:]
	// TEST_NUM..RSLT_CNT take 12 bytes, then the packed states.
	require.Equal(t, []byte{0x21, 0x03}, body[12:14])
	require.Equal(t, math.Float32bits(1.5), binary.LittleEndian.Uint32(body[14:18]))

	mpr.RtnStat = []uint8{16}
	mpr.RtnIcnt = 1
	_, err = record.Encode(mpr)
	require.ErrorIs(t, err, wire.ErrNibbleRange)
}

func TestPTRInfiniteLimits(t *testing.T) {
	ptr := NewPTR(1, 1, 0, 0, 0, 0.5)
	require.True(t, math.IsInf(float64(ptr.LoLimit), -1))
	require.True(t, math.IsInf(float64(ptr.HiLimit), 1))

	b, err := record.Encode(ptr)
	require.NoError(t, err)
	body := b[frame.HeaderLen:]
	// 12 fixed bytes, two empty strings, OPT_FLAG and three scales.
	require.Equal(t, uint32(0xff800000), binary.LittleEndian.Uint32(body[18:22]))
	require.Equal(t, uint32(0x7f800000), binary.LittleEndian.Uint32(body[22:26]))
}

func TestGDRVariantPayload(t *testing.T) {
	gdr := NewGDR(variant.U1(7), variant.Pad(), variant.Cn("ab"))

	b, err := record.Encode(gdr)
	require.NoError(t, err)
	require.Equal(t, []byte{9, 0, 50, 10, 3, 0, 1, 7, 0, 10, 2, 'a', 'b'}, b)

	gdr.FldCnt = 2
	_, err = record.Encode(gdr)
	require.ErrorIs(t, err, wire.ErrCountMismatch)

	bad := NewGDR(variant.Value{Tag: 9, V: uint8(1)})
	_, err = record.Encode(bad)
	require.ErrorIs(t, err, variant.ErrUnknownTag)
}

func TestFTRBitFields(t *testing.T) {
	ftr := NewFTR(3, 1, 0, 0)
	ftr.FailPin = []byte{0xff, 0x01}
	ftr.RtnIcnt = 3
	ftr.RtnIndx = []uint16{1, 2, 3}
	ftr.RtnStat = []uint8{4, 5, 6}

	n, err := record.Size(ftr)
	require.NoError(t, err)
	require.Equal(t, 50+2+6+2, n)

	b, err := record.Encode(ftr)
	require.NoError(t, err)
	body := b[frame.HeaderLen:]
	// 38 fixed bytes, RTN_INDX, RTN_STAT, then FAIL_PIN.
	require.Equal(t, []byte{0x54, 0x06}, body[44:46])
	require.Equal(t, []byte{16, 0, 0xff, 0x01}, body[46:50])
	require.Equal(t, NoPattern, body[len(body)-3])
}
