package script

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/stdfkit/internal/protocol/variant"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/stdf"
	"github.com/danmuck/stdfkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestParseBuildsRecordsWithDefaults(t *testing.T) {
	testlog.Start(t)

	recs, err := Parse(`
[[record]]
kind = "FAR"
CPU_TYPE = 2
STDF_VER = 4

[[record]]
kind = "mir"
SETUP_T = 1546102685
STAT_NUM = 1
MODE_COD = "P"
LOT_ID = "ABCDEFG"

[[record]]
kind = "PGR"
GRP_INDX = 32769
GRP_NAM = "POSITIVE"
PMR_INDX = [74, 76]

[[record]]
kind = "MRR"
FINISH_T = 1546105693
`)
	require.NoError(t, err)
	require.Len(t, recs, 4)

	require.Equal(t, &stdf.FAR{CPUType: 2, STDFVer: 4}, recs[0])

	mir, ok := recs[1].(*stdf.MIR)
	require.True(t, ok)
	require.Equal(t, byte('P'), mir.ModeCod)
	require.Equal(t, stdf.Space, mir.RtstCod)
	require.Equal(t, stdf.NoBurnTime, mir.BurnTim)
	require.Equal(t, "ABCDEFG", mir.LotID)

	pgr, ok := recs[2].(*stdf.PGR)
	require.True(t, ok)
	require.Equal(t, uint16(2), pgr.IndxCnt)
	require.Equal(t, []uint16{74, 76}, pgr.PmrIndx)

	mrr, ok := recs[3].(*stdf.MRR)
	require.True(t, ok)
	require.Equal(t, stdf.Space, mrr.DispCod)
}

func TestParseRejectsBadEntries(t *testing.T) {
	cases := []struct {
		name  string
		src   string
		want  error
		field string
	}{
		{"missing kind", "[[record]]\nCPU_TYPE = 2\n", ErrMissingKind, ""},
		{"unknown kind", "[[record]]\nkind = \"XYZ\"\n", stdf.ErrUnknownKind, ""},
		{"unknown field", "[[record]]\nkind = \"FAR\"\nCPU_KIND = 2\n", ErrUnknownField, "CPU_KIND"},
		{"u1 range", "[[record]]\nkind = \"FAR\"\nCPU_TYPE = 256\n", ErrFieldRange, "CPU_TYPE"},
		{"negative unsigned", "[[record]]\nkind = \"ATR\"\nMOD_TIM = -1\n", ErrFieldRange, "MOD_TIM"},
		{"i2 range", "[[record]]\nkind = \"WCR\"\nCENTER_X = 40000\n", ErrFieldRange, "CENTER_X"},
		{"r4 range", "[[record]]\nkind = \"PTR\"\nRESULT = 1e300\n", ErrFieldRange, "RESULT"},
		{"string for number", "[[record]]\nkind = \"FAR\"\nCPU_TYPE = \"two\"\n", ErrFieldType, "CPU_TYPE"},
		{"long char", "[[record]]\nkind = \"MRR\"\nDISP_COD = \"AB\"\n", ErrFieldType, "DISP_COD"},
		{"unassigned tag", "[[record]]\nkind = \"GDR\"\nGEN_DATA = [{ tag = 9, value = 1 }]\n", variant.ErrUnknownTag, "GEN_DATA"},
		{"tag without value", "[[record]]\nkind = \"GDR\"\nGEN_DATA = [{ tag = 2 }]\n", ErrFieldType, "GEN_DATA"},
		{"top-level key", "version = 4\n[[record]]\nkind = \"EPS\"\n", ErrUnknownKey, ""},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(tc.src)
			require.ErrorIs(t, err, tc.want)
			if tc.field != "" {
				var ee *EntryError
				require.ErrorAs(t, err, &ee)
				require.Equal(t, tc.field, ee.Field)
			}
		})
	}
}

func TestEntryErrorNamesPosition(t *testing.T) {
	_, err := Parse("[[record]]\nkind = \"EPS\"\n\n[[record]]\nkind = \"FAR\"\nSTDF_VER = 300\n")
	var ee *EntryError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, 1, ee.Index)
	require.Equal(t, "FAR", ee.Kind)
	require.Contains(t, err.Error(), "script record 1 (FAR) field STDF_VER")
}

func TestGenericDataAndCountFill(t *testing.T) {
	recs, err := Parse(`
[[record]]
kind = "GDR"
GEN_DATA = [
  { tag = 1, value = 7 },
  { tag = 0 },
  { tag = 10, value = "ab" },
  { tag = 7, value = 1.5 },
  { tag = 11, value = [1, 2] },
  { tag = 1, value = 8 },
]
`)
	require.NoError(t, err)
	gdr := recs[0].(*stdf.GDR)
	require.Equal(t, uint16(6), gdr.FldCnt)
	require.Equal(t, variant.List{
		variant.U1(7),
		variant.Pad(),
		variant.Cn("ab"),
		variant.R4(1.5),
		variant.Bn([]byte{1, 2}),
		variant.U1(8),
	}, gdr.GenData)

	var buf bytes.Buffer
	require.NoError(t, stdf.NewWriter(&buf, stdf.Options{}).Write(gdr))
}

func TestExplicitCountIsKept(t *testing.T) {
	recs, err := Parse(`
[[record]]
kind = "RDR"
NUM_BINS = 3
RTST_BIN = [4]
`)
	require.NoError(t, err)
	rdr := recs[0].(*stdf.RDR)
	require.Equal(t, uint16(3), rdr.NumBins)

	recs, err = Parse(`
[[record]]
kind = "PLR"
GRP_INDX = [1, 2]
PGM_CHAR = ["*", "*", "*"]
`)
	require.NoError(t, err)
	require.Equal(t, uint16(3), recs[0].(*stdf.PLR).GrpCnt)
}

func TestCountFillRange(t *testing.T) {
	sites := "["
	for i := 0; i < 256; i++ {
		if i > 0 {
			sites += ","
		}
		sites += "1"
	}
	sites += "]"
	_, err := Parse("[[record]]\nkind = \"SDR\"\nSITE_NUM = " + sites + "\n")
	require.ErrorIs(t, err, ErrFieldRange)
	var ee *EntryError
	require.ErrorAs(t, err, &ee)
	require.Equal(t, "SITE_CNT", ee.Field)
}

func TestBytesFromStringOrArray(t *testing.T) {
	recs, err := Parse(`
[[record]]
kind = "PRR"
PART_FIX = "ab"

[[record]]
kind = "FTR"
FAIL_PIN = [255, 1]
RTN_STAT = [1, 2, 3]
`)
	require.NoError(t, err)
	require.Equal(t, []byte("ab"), recs[0].(*stdf.PRR).PartFix)

	ftr := recs[1].(*stdf.FTR)
	require.Equal(t, []byte{255, 1}, ftr.FailPin)
	require.Equal(t, uint16(3), ftr.RtnIcnt)
	require.Equal(t, stdf.NoPattern, ftr.PatgNum)
}

func TestLoadFromFile(t *testing.T) {
	testlog.Start(t)

	path := filepath.Join(t.TempDir(), "records.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[[record]]
kind = "FAR"
CPU_TYPE = 1
STDF_VER = 4

[[record]]
kind = "PTR"
RESULT = 0.5
LO_LIMIT = -inf
`), 0o600))

	recs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, recs, 2)
	require.Equal(t, wire.CPUSun, recs[0].(*stdf.FAR).CPUType)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	require.ErrorContains(t, err, "script load failed")
}
