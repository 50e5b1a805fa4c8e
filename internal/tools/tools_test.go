package tools

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/danmuck/stdfkit/internal/config"
	"github.com/danmuck/stdfkit/internal/protocol/frame"
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/danmuck/stdfkit/internal/stdf"
	"github.com/danmuck/stdfkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

const sunScript = `
[[record]]
kind = "FAR"
CPU_TYPE = 1
STDF_VER = 4

[[record]]
kind = "PIR"
HEAD_NUM = 1
SITE_NUM = 3

[[record]]
kind = "MRR"
FINISH_T = 1546105693
`

func writeScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "records.toml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestGenerateAndInspectRoundTrip(t *testing.T) {
	testlog.Start(t)

	cfg := config.DefaultWriterConfig()
	cfg.CPUType = wire.CPUSun
	cfg.MetricsFile = filepath.Join(t.TempDir(), "stdfgen.prom")

	var out bytes.Buffer
	res, err := Generate(cfg, writeScript(t, sunScript), &out)
	require.NoError(t, err)
	require.Equal(t, 3, res.Records)
	require.Equal(t, int64(out.Len()), res.Bytes)
	require.Equal(t, []byte{0x00, 0x02, 0, 10, 1, 4}, out.Bytes()[:6])

	entries, order, err := Inspect(bytes.NewReader(out.Bytes()))
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian, order)
	require.Equal(t, []Entry{
		{Offset: 0, Kind: "FAR", Typ: 0, Sub: 10, Len: 2},
		{Offset: 6, Kind: "PIR", Typ: 5, Sub: 10, Len: 2},
		{Offset: 12, Kind: "MRR", Typ: 1, Sub: 20, Len: 7},
	}, entries)

	metrics, err := os.ReadFile(cfg.MetricsFile)
	require.NoError(t, err)
	require.Contains(t, string(metrics), "stdfkit_writer_records_total")

	var table bytes.Buffer
	require.NoError(t, PrintEntries(&table, entries))
	lines := strings.Split(strings.TrimSpace(table.String()), "\n")
	require.Len(t, lines, 4)
	require.True(t, strings.HasPrefix(lines[0], "OFFSET"))
	require.Contains(t, lines[3], "MRR")
}

func TestGenerateStopsAtFirstBadRecord(t *testing.T) {
	testlog.Start(t)

	var out bytes.Buffer
	res, err := WriteRecords(config.DefaultWriterConfig(), []record.Record{
		stdf.DefaultFAR(),
		&stdf.PGR{IndxCnt: 1, PmrIndx: []uint16{1, 2}},
		stdf.NewEPS(),
	}, &out)
	require.ErrorIs(t, err, wire.ErrCountMismatch)
	require.Equal(t, 1, res.Records)
	require.Equal(t, 6, out.Len())
}

func TestGenerateRejectsMismatchedFAR(t *testing.T) {
	var out bytes.Buffer
	_, err := Generate(config.DefaultWriterConfig(), writeScript(t, sunScript), &out)
	require.ErrorIs(t, err, stdf.ErrCPUTypeMismatch)
	require.Zero(t, out.Len())

	_, err = Generate(config.DefaultWriterConfig(), filepath.Join(t.TempDir(), "missing.toml"), &out)
	require.ErrorContains(t, err, "script load failed")
}

func TestDetectOrder(t *testing.T) {
	order, err := DetectOrder([]byte{2, 0, 0, 10, 2, 4})
	require.NoError(t, err)
	require.Equal(t, binary.LittleEndian, order)

	order, err = DetectOrder([]byte{0, 2, 0, 10, 0, 4})
	require.NoError(t, err)
	require.Equal(t, binary.BigEndian, order)

	_, err = DetectOrder([]byte{2, 0, 1, 10, 2, 4})
	require.ErrorIs(t, err, ErrNoFileHeader)
	_, err = DetectOrder([]byte{2, 0})
	require.ErrorIs(t, err, ErrNoFileHeader)
	_, err = DetectOrder([]byte{3, 0, 0, 10, 9, 4})
	require.ErrorIs(t, err, ErrNoFileHeader)
}

func TestInspectReportsTruncatedTail(t *testing.T) {
	stream := append(frame.EncodeHeader(frame.Header{Len: 2, Typ: 0, Sub: 10}, binary.LittleEndian), 2, 4)
	stream = append(stream, frame.EncodeHeader(frame.Header{Len: 9, Typ: 50, Sub: 30}, binary.LittleEndian)...)
	stream = append(stream, 1, 2)

	entries, _, err := Inspect(bytes.NewReader(stream))
	require.ErrorIs(t, err, frame.ErrShortBody)
	require.ErrorContains(t, err, "record 1 at offset 6")
	require.Len(t, entries, 1)
	require.Equal(t, "FAR", entries[0].Kind)
}
