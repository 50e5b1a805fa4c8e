package stdf

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/danmuck/stdfkit/internal/logging"
	"github.com/danmuck/stdfkit/internal/observability"
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/protocol/wire"
	"github.com/rs/zerolog"
)

var ErrCPUTypeMismatch = errors.New("stdf: FAR CPU_TYPE does not match writer byte order")

// Options configure a Writer. The zero value writes little-endian, strictly
// ASCII records.
type Options struct {
	// CPUType selects the byte order; 0 means wire.CPUIntel.
	CPUType       uint8
	AllowNonASCII bool
	// Logger defaults to the global logger tagged component=stdf.writer.
	Logger *zerolog.Logger
}

// Writer is one output session. It is not safe for concurrent use.
type Writer struct {
	out     io.Writer
	codec   *record.Codec
	cpuType uint8
	logger  zerolog.Logger
	records int
	bytes   int64
}

func NewWriter(out io.Writer, opts Options) *Writer {
	cpuType := opts.CPUType
	if cpuType == 0 {
		cpuType = wire.CPUIntel
	}
	logger := logging.Component("stdf.writer")
	if opts.Logger != nil {
		logger = *opts.Logger
	}
	return &Writer{
		out: out,
		codec: record.NewCodec(wire.Options{
			Order:         wire.OrderFor(cpuType),
			AllowNonASCII: opts.AllowNonASCII,
		}),
		cpuType: cpuType,
		logger:  logger,
	}
}

// Write encodes rec and writes it in a single call. A record that fails to
// encode leaves the stream and the counters untouched.
func (w *Writer) Write(rec record.Record) error {
	start := time.Now()
	kind := kindName(rec)

	if far, ok := rec.(*FAR); ok && far != nil && far.CPUType != w.cpuType {
		observability.RecordFailure(kind, observability.StageEncode)
		return fmt.Errorf("%w: record has %d, writer has %d", ErrCPUTypeMismatch, far.CPUType, w.cpuType)
	}

	b, err := w.codec.Encode(rec)
	if err != nil {
		observability.RecordFailure(kind, observability.StageEncode)
		w.logger.Warn().Str("kind", kind).Int("record", w.records).Err(err).Msg("stdf.Writer.Write encode failed")
		return err
	}

	n, err := w.out.Write(b)
	if err == nil && n != len(b) {
		err = io.ErrShortWrite
	}
	if err != nil {
		observability.RecordFailure(kind, observability.StageWrite)
		return fmt.Errorf("stdf: write %s: %w", kind, err)
	}

	w.logger.Debug().
		Str("kind", kind).
		Int64("offset", w.bytes).
		Int("len", n).
		Msg("stdf.Writer.Write")
	w.records++
	w.bytes += int64(n)
	observability.RecordWrite(kind, n, time.Since(start))
	return nil
}

// WriteAll writes recs in order and stops at the first failure, naming its
// position.
func (w *Writer) WriteAll(recs ...record.Record) error {
	for i, rec := range recs {
		if err := w.Write(rec); err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
	}
	return nil
}

// Records returns the number of records written.
func (w *Writer) Records() int { return w.records }

// Bytes returns the number of bytes written, headers included.
func (w *Writer) Bytes() int64 { return w.bytes }

// CPUType returns the CPU type that fixes the writer byte order.
func (w *Writer) CPUType() uint8 { return w.cpuType }

func kindName(rec record.Record) string {
	if rec == nil {
		return "unknown"
	}
	if s := rec.Schema(); s != nil {
		return s.Name
	}
	return "unknown"
}
