package tools

import (
	"fmt"
	"io"

	"github.com/danmuck/stdfkit/internal/config"
	"github.com/danmuck/stdfkit/internal/logging"
	"github.com/danmuck/stdfkit/internal/protocol/record"
	"github.com/danmuck/stdfkit/internal/script"
	"github.com/danmuck/stdfkit/internal/stdf"
	"github.com/prometheus/client_golang/prometheus"
)

// Result summarizes a finished generate run.
type Result struct {
	Records int
	Bytes   int64
}

// Generate loads the script at scriptPath and writes its records to out.
func Generate(cfg config.WriterConfig, scriptPath string, out io.Writer) (Result, error) {
	recs, err := script.Load(scriptPath)
	if err != nil {
		return Result{}, err
	}
	return WriteRecords(cfg, recs, out)
}

// WriteRecords writes recs to out with the writer settings of cfg and dumps
// metrics when cfg names a metrics file. Records written before a failure
// stay on out.
func WriteRecords(cfg config.WriterConfig, recs []record.Record, out io.Writer) (Result, error) {
	logger := logging.Component("tools.generate")
	if len(recs) > 0 {
		if _, ok := recs[0].(*stdf.FAR); !ok {
			logger.Warn().Str("kind", recs[0].Schema().Name).Msg("stream does not start with FAR")
		}
	}

	w := stdf.NewWriter(out, stdf.Options{
		CPUType:       cfg.CPUType,
		AllowNonASCII: !cfg.Strict(),
	})
	err := w.WriteAll(recs...)
	res := Result{Records: w.Records(), Bytes: w.Bytes()}
	if err != nil {
		return res, err
	}
	logger.Info().Int("records", res.Records).Int64("bytes", res.Bytes).Msg("stream written")

	if cfg.MetricsFile != "" {
		if err := prometheus.WriteToTextfile(cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
			return res, fmt.Errorf("metrics dump failed (%s): %w", cfg.MetricsFile, err)
		}
	}
	return res, nil
}
