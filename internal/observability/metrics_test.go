package observability

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/require"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	RegisterMetrics()
	RegisterMetrics()

	records := testutil.ToFloat64(recordsWritten.WithLabelValues("FAR"))
	written := testutil.ToFloat64(bytesWritten.WithLabelValues("FAR"))

	RecordWrite("FAR", 6, 3*time.Microsecond)
	RecordFailure("MIR", StageEncode)

	require.Equal(t, records+1, testutil.ToFloat64(recordsWritten.WithLabelValues("FAR")))
	require.Equal(t, written+6, testutil.ToFloat64(bytesWritten.WithLabelValues("FAR")))
	require.GreaterOrEqual(t, testutil.ToFloat64(recordFailures.WithLabelValues("MIR", StageEncode)), 1.0)

	log.Debug().Msg("observability/metrics: registration idempotent and recording paths executed")
}
