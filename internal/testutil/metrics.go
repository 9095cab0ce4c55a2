package testutil

import (
	"context"

	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
)

// NewRecorderWithShutdown returns a recorder backed by real OTel instruments
// on a private Prometheus registry, plus the meter shutdown. It degrades to an
// in-memory recorder if the exporter cannot be built.
func NewRecorderWithShutdown() (*metrics.Recorder, func(context.Context) error) {
	rec, _, shutdown, err := metrics.Setup(context.Background(), metrics.TelemetryConfig{
		Enabled:     true,
		ServiceName: "nba-roster-builder-test",
	})
	if err != nil {
		return metrics.NewRecorder(), func(context.Context) error { return nil }
	}
	return rec, shutdown
}
