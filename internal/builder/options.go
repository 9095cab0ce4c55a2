package builder

import (
	"log/slog"

	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
)

// Option configures a Controller or TeamsPage.
type Option func(*options)

type options struct {
	logger   *slog.Logger
	recorder *metrics.Recorder
}

// WithLogger sets the logger used for fetch failures and roster events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// WithRecorder sets the metrics recorder for roster events.
func WithRecorder(recorder *metrics.Recorder) Option {
	return func(o *options) { o.recorder = recorder }
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}
