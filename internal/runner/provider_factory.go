package runner

import (
	"log/slog"

	"github.com/preston-bernstein/nba-roster-builder/internal/config"
	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

// providerFactory assembles the provider with the shared instrumentation wrapper.
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

func (f providerFactory) build(cfg config.Config) providers.PlayerProvider {
	return f.wrap(selectProvider(cfg, f.logger))
}

func (f providerFactory) wrap(base providers.PlayerProvider) providers.PlayerProvider {
	return providers.NewInstrumentedProvider(base, f.logger, f.metrics)
}
