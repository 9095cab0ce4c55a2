package runner

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/config"
	"github.com/preston-bernstein/nba-roster-builder/internal/export"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
	"github.com/preston-bernstein/nba-roster-builder/internal/tui"
)

var metricsSetup = metrics.Setup

// runProgram drives a bubbletea model to completion; tests replace it.
var runProgram = func(ctx context.Context, model tea.Model) (tea.Model, error) {
	return tea.NewProgram(model, tea.WithContext(ctx), tea.WithAltScreen()).Run()
}

// Runner wires configuration, telemetry and the provider into the selected page.
type Runner struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	provider      providers.PlayerProvider
	metricsServer httpServer
	metricsStop   func(context.Context) error
	out           io.Writer
}

// New constructs a runner with the configured provider.
func New(cfg config.Config, logger *slog.Logger) *Runner {
	return newRunnerWithProvider(cfg, logger, nil, nil)
}

func newRunnerWithProvider(cfg config.Config, logger *slog.Logger, provider providers.PlayerProvider, recorder *metrics.Recorder) *Runner {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger, recorder)

	factory := newProviderFactory(logger, recorder)
	if provider == nil {
		provider = factory.build(cfg)
	} else {
		provider = factory.wrap(provider)
	}

	return &Runner{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		provider:      provider,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		out:           os.Stdout,
	}
}

// Run opens the configured page and blocks until the user leaves it or ctx
// is canceled. A saved roster is written out before Run returns.
func (r *Runner) Run(ctx context.Context) error {
	r.startMetrics()
	defer r.gracefulShutdown()

	ctx = logging.WithLogger(ctx, r.logger)
	model, err := r.buildModel(ctx)
	if err != nil {
		return err
	}
	logging.Info(r.logger, "page opened",
		logging.FieldPage, string(r.cfg.Page),
		logging.FieldProvider, providers.NameOf(r.provider),
	)

	final, err := runProgram(ctx, model)
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			logging.Info(r.logger, "shutdown signal received")
			return nil
		}
		return err
	}

	if app, ok := final.(*tui.App); ok && app.Saved() {
		return r.saveTeam(app.RosterView())
	}
	return nil
}

func (r *Runner) buildModel(ctx context.Context) (tea.Model, error) {
	opts := []builder.Option{builder.WithLogger(r.logger), builder.WithRecorder(r.metrics)}
	if r.cfg.Page == config.PageMyTeams {
		teams, err := r.loadTeams()
		if err != nil {
			return nil, err
		}
		return tui.NewTeamsApp(ctx, r.provider, teams, opts...), nil
	}
	return tui.NewApp(ctx, r.provider, opts...), nil
}

func (r *Runner) loadTeams() ([]export.Team, error) {
	if r.cfg.Team.File == "" {
		logging.Warn(r.logger, "no team file configured")
		return nil, nil
	}
	teams, err := export.ReadFile(r.cfg.Team.File)
	if err != nil {
		logging.Error(r.logger, "failed to read saved teams", err, "file", r.cfg.Team.File)
		return nil, err
	}
	logging.Info(r.logger, "saved teams loaded", logging.FieldCount, len(teams))
	return teams, nil
}

func (r *Runner) startMetrics() {
	if r.metricsServer == nil {
		return
	}
	logging.Info(r.logger, "metrics server starting", slog.String("addr", r.metricsServer.Addr()))
	launchServer("metrics", r.metricsServer, r.logger)
}

func (r *Runner) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if r.metricsStop != nil {
		if err := r.metricsStop(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics shutdown failed", "error", err)
		}
	}

	if r.metricsServer != nil {
		if err := r.metricsServer.Shutdown(shutdownCtx); err != nil {
			logging.Warn(r.logger, "metrics server shutdown failed", "error", err)
		}
	}

	logging.Info(r.logger, "shutdown complete")
}

func buildMetrics(cfg config.Config, logger *slog.Logger, recorder *metrics.Recorder) (*metrics.Recorder, httpServer, func(context.Context) error) {
	if recorder != nil {
		return recorder, nil, nil
	}

	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		logging.Warn(logger, "metrics setup failed, continuing without telemetry", "err", err)
		return metrics.NewRecorder(), nil, nil
	}

	if cfg.Metrics.OTLPEnabled() {
		logging.Info(logger, "otlp metrics export enabled", "endpoint", cfg.Metrics.OtlpEndpoint)
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:              cfg.Metrics.Addr(),
				Handler:           handler,
				ReadHeaderTimeout: readHeaderTimeout,
				IdleTimeout:       idleTimeout,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger) {
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logging.Warn(logger, name+" server failed", "error", err)
		}
	}()
}
