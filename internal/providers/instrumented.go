package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
)

// instrumentedProvider times every call, records it, and logs failures.
// It never retries.
type instrumentedProvider struct {
	inner    PlayerProvider
	logger   *slog.Logger
	recorder *metrics.Recorder
	name     string
	now      func() time.Time
}

// NewInstrumentedProvider wraps inner with metrics and failure logging.
func NewInstrumentedProvider(inner PlayerProvider, logger *slog.Logger, recorder *metrics.Recorder) PlayerProvider {
	return &instrumentedProvider{
		inner:    inner,
		logger:   logger,
		recorder: recorder,
		name:     NameOf(inner),
		now:      time.Now,
	}
}

func (p *instrumentedProvider) Name() string { return p.name }

func (p *instrumentedProvider) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	if p.inner == nil {
		return nil, ErrProviderUnavailable
	}
	start := p.now()
	list, err := p.inner.FetchByPosition(ctx, pos)
	elapsed := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.name, metrics.OpByPosition, elapsed, err)

	if err != nil {
		logCall(ctx, p.logger, slog.LevelWarn, p.name, metrics.OpByPosition, "fetch by position failed",
			failureAttrs(err, elapsed, slog.String(logging.FieldPosition, pos.String()))...,
		)
		return nil, err
	}
	logCall(ctx, p.logger, slog.LevelDebug, p.name, metrics.OpByPosition, "fetched players by position",
		slog.String(logging.FieldPosition, pos.String()),
		slog.Int(logging.FieldCount, len(list)),
		slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds()),
	)
	return list, nil
}

func (p *instrumentedProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	if p.inner == nil {
		return players.Player{}, ErrProviderUnavailable
	}
	start := p.now()
	player, err := p.inner.FetchPlayer(ctx, id)
	elapsed := p.now().Sub(start)
	p.recorder.RecordProviderAttempt(p.name, metrics.OpPlayer, elapsed, err)

	if err != nil {
		logCall(ctx, p.logger, slog.LevelWarn, p.name, metrics.OpPlayer, "fetch player failed",
			failureAttrs(err, elapsed, slog.Int(logging.FieldPlayerID, id))...,
		)
		return players.Player{}, err
	}
	return player, nil
}

// failureAttrs adds the upstream status code when err carries one.
func failureAttrs(err error, elapsed time.Duration, subject slog.Attr) []any {
	args := []any{subject, slog.Int64(logging.FieldDurationMS, elapsed.Milliseconds())}
	if up, ok := AsUpstreamError(err); ok && up.StatusCode > 0 {
		args = append(args, slog.Int(logging.FieldStatusCode, up.StatusCode))
	}
	return append(args, slog.Any(logging.FieldError, err))
}
