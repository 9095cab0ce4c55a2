package providers

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
)

// logCall records one provider call outcome. The logger on ctx wins over
// fallback; nothing is logged when neither is set.
func logCall(ctx context.Context, fallback *slog.Logger, level slog.Level, provider, operation, msg string, args ...any) {
	logger := logging.FromContext(ctx, fallback)
	if logger == nil || !logger.Enabled(ctx, level) {
		return
	}
	args = append(args,
		slog.String(logging.FieldProvider, provider),
		slog.String(logging.FieldOperation, operation),
	)
	logger.Log(ctx, level, msg, args...)
}
