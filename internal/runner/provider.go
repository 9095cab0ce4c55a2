package runner

import (
	"log/slog"
	"strings"

	"github.com/preston-bernstein/nba-roster-builder/internal/config"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers/api"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers/fixture"
)

func selectProvider(cfg config.Config, logger *slog.Logger) providers.PlayerProvider {
	switch strings.ToLower(strings.TrimSpace(cfg.Provider)) {
	case "api", "":
		return api.NewClient(api.Config{
			BaseURL: cfg.API.BaseURL,
			Cookie:  cfg.API.Cookie,
			Timeout: cfg.API.Timeout,
		})
	case "fixture":
		return fixture.New()
	default:
		logging.Warn(logger, "unknown provider, falling back to fixture", slog.String(logging.FieldProvider, cfg.Provider))
		return fixture.New()
	}
}
