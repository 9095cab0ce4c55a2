package config

import "github.com/joho/godotenv"

// Page names the screen the client opens on.
type Page string

const (
	PageBuilder Page = "armar_equipo"
	PageMyTeams Page = "mis_equipos"
)

// Config holds runtime configuration for the roster builder.
type Config struct {
	Page     Page
	Provider string
	API      APIConfig
	Team     TeamConfig
	Log      LogConfig
	Metrics  MetricsConfig
}

// TeamConfig controls roster export and the saved-teams page.
type TeamConfig struct {
	Name string
	File string
}

// LogConfig controls where and how the client logs.
type LogConfig struct {
	Level  string
	Format string
	File   string
}

// Load reads configuration from environment variables with sensible defaults.
// A .env file in the working directory is applied first when present; it never
// overrides variables already set.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Page:     parsePage(envOrDefault(envPage, string(defaultPage))),
		Provider: envOrDefault(envProvider, defaultProvider),
		API:      loadAPI(),
		Team: TeamConfig{
			Name: envOrDefault(envTeamName, defaultTeamName),
			File: envOrDefault(envTeamFile, ""),
		},
		Log: LogConfig{
			Level:  envOrDefault(envLogLevel, ""),
			Format: envOrDefault(envLogFormat, ""),
			File:   envOrDefault(envLogFile, defaultLogFile),
		},
		Metrics: loadMetrics(),
	}
}

func parsePage(raw string) Page {
	switch Page(raw) {
	case PageMyTeams, "/" + PageMyTeams:
		return PageMyTeams
	default:
		return PageBuilder
	}
}
