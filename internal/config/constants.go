package config

import "time"

const (
	envPage         = "ROSTER_PAGE"
	envProvider     = "PROVIDER"
	envAPIBaseURL   = "ROSTER_API_BASE_URL"
	envAPICookie    = "ROSTER_API_COOKIE"
	envHTTPTimeout  = "ROSTER_HTTP_TIMEOUT"
	envTeamName     = "ROSTER_TEAM_NAME"
	envTeamFile     = "ROSTER_TEAM_FILE"
	envLogLevel     = "LOG_LEVEL"
	envLogFormat    = "LOG_FORMAT"
	envLogFile      = "LOG_FILE"
	envMetricsPort  = "METRICS_PORT"
	envMetricsOn    = "METRICS_ENABLED"
	envOtelEndpoint = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService  = "OTEL_SERVICE_NAME"
	envOtelInsecure = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPage        = PageBuilder
	defaultProvider    = "api"
	defaultAPIBaseURL  = "http://localhost:5000"
	defaultHTTPTimeout = 10 * time.Second
	defaultTeamName    = "Mi equipo"
	defaultLogFile     = "rosterbuilder.log"
	defaultMetricsPort = "9090"
	defaultServiceName = "nba-roster-builder"
)
