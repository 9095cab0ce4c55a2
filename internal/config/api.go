package config

import "time"

// APIConfig controls how we talk to the player API.
type APIConfig struct {
	BaseURL string
	// Cookie is sent verbatim; the API sits behind a login session.
	Cookie  string
	Timeout time.Duration
}

func loadAPI() APIConfig {
	return APIConfig{
		BaseURL: envOrDefault(envAPIBaseURL, defaultAPIBaseURL),
		Cookie:  envOrDefault(envAPICookie, ""),
		Timeout: durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
	}
}
