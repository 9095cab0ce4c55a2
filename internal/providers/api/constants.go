package api

import "time"

const (
	providerName       = "api"
	defaultBaseURL     = "http://localhost:5000"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512

	byPositionPath = "/api/jugadores_por_posicion/"
	playerPath     = "/api/jugadores/"
)
