package tui

import (
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// directoryLoadedMsg carries the result of a background directory fetch.
type directoryLoadedMsg struct {
	players []players.Player
	err     error
}

// detailLoadedMsg carries the result of a background detail fetch.
type detailLoadedMsg struct {
	player players.Player
	err    error
}
