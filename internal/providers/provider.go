package providers

import (
	"context"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// PlayerProvider fetches player records from an upstream source.
type PlayerProvider interface {
	// FetchByPosition lists every player registered at pos.
	FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error)
	// FetchPlayer returns the full record for one player.
	FetchPlayer(ctx context.Context, id int) (players.Player, error)
}

// Named is implemented by providers that report a stable name for logs and metrics.
type Named interface {
	Name() string
}

// NameOf returns the provider's name, or "unknown".
func NameOf(p PlayerProvider) string {
	if n, ok := p.(Named); ok && n.Name() != "" {
		return n.Name()
	}
	return "unknown"
}
