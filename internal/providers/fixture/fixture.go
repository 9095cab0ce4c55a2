package fixture

import (
	"context"
	"fmt"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

const providerName = "fixture"

// Provider serves a static player set useful for offline runs and demos.
type Provider struct {
	players []players.Player
}

// New creates a fixture provider over the built-in player set.
func New() *Provider {
	return &Provider{players: Players()}
}

// NewWith creates a fixture provider over list.
func NewWith(list []players.Player) *Provider {
	cp := make([]players.Player, len(list))
	copy(cp, list)
	return &Provider{players: cp}
}

func (p *Provider) Name() string { return providerName }

// FetchByPosition returns the listing subset for pos, mirroring the API which
// omits bio fields from listings.
func (p *Provider) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]players.Player, 0)
	for _, pl := range p.players {
		if pl.Position == pos {
			out = append(out, listing(pl))
		}
	}
	return out, nil
}

// FetchPlayer returns the full record for id.
func (p *Provider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	if err := ctx.Err(); err != nil {
		return players.Player{}, err
	}
	for _, pl := range p.players {
		if pl.ID == id {
			return pl, nil
		}
	}
	return players.Player{}, fmt.Errorf("%w: %d", providers.ErrPlayerNotFound, id)
}

func listing(p players.Player) players.Player {
	return players.Player{
		ID:              p.ID,
		Name:            p.Name,
		Position:        p.Position,
		Team:            p.Team,
		PointsPerGame:   p.PointsPerGame,
		ReboundsPerGame: p.ReboundsPerGame,
		AssistsPerGame:  p.AssistsPerGame,
	}
}
