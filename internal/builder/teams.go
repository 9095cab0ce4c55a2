package builder

import (
	"context"
	"errors"
	"log/slog"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
)

// ErrEmptyEntry is returned when a listed entry carries no player.
var ErrEmptyEntry = errors.New("entry has no player")

// DetailRenderer is the slice of Renderer the saved-teams page needs.
type DetailRenderer interface {
	ShowDetail(p players.Player)
}

// TeamsPage drives the saved-teams page: picking a listed player shows its
// detail the same way the builder does.
type TeamsPage struct {
	provider providers.PlayerProvider
	renderer DetailRenderer
	logger   *slog.Logger
}

// NewTeamsPage builds the saved-teams controller.
func NewTeamsPage(provider providers.PlayerProvider, renderer DetailRenderer, opts ...Option) *TeamsPage {
	o := applyOptions(opts)
	if renderer == nil {
		renderer = nopRenderer{}
	}
	return &TeamsPage{provider: provider, renderer: renderer, logger: o.logger}
}

// Selectable reports whether the entry holding id can open a detail.
func (t *TeamsPage) Selectable(id int) bool {
	return id != roster.NoPlayer
}

// FetchDetail loads one listed player's full record without rendering.
// Entries without a player are never fetched.
func (t *TeamsPage) FetchDetail(ctx context.Context, id int) (players.Player, error) {
	if !t.Selectable(id) {
		return players.Player{}, ErrEmptyEntry
	}
	return fetchDetail(ctx, t.provider, t.logger, id)
}

// OpenDetail renders an already fetched player.
func (t *TeamsPage) OpenDetail(p players.Player) {
	t.renderer.ShowDetail(p)
}
