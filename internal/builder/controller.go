package builder

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/preston-bernstein/nba-roster-builder/internal/directory"
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
	"github.com/preston-bernstein/nba-roster-builder/internal/metrics"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
)

var (
	// ErrUnknownPlayer is returned when an id is not in the loaded directory.
	ErrUnknownPlayer = errors.New("player not in directory")
	// ErrAlreadySelected is returned when assigning a player already on the roster.
	ErrAlreadySelected = errors.New("player already selected")
)

// Controller owns the directory snapshot, the roster and the filter criteria,
// and redraws through a Renderer after every change. It is not safe for
// concurrent use; callers mutate it from a single loop. FetchDirectory and
// FetchDetail only touch the provider and may run elsewhere.
type Controller struct {
	provider providers.PlayerProvider
	renderer Renderer
	logger   *slog.Logger
	recorder *metrics.Recorder

	directory *directory.Store
	roster    *roster.Roster
	criteria  directory.Criteria
}

// NewController builds a controller and renders the initial save button.
func NewController(provider providers.PlayerProvider, renderer Renderer, opts ...Option) *Controller {
	o := applyOptions(opts)
	if renderer == nil {
		renderer = nopRenderer{}
	}
	c := &Controller{
		provider:  provider,
		renderer:  renderer,
		logger:    o.logger,
		recorder:  o.recorder,
		directory: directory.NewStore(),
		roster:    roster.New(),
	}
	c.renderer.RenderSaveButton(c.SaveButton())
	return c
}

// FetchDirectory loads every position from the provider without touching
// controller state.
func (c *Controller) FetchDirectory(ctx context.Context) ([]players.Player, error) {
	list, err := providers.LoadDirectory(ctx, c.provider, players.Positions())
	if err != nil {
		logging.Error(c.logger, "error loading players", err,
			logging.FieldProvider, providers.NameOf(c.provider),
		)
		return nil, err
	}
	return list, nil
}

// SetDirectory replaces the cached directory and renders it unfiltered.
func (c *Controller) SetDirectory(list []players.Player) {
	c.directory.Replace(list)
	c.recorder.RecordDirectoryLoad(c.directory.Len())
	logging.Info(c.logger, "directory loaded",
		logging.FieldProvider, providers.NameOf(c.provider),
		logging.FieldCount, c.directory.Len(),
	)
	c.showResults(c.directory.List())
}

// SetQuery updates the name filter and re-runs it.
func (c *Controller) SetQuery(query string) {
	c.criteria.Name = query
	c.Refilter()
}

// SetPosition updates the position filter; PositionUnknown clears it.
func (c *Controller) SetPosition(pos players.Position) {
	c.criteria.Position = pos
	c.Refilter()
}

// Criteria returns the active filter.
func (c *Controller) Criteria() directory.Criteria {
	return c.criteria
}

// Refilter runs the active criteria over the directory and renders the result.
func (c *Controller) Refilter() {
	c.showResults(directory.Filter(c.directory.List(), c.criteria))
}

func (c *Controller) showResults(list []players.Player) {
	cards := make([]ResultCard, 0, len(list))
	for _, p := range list {
		cards = append(cards, ResultCard{Player: p, Selected: c.roster.IsSelected(p.ID)})
	}
	c.renderer.RenderResults(cards)
}

// Assign places a directory player on the roster. Selected players are
// ignored. A player that fits no slot, whether its position is full or not
// one of the five, raises one alert and leaves the roster as is.
func (c *Controller) Assign(id int) (roster.SlotRef, error) {
	p, ok := c.directory.Get(id)
	if !ok {
		logging.Warn(c.logger, "assign unknown player", logging.FieldPlayerID, id)
		return roster.SlotRef{}, fmt.Errorf("%w: %d", ErrUnknownPlayer, id)
	}
	if c.roster.IsSelected(id) {
		return roster.SlotRef{}, ErrAlreadySelected
	}
	ref, err := c.roster.Assign(p)
	if err != nil {
		if errors.Is(err, roster.ErrUnknownPosition) {
			logging.Warn(c.logger, "assign rejected",
				logging.FieldPlayerID, id,
				logging.FieldPosition, p.Position.String(),
				logging.FieldError, err,
			)
		}
		c.recorder.RecordRosterEvent(metrics.EventRejected)
		c.renderer.Alert(MsgPositionFull)
		return roster.SlotRef{}, err
	}
	c.recorder.RecordRosterEvent(metrics.EventAssigned)
	logging.Info(c.logger, "player assigned",
		logging.FieldPlayerID, id,
		logging.FieldSlot, string(ref.Kind),
		logging.FieldPosition, ref.Position.String(),
		logging.FieldRemaining, c.roster.Remaining(),
	)
	c.redraw()
	return ref, nil
}

// Remove clears the referenced slot regardless of who holds it.
func (c *Controller) Remove(ref roster.SlotRef) {
	if c.roster.At(ref) != roster.NoPlayer {
		c.recorder.RecordRosterEvent(metrics.EventRemoved)
	}
	c.roster.Remove(ref)
	logging.Info(c.logger, "slot cleared",
		logging.FieldSlot, string(ref.Kind),
		logging.FieldPosition, ref.Position.String(),
		logging.FieldRemaining, c.roster.Remaining(),
	)
	c.redraw()
}

// Reset empties the roster, clears the filter and redraws everything.
func (c *Controller) Reset() {
	c.roster.Reset()
	c.criteria = directory.Criteria{}
	c.redraw()
}

func (c *Controller) redraw() {
	c.renderer.RenderRoster(c.RosterView())
	c.Refilter()
	c.renderer.RenderSaveButton(c.SaveButton())
}

// FetchDetail loads one player's full record without touching controller state.
func (c *Controller) FetchDetail(ctx context.Context, id int) (players.Player, error) {
	return fetchDetail(ctx, c.provider, c.logger, id)
}

// OpenDetail renders an already fetched player.
func (c *Controller) OpenDetail(p players.Player) {
	c.renderer.ShowDetail(p)
}

// RosterView resolves the filled slots against the directory.
func (c *Controller) RosterView() RosterView {
	return RosterView{
		Starters: c.cards(roster.Starter),
		Bench:    c.cards(roster.Bench),
	}
}

func (c *Controller) cards(kind roster.SlotKind) []RosterCard {
	entries := c.roster.Entries(kind)
	out := make([]RosterCard, 0, len(entries))
	for _, e := range entries {
		p, ok := c.directory.Get(e.PlayerID)
		if !ok {
			p = players.Player{ID: e.PlayerID, Position: e.Slot.Position}
		}
		out = append(out, RosterCard{Player: p, Slot: e.Slot})
	}
	return out
}

// SaveButton derives the current save button state.
func (c *Controller) SaveButton() SaveButton {
	return SaveButtonState(c.roster)
}

// Complete reports whether every slot is filled.
func (c *Controller) Complete() bool {
	return c.roster.Complete()
}

func fetchDetail(ctx context.Context, provider providers.PlayerProvider, logger *slog.Logger, id int) (players.Player, error) {
	if provider == nil {
		return players.Player{}, providers.ErrProviderUnavailable
	}
	p, err := provider.FetchPlayer(ctx, id)
	if err != nil {
		logging.Error(logger, "error loading player details", err,
			logging.FieldProvider, providers.NameOf(provider),
			logging.FieldPlayerID, id,
		)
		return players.Player{}, err
	}
	return p, nil
}
