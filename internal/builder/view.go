package builder

import (
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
)

// User-facing messages.
const (
	MsgPositionFull = "Ya hay dos jugadores seleccionados para esta posición"
	MsgNoResults    = "No se encontraron jugadores"
)

// Renderer is the capability the controller draws through. Each call replaces
// the whole region it names.
type Renderer interface {
	RenderResults(cards []ResultCard)
	RenderRoster(view RosterView)
	RenderSaveButton(btn SaveButton)
	ShowDetail(p players.Player)
	// Alert is a blocking notification; the controller raises at most one per action.
	Alert(msg string)
}

// ResultCard is one row in the search results.
type ResultCard struct {
	Player   players.Player
	Selected bool
}

// Clickable reports whether the card may be assigned. Selected players are
// shown marked but cannot be picked again.
func (c ResultCard) Clickable() bool {
	return !c.Selected
}

// RosterCard is a filled slot. Removal goes through Slot, never the player id.
type RosterCard struct {
	Player players.Player
	Slot   roster.SlotRef
}

// RosterView holds both slot lists in position order.
type RosterView struct {
	Starters []RosterCard
	Bench    []RosterCard
}

// Cards returns starters followed by bench.
func (v RosterView) Cards() []RosterCard {
	out := make([]RosterCard, 0, len(v.Starters)+len(v.Bench))
	out = append(out, v.Starters...)
	return append(out, v.Bench...)
}

type nopRenderer struct{}

func (nopRenderer) RenderResults([]ResultCard)  {}
func (nopRenderer) RenderRoster(RosterView)     {}
func (nopRenderer) RenderSaveButton(SaveButton) {}
func (nopRenderer) ShowDetail(players.Player)   {}
func (nopRenderer) Alert(string)                {}
