package roster

import "github.com/preston-bernstein/nba-roster-builder/internal/domain/players"

// SlotKind distinguishes starter and bench slots.
type SlotKind string

const (
	Starter SlotKind = "titular"
	Bench   SlotKind = "suplente"
)

// SlotRef identifies a slot positionally, independent of who occupies it.
type SlotRef struct {
	Kind     SlotKind
	Position players.Position
}

// Entry is a filled slot.
type Entry struct {
	Slot     SlotRef
	PlayerID int
}
