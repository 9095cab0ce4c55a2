package roster

import (
	"errors"
	"fmt"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

var (
	// ErrPositionFull is returned when a position already holds a starter and a bench player.
	ErrPositionFull = errors.New("ya hay dos jugadores seleccionados para esta posición")
	// ErrUnknownPosition is returned for players whose position is not one of the five known labels.
	ErrUnknownPosition = errors.New("unknown position")
)

// NoPlayer marks an empty slot.
const NoPlayer = 0

// Pair holds the starter and bench player ids for one position.
type Pair struct {
	Starter int
	Bench   int
}

// Get returns the id held by the given side of the pair.
func (p Pair) Get(kind SlotKind) int {
	if kind == Starter {
		return p.Starter
	}
	return p.Bench
}

func (p *Pair) set(kind SlotKind, id int) {
	if kind == Starter {
		p.Starter = id
		return
	}
	p.Bench = id
}

// Roster tracks the starter/bench assignment being built. The zero value is
// not usable; construct with New.
type Roster struct {
	slots map[players.Position]*Pair
}

// New returns an empty roster with one pair per known position.
func New() *Roster {
	r := &Roster{}
	r.Reset()
	return r
}

// Reset clears every slot.
func (r *Roster) Reset() {
	r.slots = make(map[players.Position]*Pair, len(players.Positions()))
	for _, pos := range players.Positions() {
		r.slots[pos] = &Pair{}
	}
}

// Capacity is the number of slots in a full roster.
func Capacity() int {
	return 2 * len(players.Positions())
}

// Assign places the player in the starter slot of its position, or the bench
// slot if the starter is taken. A full position leaves the roster unchanged.
func (r *Roster) Assign(p players.Player) (SlotRef, error) {
	pair, ok := r.slots[p.Position]
	if !ok {
		return SlotRef{}, fmt.Errorf("roster: assign player %d: %w: %q", p.ID, ErrUnknownPosition, p.Position)
	}
	switch {
	case pair.Starter == NoPlayer:
		pair.Starter = p.ID
		return SlotRef{Kind: Starter, Position: p.Position}, nil
	case pair.Bench == NoPlayer:
		pair.Bench = p.ID
		return SlotRef{Kind: Bench, Position: p.Position}, nil
	default:
		return SlotRef{}, ErrPositionFull
	}
}

// Remove clears the referenced slot. Unknown positions are ignored.
func (r *Roster) Remove(ref SlotRef) {
	if pair, ok := r.slots[ref.Position]; ok {
		pair.set(ref.Kind, NoPlayer)
	}
}

// At returns the player id in the referenced slot, or NoPlayer.
func (r *Roster) At(ref SlotRef) int {
	if pair, ok := r.slots[ref.Position]; ok {
		return pair.Get(ref.Kind)
	}
	return NoPlayer
}

// Pair returns a copy of the pair held for pos.
func (r *Roster) Pair(pos players.Position) Pair {
	if pair, ok := r.slots[pos]; ok {
		return *pair
	}
	return Pair{}
}

// IsSelected reports whether id is held in any starter or bench slot.
func (r *Roster) IsSelected(id int) bool {
	if id == NoPlayer {
		return false
	}
	for _, pair := range r.slots {
		if pair.Starter == id || pair.Bench == id {
			return true
		}
	}
	return false
}

// Filled counts non-empty slots across both kinds.
func (r *Roster) Filled() int {
	count := 0
	for _, pair := range r.slots {
		if pair.Starter != NoPlayer {
			count++
		}
		if pair.Bench != NoPlayer {
			count++
		}
	}
	return count
}

// Remaining is the number of empty slots left.
func (r *Roster) Remaining() int {
	return Capacity() - r.Filled()
}

// Complete reports whether every slot is filled.
func (r *Roster) Complete() bool {
	return r.Filled() == Capacity()
}

// Entries lists the filled slots of one kind in position order.
func (r *Roster) Entries(kind SlotKind) []Entry {
	out := make([]Entry, 0, len(players.Positions()))
	for _, pos := range players.Positions() {
		id := r.slots[pos].Get(kind)
		if id == NoPlayer {
			continue
		}
		out = append(out, Entry{Slot: SlotRef{Kind: kind, Position: pos}, PlayerID: id})
	}
	return out
}
