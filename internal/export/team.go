package export

import (
	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
)

// Team is the on-disk form of a saved roster.
type Team struct {
	Name     string   `yaml:"nombre"`
	Starters []Member `yaml:"titulares"`
	Bench    []Member `yaml:"suplentes"`
}

// Member is one saved slot.
type Member struct {
	Position players.Position `yaml:"posicion"`
	ID       int              `yaml:"id"`
	Name     string           `yaml:"nombre"`
}

// FromView converts a rendered roster into a saveable team.
func FromView(name string, view builder.RosterView) Team {
	return Team{
		Name:     name,
		Starters: members(view.Starters),
		Bench:    members(view.Bench),
	}
}

func members(cards []builder.RosterCard) []Member {
	out := make([]Member, 0, len(cards))
	for _, c := range cards {
		out = append(out, Member{Position: c.Slot.Position, ID: c.Player.ID, Name: c.Player.Name})
	}
	return out
}

// Entry is a listed player on the saved-teams page.
type Entry struct {
	Team   string
	Slot   roster.SlotKind
	Member Member
}

// Entries flattens teams into their listed players, starters before bench.
func Entries(teams []Team) []Entry {
	var out []Entry
	for _, t := range teams {
		for _, m := range t.Starters {
			out = append(out, Entry{Team: t.Name, Slot: roster.Starter, Member: m})
		}
		for _, m := range t.Bench {
			out = append(out, Entry{Team: t.Name, Slot: roster.Bench, Member: m})
		}
	}
	return out
}
