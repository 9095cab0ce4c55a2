package testutil

import (
	"fmt"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// SamplePlayer returns a minimal player fixture with the provided id and position.
func SamplePlayer(id int, pos players.Position) players.Player {
	return players.Player{
		ID:              id,
		Name:            fmt.Sprintf("Jugador %d", id),
		Position:        pos,
		Team:            "Equipo",
		PointsPerGame:   float64(id),
		ReboundsPerGame: 1,
		AssistsPerGame:  1,
	}
}

// SampleDirectory returns two named players per position, ids 1..10, in position order.
func SampleDirectory() []players.Player {
	names := []string{
		"Stephen Curry", "Luka Doncic",
		"Devin Booker", "Anthony Edwards",
		"Jayson Tatum", "Kevin Durant",
		"Anthony Davis", "Giannis Antetokounmpo",
		"Nikola Jokic", "Joel Embiid",
	}
	out := make([]players.Player, 0, len(names))
	for i, name := range names {
		p := SamplePlayer(i+1, players.Positions()[i/2])
		p.Name = name
		out = append(out, p)
	}
	return out
}
