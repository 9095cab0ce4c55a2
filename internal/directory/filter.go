package directory

import (
	"strings"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// Criteria narrows the directory. An empty Position places no constraint.
type Criteria struct {
	Name     string
	Position players.Position
}

// IsZero reports whether the criteria match everything.
func (c Criteria) IsZero() bool {
	return c.Name == "" && c.Position == players.PositionUnknown
}

// Filter returns the players whose name contains c.Name case-insensitively and
// whose position equals c.Position when one is set. Input order is preserved
// and the result never aliases list.
func Filter(list []players.Player, c Criteria) []players.Player {
	if c.IsZero() {
		out := make([]players.Player, len(list))
		copy(out, list)
		return out
	}
	needle := strings.ToLower(c.Name)
	out := make([]players.Player, 0, len(list))
	for _, p := range list {
		if !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if c.Position != players.PositionUnknown && p.Position != c.Position {
			continue
		}
		out = append(out, p)
	}
	return out
}
