package builder

import (
	"fmt"

	"github.com/preston-bernstein/nba-roster-builder/internal/roster"
)

// Save button classes.
const (
	ClassIncomplete = "btn-secondary"
	ClassReady      = "btn-success"
)

// SaveButton is the derived state of the save action.
type SaveButton struct {
	Enabled   bool
	Class     string
	Title     string
	Remaining int
}

// SaveButtonState derives the button from roster completeness.
func SaveButtonState(r *roster.Roster) SaveButton {
	remaining := r.Remaining()
	if remaining > 0 {
		return SaveButton{
			Enabled:   false,
			Class:     ClassIncomplete,
			Title:     fmt.Sprintf("Faltan %d jugadores para completar el equipo", remaining),
			Remaining: remaining,
		}
	}
	return SaveButton{
		Enabled: true,
		Class:   ClassReady,
		Title:   "Guardar equipo",
	}
}
