package runner

import (
	"fmt"
	"os"

	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/export"
	"github.com/preston-bernstein/nba-roster-builder/internal/logging"
)

// saveTeam writes the completed roster to the output stream and, when a team
// file is configured, appends it there for the saved-teams page.
func (r *Runner) saveTeam(view builder.RosterView) error {
	team := export.FromView(r.cfg.Team.Name, view)
	if err := export.Write(r.out, team); err != nil {
		return err
	}
	path := r.cfg.Team.File
	if path == "" {
		return nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("runner: open team file: %w", err)
	}
	if err := export.Write(f, team); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("runner: close team file: %w", err)
	}
	logging.Info(r.logger, "team saved", "file", path, logging.FieldCount, len(view.Cards()))
	return nil
}
