package builder

import (
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// recordingRenderer keeps every call in order so tests can assert on the
// render sequence as well as the last state.
type recordingRenderer struct {
	calls   []string
	results []ResultCard
	roster  RosterView
	button  SaveButton
	details []players.Player
	alerts  []string
}

func (r *recordingRenderer) RenderResults(cards []ResultCard) {
	r.calls = append(r.calls, "results")
	r.results = cards
}

func (r *recordingRenderer) RenderRoster(view RosterView) {
	r.calls = append(r.calls, "roster")
	r.roster = view
}

func (r *recordingRenderer) RenderSaveButton(btn SaveButton) {
	r.calls = append(r.calls, "save")
	r.button = btn
}

func (r *recordingRenderer) ShowDetail(p players.Player) {
	r.calls = append(r.calls, "detail")
	r.details = append(r.details, p)
}

func (r *recordingRenderer) Alert(msg string) {
	r.calls = append(r.calls, "alert")
	r.alerts = append(r.alerts, msg)
}

func (r *recordingRenderer) reset() {
	r.calls = nil
}
