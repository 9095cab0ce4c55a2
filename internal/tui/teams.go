package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/export"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

// MsgNoTeams is shown when no saved team could be read.
const MsgNoTeams = "No hay equipos guardados"

// entryItem implements list.Item for one saved player.
type entryItem struct {
	entry export.Entry
}

func (i entryItem) Title() string {
	name := i.entry.Member.Name
	if name == "" {
		name = "(sin nombre)"
	}
	return fmt.Sprintf("%s · %s", name, i.entry.Member.Position)
}

func (i entryItem) Description() string {
	return fmt.Sprintf("%s · %s", i.entry.Team, i.entry.Slot)
}

func (i entryItem) FilterValue() string { return i.entry.Member.Name }

// TeamsApp is the saved-teams page.
type TeamsApp struct {
	ctx     context.Context
	page    *builder.TeamsPage
	entries list.Model
	empty   bool
	detail  *players.Player
}

// NewTeamsApp lists every player of the given teams.
func NewTeamsApp(ctx context.Context, provider providers.PlayerProvider, teams []export.Team, opts ...builder.Option) *TeamsApp {
	if ctx == nil {
		ctx = context.Background()
	}
	flat := export.Entries(teams)
	items := make([]list.Item, 0, len(flat))
	for _, e := range flat {
		items = append(items, entryItem{entry: e})
	}
	l := list.New(items, list.NewDefaultDelegate(), 60, 20)
	l.Title = "Mis equipos"
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)

	a := &TeamsApp{ctx: ctx, entries: l, empty: len(items) == 0}
	a.page = builder.NewTeamsPage(provider, a, opts...)
	return a
}

// Init implements tea.Model.
func (a *TeamsApp) Init() tea.Cmd {
	return nil
}

// Update applies one message on the program loop.
func (a *TeamsApp) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.entries.SetSize(max(20, msg.Width-4), max(5, msg.Height-4))
		return a, nil

	case detailLoadedMsg:
		if msg.err == nil {
			a.page.OpenDetail(msg.player)
		}
		return a, nil

	case tea.KeyMsg:
		key := msg.String()
		if key == "ctrl+c" {
			return a, tea.Quit
		}
		if a.detail != nil {
			if key == "esc" || key == "enter" || key == "q" {
				a.detail = nil
			}
			return a, nil
		}
		switch key {
		case "q", "esc":
			return a, tea.Quit
		case "enter":
			return a, a.selectCurrent()
		}
	}

	var cmd tea.Cmd
	a.entries, cmd = a.entries.Update(msg)
	return a, cmd
}

func (a *TeamsApp) selectCurrent() tea.Cmd {
	item, ok := a.entries.SelectedItem().(entryItem)
	if !ok {
		return nil
	}
	id := item.entry.Member.ID
	if !a.page.Selectable(id) {
		return nil
	}
	return func() tea.Msg {
		p, err := a.page.FetchDetail(a.ctx, id)
		return detailLoadedMsg{player: p, err: err}
	}
}

// ShowDetail opens the detail overlay. The page controller calls it.
func (a *TeamsApp) ShowDetail(p players.Player) {
	a.detail = &p
}

// View draws the page.
func (a *TeamsApp) View() string {
	if a.detail != nil {
		return renderDetail(*a.detail)
	}
	if a.empty {
		return strings.Join([]string{
			headerStyle.Render("Mis equipos"),
			mutedStyle.Render(MsgNoTeams),
			mutedStyle.Render("q para salir"),
		}, "\n")
	}
	return a.entries.View()
}
