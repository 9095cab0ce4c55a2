package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

type focus int

const (
	focusResults focus = iota
	focusRoster
)

const maxVisibleResults = 12

// App is the roster builder page. It is the controller's Renderer: every
// Render call replaces the region it names and View draws from that state.
type App struct {
	ctx        context.Context
	controller *builder.Controller

	search      textinput.Model
	focus       focus
	positionIdx int // 0 is "all positions"

	results      []builder.ResultCard
	rosterView   builder.RosterView
	save         builder.SaveButton
	detail       *players.Player
	alert        string
	cursor       int
	rosterCursor int

	loading bool
	saved   bool
	width   int
	height  int
}

// NewApp builds the builder page around provider.
func NewApp(ctx context.Context, provider providers.PlayerProvider, opts ...builder.Option) *App {
	if ctx == nil {
		ctx = context.Background()
	}
	search := textinput.New()
	search.Placeholder = "Buscar jugador"
	search.Prompt = "› "
	search.CharLimit = 64
	_ = search.Cursor.SetMode(cursor.CursorStatic)
	search.Focus()

	a := &App{ctx: ctx, search: search, loading: true}
	a.controller = builder.NewController(provider, a, opts...)
	return a
}

// Init starts the directory load.
func (a *App) Init() tea.Cmd {
	return a.loadDirectory()
}

func (a *App) loadDirectory() tea.Cmd {
	return func() tea.Msg {
		list, err := a.controller.FetchDirectory(a.ctx)
		return directoryLoadedMsg{players: list, err: err}
	}
}

func (a *App) loadDetail(id int) tea.Cmd {
	return func() tea.Msg {
		p, err := a.controller.FetchDetail(a.ctx, id)
		return detailLoadedMsg{player: p, err: err}
	}
}

// Update applies one message on the program loop.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case directoryLoadedMsg:
		a.loading = false
		if msg.err == nil {
			a.controller.SetDirectory(msg.players)
		}
		return a, nil

	case detailLoadedMsg:
		if msg.err == nil {
			a.controller.OpenDetail(msg.player)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	if key == "ctrl+c" {
		return a, tea.Quit
	}
	if a.alert != "" {
		if key == "enter" || key == "esc" || key == " " {
			a.alert = ""
		}
		return a, nil
	}
	if a.detail != nil {
		if key == "esc" || key == "enter" || key == "q" {
			a.detail = nil
		}
		return a, nil
	}

	switch key {
	case "tab", "shift+tab":
		a.toggleFocus()
		return a, nil
	case "ctrl+s":
		if a.controller.Complete() {
			a.saved = true
			return a, tea.Quit
		}
		return a, nil
	case "ctrl+r":
		a.search.SetValue("")
		a.positionIdx = 0
		a.cursor, a.rosterCursor = 0, 0
		a.controller.Reset()
		return a, nil
	case "ctrl+p":
		a.cyclePosition()
		return a, nil
	}

	if a.focus == focusRoster {
		return a.handleRosterKey(key)
	}
	return a.handleResultsKey(msg)
}

func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil
	case "down":
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil
	case "enter":
		if card, ok := a.currentResult(); ok && card.Clickable() {
			_, _ = a.controller.Assign(card.Player.ID)
		}
		return a, nil
	case "esc":
		if a.search.Value() == "" {
			return a, tea.Quit
		}
		a.search.SetValue("")
		a.controller.SetQuery("")
		return a, nil
	}

	before := a.search.Value()
	var cmd tea.Cmd
	a.search, cmd = a.search.Update(msg)
	if a.search.Value() != before {
		a.cursor = 0
		a.controller.SetQuery(a.search.Value())
	}
	return a, cmd
}

func (a *App) handleRosterKey(key string) (tea.Model, tea.Cmd) {
	cards := a.rosterView.Cards()
	switch key {
	case "up", "k":
		if a.rosterCursor > 0 {
			a.rosterCursor--
		}
	case "down", "j":
		if a.rosterCursor < len(cards)-1 {
			a.rosterCursor++
		}
	case "enter", "d":
		if card, ok := a.currentRosterCard(); ok {
			return a, a.loadDetail(card.Player.ID)
		}
	case "x", "delete", "backspace":
		if card, ok := a.currentRosterCard(); ok {
			a.controller.Remove(card.Slot)
		}
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

func (a *App) toggleFocus() {
	if a.focus == focusResults {
		a.focus = focusRoster
		a.search.Blur()
		return
	}
	a.focus = focusResults
	a.search.Focus()
}

func (a *App) cyclePosition() {
	a.positionIdx = (a.positionIdx + 1) % (len(players.Positions()) + 1)
	a.cursor = 0
	a.controller.SetPosition(a.positionFilter())
}

func (a *App) positionFilter() players.Position {
	if a.positionIdx == 0 {
		return players.PositionUnknown
	}
	return players.Positions()[a.positionIdx-1]
}

func (a *App) currentResult() (builder.ResultCard, bool) {
	if a.cursor < 0 || a.cursor >= len(a.results) {
		return builder.ResultCard{}, false
	}
	return a.results[a.cursor], true
}

func (a *App) currentRosterCard() (builder.RosterCard, bool) {
	cards := a.rosterView.Cards()
	if a.rosterCursor < 0 || a.rosterCursor >= len(cards) {
		return builder.RosterCard{}, false
	}
	return cards[a.rosterCursor], true
}

// RenderResults replaces the results list.
func (a *App) RenderResults(cards []builder.ResultCard) {
	a.results = cards
	a.cursor = clamp(a.cursor, len(cards))
}

// RenderRoster replaces both roster columns.
func (a *App) RenderRoster(view builder.RosterView) {
	a.rosterView = view
	a.rosterCursor = clamp(a.rosterCursor, len(view.Cards()))
}

// RenderSaveButton replaces the save button.
func (a *App) RenderSaveButton(btn builder.SaveButton) {
	a.save = btn
}

// ShowDetail opens the detail overlay.
func (a *App) ShowDetail(p players.Player) {
	a.detail = &p
}

// Alert opens the blocking alert overlay.
func (a *App) Alert(msg string) {
	a.alert = msg
}

// Saved reports whether the user left through the save action.
func (a *App) Saved() bool {
	return a.saved
}

// RosterView returns the roster as last rendered.
func (a *App) RosterView() builder.RosterView {
	return a.rosterView
}

// View draws the page.
func (a *App) View() string {
	if a.alert != "" {
		return renderAlert(a.alert)
	}
	if a.detail != nil {
		return renderDetail(*a.detail)
	}

	left := a.renderResults()
	right := a.renderRoster()
	leftBox, rightBox := panelStyle, panelStyle
	if a.focus == focusResults {
		leftBox = focusedPanelStyle
	} else {
		rightBox = focusedPanelStyle
	}
	body := lipgloss.JoinHorizontal(lipgloss.Top,
		leftBox.Width(44).Render(left),
		rightBox.Width(44).Render(right),
	)
	help := mutedStyle.Render("tab cambia panel · ctrl+p posición · enter elegir · x quitar · d detalle · ctrl+r vaciar · ctrl+s guardar · ctrl+c salir")
	return strings.Join([]string{
		headerStyle.Render("Armar equipo"),
		body,
		a.renderSaveButton(),
		help,
	}, "\n")
}

func (a *App) renderResults() string {
	pos := "Todas"
	if p := a.controller.Criteria().Position; p != players.PositionUnknown {
		pos = p.String()
	}
	lines := []string{
		a.search.View(),
		labelStyle.Render("Posición: ") + pos,
		"",
	}
	switch {
	case a.loading:
		lines = append(lines, mutedStyle.Render("Cargando jugadores..."))
	case len(a.results) == 0:
		lines = append(lines, mutedStyle.Render(builder.MsgNoResults))
	default:
		start, end := window(a.cursor, len(a.results), maxVisibleResults)
		for i := start; i < end; i++ {
			lines = append(lines, a.renderResultCard(i, a.results[i]))
		}
	}
	return strings.Join(lines, "\n")
}

func (a *App) renderResultCard(i int, card builder.ResultCard) string {
	text := fmt.Sprintf("%s (%s) · %s", card.Player.Name, card.Player.Position, card.Player.Team)
	if !card.Clickable() {
		text = selectedStyle.Render(text) + " ✓"
	}
	if i == a.cursor && a.focus == focusResults {
		return cursorStyle.Render("▸ ") + text
	}
	return "  " + text
}

func (a *App) renderRoster() string {
	lines := []string{panelTitleStyle.Render("Titulares")}
	index := 0
	lines = append(lines, a.renderSlotColumn(a.rosterView.Starters, &index)...)
	lines = append(lines, "", panelTitleStyle.Render("Suplentes"))
	lines = append(lines, a.renderSlotColumn(a.rosterView.Bench, &index)...)
	return strings.Join(lines, "\n")
}

func (a *App) renderSlotColumn(cards []builder.RosterCard, index *int) []string {
	byPos := make(map[players.Position]builder.RosterCard, len(cards))
	for _, c := range cards {
		byPos[c.Slot.Position] = c
	}
	lines := make([]string, 0, len(players.Positions()))
	for _, pos := range players.Positions() {
		label := labelStyle.Render(fmt.Sprintf("%-10s", pos.String()))
		card, ok := byPos[pos]
		if !ok {
			lines = append(lines, "  "+label+" "+emptySlotStyle.Render("—"))
			continue
		}
		prefix := "  "
		if *index == a.rosterCursor && a.focus == focusRoster {
			prefix = cursorStyle.Render("▸ ")
		}
		*index++
		lines = append(lines, prefix+label+" "+card.Player.Name)
	}
	return lines
}

func (a *App) renderSaveButton() string {
	style, ok := saveStyles[a.save.Class]
	if !ok {
		style = saveStyles[builder.ClassIncomplete]
	}
	return style.Render("Guardar") + " " + mutedStyle.Render(a.save.Title)
}

func clamp(i, n int) int {
	if n == 0 || i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

func window(cursor, n, size int) (int, int) {
	if n <= size {
		return 0, n
	}
	start := cursor - size/2
	if start < 0 {
		start = 0
	}
	if start+size > n {
		start = n - size
	}
	return start, start + size
}
