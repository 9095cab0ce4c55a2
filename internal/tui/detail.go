package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/preston-bernstein/nba-roster-builder/internal/builder"
	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

func renderDetail(p players.Player) string {
	sheet := builder.Detail(p)
	column := func(fields []builder.Field) string {
		lines := make([]string, 0, len(fields))
		for _, f := range fields {
			lines = append(lines, labelStyle.Render(f.Label+":")+" "+f.Value)
		}
		return strings.Join(lines, "\n")
	}
	stats := panelTitleStyle.Render("Estadísticas") + "\n" + column(sheet.Stats)
	body := lipgloss.JoinHorizontal(lipgloss.Top, column(sheet.Bio), "    ", stats)
	footer := mutedStyle.Render("esc para cerrar")
	return overlayStyle.Render(headerStyle.Render(sheet.Title) + "\n" + body + "\n\n" + footer)
}

func renderAlert(msg string) string {
	return overlayStyle.Render(alertStyle.Render(msg) + "\n\n" + mutedStyle.Render("enter para continuar"))
}
