package builder

import (
	"strconv"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// Field is one labelled line of the detail sheet.
type Field struct {
	Label string
	Value string
}

// DetailSheet splits a player record into the bio and stats columns of the
// detail view.
type DetailSheet struct {
	Title string
	Bio   []Field
	Stats []Field
}

// Detail builds the detail sheet for p.
func Detail(p players.Player) DetailSheet {
	return DetailSheet{
		Title: p.Name,
		Bio: []Field{
			{Label: "Posición", Value: p.Position.String()},
			{Label: "Equipo", Value: p.Team},
			{Label: "Edad", Value: strconv.Itoa(p.Age) + " años"},
			{Label: "Altura", Value: formatNumber(p.Height) + " m"},
			{Label: "Universidad", Value: p.UniversityOrNA()},
			{Label: "País", Value: p.Country},
		},
		Stats: []Field{
			{Label: "PPP", Value: formatNumber(p.PointsPerGame)},
			{Label: "RPP", Value: formatNumber(p.ReboundsPerGame)},
			{Label: "APP", Value: formatNumber(p.AssistsPerGame)},
			{Label: "Partidos jugados", Value: strconv.Itoa(p.GamesPlayed)},
			{Label: "% Tiro efectivo", Value: formatNumber(p.EffectiveShootingPct) + "%"},
		},
	}
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
