package api

import (
	"strings"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

func mapPlayer(p playerResponse) players.Player {
	out := players.Player{
		ID:                   p.ID,
		Name:                 strings.TrimSpace(p.Nombre),
		Position:             mapPosition(p.Posicion),
		Team:                 p.Equipo,
		Country:              p.Pais,
		Age:                  p.Edad,
		Height:               p.Altura,
		PointsPerGame:        p.PuntosPorPartido,
		ReboundsPerGame:      p.RebotesPorPartido,
		AssistsPerGame:       p.AsistenciasPorPartido,
		GamesPlayed:          p.PartidosJugados,
		EffectiveShootingPct: p.PorcentajeTiroEfectivo,
	}
	if p.Universidad != nil {
		out.University = strings.TrimSpace(*p.Universidad)
	}
	return out
}

func mapPlayers(list []playerResponse) []players.Player {
	out := make([]players.Player, 0, len(list))
	for _, p := range list {
		out = append(out, mapPlayer(p))
	}
	return out
}

// mapPosition canonicalizes known labels and keeps unknown ones verbatim so
// the roster can reject them.
func mapPosition(raw string) players.Position {
	if pos := players.ParsePosition(raw); pos.Valid() {
		return pos
	}
	return players.Position(strings.TrimSpace(raw))
}
