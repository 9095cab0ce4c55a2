package players

import (
	"encoding/json"
	"reflect"
	"testing"
)

func TestPlayerJSONTags(t *testing.T) {
	type fieldCheck struct {
		name string
		tag  string
	}
	playerType := reflect.TypeOf(Player{})
	fields := []fieldCheck{
		{"ID", "id"},
		{"Name", "nombre"},
		{"Position", "posicion"},
		{"Team", "equipo"},
		{"Country", "pais"},
		{"Age", "edad"},
		{"Height", "altura"},
		{"University", "universidad"},
		{"PointsPerGame", "puntos_por_partido"},
		{"ReboundsPerGame", "rebotes_por_partido"},
		{"AssistsPerGame", "asistencias_por_partido"},
		{"GamesPlayed", "partidos_jugados"},
		{"EffectiveShootingPct", "porcentaje_tiro_efectivo"},
	}
	for _, fc := range fields {
		f, ok := playerType.FieldByName(fc.name)
		if !ok {
			t.Fatalf("missing field %s", fc.name)
		}
		if tag := f.Tag.Get("json"); tag != fc.tag {
			t.Fatalf("field %s expected tag %s, got %s", fc.name, fc.tag, tag)
		}
	}
}

func TestPlayerDecodesListingSubset(t *testing.T) {
	body := `{"id": 7, "nombre": "Luka", "equipo": "DAL", "posicion": "Base", "puntos_por_partido": 33.9}`

	var p Player
	if err := json.Unmarshal([]byte(body), &p); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if p.ID != 7 || p.Name != "Luka" || p.Position != PositionBase {
		t.Fatalf("unexpected player %+v", p)
	}
	if p.University != "" || p.Age != 0 {
		t.Fatalf("expected missing fields to stay zero, got %+v", p)
	}
}

func TestUniversityOrNA(t *testing.T) {
	if got := (Player{}).UniversityOrNA(); got != "N/A" {
		t.Fatalf("expected N/A, got %s", got)
	}
	if got := (Player{University: "Duke"}).UniversityOrNA(); got != "Duke" {
		t.Fatalf("expected Duke, got %s", got)
	}
}
