package players

// Player is the record served by the player API. Listing endpoints return a
// subset of fields; the detail endpoint fills the rest.
type Player struct {
	ID                   int      `json:"id"`
	Name                 string   `json:"nombre"`
	Position             Position `json:"posicion"`
	Team                 string   `json:"equipo"`
	Country              string   `json:"pais"`
	Age                  int      `json:"edad"`
	Height               float64  `json:"altura"`
	University           string   `json:"universidad"`
	PointsPerGame        float64  `json:"puntos_por_partido"`
	ReboundsPerGame      float64  `json:"rebotes_por_partido"`
	AssistsPerGame       float64  `json:"asistencias_por_partido"`
	GamesPlayed          int      `json:"partidos_jugados"`
	EffectiveShootingPct float64  `json:"porcentaje_tiro_efectivo"`
}

// UniversityOrNA returns the university or "N/A" when the API has none.
func (p Player) UniversityOrNA() string {
	if p.University == "" {
		return "N/A"
	}
	return p.University
}
