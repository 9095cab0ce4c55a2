package api

// playerResponse mirrors the API payload. Listing endpoints omit the detail
// fields, so everything beyond the basics may be absent.
type playerResponse struct {
	ID                     int     `json:"id"`
	Nombre                 string  `json:"nombre"`
	Equipo                 string  `json:"equipo"`
	Posicion               string  `json:"posicion"`
	Edad                   int     `json:"edad"`
	Altura                 float64 `json:"altura"`
	Universidad            *string `json:"universidad"`
	Pais                   string  `json:"pais"`
	PartidosJugados        int     `json:"partidos_jugados"`
	PuntosPorPartido       float64 `json:"puntos_por_partido"`
	RebotesPorPartido      float64 `json:"rebotes_por_partido"`
	AsistenciasPorPartido  float64 `json:"asistencias_por_partido"`
	PorcentajeTiroEfectivo float64 `json:"porcentaje_tiro_efectivo"`
}

type errorResponse struct {
	Error string `json:"error"`
}
