package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// FakeAPIServer serves the two player endpoints over a fixed directory.
type FakeAPIServer struct {
	s       *httptest.Server
	players []players.Player
	// cookie, when set, must be sent verbatim or the API answers 401.
	cookie string
}

// NewFakeAPIServer starts a server answering like the real player API.
func NewFakeAPIServer(list []players.Player) *FakeAPIServer {
	f := &FakeAPIServer{players: list}
	f.s = httptest.NewServer(f.Handler())
	return f
}

// NewSessionAPIServer is NewFakeAPIServer behind a login session cookie.
func NewSessionAPIServer(list []players.Player, cookie string) *FakeAPIServer {
	f := &FakeAPIServer{players: list, cookie: cookie}
	f.s = httptest.NewServer(f.Handler())
	return f
}

// Handler exposes the router without a listener.
func (f *FakeAPIServer) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(f.requireSession)
	r.Route("/api", func(r chi.Router) {
		r.Get("/jugadores_por_posicion/{posicion}", f.byPosition)
		r.Get("/jugadores/{id}", f.player)
	})
	return r
}

func (f *FakeAPIServer) Close() {
	if f.s != nil {
		f.s.Close()
	}
}

func (f *FakeAPIServer) URL() string {
	return f.s.URL
}

func (f *FakeAPIServer) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if f.cookie != "" && r.Header.Get("Cookie") != f.cookie {
			writeJSON(w, http.StatusUnauthorized, map[string]string{"error": "login required"})
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (f *FakeAPIServer) byPosition(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "posicion")
	if unescaped, err := url.PathUnescape(raw); err == nil {
		raw = unescaped
	}
	pos := players.Position(raw)
	out := make([]players.Player, 0)
	for _, p := range f.players {
		if p.Position == pos {
			out = append(out, p)
		}
	}
	writeJSON(w, http.StatusOK, out)
}

func (f *FakeAPIServer) player(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		http.NotFound(w, r)
		return
	}
	for _, p := range f.players {
		if p.ID == id {
			writeJSON(w, http.StatusOK, p)
			return
		}
	}
	http.NotFound(w, r)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
