package directory

import (
	"strings"
	"testing"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

func sampleDirectory() []players.Player {
	return []players.Player{
		{ID: 1, Name: "Stephen Curry", Position: players.PositionBase},
		{ID: 2, Name: "Luka Doncic", Position: players.PositionBase},
		{ID: 3, Name: "Devin Booker", Position: players.PositionEscolta},
		{ID: 4, Name: "Jayson Tatum", Position: players.PositionAlero},
		{ID: 5, Name: "Anthony Davis", Position: players.PositionAlaPivot},
		{ID: 6, Name: "Nikola Jokic", Position: players.PositionPivot},
		{ID: 7, Name: "Nikola Vucevic", Position: players.PositionPivot},
	}
}

func TestFilterByNameCaseInsensitive(t *testing.T) {
	list := sampleDirectory()

	got := Filter(list, Criteria{Name: "NIKOLA"})

	if len(got) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(got))
	}
	for _, p := range got {
		if !strings.Contains(strings.ToLower(p.Name), "nikola") {
			t.Fatalf("unexpected match %s", p.Name)
		}
	}
	if got[0].ID != 6 || got[1].ID != 7 {
		t.Fatalf("expected directory order preserved, got %+v", got)
	}
}

func TestFilterMatchCount(t *testing.T) {
	list := sampleDirectory()
	cases := []struct {
		query string
		want  int
	}{
		{"", 7},
		{"o", 6},
		{"ic", 3},
		{"curry", 1},
		{"zzz", 0},
	}
	for _, tc := range cases {
		got := Filter(list, Criteria{Name: tc.query})
		if len(got) != tc.want {
			t.Fatalf("query %q: expected %d matches, got %d", tc.query, tc.want, len(got))
		}
		for _, p := range got {
			if !strings.Contains(strings.ToLower(p.Name), strings.ToLower(tc.query)) {
				t.Fatalf("query %q: unexpected match %s", tc.query, p.Name)
			}
		}
	}
}

func TestFilterByPosition(t *testing.T) {
	got := Filter(sampleDirectory(), Criteria{Position: players.PositionBase})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("unexpected position filter result %+v", got)
	}
}

func TestFilterByNameAndPosition(t *testing.T) {
	got := Filter(sampleDirectory(), Criteria{Name: "nikola", Position: players.PositionAlero})
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %+v", got)
	}

	got = Filter(sampleDirectory(), Criteria{Name: "jok", Position: players.PositionPivot})
	if len(got) != 1 || got[0].ID != 6 {
		t.Fatalf("expected Jokic, got %+v", got)
	}
}

func TestFilterEmptyInput(t *testing.T) {
	if got := Filter(nil, Criteria{Name: "x"}); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Fatalf("expected zero criteria")
	}
	if (Criteria{Name: "a"}).IsZero() {
		t.Fatalf("expected non-zero criteria")
	}
}

func TestFilterZeroCriteriaCopiesInput(t *testing.T) {
	list := []players.Player{
		{ID: 1, Name: "Stephen Curry", Position: players.PositionBase},
		{ID: 2, Name: "Nikola Jokic", Position: players.PositionPivot},
	}
	got := Filter(list, Criteria{})
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Fatalf("expected full list in order, got %+v", got)
	}
	got[0].Name = "changed"
	if list[0].Name != "Stephen Curry" {
		t.Fatal("filter result must not alias input")
	}
}
