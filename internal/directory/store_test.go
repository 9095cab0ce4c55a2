package directory

import (
	"testing"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

func TestStoreReplaceAndGet(t *testing.T) {
	s := NewStore()
	s.Replace([]players.Player{{ID: 2, Name: "B"}, {ID: 1, Name: "A"}})

	if s.Len() != 2 {
		t.Fatalf("expected 2 players, got %d", s.Len())
	}
	p, ok := s.Get(1)
	if !ok || p.Name != "A" {
		t.Fatalf("expected player 1, got %+v ok=%v", p, ok)
	}
	if _, ok := s.Get(99); ok {
		t.Fatalf("expected missing id to report false")
	}

	list := s.List()
	if list[0].ID != 2 || list[1].ID != 1 {
		t.Fatalf("expected load order preserved, got %+v", list)
	}
}

func TestStoreReplaceDropsPreviousSnapshot(t *testing.T) {
	s := NewStore()
	s.Replace([]players.Player{{ID: 1}})
	s.Replace([]players.Player{{ID: 5}})

	if _, ok := s.Get(1); ok {
		t.Fatalf("expected previous snapshot gone")
	}
	if s.Len() != 1 {
		t.Fatalf("expected 1 player, got %d", s.Len())
	}
}

func TestStoreListReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Replace([]players.Player{{ID: 1, Name: "A"}})

	list := s.List()
	list[0].Name = "mutated"

	if p, _ := s.Get(1); p.Name != "A" {
		t.Fatalf("expected store unaffected by caller mutation, got %s", p.Name)
	}
}

func TestStoreDuplicateIDKeepsFirst(t *testing.T) {
	s := NewStore()
	s.Replace([]players.Player{{ID: 1, Name: "first"}, {ID: 1, Name: "second"}})

	if p, _ := s.Get(1); p.Name != "first" {
		t.Fatalf("expected first occurrence, got %s", p.Name)
	}
}
