package directory

import (
	"sync"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// Store keeps a thread-safe snapshot of the loaded players in memory.
// Order is the load order; lookups go through an id index.
type Store struct {
	mu      sync.RWMutex
	players []players.Player
	byID    map[int]int
}

// NewStore constructs an empty Store.
func NewStore() *Store {
	return &Store{
		byID: make(map[int]int),
	}
}

// List returns a copy of the current snapshot in load order.
func (s *Store) List() []players.Player {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]players.Player, len(s.players))
	copy(result, s.players)
	return result
}

// Get retrieves a player by id.
func (s *Store) Get(id int) (players.Player, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx, ok := s.byID[id]
	if !ok {
		return players.Player{}, false
	}
	return s.players[idx], true
}

// Len reports how many players are cached.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.players)
}

// Replace swaps the existing snapshot for a new one.
// A duplicate id keeps its first occurrence in the index.
func (s *Store) Replace(list []players.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.players = make([]players.Player, len(list))
	copy(s.players, list)
	s.byID = make(map[int]int, len(list))
	for i, p := range s.players {
		if _, seen := s.byID[p.ID]; !seen {
			s.byID[p.ID] = i
		}
	}
}
