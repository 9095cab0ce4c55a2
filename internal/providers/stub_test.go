package providers

import (
	"context"
	"sync"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

type stubProvider struct {
	mu       sync.Mutex
	byPos    map[players.Position][]players.Player
	posErr   map[players.Position]error
	detail   map[int]players.Player
	calls    []players.Position
	blockPos players.Position
}

func (s *stubProvider) Name() string { return "stub" }

func (s *stubProvider) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	s.mu.Lock()
	s.calls = append(s.calls, pos)
	err := s.posErr[pos]
	list := s.byPos[pos]
	s.mu.Unlock()

	if pos == s.blockPos {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if err != nil {
		return nil, err
	}
	return list, nil
}

func (s *stubProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	_ = ctx
	p, ok := s.detail[id]
	if !ok {
		return players.Player{}, ErrPlayerNotFound
	}
	return p, nil
}
