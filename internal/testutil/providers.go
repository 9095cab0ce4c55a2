package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
	"github.com/preston-bernstein/nba-roster-builder/internal/providers"
)

// StubProvider serves a fixed directory and records calls.
type StubProvider struct {
	Players []players.Player
	// PositionErr fails FetchByPosition for the given positions.
	PositionErr map[players.Position]error
	// DetailErr fails every FetchPlayer call when set.
	DetailErr error

	mu           sync.Mutex
	positionHits int
	detailHits   []int
}

func (p *StubProvider) Name() string { return "stub" }

func (p *StubProvider) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	_ = ctx
	p.mu.Lock()
	p.positionHits++
	p.mu.Unlock()

	if err := p.PositionErr[pos]; err != nil {
		return nil, err
	}
	out := make([]players.Player, 0)
	for _, pl := range p.Players {
		if pl.Position == pos {
			out = append(out, pl)
		}
	}
	return out, nil
}

func (p *StubProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	_ = ctx
	p.mu.Lock()
	p.detailHits = append(p.detailHits, id)
	p.mu.Unlock()

	if p.DetailErr != nil {
		return players.Player{}, p.DetailErr
	}
	for _, pl := range p.Players {
		if pl.ID == id {
			return pl, nil
		}
	}
	return players.Player{}, fmt.Errorf("%w: %d", providers.ErrPlayerNotFound, id)
}

// PositionHits returns how many FetchByPosition calls were made.
func (p *StubProvider) PositionHits() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.positionHits
}

// DetailHits returns the ids requested through FetchPlayer, in order.
func (p *StubProvider) DetailHits() []int {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]int, len(p.detailHits))
	copy(out, p.detailHits)
	return out
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchByPosition(ctx context.Context, pos players.Position) ([]players.Player, error) {
	return nil, p.Err
}

func (p ErrProvider) FetchPlayer(ctx context.Context, id int) (players.Player, error) {
	return players.Player{}, p.Err
}
