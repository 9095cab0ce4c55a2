package providers

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-roster-builder/internal/domain/players"
)

// LoadDirectory fetches every position concurrently and flattens the results
// in position order. The first failure cancels the remaining fetches and the
// whole load is discarded; there is no partial result and no retry.
func LoadDirectory(ctx context.Context, p PlayerProvider, positions []players.Position) ([]players.Player, error) {
	if p == nil {
		return nil, ErrProviderUnavailable
	}

	results := make([][]players.Player, len(positions))
	g, gCtx := errgroup.WithContext(ctx)
	for i, pos := range positions {
		i, pos := i, pos
		g.Go(func() error {
			list, err := p.FetchByPosition(gCtx, pos)
			if err != nil {
				return fmt.Errorf("load %s: %w", pos, err)
			}
			results[i] = list
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, list := range results {
		total += len(list)
	}
	all := make([]players.Player, 0, total)
	for _, list := range results {
		all = append(all, list...)
	}
	return all, nil
}
