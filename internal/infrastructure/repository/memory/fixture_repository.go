package memory

import (
	"context"
	"sync"

	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
)

// FixtureRepository serves the static schedule and table data.
type FixtureRepository struct {
	mu        sync.RWMutex
	standings []fixture.Standing
	matches   []fixture.Match
}

func NewFixtureRepository(standings []fixture.Standing, matches []fixture.Match) *FixtureRepository {
	return &FixtureRepository{
		standings: standings,
		matches:   matches,
	}
}

func (r *FixtureRepository) Standings(_ context.Context) ([]fixture.Standing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Standing, len(r.standings))
	copy(out, r.standings)
	return out, nil
}

func (r *FixtureRepository) MatchesFrom(_ context.Context, round int) ([]fixture.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]fixture.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if m.Round >= round {
			out = append(out, m)
		}
	}
	return out, nil
}
