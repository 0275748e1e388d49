package cache

import (
	"context"
	"strconv"

	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
	basecache "github.com/mkrogh/superliga-companion/internal/platform/cache"
)

// FixtureRepository caches the static schedule and table reads. The
// underlying data never changes at runtime, so a short TTL is purely a guard
// against a future dynamic source.
type FixtureRepository struct {
	next  fixture.Repository
	cache *basecache.Store
}

func NewFixtureRepository(next fixture.Repository, cache *basecache.Store) *FixtureRepository {
	return &FixtureRepository{next: next, cache: cache}
}

func (r *FixtureRepository) Standings(ctx context.Context) ([]fixture.Standing, error) {
	v, err := r.cache.GetOrLoad(ctx, "fixture:standings", func(ctx context.Context) (any, error) {
		items, err := r.next.Standings(ctx)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Standing(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Standing)
	return append([]fixture.Standing(nil), items...), nil
}

func (r *FixtureRepository) MatchesFrom(ctx context.Context, round int) ([]fixture.Match, error) {
	key := "fixture:matches:" + strconv.Itoa(round)
	v, err := r.cache.GetOrLoad(ctx, key, func(ctx context.Context) (any, error) {
		items, err := r.next.MatchesFrom(ctx, round)
		if err != nil {
			return nil, err
		}
		return append([]fixture.Match(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]fixture.Match)
	return append([]fixture.Match(nil), items...), nil
}
