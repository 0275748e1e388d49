package fixture

import "context"

// Repository serves the league schedule and the current table.
type Repository interface {
	Standings(ctx context.Context) ([]Standing, error)
	MatchesFrom(ctx context.Context, round int) ([]Match, error)
}
