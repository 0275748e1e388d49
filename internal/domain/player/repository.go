package player

import "context"

// Repository stores the reconciled roster. Implementations must preserve
// insertion order for List so import results stay deterministic.
type Repository interface {
	List(ctx context.Context) ([]Player, error)
	GetByID(ctx context.Context, id string) (*Player, error)
	Upsert(ctx context.Context, p Player) error
}
