package history

import "context"

// Repository stores bounded per-player snapshot windows. Record must replace
// an existing snapshot for the same player and day, and evict the oldest
// snapshot once the window exceeds MaxSnapshots.
type Repository interface {
	Record(ctx context.Context, snap Snapshot) error
	Window(ctx context.Context, playerID string) ([]Snapshot, error)
}
