package memory

import (
	"context"
	"sync"

	"github.com/mkrogh/superliga-companion/internal/domain/history"
)

// HistoryRepository keeps a bounded snapshot window per player. A snapshot
// for an already-recorded day replaces that entry; otherwise it appends and
// evicts the oldest entry past the window bound.
type HistoryRepository struct {
	mu       sync.RWMutex
	byPlayer map[string][]history.Snapshot
}

func NewHistoryRepository() *HistoryRepository {
	return &HistoryRepository{
		byPlayer: make(map[string][]history.Snapshot),
	}
}

func (r *HistoryRepository) Record(_ context.Context, snap history.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	window := r.byPlayer[snap.PlayerID]
	for i := range window {
		if window[i].Date == snap.Date {
			window[i] = snap
			return nil
		}
	}

	window = append(window, snap)
	if len(window) > history.MaxSnapshots {
		window = window[len(window)-history.MaxSnapshots:]
	}
	r.byPlayer[snap.PlayerID] = window
	return nil
}

func (r *HistoryRepository) Window(_ context.Context, playerID string) ([]history.Snapshot, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	window := r.byPlayer[playerID]
	out := make([]history.Snapshot, len(window))
	copy(out, window)
	return out, nil
}
