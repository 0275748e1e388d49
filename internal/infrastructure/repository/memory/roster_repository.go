package memory

import (
	"context"
	"sync"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// RosterRepository holds the reconciled roster in process memory. Insertion
// order is preserved so repeated imports produce stable listings.
type RosterRepository struct {
	mu      sync.RWMutex
	ordered []string
	byID    map[string]player.Player
}

func NewRosterRepository(players []player.Player) *RosterRepository {
	r := &RosterRepository{
		byID: make(map[string]player.Player, len(players)),
	}
	for _, p := range players {
		if _, ok := r.byID[p.ID]; !ok {
			r.ordered = append(r.ordered, p.ID)
		}
		r.byID[p.ID] = p
	}
	return r
}

func (r *RosterRepository) List(_ context.Context) ([]player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]player.Player, 0, len(r.ordered))
	for _, id := range r.ordered {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *RosterRepository) GetByID(_ context.Context, id string) (*player.Player, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.byID[id]
	if !ok {
		return nil, nil
	}
	return &p, nil
}

func (r *RosterRepository) Upsert(_ context.Context, p player.Player) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.byID[p.ID]; !ok {
		r.ordered = append(r.ordered, p.ID)
	}
	r.byID[p.ID] = p
	return nil
}
