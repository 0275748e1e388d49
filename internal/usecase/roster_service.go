package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/history"
	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// RosterService serves read access to the reconciled roster and its per
// player snapshot history.
type RosterService struct {
	rosterRepo  player.Repository
	historyRepo history.Repository
}

func NewRosterService(rosterRepo player.Repository, historyRepo history.Repository) *RosterService {
	return &RosterService{
		rosterRepo:  rosterRepo,
		historyRepo: historyRepo,
	}
}

// ListPlayers returns the roster sorted by contribution total, best first.
// Ties keep insertion order.
func (s *RosterService) ListPlayers(ctx context.Context) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.ListPlayers")
	defer span.End()

	players, err := s.rosterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}

	sort.SliceStable(players, func(i, j int) bool {
		return players[i].Total > players[j].Total
	})
	return players, nil
}

func (s *RosterService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, err := s.rosterRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}
	return *p, nil
}

// History returns the raw snapshot window for one player, oldest first.
func (s *RosterService) History(ctx context.Context, playerID string) ([]history.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.History")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return nil, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	p, err := s.rosterRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("get player: %w", err)
	}
	if p == nil {
		return nil, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	window, err := s.historyRepo.Window(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("load snapshot window: %w", err)
	}
	return window, nil
}

// Suggest returns the closest roster names for a query that the strict
// matching cascade could not place.
func (s *RosterService) Suggest(ctx context.Context, name string, limit int) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.RosterService.Suggest")
	defer span.End()

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if limit <= 0 {
		limit = 5
	}

	roster, err := s.rosterRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list roster: %w", err)
	}
	return player.Suggest(roster, name, limit), nil
}
