package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
	"github.com/mkrogh/superliga-companion/internal/infrastructure/repository/memory"
)

func TestRosterService_ListPlayersSortedByTotal(t *testing.T) {
	t.Parallel()

	rosterRepo := memory.NewRosterRepository([]player.Player{
		{ID: "a", Name: "A", Total: 2},
		{ID: "b", Name: "B", Total: 9},
		{ID: "c", Name: "C", Total: 5},
	})
	service := NewRosterService(rosterRepo, memory.NewHistoryRepository())

	players, err := service.ListPlayers(context.Background())
	if err != nil {
		t.Fatalf("ListPlayers: %v", err)
	}

	if players[0].ID != "b" || players[1].ID != "c" || players[2].ID != "a" {
		t.Fatalf("unexpected order: %s %s %s", players[0].ID, players[1].ID, players[2].ID)
	}
}

func TestRosterService_GetPlayerNotFound(t *testing.T) {
	t.Parallel()

	service := NewRosterService(memory.NewRosterRepository(nil), memory.NewHistoryRepository())

	_, err := service.GetPlayer(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}

	_, err = service.GetPlayer(context.Background(), "  ")
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}

func TestRosterService_HistoryRequiresKnownPlayer(t *testing.T) {
	t.Parallel()

	service := NewRosterService(memory.NewRosterRepository(nil), memory.NewHistoryRepository())

	_, err := service.History(context.Background(), "missing-id")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestRosterService_Suggest(t *testing.T) {
	t.Parallel()

	rosterRepo := memory.NewRosterRepository([]player.Player{
		{ID: "jay-roy-grot-vff", Name: "Jay-Roy Grot", Total: 3},
		{ID: "jon-doe-fct", Name: "Jon Doe", Total: 7},
	})
	service := NewRosterService(rosterRepo, memory.NewHistoryRepository())

	got, err := service.Suggest(context.Background(), "grot", 0)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(got) == 0 || got[0].ID != "jay-roy-grot-vff" {
		t.Fatalf("Suggest = %+v", got)
	}

	_, err = service.Suggest(context.Background(), " ", 5)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("err = %v, want ErrInvalidInput", err)
	}
}
