package memory

import (
	"context"
	"testing"
	"time"

	"github.com/mkrogh/superliga-companion/internal/domain/history"
)

func TestHistoryRepositorySameDayReplaces(t *testing.T) {
	repo := NewHistoryRepository()
	ctx := context.Background()

	if err := repo.Record(ctx, history.Snapshot{PlayerID: "jon-doe-fct", Date: "2026-02-01", Total: 5}); err != nil {
		t.Fatalf("Record: %v", err)
	}
	if err := repo.Record(ctx, history.Snapshot{PlayerID: "jon-doe-fct", Date: "2026-02-01", Total: 7}); err != nil {
		t.Fatalf("Record: %v", err)
	}

	window, err := repo.Window(ctx, "jon-doe-fct")
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(window) != 1 {
		t.Fatalf("got %d snapshots, want 1", len(window))
	}
	if window[0].Total != 7 {
		t.Fatalf("Total = %d, want 7", window[0].Total)
	}
}

func TestHistoryRepositoryBoundsWindow(t *testing.T) {
	repo := NewHistoryRepository()
	ctx := context.Background()

	start := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for day := 0; day < 35; day++ {
		snap := history.Snapshot{
			PlayerID: "jon-doe-fct",
			Date:     start.AddDate(0, 0, day).Format("2006-01-02"),
			Total:    day,
		}
		if err := repo.Record(ctx, snap); err != nil {
			t.Fatalf("Record day %d: %v", day, err)
		}
	}

	window, err := repo.Window(ctx, "jon-doe-fct")
	if err != nil {
		t.Fatalf("Window: %v", err)
	}
	if len(window) != history.MaxSnapshots {
		t.Fatalf("got %d snapshots, want %d", len(window), history.MaxSnapshots)
	}
	if window[0].Date != "2026-03-06" {
		t.Fatalf("oldest retained = %s, want 2026-03-06", window[0].Date)
	}
	if window[len(window)-1].Date != "2026-04-04" {
		t.Fatalf("newest retained = %s, want 2026-04-04", window[len(window)-1].Date)
	}
}

func TestHistoryRepositoryWindowIsCopy(t *testing.T) {
	repo := NewHistoryRepository()
	ctx := context.Background()

	_ = repo.Record(ctx, history.Snapshot{PlayerID: "jon-doe-fct", Date: "2026-02-01", Total: 5})

	window, _ := repo.Window(ctx, "jon-doe-fct")
	window[0].Total = 99

	again, _ := repo.Window(ctx, "jon-doe-fct")
	if again[0].Total != 5 {
		t.Fatalf("stored snapshot mutated through returned slice")
	}
}
