package memory

import (
	"testing"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

func TestSeedPlayers(t *testing.T) {
	t.Parallel()

	players := SeedPlayers()
	if len(players) != 53 {
		t.Fatalf("seeded players = %d, want 53", len(players))
	}

	seen := make(map[string]bool, len(players))
	priced := 0
	for _, p := range players {
		if p.ID == "" || seen[p.ID] {
			t.Fatalf("duplicate or empty ID %q", p.ID)
		}
		seen[p.ID] = true
		if p.Total != p.Goals+p.Assists {
			t.Fatalf("%s: Total = %d, want %d", p.ID, p.Total, p.Goals+p.Assists)
		}
		if p.Price != nil {
			priced++
		}
	}
	if priced != 20 {
		t.Fatalf("players with an initial price = %d, want 20", priced)
	}

	var bech *player.Player
	for i := range players {
		if players[i].ID == "tobias-bech-agf" {
			bech = &players[i]
		}
	}
	if bech == nil {
		t.Fatalf("tobias-bech-agf missing from seed")
	}
	if bech.Position != player.PositionAttacker || bech.Goals != 10 {
		t.Fatalf("unexpected seed entry: %+v", bech)
	}
	if bech.Price == nil || *bech.Price != 5.5 {
		t.Fatalf("Price = %v, want 5.5", bech.Price)
	}
}
