package history

import (
	"testing"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

func snaps(totals ...int) []Snapshot {
	out := make([]Snapshot, len(totals))
	for i, total := range totals {
		out[i] = Snapshot{PlayerID: "jon-doe-fct", Total: total}
	}
	return out
}

func TestCompute(t *testing.T) {
	tests := []struct {
		name      string
		window    []Snapshot
		wantTrend player.Trend
		wantGains int
		wantForm  float64
		wantHot   bool
	}{
		{
			name:      "empty window is stable",
			window:    nil,
			wantTrend: player.TrendStable,
		},
		{
			name:      "single snapshot is stable",
			window:    snaps(5),
			wantTrend: player.TrendStable,
		},
		{
			name:      "two gains trend up",
			window:    snaps(5, 7),
			wantTrend: player.TrendUp,
			wantGains: 2,
			wantForm:  1.0,
		},
		{
			name:      "one gain stays stable",
			window:    snaps(5, 6),
			wantTrend: player.TrendStable,
			wantGains: 1,
			wantForm:  0.5,
		},
		{
			name:      "single loss trends down",
			window:    snaps(5, 4),
			wantTrend: player.TrendDown,
			wantGains: -1,
			wantForm:  -0.5,
		},
		{
			name:      "three gains run hot",
			window:    snaps(4, 5, 7),
			wantTrend: player.TrendUp,
			wantGains: 3,
			wantForm:  1.0,
			wantHot:   true,
		},
		{
			name:      "baseline is earliest snapshot not the minimum",
			window:    snaps(6, 2, 7),
			wantTrend: player.TrendStable,
			wantGains: 1,
			wantForm:  1.0 / 3.0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Compute(tt.window)
			if got.Trend != tt.wantTrend {
				t.Fatalf("Trend = %s, want %s", got.Trend, tt.wantTrend)
			}
			if got.RecentGains != tt.wantGains {
				t.Fatalf("RecentGains = %d, want %d", got.RecentGains, tt.wantGains)
			}
			if got.Form != tt.wantForm {
				t.Fatalf("Form = %v, want %v", got.Form, tt.wantForm)
			}
			if got.IsHot != tt.wantHot {
				t.Fatalf("IsHot = %v, want %v", got.IsHot, tt.wantHot)
			}
		})
	}
}
