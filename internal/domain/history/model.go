package history

import "github.com/mkrogh/superliga-companion/internal/domain/player"

// MaxSnapshots bounds the per-player history window. One snapshot per
// calendar day, oldest evicted first.
const MaxSnapshots = 30

// Snapshot captures a player's cumulative stats as of one import day. Date is
// a calendar day in YYYY-MM-DD form; a second import on the same day replaces
// that day's snapshot instead of appending.
type Snapshot struct {
	PlayerID string
	Date     string
	Goals    int
	Assists  int
	Total    int
	Price    *float64
}

// Stats is the derived movement summary for one player's window.
type Stats struct {
	Trend       player.Trend
	RecentGains int
	Form        float64
	IsHot       bool
}

// Thresholds for classifying movement across the snapshot window.
const (
	upThreshold   = 2
	downThreshold = -1
	hotThreshold  = 3
)

// Compute derives trend, recent gains, form and hotness from a snapshot
// window ordered oldest first. Fewer than two snapshots means there is no
// movement to measure yet.
func Compute(window []Snapshot) Stats {
	if len(window) < 2 {
		return Stats{Trend: player.TrendStable}
	}

	baseline := window[0].Total
	current := window[len(window)-1].Total
	gains := current - baseline

	stats := Stats{
		Trend:       player.TrendStable,
		RecentGains: gains,
		Form:        float64(gains) / float64(len(window)),
		IsHot:       gains >= hotThreshold,
	}

	switch {
	case gains >= upThreshold:
		stats.Trend = player.TrendUp
	case gains <= downThreshold:
		stats.Trend = player.TrendDown
	}

	return stats
}
