package fixture

import "math"

// Strength buckets a club by how hard an opponent it is. It is curated per
// standing row rather than derived, so a mid-table club with a strong squad
// can still be marked strong.
type Strength string

const (
	StrengthStrong Strength = "strong"
	StrengthMedium Strength = "medium"
	StrengthWeak   Strength = "weak"
)

// Match is one scheduled league game.
type Match struct {
	ID        string
	Round     int
	Date      string
	Time      string
	Home      string
	HomeShort string
	Away      string
	AwayShort string
}

// Standing is a club's current league table entry.
type Standing struct {
	Position       int
	Team           string
	Short          string
	Played         int
	Won            int
	Drawn          int
	Lost           int
	GoalsFor       int
	GoalsAgainst   int
	GoalDifference int
	Points         int
	Form           []string
	Strength       Strength
}

// Upcoming is a single future fixture from one club's point of view, scored
// for difficulty.
type Upcoming struct {
	Team             string
	TeamShort        string
	Opponent         string
	OpponentShort    string
	Home             bool
	OpponentStrength Strength
	OpponentPosition int
	Round            int
	Date             string
	Time             string
	Difficulty       int
}

// Defaults used when an opponent is missing from the standings table.
const (
	DefaultPosition = 6
	DefaultStrength = StrengthMedium
)

const tableSize = 12

// Difficulty scores a fixture from 1 (easiest) to 10 (hardest). The
// opponent's table position scales to a 1-10 base, home advantage knocks two
// off, and the result is inverted so facing the league leader scores 10.
func Difficulty(opponentPosition int, home bool) int {
	base := int(math.Ceil(float64(opponentPosition*10) / float64(tableSize)))
	if home {
		base = max(1, base-2)
	}
	return max(1, min(10, 11-base))
}
