package importer

import (
	"strconv"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// parseDelimited reads one record per line with 7 or 8 pipe-separated fields:
// name, team, team short, matches, goals, assists, total and optionally
// minutes per contribution. The supplied total is ignored downstream; it is
// always recomputed from goals and assists. Lines with fewer than 7 fields
// are dropped.
func parseDelimited(lines []string) []player.Candidate {
	var out []player.Candidate
	for _, line := range lines {
		fields := strings.Split(line, "|")
		if len(fields) < 7 {
			continue
		}

		c := player.Candidate{
			Name:      strings.TrimSpace(fields[0]),
			Team:      strings.TrimSpace(fields[1]),
			TeamShort: strings.TrimSpace(fields[2]),
			Matches:   intOrZero(fields[3]),
			Goals:     intOrZero(fields[4]),
			Assists:   intOrZero(fields[5]),
		}
		if len(fields) >= 8 {
			c.MinutesPerContribution = intOrZero(fields[7])
		}
		out = append(out, c)
	}
	return out
}

// intOrZero parses a numeric field, falling back to 0 on any failure.
func intOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
