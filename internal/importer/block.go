package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// The block format groups each player into two to four lines: a name line, a
// "Team · Position" line, an optional literal "Info" line, and a data line
// that starts with a dotted price. The parser is a small state machine over
// those line shapes; a block only emits a candidate once it has both a name
// and a positive price, so name lines without a data line are dropped.

type blockState int

const (
	expectName blockState = iota
	expectTeamLine
	expectDataLine
)

var (
	priceLike     = regexp.MustCompile(`^\d{1,3}(?:\.\d{3}){1,2}`)
	columnSplit   = regexp.MustCompile(`\t| {2,}`)
	nameSuffix    = regexp.MustCompile(`(?i)\s*(info|ny|skadet)\s*$`)
	infoSuffix    = regexp.MustCompile(`(?i)\s*info\s*$`)
	teamSeparator = " · "
)

func parseBlocks(lines []string) []player.Candidate {
	var out []player.Candidate

	state := expectName
	var current player.Candidate

	for _, line := range lines {
		if isHeaderLine(line) {
			continue
		}

		switch state {
		case expectName:
			if !isNameLine(line) {
				continue
			}
			current = player.Candidate{Name: stripNameSuffix(line)}
			state = expectTeamLine

		case expectTeamLine:
			if strings.Contains(line, teamSeparator) {
				team, position, _ := strings.Cut(line, teamSeparator)
				current.Team = strings.TrimSpace(team)
				current.Position = player.MapPosition(strings.TrimSpace(infoSuffix.ReplaceAllString(position, "")))
				state = expectDataLine
				continue
			}
			// No team line; this line may itself start the data or a new
			// block.
			state = expectDataLine
			fallthrough

		case expectDataLine:
			if line == "Info" {
				continue
			}
			if priceLike.MatchString(line) {
				fillDataLine(&current, line)
				if current.Name != "" && current.Price != nil && *current.Price > 0 {
					out = append(out, current)
				}
				state = expectName
				continue
			}
			// Not a data line. Treat it as the start of the next block when
			// it looks like a name, otherwise drop the half-built block.
			if isNameLine(line) {
				current = player.Candidate{Name: stripNameSuffix(line)}
				state = expectTeamLine
				continue
			}
			state = expectName
		}
	}

	return out
}

// isHeaderLine skips the table header row copied along with the data.
func isHeaderLine(line string) bool {
	lower := strings.ToLower(line)
	return strings.Contains(lower, "navn") && strings.Contains(lower, "pris")
}

// isNameLine rejects anything that looks like a price, a team and position
// line, the literal "Info" marker, or a single character.
func isNameLine(line string) bool {
	if priceLike.MatchString(line) {
		return false
	}
	if strings.Contains(line, teamSeparator) {
		return false
	}
	if line == "Info" {
		return false
	}
	return len([]rune(line)) > 1
}

// stripNameSuffix removes a single trailing status marker the site appends to
// player names, matched case-insensitively.
func stripNameSuffix(line string) string {
	return strings.TrimSpace(nameSuffix.ReplaceAllString(line, ""))
}

// fillDataLine reads price, goals, assists and popularity out of a tab or
// multi-space separated stats row. Dashes and unparsable numbers count as 0.
func fillDataLine(c *player.Candidate, line string) {
	var columns []string
	for _, col := range columnSplit.Split(line, -1) {
		col = strings.TrimSpace(col)
		if col != "" {
			columns = append(columns, col)
		}
	}
	if len(columns) == 0 {
		return
	}

	if price := parsePrice(columns[0]); price > 0 {
		c.Price = &price
	}
	if len(columns) > 4 {
		c.Goals = statOrZero(columns[4])
	}
	if len(columns) > 5 {
		c.Assists = statOrZero(columns[5])
	}
	if len(columns) > 9 {
		c.Popularity = columns[9]
	}
}

// parsePrice turns a dotted amount like "5.000.000" into millions (5.0).
func parsePrice(s string) float64 {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	n, err := strconv.ParseFloat(cleaned, 64)
	if err != nil {
		return 0
	}
	return n / 1_000_000
}

func statOrZero(s string) int {
	trimmed := strings.TrimSpace(s)
	if trimmed == "-" || trimmed == "" {
		return 0
	}
	n, err := strconv.Atoi(trimmed)
	if err != nil {
		return 0
	}
	return n
}
