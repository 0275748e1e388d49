package importer

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/team"
)

// PriceCandidate is one row parsed from a price paste, resolved to a player
// downstream through the same matching cascade as stats imports.
type PriceCandidate struct {
	Name  string
	Price float64
}

var (
	dottedPrice = regexp.MustCompile(`^(\d{1,3}(?:\.\d{3}){1,2})$`)
	simplePrice = regexp.MustCompile(`(\d+[.,]?\d*)\s*$`)
)

// ParsePrices reads player prices from pasted text in two shapes: a
// tab-separated table where the first column carries name plus club and some
// later column a dotted amount, or a plain "Name 12.5" line with the price in
// millions at the end. Rows without a name and a positive price are dropped.
func ParsePrices(raw string) []PriceCandidate {
	var out []PriceCandidate
	for _, line := range nonEmptyLines(raw) {
		var name string
		var price float64

		if strings.Contains(line, "\t") {
			name, price = parseTabbedPriceRow(line)
		} else {
			name, price = parseSimplePriceRow(line)
		}

		name = strings.TrimSpace(nameSuffix.ReplaceAllString(name, ""))
		if len([]rune(name)) > 1 && price > 0 {
			out = append(out, PriceCandidate{Name: name, Price: price})
		}
	}
	return out
}

// parseTabbedPriceRow handles table rows where column 0 is "Name Club ·
// Position" and a later column holds a dotted amount. The club suffix is
// stripped off the name using the known club list, longest names first.
func parseTabbedPriceRow(line string) (string, float64) {
	parts := strings.Split(line, "\t")

	name := strings.TrimSpace(parts[0])
	if before, _, found := strings.Cut(name, " · "); found {
		name = stripClubSuffix(strings.TrimSpace(before))
	}

	for _, part := range parts[1:] {
		compact := strings.Join(strings.Fields(part), "")
		if m := dottedPrice.FindString(compact); m != "" {
			if price := parsePrice(m); price > 0 {
				return name, price
			}
		}
	}
	return name, 0
}

// parseSimplePriceRow handles "Name 12" and "Name 12,5 mio." lines.
func parseSimplePriceRow(line string) (string, float64) {
	cleaned := strings.NewReplacer("mio.", "", "Mio.", "", "mio", "", "Mio", "", "-", " ").Replace(line)
	cleaned = strings.TrimSpace(cleaned)

	m := simplePrice.FindString(cleaned)
	if m == "" {
		return "", 0
	}

	price, err := strconv.ParseFloat(strings.Replace(strings.TrimSpace(m), ",", ".", 1), 64)
	if err != nil {
		return "", 0
	}

	name := strings.TrimSpace(strings.TrimSuffix(cleaned, m))
	return name, price
}

// stripClubSuffix removes a trailing club name from a "Name Club" string.
func stripClubSuffix(s string) string {
	lower := strings.ToLower(s)
	for _, club := range team.Known {
		suffix := " " + strings.ToLower(club.Name)
		if strings.HasSuffix(lower, suffix) {
			return strings.TrimSpace(s[:len(s)-len(suffix)])
		}
	}
	return s
}
