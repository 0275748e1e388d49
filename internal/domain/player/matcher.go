package player

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Match finds the roster entry a parsed candidate refers to, trying four
// strategies in order of decreasing strictness:
//
//  1. exact name (case-insensitive)
//  2. exact name and the player team containing the candidate team
//  3. one name containing the other
//  4. shared surname, when the surname is longer than two characters
//
// The first strategy that yields a hit wins. Returns nil when no strategy
// matches; the caller then treats the candidate as a new player.
func Match(roster []Player, c Candidate) *Player {
	name := strings.ToLower(strings.TrimSpace(c.Name))
	if name == "" {
		return nil
	}
	candidateTeam := strings.ToLower(strings.TrimSpace(c.Team))

	for i := range roster {
		if strings.ToLower(roster[i].Name) == name {
			return &roster[i]
		}
	}

	if candidateTeam != "" {
		for i := range roster {
			if strings.ToLower(roster[i].Name) != name {
				continue
			}
			if strings.Contains(strings.ToLower(roster[i].Team), candidateTeam) {
				return &roster[i]
			}
		}
	}

	for i := range roster {
		rosterName := strings.ToLower(roster[i].Name)
		if strings.Contains(rosterName, name) || strings.Contains(name, rosterName) {
			return &roster[i]
		}
	}

	surname := lastField(name)
	if len([]rune(surname)) > 2 {
		for i := range roster {
			if lastField(strings.ToLower(roster[i].Name)) == surname {
				return &roster[i]
			}
		}
	}

	return nil
}

// Suggest ranks roster names by fuzzy similarity to the given name. It never
// feeds the reconciler; it only backs the "did you mean" lookup for pastes
// the strict cascade rejected.
func Suggest(roster []Player, name string, limit int) []Player {
	if strings.TrimSpace(name) == "" || limit <= 0 {
		return nil
	}

	names := make([]string, len(roster))
	for i := range roster {
		names[i] = roster[i].Name
	}

	ranks := fuzzy.RankFindNormalizedFold(name, names)
	if len(ranks) == 0 {
		return nil
	}
	sort.Sort(ranks)
	if len(ranks) > limit {
		ranks = ranks[:limit]
	}

	out := make([]Player, 0, len(ranks))
	for _, r := range ranks {
		out = append(out, roster[r.OriginalIndex])
	}
	return out
}

func lastField(name string) string {
	fields := strings.Fields(name)
	if len(fields) == 0 {
		return ""
	}
	return fields[len(fields)-1]
}
