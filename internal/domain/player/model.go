package player

import (
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/team"
	"github.com/mkrogh/superliga-companion/internal/platform/id"
)

// Canonical position labels. Source text carries Danish vocabulary; the
// mapped labels are what the rest of the system displays.
const (
	PositionAttacker   = "Attacker"
	PositionMidfielder = "Midfielder"
	PositionDefender   = "Defender"
	PositionGoalkeeper = "Goalkeeper"
	PositionUnknown    = "Unknown"
)

// Trend classifies recent contribution movement.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// Player is a roster entry built up from pasted imports. Identity is the
// deterministic ID; stats fields are overwritten by whatever the latest
// import supplies.
type Player struct {
	ID                     string
	Name                   string
	Team                   string
	TeamShort              string
	Position               string
	Matches                int
	Goals                  int
	Assists                int
	Total                  int
	MinutesPerContribution int
	Price                  *float64
	Popularity             string
	Trend                  Trend
	RecentGains            int
	Form                   float64
	IsHot                  bool
}

// Candidate is one row parsed out of a paste, not yet reconciled against the
// roster. Zero stat values mean "not supplied"; pointers distinguish absent
// optional fields.
type Candidate struct {
	Name                   string
	Team                   string
	TeamShort              string
	Position               string
	Matches                int
	Goals                  int
	Assists                int
	MinutesPerContribution int
	Price                  *float64
	Popularity             string
}

// NewID derives the stable identity key from a player name and a canonical
// team short code: slugged name plus lower-cased code.
func NewID(name, teamShort string) string {
	return id.Join(id.Slug(name), strings.ToLower(teamShort))
}

// New builds a roster entry from a candidate. Total is always recomputed;
// whatever total the source text carried is ignored.
func New(c Candidate) Player {
	short := c.TeamShort
	if strings.TrimSpace(short) == "" {
		short = team.ShortCode(c.Team)
	}

	position := c.Position
	if strings.TrimSpace(position) == "" {
		position = PositionUnknown
	}

	return Player{
		ID:                     NewID(c.Name, short),
		Name:                   c.Name,
		Team:                   c.Team,
		TeamShort:              short,
		Position:               position,
		Matches:                c.Matches,
		Goals:                  c.Goals,
		Assists:                c.Assists,
		Total:                  c.Goals + c.Assists,
		MinutesPerContribution: c.MinutesPerContribution,
		Price:                  c.Price,
		Popularity:             c.Popularity,
		Trend:                  TrendStable,
	}
}

// Merge overwrites p with every field the candidate supplies; the import is
// authoritative. Fields the candidate leaves unset keep their current value.
func Merge(p Player, c Candidate) Player {
	if strings.TrimSpace(c.Name) != "" {
		p.Name = c.Name
	}
	if strings.TrimSpace(c.Team) != "" {
		p.Team = c.Team
		p.TeamShort = team.ShortCode(c.Team)
	}
	if strings.TrimSpace(c.TeamShort) != "" {
		p.TeamShort = c.TeamShort
	}
	if pos := strings.TrimSpace(c.Position); pos != "" && pos != PositionUnknown {
		p.Position = c.Position
	}
	if c.Matches > 0 {
		p.Matches = c.Matches
	}
	if c.Goals > 0 {
		p.Goals = c.Goals
	}
	if c.Assists > 0 {
		p.Assists = c.Assists
	}
	if c.MinutesPerContribution > 0 {
		p.MinutesPerContribution = c.MinutesPerContribution
	}
	if c.Price != nil {
		p.Price = c.Price
	}
	if strings.TrimSpace(c.Popularity) != "" {
		p.Popularity = c.Popularity
	}

	p.Total = p.Goals + p.Assists
	return p
}

// MapPosition reduces a free-form position string to one of the canonical
// labels via substring checks. Unrecognized non-empty strings pass through
// verbatim; empty maps to unknown.
func MapPosition(pos string) string {
	lower := strings.ToLower(pos)
	switch {
	case strings.Contains(lower, "angreb"), strings.Contains(lower, "angriber"):
		return PositionAttacker
	case strings.Contains(lower, "midtbane"):
		return PositionMidfielder
	case strings.Contains(lower, "forsvar"):
		return PositionDefender
	case strings.Contains(lower, "keeper"), strings.Contains(lower, "målmand"):
		return PositionGoalkeeper
	case strings.TrimSpace(pos) != "":
		return pos
	default:
		return PositionUnknown
	}
}
