package importer

import (
	"testing"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

func TestParseDelimited(t *testing.T) {
	candidates := Parse("Jon Doe|FC Test|FCT|10|3|4|7|120")

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Name != "Jon Doe" || c.Team != "FC Test" || c.TeamShort != "FCT" {
		t.Fatalf("identity fields = %q/%q/%q", c.Name, c.Team, c.TeamShort)
	}
	if c.Matches != 10 || c.Goals != 3 || c.Assists != 4 {
		t.Fatalf("stats = %d/%d/%d", c.Matches, c.Goals, c.Assists)
	}
	if c.MinutesPerContribution != 120 {
		t.Fatalf("MinutesPerContribution = %d, want 120", c.MinutesPerContribution)
	}
}

func TestParseDelimitedSevenFields(t *testing.T) {
	candidates := Parse("Jon Doe|FC Test|FCT|10|3|4|7")

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].MinutesPerContribution != 0 {
		t.Fatalf("MinutesPerContribution = %d, want 0", candidates[0].MinutesPerContribution)
	}
}

func TestParseDelimitedSkipsMalformedLines(t *testing.T) {
	raw := "Jon Doe|FC Test|FCT|10\n" +
		"Jane Roe|FC Test|FCT|8|2|1|3|90\n"

	candidates := Parse(raw)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Name != "Jane Roe" {
		t.Fatalf("Name = %q, want Jane Roe", candidates[0].Name)
	}
}

func TestParseDelimitedNumericFallback(t *testing.T) {
	candidates := Parse("Jon Doe|FC Test|FCT|ten|x|4|7|n/a")

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	c := candidates[0]
	if c.Matches != 0 || c.Goals != 0 || c.Assists != 4 || c.MinutesPerContribution != 0 {
		t.Fatalf("fallbacks = %d/%d/%d/%d", c.Matches, c.Goals, c.Assists, c.MinutesPerContribution)
	}
}

func TestParseBlock(t *testing.T) {
	raw := "Jon Doe\n" +
		"FC Test · Angreb\n" +
		"5.000.000    0    0    -    3    2    -    -    -    1.2 %    -    0\n"

	candidates := Parse(raw)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Name != "Jon Doe" || c.Team != "FC Test" {
		t.Fatalf("identity fields = %q/%q", c.Name, c.Team)
	}
	if c.Position != player.PositionAttacker {
		t.Fatalf("Position = %q, want %q", c.Position, player.PositionAttacker)
	}
	if c.Price == nil || *c.Price != 5.0 {
		t.Fatalf("Price = %v, want 5.0", c.Price)
	}
	if c.Goals != 3 || c.Assists != 2 {
		t.Fatalf("stats = %d/%d, want 3/2", c.Goals, c.Assists)
	}
	if c.Popularity != "1.2 %" {
		t.Fatalf("Popularity = %q", c.Popularity)
	}
}

func TestParseBlockSkipsHeaderAndInfo(t *testing.T) {
	raw := "Navn\tPris\tKampe\n" +
		"Jon Doe Info\n" +
		"FC Test · Midtbane Info\n" +
		"Info\n" +
		"2.500.000\t0\t0\t-\t1\t0\t-\t-\t-\t0.4 %\n"

	candidates := Parse(raw)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}

	c := candidates[0]
	if c.Name != "Jon Doe" {
		t.Fatalf("Name = %q, want Jon Doe", c.Name)
	}
	if c.Position != player.PositionMidfielder {
		t.Fatalf("Position = %q", c.Position)
	}
	if c.Price == nil || *c.Price != 2.5 {
		t.Fatalf("Price = %v, want 2.5", c.Price)
	}
	if c.Goals != 1 || c.Assists != 0 {
		t.Fatalf("stats = %d/%d", c.Goals, c.Assists)
	}
}

func TestParseBlockDropsNameWithoutDataLine(t *testing.T) {
	raw := "Jon Doe\n" +
		"FC Test · Angreb\n" +
		"Jane Roe\n" +
		"FC Test · Forsvar\n" +
		"3.000.000    0    0    -    0    1    -    -    -    0.1 %\n"

	candidates := Parse(raw)

	if len(candidates) != 1 {
		t.Fatalf("got %d candidates, want 1", len(candidates))
	}
	if candidates[0].Name != "Jane Roe" {
		t.Fatalf("Name = %q, want Jane Roe", candidates[0].Name)
	}
}

func TestParseBlockStripsOneStatusSuffix(t *testing.T) {
	raw := "Jane Roe skadet\n" +
		"FC Test · Forsvar\n" +
		"3.000.000\t0\t0\t-\t0\t1\t-\t-\t-\t0.3 %\n" +
		"Jon Doe Ny Skadet\n" +
		"FC Test · Angreb\n" +
		"4.000.000\t0\t0\t-\t2\t0\t-\t-\t-\t0.9 %\n"

	candidates := Parse(raw)

	if len(candidates) != 2 {
		t.Fatalf("got %d candidates, want 2", len(candidates))
	}
	if candidates[0].Name != "Jane Roe" {
		t.Fatalf("Name = %q, want Jane Roe", candidates[0].Name)
	}
	// Only the trailing marker goes; anything before it is part of the name.
	if candidates[1].Name != "Jon Doe Ny" {
		t.Fatalf("Name = %q, want Jon Doe Ny", candidates[1].Name)
	}
}

func TestParseEmptyInput(t *testing.T) {
	if got := Parse("  \n\n  "); got != nil {
		t.Fatalf("Parse on blank input = %v, want nil", got)
	}
}
