package player

import "testing"

func rosterFixture() []Player {
	return []Player{
		{ID: "jon-doe-fct", Name: "Jon Doe", Team: "FC Test"},
		{ID: "mads-bech-sørensen-bif", Name: "Mads Bech Sørensen", Team: "Brøndby IF"},
		{ID: "oliver-sørensen-fcm", Name: "Oliver Sørensen", Team: "FC Midtjylland"},
		{ID: "jay-roy-grot-vff", Name: "Jay-Roy Grot", Team: "Viborg FF"},
	}
}

func TestMatch(t *testing.T) {
	roster := rosterFixture()

	tests := []struct {
		name      string
		candidate Candidate
		wantID    string
	}{
		{
			name:      "exact name ignoring case",
			candidate: Candidate{Name: "jon doe"},
			wantID:    "jon-doe-fct",
		},
		{
			name:      "exact name with team containment",
			candidate: Candidate{Name: "Jon Doe", Team: "Test"},
			wantID:    "jon-doe-fct",
		},
		{
			name:      "candidate name contained in roster name",
			candidate: Candidate{Name: "Bech Sørensen"},
			wantID:    "mads-bech-sørensen-bif",
		},
		{
			name:      "roster name contained in candidate name",
			candidate: Candidate{Name: "Jay-Roy Grot (Viborg)"},
			wantID:    "jay-roy-grot-vff",
		},
		{
			name:      "surname fallback",
			candidate: Candidate{Name: "J. Doe"},
			wantID:    "jon-doe-fct",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Match(roster, tt.candidate)
			if got == nil {
				t.Fatalf("Match returned nil, want %s", tt.wantID)
			}
			if got.ID != tt.wantID {
				t.Fatalf("Match = %s, want %s", got.ID, tt.wantID)
			}
		})
	}
}

func TestMatchSurnamePrecedence(t *testing.T) {
	// Substring containment runs before the surname fallback, so a candidate
	// whose full name is contained in an earlier roster entry wins there.
	roster := rosterFixture()

	got := Match(roster, Candidate{Name: "Sørensen"})
	if got == nil || got.ID != "mads-bech-sørensen-bif" {
		t.Fatalf("Match = %v, want mads-bech-sørensen-bif", got)
	}
}

func TestMatchNoHit(t *testing.T) {
	roster := rosterFixture()

	tests := []struct {
		name      string
		candidate Candidate
	}{
		{name: "unrelated name", candidate: Candidate{Name: "Peter Nielsen"}},
		{name: "empty name", candidate: Candidate{Name: "   "}},
		{name: "short surname not matched", candidate: Candidate{Name: "X. Do"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Match(roster, tt.candidate); got != nil {
				t.Fatalf("Match = %s, want nil", got.ID)
			}
		})
	}
}

func TestSuggest(t *testing.T) {
	roster := rosterFixture()

	got := Suggest(roster, "grot", 2)
	if len(got) == 0 {
		t.Fatalf("Suggest returned no results")
	}
	if len(got) > 2 {
		t.Fatalf("Suggest returned %d results, want at most 2", len(got))
	}
	if got[0].ID != "jay-roy-grot-vff" {
		t.Fatalf("Suggest best hit = %s, want jay-roy-grot-vff", got[0].ID)
	}

	if res := Suggest(roster, "", 5); res != nil {
		t.Fatalf("Suggest on empty name = %v, want nil", res)
	}
}
