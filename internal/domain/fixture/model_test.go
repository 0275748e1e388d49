package fixture

import "testing"

func TestDifficulty(t *testing.T) {
	tests := []struct {
		name     string
		position int
		home     bool
		want     int
	}{
		{name: "league leader away", position: 1, home: false, want: 10},
		{name: "league leader at home", position: 1, home: true, want: 10},
		{name: "mid table away", position: 6, home: false, want: 6},
		{name: "mid table at home", position: 6, home: true, want: 8},
		{name: "bottom club away", position: 12, home: false, want: 1},
		{name: "bottom club at home", position: 12, home: true, want: 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Difficulty(tt.position, tt.home); got != tt.want {
				t.Fatalf("Difficulty(%d, %v) = %d, want %d", tt.position, tt.home, got, tt.want)
			}
		})
	}
}
