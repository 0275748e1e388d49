package memory

import (
	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

// SeedPlayers returns the known Superliga roster at the winter break of the
// 2025/2026 season. Prices are initial estimates where known; imports
// overwrite both stats and prices.
func SeedPlayers() []player.Player {
	return []player.Player{
		seedPlayer("Franculino Djú", "FC Midtjylland", "FCM", player.PositionAttacker, 17, 16, 3, 64, 8.5),
		seedPlayer("Aral Simsir", "FC Midtjylland", "FCM", player.PositionMidfielder, 17, 5, 11, 63, 6.2),
		seedPlayer("Darío Osorio", "FC Midtjylland", "FCM", player.PositionMidfielder, 15, 4, 5, 110, 5.8),
		seedPlayer("Valdemar Byskov", "FC Midtjylland", "FCM", player.PositionMidfielder, 17, 5, 2, 70, 4.5),
		seedPlayer("Denil Castillo", "FC Midtjylland", "FCM", player.PositionMidfielder, 15, 3, 4, 148, 4.2),
		seedPlayer("Mads Bech Sørensen", "FC Midtjylland", "FCM", player.PositionDefender, 18, 1, 1, 450, 0),
		seedPlayer("Erik Sviatchenko", "FC Midtjylland", "FCM", player.PositionDefender, 16, 0, 1, 900, 0),
		seedPlayer("Oliver Sørensen", "FC Midtjylland", "FCM", player.PositionGoalkeeper, 17, 0, 0, 0, 0),

		seedPlayer("Tobias Bech", "AGF", "AGF", player.PositionAttacker, 18, 10, 2, 123, 5.5),
		seedPlayer("Kristian Arnstad", "AGF", "AGF", player.PositionMidfielder, 17, 6, 2, 176, 4.8),
		seedPlayer("Felix Beijmo", "AGF", "AGF", player.PositionDefender, 18, 1, 3, 300, 0),
		seedPlayer("Patrick Mortensen", "AGF", "AGF", player.PositionAttacker, 18, 4, 1, 200, 0),
		seedPlayer("Adam Daghim", "AGF", "AGF", player.PositionMidfielder, 15, 2, 2, 250, 0),

		seedPlayer("Fiete Arp", "OB", "OB", player.PositionAttacker, 17, 8, 3, 134, 5.2),
		seedPlayer("Noah Ganaus", "OB", "OB", player.PositionAttacker, 18, 8, 2, 144, 4.8),
		seedPlayer("Jay-Roy Grot", "OB", "OB", player.PositionAttacker, 18, 6, 3, 156, 4.5),
		seedPlayer("Nicolas Bürgy", "OB", "OB", player.PositionDefender, 18, 1, 2, 400, 0),
		seedPlayer("Adam Sørensen", "OB", "OB", player.PositionMidfielder, 16, 2, 1, 350, 0),

		seedPlayer("Tonni Adamsen", "Silkeborg", "SIF", player.PositionAttacker, 18, 7, 3, 146, 4.5),
		seedPlayer("Callum McCowatt", "Silkeborg", "SIF", player.PositionAttacker, 18, 8, 2, 136, 4.3),
		seedPlayer("Jens Martin Gammelby", "Silkeborg", "SIF", player.PositionDefender, 18, 1, 2, 400, 0),
		seedPlayer("Nicolai Larsen", "Silkeborg", "SIF", player.PositionDefender, 18, 0, 1, 900, 0),
		seedPlayer("Anders Klynge", "Silkeborg", "SIF", player.PositionMidfielder, 16, 2, 3, 220, 0),

		seedPlayer("Nicolai Vallys", "Brøndby", "BIF", player.PositionMidfielder, 16, 5, 5, 131, 5.0),
		seedPlayer("Noah Nartey", "Brøndby", "BIF", player.PositionMidfielder, 17, 4, 3, 165, 4.2),
		seedPlayer("Patrick Pentz", "Brøndby", "BIF", player.PositionGoalkeeper, 18, 0, 0, 0, 0),
		seedPlayer("Mathias Kvistgaarden", "Brøndby", "BIF", player.PositionAttacker, 15, 3, 2, 200, 0),
		seedPlayer("Yuito Suzuki", "Brøndby", "BIF", player.PositionMidfielder, 14, 2, 2, 250, 0),

		seedPlayer("Mohamed Elyounoussi", "FC København", "FCK", player.PositionMidfielder, 16, 4, 5, 138, 5.5),
		seedPlayer("Dominik Kotarski", "FC København", "FCK", player.PositionGoalkeeper, 18, 0, 0, 0, 0),
		seedPlayer("Pantelis Hatzidiakos", "FC København", "FCK", player.PositionDefender, 18, 2, 1, 400, 0),
		seedPlayer("Roony Bardghji", "FC København", "FCK", player.PositionMidfielder, 14, 3, 3, 180, 0),
		seedPlayer("Orri Óskarsson", "FC København", "FCK", player.PositionAttacker, 15, 5, 1, 170, 0),

		seedPlayer("Prince Amoako", "FC Nordsjælland", "FCN", player.PositionAttacker, 17, 5, 4, 145, 4.0),
		seedPlayer("Nicklas Røjkjær", "FC Nordsjælland", "FCN", player.PositionDefender, 18, 1, 1, 500, 0),
		seedPlayer("Ernest Nuamah", "FC Nordsjælland", "FCN", player.PositionAttacker, 15, 4, 2, 180, 0),
		seedPlayer("Simon Adingra", "FC Nordsjælland", "FCN", player.PositionMidfielder, 14, 2, 3, 200, 0),

		seedPlayer("Thomas Jørgensen", "Viborg", "VFF", player.PositionMidfielder, 17, 3, 5, 175, 3.8),
		seedPlayer("Stipe Radic", "Viborg", "VFF", player.PositionDefender, 18, 1, 1, 500, 0),
		seedPlayer("Lucas Lund", "Viborg", "VFF", player.PositionDefender, 18, 0, 2, 600, 0),
		seedPlayer("Jeppe Grønning", "Viborg", "VFF", player.PositionMidfielder, 18, 2, 2, 300, 0),

		seedPlayer("Kristall Máni Ingason", "SønderjyskE", "SJF", player.PositionAttacker, 14, 6, 2, 117, 3.5),
		seedPlayer("Magnus Riisgaard Jensen", "SønderjyskE", "SJF", player.PositionDefender, 18, 1, 1, 500, 0),
		seedPlayer("Andreas Oggesen", "SønderjyskE", "SJF", player.PositionAttacker, 18, 3, 2, 250, 0),

		seedPlayer("Oscar Buch", "FC Fredericia", "FCF", player.PositionAttacker, 15, 6, 1, 161, 3.2),
		seedPlayer("Frederik Rieper", "FC Fredericia", "FCF", player.PositionDefender, 18, 0, 1, 900, 0),

		seedPlayer("Mohamed Touré", "Randers", "RFC", player.PositionAttacker, 17, 4, 3, 159, 3.8),
		seedPlayer("Wessel Dammers", "Randers", "RFC", player.PositionDefender, 18, 1, 1, 500, 0),
		seedPlayer("Nikolas Dyhr", "Randers", "RFC", player.PositionDefender, 18, 0, 2, 600, 0),

		seedPlayer("Igor Vekić", "Vejle", "VB", player.PositionGoalkeeper, 18, 0, 0, 0, 0),
		seedPlayer("Mike Vestergård", "Vejle", "VB", player.PositionDefender, 18, 1, 1, 500, 0),

		seedPlayer("Tim Prica", "AaB", "AaB", player.PositionAttacker, 15, 3, 2, 220, 0),
		seedPlayer("Pedro Ferreira", "AaB", "AaB", player.PositionMidfielder, 16, 2, 3, 230, 0),
	}
}

// seedPlayer builds a roster entry with the derived ID. A zero price means no
// estimate is available yet.
func seedPlayer(name, team, short, position string, matches, goals, assists, minutesPerContribution int, price float64) player.Player {
	p := player.Player{
		ID:                     player.NewID(name, short),
		Name:                   name,
		Team:                   team,
		TeamShort:              short,
		Position:               position,
		Matches:                matches,
		Goals:                  goals,
		Assists:                assists,
		Total:                  goals + assists,
		MinutesPerContribution: minutesPerContribution,
		Trend:                  player.TrendStable,
	}
	if price > 0 {
		p.Price = &price
	}
	return p
}

// SeedStandings returns the current Superliga table, 2025/2026 season.
func SeedStandings() []fixture.Standing {
	return []fixture.Standing{
		{Position: 1, Team: "AGF", Short: "AGF", Played: 18, Won: 12, Drawn: 4, Lost: 2, GoalsFor: 35, GoalsAgainst: 15, GoalDifference: 20, Points: 40, Form: []string{"W", "W", "D", "W", "L"}, Strength: fixture.StrengthStrong},
		{Position: 2, Team: "FC Midtjylland", Short: "FCM", Played: 18, Won: 10, Drawn: 6, Lost: 2, GoalsFor: 40, GoalsAgainst: 18, GoalDifference: 22, Points: 36, Form: []string{"W", "W", "W", "D", "W"}, Strength: fixture.StrengthStrong},
		{Position: 3, Team: "Brøndby", Short: "BIF", Played: 18, Won: 9, Drawn: 4, Lost: 5, GoalsFor: 30, GoalsAgainst: 22, GoalDifference: 8, Points: 31, Form: []string{"L", "W", "W", "D", "L"}, Strength: fixture.StrengthStrong},
		{Position: 4, Team: "OB", Short: "OB", Played: 18, Won: 9, Drawn: 3, Lost: 6, GoalsFor: 34, GoalsAgainst: 25, GoalDifference: 9, Points: 30, Form: []string{"W", "D", "W", "L", "W"}, Strength: fixture.StrengthMedium},
		{Position: 5, Team: "FC København", Short: "FCK", Played: 17, Won: 8, Drawn: 5, Lost: 4, GoalsFor: 28, GoalsAgainst: 18, GoalDifference: 10, Points: 29, Form: []string{"D", "W", "L", "W", "D"}, Strength: fixture.StrengthStrong},
		{Position: 6, Team: "Silkeborg", Short: "SIF", Played: 18, Won: 8, Drawn: 4, Lost: 6, GoalsFor: 32, GoalsAgainst: 28, GoalDifference: 4, Points: 28, Form: []string{"W", "L", "W", "W", "D"}, Strength: fixture.StrengthMedium},
		{Position: 7, Team: "Randers", Short: "RFC", Played: 18, Won: 6, Drawn: 5, Lost: 7, GoalsFor: 24, GoalsAgainst: 26, GoalDifference: -2, Points: 23, Form: []string{"L", "D", "W", "L", "D"}, Strength: fixture.StrengthMedium},
		{Position: 8, Team: "Viborg", Short: "VFF", Played: 18, Won: 5, Drawn: 6, Lost: 7, GoalsFor: 22, GoalsAgainst: 28, GoalDifference: -6, Points: 21, Form: []string{"D", "L", "D", "W", "L"}, Strength: fixture.StrengthMedium},
		{Position: 9, Team: "FC Nordsjælland", Short: "FCN", Played: 18, Won: 5, Drawn: 5, Lost: 8, GoalsFor: 26, GoalsAgainst: 32, GoalDifference: -6, Points: 20, Form: []string{"L", "W", "L", "D", "L"}, Strength: fixture.StrengthWeak},
		{Position: 10, Team: "SønderjyskE", Short: "SJF", Played: 18, Won: 4, Drawn: 6, Lost: 8, GoalsFor: 20, GoalsAgainst: 28, GoalDifference: -8, Points: 18, Form: []string{"D", "L", "L", "D", "W"}, Strength: fixture.StrengthWeak},
		{Position: 11, Team: "FC Fredericia", Short: "FCF", Played: 18, Won: 3, Drawn: 5, Lost: 10, GoalsFor: 18, GoalsAgainst: 35, GoalDifference: -17, Points: 14, Form: []string{"L", "L", "D", "L", "L"}, Strength: fixture.StrengthWeak},
		{Position: 12, Team: "Vejle", Short: "VB", Played: 18, Won: 3, Drawn: 4, Lost: 11, GoalsFor: 17, GoalsAgainst: 31, GoalDifference: -14, Points: 13, Form: []string{"W", "L", "L", "L", "D"}, Strength: fixture.StrengthWeak},
	}
}

// SeedMatches returns the remaining spring schedule, rounds 19 through 21.
func SeedMatches() []fixture.Match {
	return []fixture.Match{
		{ID: "19-1", Round: 19, Date: "2026-02-06", Time: "19:00", Home: "AGF", HomeShort: "AGF", Away: "OB", AwayShort: "OB"},
		{ID: "19-2", Round: 19, Date: "2026-02-08", Time: "14:00", Home: "FC Nordsjælland", HomeShort: "FCN", Away: "SønderjyskE", AwayShort: "SJF"},
		{ID: "19-3", Round: 19, Date: "2026-02-08", Time: "14:00", Home: "Silkeborg", HomeShort: "SIF", Away: "Viborg", AwayShort: "VFF"},
		{ID: "19-4", Round: 19, Date: "2026-02-08", Time: "16:00", Home: "FC Midtjylland", HomeShort: "FCM", Away: "FC København", AwayShort: "FCK"},
		{ID: "19-5", Round: 19, Date: "2026-02-08", Time: "18:00", Home: "Brøndby", HomeShort: "BIF", Away: "Randers", AwayShort: "RFC"},
		{ID: "19-6", Round: 19, Date: "2026-02-09", Time: "19:00", Home: "Vejle", HomeShort: "VB", Away: "FC Fredericia", AwayShort: "FCF"},
		{ID: "20-1", Round: 20, Date: "2026-02-14", Time: "19:00", Home: "OB", HomeShort: "OB", Away: "FC Midtjylland", AwayShort: "FCM"},
		{ID: "20-2", Round: 20, Date: "2026-02-15", Time: "14:00", Home: "FC København", HomeShort: "FCK", Away: "Silkeborg", AwayShort: "SIF"},
		{ID: "20-3", Round: 20, Date: "2026-02-15", Time: "14:00", Home: "Randers", HomeShort: "RFC", Away: "AGF", AwayShort: "AGF"},
		{ID: "20-4", Round: 20, Date: "2026-02-15", Time: "16:00", Home: "Viborg", HomeShort: "VFF", Away: "Brøndby", AwayShort: "BIF"},
		{ID: "20-5", Round: 20, Date: "2026-02-15", Time: "18:00", Home: "SønderjyskE", HomeShort: "SJF", Away: "Vejle", AwayShort: "VB"},
		{ID: "20-6", Round: 20, Date: "2026-02-16", Time: "19:00", Home: "FC Fredericia", HomeShort: "FCF", Away: "FC Nordsjælland", AwayShort: "FCN"},
		{ID: "21-1", Round: 21, Date: "2026-02-21", Time: "19:00", Home: "FC Midtjylland", HomeShort: "FCM", Away: "Viborg", AwayShort: "VFF"},
		{ID: "21-2", Round: 21, Date: "2026-02-22", Time: "14:00", Home: "AGF", HomeShort: "AGF", Away: "SønderjyskE", AwayShort: "SJF"},
		{ID: "21-3", Round: 21, Date: "2026-02-22", Time: "14:00", Home: "Brøndby", HomeShort: "BIF", Away: "FC Fredericia", AwayShort: "FCF"},
		{ID: "21-4", Round: 21, Date: "2026-02-22", Time: "16:00", Home: "Silkeborg", HomeShort: "SIF", Away: "FC København", AwayShort: "FCK"},
		{ID: "21-5", Round: 21, Date: "2026-02-22", Time: "18:00", Home: "FC Nordsjælland", HomeShort: "FCN", Away: "Randers", AwayShort: "RFC"},
		{ID: "21-6", Round: 21, Date: "2026-02-23", Time: "19:00", Home: "OB", HomeShort: "OB", Away: "Vejle", AwayShort: "VB"},
	}
}
