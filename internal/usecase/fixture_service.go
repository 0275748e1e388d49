package usecase

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
)

const fixtureWorkerCount = 4

// FixtureOverview bundles the schedule, the table and the per-club upcoming
// fixtures with difficulty scores.
type FixtureOverview struct {
	Matches   []fixture.Match
	Standings []fixture.Standing
	ByTeam    map[string][]fixture.Upcoming
	Summaries map[string]TeamSummary
}

// TeamSummary condenses a club's remaining run: how many games, how many at
// home, how many look easy, and the average difficulty.
type TeamSummary struct {
	Matches       int
	HomeMatches   int
	EasyMatches   int
	AvgDifficulty float64
}

// FixtureService derives difficulty-scored upcoming fixtures from the static
// schedule and standings.
type FixtureService struct {
	fixtureRepo fixture.Repository
}

func NewFixtureService(fixtureRepo fixture.Repository) *FixtureService {
	return &FixtureService{fixtureRepo: fixtureRepo}
}

// Overview scores every remaining match from both clubs' perspectives. The
// per-match work fans out over a small worker pool; results are collected
// and grouped per club afterwards so the output stays deterministic.
func (s *FixtureService) Overview(ctx context.Context, fromRound int) (FixtureOverview, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.FixtureService.Overview")
	defer span.End()

	standings, err := s.fixtureRepo.Standings(ctx)
	if err != nil {
		return FixtureOverview{}, fmt.Errorf("load standings: %w", err)
	}
	matches, err := s.fixtureRepo.MatchesFrom(ctx, fromRound)
	if err != nil {
		return FixtureOverview{}, fmt.Errorf("load matches: %w", err)
	}

	table := make(map[string]fixture.Standing, len(standings))
	for _, st := range standings {
		table[st.Short] = st
	}

	pool, err := ants.NewPool(fixtureWorkerCount)
	if err != nil {
		return FixtureOverview{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	scored := make([][2]fixture.Upcoming, len(matches))

	var workers sync.WaitGroup
	for i, m := range matches {
		i, m := i, m
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			scored[i] = [2]fixture.Upcoming{
				scoreSide(m, table, true),
				scoreSide(m, table, false),
			}
		}); err != nil {
			workers.Done()
			return FixtureOverview{}, fmt.Errorf("submit match to worker pool: %w", err)
		}
	}
	workers.Wait()

	byTeam := make(map[string][]fixture.Upcoming)
	for _, pair := range scored {
		for _, up := range pair {
			byTeam[up.TeamShort] = append(byTeam[up.TeamShort], up)
		}
	}
	for short := range byTeam {
		list := byTeam[short]
		sort.SliceStable(list, func(i, j int) bool { return list[i].Round < list[j].Round })
		byTeam[short] = list
	}

	summaries := make(map[string]TeamSummary, len(byTeam))
	for short, list := range byTeam {
		summaries[short] = summarize(list)
	}

	return FixtureOverview{
		Matches:   matches,
		Standings: standings,
		ByTeam:    byTeam,
		Summaries: summaries,
	}, nil
}

// easyThreshold marks fixtures a club should expect to win points from.
const easyThreshold = 4

func summarize(list []fixture.Upcoming) TeamSummary {
	sum := TeamSummary{Matches: len(list)}
	if len(list) == 0 {
		return sum
	}

	total := 0
	for _, up := range list {
		total += up.Difficulty
		if up.Home {
			sum.HomeMatches++
		}
		if up.Difficulty <= easyThreshold {
			sum.EasyMatches++
		}
	}
	sum.AvgDifficulty = float64(total) / float64(len(list))
	return sum
}

// scoreSide builds one club's view of a match, scored against the opponent's
// table position. Clubs missing from the table score as average mid-table
// opposition.
func scoreSide(m fixture.Match, table map[string]fixture.Standing, home bool) fixture.Upcoming {
	up := fixture.Upcoming{
		Round: m.Round,
		Date:  m.Date,
		Time:  m.Time,
		Home:  home,
	}

	var opponentShort string
	if home {
		up.Team, up.TeamShort = m.Home, m.HomeShort
		up.Opponent, up.OpponentShort = m.Away, m.AwayShort
		opponentShort = m.AwayShort
	} else {
		up.Team, up.TeamShort = m.Away, m.AwayShort
		up.Opponent, up.OpponentShort = m.Home, m.HomeShort
		opponentShort = m.HomeShort
	}

	position := fixture.DefaultPosition
	strength := fixture.DefaultStrength
	if st, ok := table[opponentShort]; ok {
		position = st.Position
		strength = st.Strength
	}

	up.OpponentPosition = position
	up.OpponentStrength = strength
	up.Difficulty = fixture.Difficulty(position, home)
	return up
}
