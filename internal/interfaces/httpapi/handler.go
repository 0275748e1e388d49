package httpapi

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
	"github.com/mkrogh/superliga-companion/internal/domain/history"
	"github.com/mkrogh/superliga-companion/internal/domain/player"
	"github.com/mkrogh/superliga-companion/internal/platform/logging"
	"github.com/mkrogh/superliga-companion/internal/usecase"
)

type Handler struct {
	importService  *usecase.ImportService
	rosterService  *usecase.RosterService
	fixtureService *usecase.FixtureService
	logger         *logging.Logger
	validator      *validator.Validate
}

func NewHandler(
	importService *usecase.ImportService,
	rosterService *usecase.RosterService,
	fixtureService *usecase.FixtureService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		importService:  importService,
		rosterService:  rosterService,
		fixtureService: fixtureService,
		logger:         logger,
		validator:      validator.New(),
	}
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

type importRequest struct {
	Text string `json:"text" validate:"required"`
}

type candidateRecord struct {
	Name                   string   `json:"name" validate:"required"`
	Team                   string   `json:"team" validate:"required"`
	TeamShort              string   `json:"teamShort"`
	Position               string   `json:"position"`
	Matches                int      `json:"matches" validate:"gte=0"`
	Goals                  int      `json:"goals" validate:"gte=0"`
	Assists                int      `json:"assists" validate:"gte=0"`
	MinutesPerContribution int      `json:"minutesPerContribution" validate:"gte=0"`
	Price                  *float64 `json:"price,omitempty"`
	Popularity             string   `json:"popularity"`
}

type upsertPlayersRequest struct {
	Candidates []candidateRecord `json:"candidates" validate:"required,min=1,dive"`
}

type priceRecord struct {
	Name  string  `json:"name" validate:"required"`
	Price float64 `json:"price" validate:"required,gt=0"`
}

type setPricesRequest struct {
	Prices []priceRecord `json:"prices" validate:"required,min=1,dive"`
}

type playerPriceDTO struct {
	ID    string   `json:"id"`
	Name  string   `json:"name"`
	Price *float64 `json:"price,omitempty"`
}

type playerDTO struct {
	ID                     string   `json:"id"`
	Name                   string   `json:"name"`
	Team                   string   `json:"team"`
	TeamShort              string   `json:"teamShort"`
	Position               string   `json:"position"`
	Matches                int      `json:"matches"`
	Goals                  int      `json:"goals"`
	Assists                int      `json:"assists"`
	Total                  int      `json:"total"`
	MinutesPerContribution int      `json:"minutesPerContribution,omitempty"`
	Price                  *float64 `json:"price,omitempty"`
	Popularity             string   `json:"popularity,omitempty"`
	Trend                  string   `json:"trend"`
	RecentGains            int      `json:"recentGains"`
	Form                   float64  `json:"form"`
	IsHot                  bool     `json:"isHot"`
}

type importResultDTO struct {
	Players []playerDTO `json:"players"`
	Added   int         `json:"added"`
	Updated int         `json:"updated"`
}

type snapshotDTO struct {
	Date    string   `json:"date"`
	Goals   int      `json:"goals"`
	Assists int      `json:"assists"`
	Total   int      `json:"total"`
	Price   *float64 `json:"price,omitempty"`
}

type standingDTO struct {
	Position       int      `json:"position"`
	Team           string   `json:"team"`
	Short          string   `json:"short"`
	Played         int      `json:"played"`
	Won            int      `json:"won"`
	Drawn          int      `json:"drawn"`
	Lost           int      `json:"lost"`
	GoalsFor       int      `json:"goalsFor"`
	GoalsAgainst   int      `json:"goalsAgainst"`
	GoalDifference int      `json:"goalDifference"`
	Points         int      `json:"points"`
	Form           []string `json:"form,omitempty"`
	Strength       string   `json:"strength"`
}

type matchDTO struct {
	ID        string `json:"id"`
	Round     int    `json:"round"`
	Date      string `json:"date"`
	Time      string `json:"time"`
	Home      string `json:"home"`
	HomeShort string `json:"homeShort"`
	Away      string `json:"away"`
	AwayShort string `json:"awayShort"`
}

type upcomingDTO struct {
	Team             string `json:"team"`
	TeamShort        string `json:"teamShort"`
	Opponent         string `json:"opponent"`
	OpponentShort    string `json:"opponentShort"`
	Home             bool   `json:"home"`
	OpponentStrength string `json:"opponentStrength"`
	OpponentPosition int    `json:"opponentPosition"`
	Round            int    `json:"round"`
	Date             string `json:"date"`
	Time             string `json:"time"`
	Difficulty       int    `json:"difficulty"`
}

type teamSummaryDTO struct {
	Matches       int     `json:"matches"`
	HomeMatches   int     `json:"homeMatches"`
	EasyMatches   int     `json:"easyMatches"`
	AvgDifficulty float64 `json:"avgDifficulty"`
}

type fixtureOverviewDTO struct {
	Matches   []matchDTO                `json:"matches"`
	Standings []standingDTO             `json:"standings"`
	ByTeam    map[string][]upcomingDTO  `json:"byTeam"`
	Summaries map[string]teamSummaryDTO `json:"summaries"`
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:                     v.ID,
		Name:                   v.Name,
		Team:                   v.Team,
		TeamShort:              v.TeamShort,
		Position:               v.Position,
		Matches:                v.Matches,
		Goals:                  v.Goals,
		Assists:                v.Assists,
		Total:                  v.Total,
		MinutesPerContribution: v.MinutesPerContribution,
		Price:                  v.Price,
		Popularity:             v.Popularity,
		Trend:                  string(v.Trend),
		RecentGains:            v.RecentGains,
		Form:                   v.Form,
		IsHot:                  v.IsHot,
	}
}

func playersToDTO(items []player.Player) []playerDTO {
	out := make([]playerDTO, 0, len(items))
	for _, item := range items {
		out = append(out, playerToDTO(item))
	}
	return out
}

func snapshotToDTO(v history.Snapshot) snapshotDTO {
	return snapshotDTO{
		Date:    v.Date,
		Goals:   v.Goals,
		Assists: v.Assists,
		Total:   v.Total,
		Price:   v.Price,
	}
}

func importResultToDTO(v usecase.ImportResult) importResultDTO {
	return importResultDTO{
		Players: playersToDTO(v.Players),
		Added:   v.Added,
		Updated: v.Updated,
	}
}

func standingToDTO(v fixture.Standing) standingDTO {
	return standingDTO{
		Position:       v.Position,
		Team:           v.Team,
		Short:          v.Short,
		Played:         v.Played,
		Won:            v.Won,
		Drawn:          v.Drawn,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		Form:           append([]string(nil), v.Form...),
		Strength:       string(v.Strength),
	}
}

func matchToDTO(v fixture.Match) matchDTO {
	return matchDTO{
		ID:        v.ID,
		Round:     v.Round,
		Date:      v.Date,
		Time:      v.Time,
		Home:      v.Home,
		HomeShort: v.HomeShort,
		Away:      v.Away,
		AwayShort: v.AwayShort,
	}
}

func upcomingToDTO(v fixture.Upcoming) upcomingDTO {
	return upcomingDTO{
		Team:             v.Team,
		TeamShort:        v.TeamShort,
		Opponent:         v.Opponent,
		OpponentShort:    v.OpponentShort,
		Home:             v.Home,
		OpponentStrength: string(v.OpponentStrength),
		OpponentPosition: v.OpponentPosition,
		Round:            v.Round,
		Date:             v.Date,
		Time:             v.Time,
		Difficulty:       v.Difficulty,
	}
}

func overviewToDTO(v usecase.FixtureOverview) fixtureOverviewDTO {
	matches := make([]matchDTO, 0, len(v.Matches))
	for _, m := range v.Matches {
		matches = append(matches, matchToDTO(m))
	}

	standings := make([]standingDTO, 0, len(v.Standings))
	for _, st := range v.Standings {
		standings = append(standings, standingToDTO(st))
	}

	byTeam := make(map[string][]upcomingDTO, len(v.ByTeam))
	for short, list := range v.ByTeam {
		items := make([]upcomingDTO, 0, len(list))
		for _, up := range list {
			items = append(items, upcomingToDTO(up))
		}
		byTeam[short] = items
	}

	summaries := make(map[string]teamSummaryDTO, len(v.Summaries))
	for short, sum := range v.Summaries {
		summaries[short] = teamSummaryDTO{
			Matches:       sum.Matches,
			HomeMatches:   sum.HomeMatches,
			EasyMatches:   sum.EasyMatches,
			AvgDifficulty: sum.AvgDifficulty,
		}
	}

	return fixtureOverviewDTO{
		Matches:   matches,
		Standings: standings,
		ByTeam:    byTeam,
		Summaries: summaries,
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "ok"})
}
