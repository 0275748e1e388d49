package httpapi

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/domain/player"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	item, err := h.rosterService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(item))
}

func (h *Handler) GetPlayerHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerHistory")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	window, err := h.rosterService.History(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player history failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]snapshotDTO, 0, len(window))
	for _, snap := range window {
		items = append(items, snapshotToDTO(snap))
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SuggestPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SuggestPlayers")
	defer span.End()

	name := r.URL.Query().Get("name")
	limit := 0
	if raw := strings.TrimSpace(r.URL.Query().Get("limit")); raw != "" {
		limit, _ = strconv.Atoi(raw)
	}

	players, err := h.rosterService.Suggest(ctx, name, limit)
	if err != nil {
		h.logger.WarnContext(ctx, "suggest players failed", "name", name, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTO(players))
}

func (h *Handler) UpsertPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpsertPlayers")
	defer span.End()

	var payload upsertPlayersRequest
	if err := decodeJSONBody(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	candidates := make([]player.Candidate, 0, len(payload.Candidates))
	for _, rec := range payload.Candidates {
		c := player.Candidate{
			Name:                   rec.Name,
			Team:                   rec.Team,
			TeamShort:              rec.TeamShort,
			Matches:                rec.Matches,
			Goals:                  rec.Goals,
			Assists:                rec.Assists,
			MinutesPerContribution: rec.MinutesPerContribution,
			Price:                  rec.Price,
			Popularity:             rec.Popularity,
		}
		if strings.TrimSpace(rec.Position) != "" {
			c.Position = player.MapPosition(rec.Position)
		}
		candidates = append(candidates, c)
	}

	result, err := h.importService.ImportCandidates(ctx, candidates)
	if err != nil {
		h.logger.WarnContext(ctx, "upsert players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "players upserted", "added", result.Added, "updated", result.Updated)
	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}

func (h *Handler) ImportPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPlayers")
	defer span.End()

	var payload importRequest
	if err := decodeJSONBody(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.importService.ImportPlayers(ctx, payload.Text)
	if err != nil {
		h.logger.WarnContext(ctx, "import players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "players imported", "added", result.Added, "updated", result.Updated)
	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}
