package httpapi

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mkrogh/superliga-companion/internal/usecase"
)

func (h *Handler) GetFixtureOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetFixtureOverview")
	defer span.End()

	fromRound := 1
	if raw := strings.TrimSpace(r.URL.Query().Get("from_round")); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			writeError(ctx, w, fmt.Errorf("%w: from_round must be a positive integer", usecase.ErrInvalidInput))
			return
		}
		fromRound = parsed
	}

	overview, err := h.fixtureService.Overview(ctx, fromRound)
	if err != nil {
		h.logger.WarnContext(ctx, "fixture overview failed", "from_round", fromRound, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}
