package httpapi

import (
	"net/http"

	"github.com/mkrogh/superliga-companion/internal/importer"
)

func (h *Handler) ListPrices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPrices")
	defer span.End()

	players, err := h.rosterService.ListPlayers(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list prices failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	items := make([]playerPriceDTO, 0, len(players))
	for _, p := range players {
		items = append(items, playerPriceDTO{ID: p.ID, Name: p.Name, Price: p.Price})
	}

	writeSuccess(ctx, w, http.StatusOK, items)
}

func (h *Handler) SetPrices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SetPrices")
	defer span.End()

	var payload setPricesRequest
	if err := decodeJSONBody(ctx, r, &payload); err != nil {
		writeError(ctx, w, err)
		return
	}
	if err := h.validateRequest(ctx, payload); err != nil {
		writeError(ctx, w, err)
		return
	}

	prices := make([]importer.PriceCandidate, 0, len(payload.Prices))
	for _, rec := range payload.Prices {
		prices = append(prices, importer.PriceCandidate{Name: rec.Name, Price: rec.Price})
	}

	result, err := h.importService.SetPrices(ctx, prices)
	if err != nil {
		h.logger.WarnContext(ctx, "set prices failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "prices set", "added", result.Added, "updated", result.Updated)
	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}

func (h *Handler) ImportPrices(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ImportPrices")
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

	result, err := h.importService.ImportPrices(ctx, payload.Text)
	if err != nil {
		h.logger.WarnContext(ctx, "import prices failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	h.logger.InfoContext(ctx, "prices imported", "added", result.Added, "updated", result.Updated)
	writeSuccess(ctx, w, http.StatusOK, importResultToDTO(result))
}
