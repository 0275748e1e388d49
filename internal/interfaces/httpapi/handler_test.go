package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/mkrogh/superliga-companion/internal/infrastructure/repository/memory"
	"github.com/mkrogh/superliga-companion/internal/usecase"
)

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	rosterRepo := memory.NewRosterRepository(nil)
	historyRepo := memory.NewHistoryRepository()
	fixtureRepo := memory.NewFixtureRepository(memory.SeedStandings(), memory.SeedMatches())

	handler := NewHandler(
		usecase.NewImportService(rosterRepo, historyRepo, nil),
		usecase.NewRosterService(rosterRepo, historyRepo),
		usecase.NewFixtureService(fixtureRepo),
		nil,
	)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewRouter(handler, logger, []string{"*"})
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) (*httptest.ResponseRecorder, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var envelope map[string]any
	if err := sonic.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("unmarshal response for %s %s: %v", method, path, err)
	}
	return rec, envelope
}

func TestRouter_ImportThenRead(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/players/import",
		`{"text":"Jon Doe|FC Test|FCT|10|3|4|7|120"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data, ok := envelope["data"].(map[string]any)
	if !ok {
		t.Fatalf("expected data object, got %v", envelope)
	}
	if added, _ := data["added"].(float64); added != 1 {
		t.Fatalf("added = %v, want 1", data["added"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/players", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list status = %d", rec.Code)
	}
	players, ok := envelope["data"].([]any)
	if !ok || len(players) != 1 {
		t.Fatalf("expected one player, got %v", envelope["data"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/players/jon-doe-fct", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("get status = %d, body = %s", rec.Code, rec.Body.String())
	}
	item, _ := envelope["data"].(map[string]any)
	if name, _ := item["name"].(string); name != "Jon Doe" {
		t.Fatalf("player name = %v", item["name"])
	}
	if total, _ := item["total"].(float64); total != 7 {
		t.Fatalf("player total = %v, want 7", item["total"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/players/jon-doe-fct/history", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("history status = %d", rec.Code)
	}
	window, ok := envelope["data"].([]any)
	if !ok || len(window) != 1 {
		t.Fatalf("expected one snapshot, got %v", envelope["data"])
	}
}

func TestRouter_GetPlayerNotFound(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodGet, "/v1/players/missing-id", "")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rec.Code)
	}
}

func TestRouter_ImportRejectsBadPayload(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/players/import", `{"text":""}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("empty text status = %d, want 400", rec.Code)
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/players/import", `{not json`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad json status = %d, want 400", rec.Code)
	}
}

func TestRouter_PriceImport(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/players/import",
		`{"text":"Jon Doe|FC Test|FCT|10|3|4|7|120"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d", rec.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/prices/import",
		`{"text":"Jon Doe 12,5 mio."}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("price import status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if updated, _ := data["updated"].(float64); updated != 1 {
		t.Fatalf("updated = %v, want 1", data["updated"])
	}
}

func TestRouter_UpsertPlayers(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodPost, "/v1/players",
		`{"candidates":[{"name":"Jon Doe","team":"FC Test","teamShort":"FCT","matches":10,"goals":3,"assists":4}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if added, _ := data["added"].(float64); added != 1 {
		t.Fatalf("added = %v, want 1", data["added"])
	}

	rec, _ = doJSON(t, router, http.MethodPost, "/v1/players",
		`{"candidates":[{"name":"Missing Team"}]}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("missing team status = %d, want 400", rec.Code)
	}
}

func TestRouter_SetAndListPrices(t *testing.T) {
	router := newTestRouter(t)

	rec, _ := doJSON(t, router, http.MethodPost, "/v1/players/import",
		`{"text":"Jon Doe|FC Test|FCT|10|3|4|7|120"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("import status = %d", rec.Code)
	}

	rec, envelope := doJSON(t, router, http.MethodPut, "/v1/prices",
		`{"prices":[{"name":"Jon Doe","price":9.5}]}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("set prices status = %d, body = %s", rec.Code, rec.Body.String())
	}
	data, _ := envelope["data"].(map[string]any)
	if updated, _ := data["updated"].(float64); updated != 1 {
		t.Fatalf("updated = %v, want 1", data["updated"])
	}

	rec, envelope = doJSON(t, router, http.MethodGet, "/v1/prices", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("list prices status = %d", rec.Code)
	}
	items, _ := envelope["data"].([]any)
	if len(items) != 1 {
		t.Fatalf("prices = %d, want 1", len(items))
	}
	entry, _ := items[0].(map[string]any)
	if price, _ := entry["price"].(float64); price != 9.5 {
		t.Fatalf("price = %v, want 9.5", entry["price"])
	}
}

func TestRouter_FixtureOverview(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/v1/fixtures?from_round=19", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	standings, _ := data["standings"].([]any)
	if len(standings) != 12 {
		t.Fatalf("standings = %d, want 12", len(standings))
	}

	rec, _ = doJSON(t, router, http.MethodGet, "/v1/fixtures?from_round=zero", "")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("bad from_round status = %d, want 400", rec.Code)
	}
}

func TestRouter_Healthz(t *testing.T) {
	router := newTestRouter(t)

	rec, envelope := doJSON(t, router, http.MethodGet, "/healthz", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	data, _ := envelope["data"].(map[string]any)
	if status, _ := data["status"].(string); status != "ok" {
		t.Fatalf("status field = %v", data["status"])
	}
}
