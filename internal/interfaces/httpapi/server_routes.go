package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerDomainRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("POST /v1/players", handler.UpsertPlayers)
	mux.HandleFunc("POST /v1/players/import", handler.ImportPlayers)
	mux.HandleFunc("GET /v1/players/suggest", handler.SuggestPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayer)
	mux.HandleFunc("GET /v1/players/{playerID}/history", handler.GetPlayerHistory)
	mux.HandleFunc("GET /v1/prices", handler.ListPrices)
	mux.HandleFunc("PUT /v1/prices", handler.SetPrices)
	mux.HandleFunc("POST /v1/prices/import", handler.ImportPrices)
	mux.HandleFunc("GET /v1/fixtures", handler.GetFixtureOverview)
}
