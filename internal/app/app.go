package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mkrogh/superliga-companion/internal/config"
	"github.com/mkrogh/superliga-companion/internal/domain/fixture"
	cacherepo "github.com/mkrogh/superliga-companion/internal/infrastructure/repository/cache"
	"github.com/mkrogh/superliga-companion/internal/infrastructure/repository/memory"
	"github.com/mkrogh/superliga-companion/internal/interfaces/httpapi"
	"github.com/mkrogh/superliga-companion/internal/platform/cache"
	"github.com/mkrogh/superliga-companion/internal/platform/logging"
	"github.com/mkrogh/superliga-companion/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger) (*http.Server, error) {
	rosterRepo := memory.NewRosterRepository(memory.SeedPlayers())
	historyRepo := memory.NewHistoryRepository()

	var fixtureRepo fixture.Repository = memory.NewFixtureRepository(
		memory.SeedStandings(),
		memory.SeedMatches(),
	)
	if cfg.CacheEnabled {
		fixtureRepo = cacherepo.NewFixtureRepository(fixtureRepo, cache.NewStore(cfg.CacheTTL))
	}

	importSvc := usecase.NewImportService(rosterRepo, historyRepo, nil)
	rosterSvc := usecase.NewRosterService(rosterRepo, historyRepo)
	fixtureSvc := usecase.NewFixtureService(fixtureRepo)

	handler := httpapi.NewHandler(importSvc, rosterSvc, fixtureSvc, logging.Default())
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
