package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mkrogh/superliga-companion/internal/domain/history"
	"github.com/mkrogh/superliga-companion/internal/domain/player"
	"github.com/mkrogh/superliga-companion/internal/importer"
)

// ImportResult reports one import batch: the full roster after reconciliation
// plus how many records the batch created and updated.
type ImportResult struct {
	Players []player.Player
	Added   int
	Updated int
}

// ImportService runs pasted text through the parse, match, merge and
// snapshot pipeline. A batch mutex serializes whole batches so two concurrent
// imports never interleave their roster mutations.
type ImportService struct {
	batchMu     sync.Mutex
	rosterRepo  player.Repository
	historyRepo history.Repository
	now         func() time.Time
}

func NewImportService(rosterRepo player.Repository, historyRepo history.Repository, now func() time.Time) *ImportService {
	if now == nil {
		now = time.Now
	}
	return &ImportService{
		rosterRepo:  rosterRepo,
		historyRepo: historyRepo,
		now:         now,
	}
}

// ImportPlayers parses a stats paste and reconciles every candidate into the
// roster. Candidates that match an existing player update it; the rest are
// inserted. Each reconciliation records a same-day snapshot and refreshes the
// player's trend fields from the snapshot window.
func (s *ImportService) ImportPlayers(ctx context.Context, rawText string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportPlayers")
	defer span.End()

	if strings.TrimSpace(rawText) == "" {
		return ImportResult{}, fmt.Errorf("%w: import text is required", ErrInvalidInput)
	}

	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	return s.reconcile(ctx, importer.Parse(rawText))
}

// ImportCandidates reconciles pre-structured candidate records, bypassing the
// text parsers. Same pipeline as ImportPlayers otherwise.
func (s *ImportService) ImportCandidates(ctx context.Context, candidates []player.Candidate) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportCandidates")
	defer span.End()

	if len(candidates) == 0 {
		return ImportResult{}, fmt.Errorf("%w: at least one candidate is required", ErrInvalidInput)
	}
	for _, c := range candidates {
		if strings.TrimSpace(c.Name) == "" || strings.TrimSpace(c.Team) == "" {
			return ImportResult{}, fmt.Errorf("%w: candidate name and team are required", ErrInvalidInput)
		}
	}

	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	return s.reconcile(ctx, candidates)
}

// ImportPrices parses a price paste and applies each price to the matching
// roster entry. Prices without a matching player insert a stub entry with an
// unknown club, mirroring how the price sheet lists players the stats paste
// has not seen yet.
func (s *ImportService) ImportPrices(ctx context.Context, rawText string) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.ImportPrices")
	defer span.End()

	if strings.TrimSpace(rawText) == "" {
		return ImportResult{}, fmt.Errorf("%w: import text is required", ErrInvalidInput)
	}

	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	return s.applyPrices(ctx, importer.ParsePrices(rawText))
}

// SetPrices applies already-structured name/price pairs, the JSON equivalent
// of a price paste.
func (s *ImportService) SetPrices(ctx context.Context, prices []importer.PriceCandidate) (ImportResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.ImportService.SetPrices")
	defer span.End()

	if len(prices) == 0 {
		return ImportResult{}, fmt.Errorf("%w: at least one price is required", ErrInvalidInput)
	}
	for _, pc := range prices {
		if strings.TrimSpace(pc.Name) == "" || pc.Price <= 0 {
			return ImportResult{}, fmt.Errorf("%w: price entries need a name and a positive price", ErrInvalidInput)
		}
	}

	s.batchMu.Lock()
	defer s.batchMu.Unlock()

	return s.applyPrices(ctx, prices)
}

// reconcile runs one candidate batch against the roster. Caller holds the
// batch mutex.
func (s *ImportService) reconcile(ctx context.Context, candidates []player.Candidate) (ImportResult, error) {
	roster, err := s.rosterRepo.List(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list roster: %w", err)
	}

	result := ImportResult{}
	today := s.now().Format("2006-01-02")

	for _, candidate := range candidates {
		matched := player.Match(roster, candidate)

		var next player.Player
		if matched != nil {
			next = player.Merge(*matched, candidate)
			result.Updated++
		} else {
			next = player.New(candidate)
			result.Added++
		}

		next, err = s.commit(ctx, next, today)
		if err != nil {
			return ImportResult{}, err
		}
		roster = replaceOrAppend(roster, next)
	}

	result.Players = roster
	return result, nil
}

// applyPrices updates prices on matched roster entries and inserts stubs for
// the rest. Caller holds the batch mutex.
func (s *ImportService) applyPrices(ctx context.Context, prices []importer.PriceCandidate) (ImportResult, error) {
	roster, err := s.rosterRepo.List(ctx)
	if err != nil {
		return ImportResult{}, fmt.Errorf("list roster: %w", err)
	}

	result := ImportResult{}
	today := s.now().Format("2006-01-02")

	for _, pc := range prices {
		price := pc.Price
		candidate := player.Candidate{Name: pc.Name, Price: &price}

		matched := player.Match(roster, candidate)

		var next player.Player
		if matched != nil {
			next = *matched
			next.Price = &price
			result.Updated++
		} else {
			candidate.Team = "Ukendt"
			next = player.New(candidate)
			result.Added++
		}

		next, err = s.commit(ctx, next, today)
		if err != nil {
			return ImportResult{}, err
		}
		roster = replaceOrAppend(roster, next)
	}

	result.Players = roster
	return result, nil
}

// commit records today's snapshot, refreshes the trend fields from the
// resulting window, and upserts the player.
func (s *ImportService) commit(ctx context.Context, p player.Player, today string) (player.Player, error) {
	snap := history.Snapshot{
		PlayerID: p.ID,
		Date:     today,
		Goals:    p.Goals,
		Assists:  p.Assists,
		Total:    p.Total,
		Price:    p.Price,
	}
	if err := s.historyRepo.Record(ctx, snap); err != nil {
		return player.Player{}, fmt.Errorf("record snapshot: %w", err)
	}

	window, err := s.historyRepo.Window(ctx, p.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("load snapshot window: %w", err)
	}

	stats := history.Compute(window)
	p.Trend = stats.Trend
	p.RecentGains = stats.RecentGains
	p.Form = stats.Form
	p.IsHot = stats.IsHot

	if err := s.rosterRepo.Upsert(ctx, p); err != nil {
		return player.Player{}, fmt.Errorf("upsert player: %w", err)
	}
	return p, nil
}

func replaceOrAppend(roster []player.Player, p player.Player) []player.Player {
	for i := range roster {
		if roster[i].ID == p.ID {
			roster[i] = p
			return roster
		}
	}
	return append(roster, p)
}
