// Package sync pulls windowed pages of matches from the providers,
// persists immutable snapshots, and feeds the analysis engine once per
// projected (market, side) key.
package sync

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/metrics"
	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/internal/providers"
	"github.com/cypherlabdev/value-radar-service/internal/service"
)

// preferredBook is used when several books quote the same (market, side)
const preferredBook = "pinnacle"

// Orchestrator drives one sync page end to end. Matches are processed
// sequentially; one match's failure never aborts the page.
type Orchestrator struct {
	repo     service.Repository
	analyzer *service.AnalysisService
	odds     providers.OddsProvider
	flow     providers.PublicCashProvider
	model    providers.ModelProvider
	window   time.Duration
	logger   zerolog.Logger
}

// NewOrchestrator creates a sync orchestrator. window is the lookahead for
// the match page request, normally 24 hours.
func NewOrchestrator(
	repo service.Repository,
	analyzer *service.AnalysisService,
	odds providers.OddsProvider,
	flow providers.PublicCashProvider,
	model providers.ModelProvider,
	window time.Duration,
	logger zerolog.Logger,
) *Orchestrator {
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Orchestrator{
		repo:     repo,
		analyzer: analyzer,
		odds:     odds,
		flow:     flow,
		model:    model,
		window:   window,
		logger:   logger.With().Str("component", "sync_orchestrator").Logger(),
	}
}

// Run processes one provider page bounded by cursor and limit. Only a
// failure of the page fetch itself propagates; per-match failures are
// recorded in the result and the page completes.
func (o *Orchestrator) Run(ctx context.Context, cursor *string, limit int) (*models.SyncResult, error) {
	now := time.Now().UTC()
	from, to := now, now.Add(o.window)

	page, err := o.odds.GetMatchesWindow(ctx, from, to, cursor, limit)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("odds").Inc()
		return nil, apperr.Wrap(apperr.KindProvider, err, "fetch match page")
	}

	result := &models.SyncResult{
		Matches:    make([]models.SyncOutcome, 0, len(page.Matches)),
		NextCursor: page.NextCursor,
	}

	for _, info := range page.Matches {
		matchID, err := o.processMatch(ctx, info, now)
		if err != nil {
			result.Failed++
			result.Matches = append(result.Matches, models.SyncOutcome{
				ExternalRef: info.ExternalRef,
				Error:       err.Error(),
			})
			metrics.SyncMatchesFailed.Inc()
			o.logger.Warn().
				Err(err).
				Str("external_ref", info.ExternalRef).
				Msg("match sync failed")
			continue
		}

		result.Processed++
		result.Matches = append(result.Matches, models.SyncOutcome{
			ExternalRef: info.ExternalRef,
			MatchID:     &matchID,
		})
		metrics.SyncMatchesProcessed.Inc()
	}

	metrics.SyncPages.Inc()
	o.logger.Info().
		Int("processed", result.Processed).
		Int("failed", result.Failed).
		Bool("has_next", result.NextCursor != nil).
		Msg("sync page complete")

	return result, nil
}

// processMatch runs the full pipeline for one provider match: upsert,
// snapshot persistence, then one analysis per distinct projected key.
func (o *Orchestrator) processMatch(ctx context.Context, info providers.MatchInfo, observedAt time.Time) (uuid.UUID, error) {
	match, err := o.repo.UpsertMatch(ctx, models.Match{
		ExternalRef: info.ExternalRef,
		Sport:       info.Sport,
		League:      info.League,
		HomeTeam:    info.HomeTeam,
		AwayTeam:    info.AwayTeam,
		StartsAt:    info.StartsAt,
		Status:      info.Status,
	})
	if err != nil {
		return uuid.Nil, err
	}

	quotes, err := o.odds.GetOddsForMatch(ctx, info)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("odds").Inc()
		return uuid.Nil, apperr.Wrap(apperr.KindProvider, err, "fetch odds for %s", info.ExternalRef)
	}

	flows, err := o.flow.GetPublicCashForMatch(ctx, info)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("public_cash").Inc()
		return uuid.Nil, apperr.Wrap(apperr.KindProvider, err, "fetch public cash for %s", info.ExternalRef)
	}

	run, err := o.model.Run(ctx, info, quotes, flows)
	if err != nil {
		metrics.ProviderErrors.WithLabelValues("model").Inc()
		return uuid.Nil, apperr.Wrap(apperr.KindProvider, err, "run model for %s", info.ExternalRef)
	}

	if err := o.persistSnapshots(ctx, match.ID, quotes, flows, observedAt); err != nil {
		return uuid.Nil, err
	}

	if err := o.analyzeProjections(ctx, match.ID, run, quotes, flows); err != nil {
		return uuid.Nil, err
	}

	return match.ID, nil
}

// persistSnapshots appends every returned odds and flow row. No dedup:
// history keeps each sync's observation even when values are unchanged.
func (o *Orchestrator) persistSnapshots(ctx context.Context, matchID uuid.UUID, quotes []providers.OddsQuote, flows []providers.FlowQuote, observedAt time.Time) error {
	markets := make([]models.MarketSnapshot, 0, len(quotes))
	for _, q := range quotes {
		markets = append(markets, models.MarketSnapshot{
			ID:          uuid.New(),
			MatchID:     matchID,
			MarketType:  q.MarketType,
			Side:        q.Side,
			Book:        q.Book,
			OpenOdds:    q.OpenOdds,
			CurrentOdds: q.CurrentOdds,
			ObservedAt:  observedAt,
		})
	}
	if err := o.repo.CreateMarketSnapshots(ctx, markets); err != nil {
		return err
	}

	publicCash := make([]models.PublicCashSnapshot, 0, len(flows))
	for _, f := range flows {
		publicCash = append(publicCash, models.PublicCashSnapshot{
			ID:            uuid.New(),
			MatchID:       matchID,
			MarketType:    f.MarketType,
			Side:          f.Side,
			PublicPercent: f.PublicPercent,
			CashPercent:   f.CashPercent,
			ObservedAt:    observedAt,
		})
	}
	return o.repo.CreatePublicCashSnapshots(ctx, publicCash)
}

// analyzeProjections computes one analysis per distinct projected
// (market, side) key, first occurrence winning on duplicates. Keys with no
// matching odds quote are skipped entirely.
func (o *Orchestrator) analyzeProjections(ctx context.Context, matchID uuid.UUID, run *providers.ModelRun, quotes []providers.OddsQuote, flows []providers.FlowQuote) error {
	seen := make(map[string]bool, len(run.Projections))

	for _, proj := range run.Projections {
		key := string(proj.MarketType) + "|" + string(proj.Side)
		if seen[key] {
			continue
		}
		seen[key] = true

		quote, ok := pickQuote(quotes, proj.MarketType, proj.Side)
		if !ok {
			o.logger.Debug().
				Str("match_id", matchID.String()).
				Str("market", string(proj.MarketType)).
				Str("side", string(proj.Side)).
				Msg("no odds for projected key, skipping")
			continue
		}

		payload := service.AnalyzePayload{
			MatchID:     matchID,
			MarketType:  proj.MarketType,
			Side:        proj.Side,
			CurrentOdds: quote.CurrentOdds.InexactFloat64(),
			ModelProb:   proj.ModelProb,
			Confidence:  run.Confidence,
		}
		if quote.OpenOdds.Valid {
			open := quote.OpenOdds.Decimal.InexactFloat64()
			payload.OpenOdds = &open
		}
		if f, ok := pickFlow(flows, proj.MarketType, proj.Side); ok {
			payload.PublicPercent = f.PublicPercent
			payload.CashPercent = f.CashPercent
		}

		if _, err := o.analyzer.SaveFromPayload(ctx, payload); err != nil {
			return err
		}
	}
	return nil
}

// pickQuote selects the odds quote for a key, preferring the sharpest book
func pickQuote(quotes []providers.OddsQuote, marketType models.MarketType, side models.Side) (providers.OddsQuote, bool) {
	var found *providers.OddsQuote
	for i := range quotes {
		q := &quotes[i]
		if q.MarketType != marketType || q.Side != side {
			continue
		}
		if strings.EqualFold(q.Book, preferredBook) {
			return *q, true
		}
		if found == nil {
			found = q
		}
	}
	if found == nil {
		return providers.OddsQuote{}, false
	}
	return *found, true
}

func pickFlow(flows []providers.FlowQuote, marketType models.MarketType, side models.Side) (providers.FlowQuote, bool) {
	for _, f := range flows {
		if f.MarketType == marketType && f.Side == side {
			return f, true
		}
	}
	return providers.FlowQuote{}, false
}
