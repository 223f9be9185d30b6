package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/metrics"
	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/pkg/analysis"
)

// Confidence assumed when an analysis is triggered from stored data and no
// model-run confidence is available.
const defaultStoreConfidence = 0.55

// Bounds for the implied-probability fallback used when no prior analysis
// carries a model estimate forward.
const (
	fallbackProbFloor = 0.02
	fallbackProbCeil  = 0.9
)

// AnalyzePayload is a fully specified engine invocation, e.g. from manual
// entry. Validation happens at the trigger surface before it reaches here.
type AnalyzePayload struct {
	MatchID       uuid.UUID
	MarketType    models.MarketType
	Side          models.Side
	OpenOdds      *float64
	CurrentOdds   float64
	ModelProb     float64
	Confidence    float64
	PublicPercent *float64
	CashPercent   *float64
	Volatility    *float64
}

// AnalysisService wraps the pure engine with store lookups and writes:
// every computation becomes one immutable AnalysisSnapshot row.
type AnalysisService struct {
	repo      Repository
	cache     AnalysisCache
	publisher Publisher
	engine    *analysis.Engine
	logger    zerolog.Logger
}

// NewAnalysisService creates a new analysis service
func NewAnalysisService(
	repo Repository,
	cache AnalysisCache,
	publisher Publisher,
	engine *analysis.Engine,
	logger zerolog.Logger,
) *AnalysisService {
	return &AnalysisService{
		repo:      repo,
		cache:     cache,
		publisher: publisher,
		engine:    engine,
		logger:    logger.With().Str("component", "analysis_service").Logger(),
	}
}

// SaveFromPayload runs the engine on a fully specified payload and persists
// one new analysis snapshot. Cache and publish failures are logged but never
// fail the request; the store row is the source of truth.
func (s *AnalysisService) SaveFromPayload(ctx context.Context, p AnalyzePayload) (*models.AnalysisSnapshot, error) {
	lineMoved := analysis.MovedAgainstPublic(p.Side, p.PublicPercent, p.OpenOdds, p.CurrentOdds)

	comp := s.engine.Compute(analysis.Input{
		MatchID:                p.MatchID,
		MarketType:             p.MarketType,
		Side:                   p.Side,
		OpenOdds:               p.OpenOdds,
		CurrentOdds:            p.CurrentOdds,
		ModelProb:              p.ModelProb,
		Confidence:             p.Confidence,
		PublicPercent:          p.PublicPercent,
		CashPercent:            p.CashPercent,
		Volatility:             p.Volatility,
		LineMovedAgainstPublic: lineMoved,
	})

	snap := models.AnalysisSnapshot{
		ID:             uuid.New(),
		MatchID:        p.MatchID,
		MarketType:     p.MarketType,
		Side:           p.Side,
		ModelProb:      comp.ModelProb,
		ImpliedProb:    comp.ImpliedProb,
		Edge:           comp.Edge,
		FairOdds:       comp.FairOdds,
		SharpScore:     comp.SharpScore,
		MarketPressure: comp.MarketPressure,
		TrapRisk:       comp.TrapRisk,
		Verdict:        comp.Verdict,
		Reasons:        comp.Reasons,
		ComputedAt:     time.Now().UTC(),
	}

	if err := s.repo.CreateAnalysisSnapshot(ctx, snap); err != nil {
		return nil, err
	}

	metrics.AnalysesComputed.WithLabelValues(string(snap.Verdict)).Inc()

	if err := s.cache.Set(ctx, &snap); err != nil {
		s.logger.Warn().
			Err(err).
			Str("match_id", snap.MatchID.String()).
			Msg("failed to cache analysis")
	}
	if err := s.publisher.PublishAnalysis(ctx, &snap); err != nil {
		s.logger.Warn().
			Err(err).
			Str("match_id", snap.MatchID.String()).
			Msg("failed to publish analysis")
	}

	s.logger.Info().
		Str("match_id", snap.MatchID.String()).
		Str("market", string(snap.MarketType)).
		Str("side", string(snap.Side)).
		Float64("edge", snap.Edge).
		Int("sharp_score", snap.SharpScore).
		Str("verdict", string(snap.Verdict)).
		Msg("saved analysis snapshot")

	return &snap, nil
}

// AnalyzeFromStore assembles an engine input from the latest stored
// observations for one (match, market, side) key and persists the result.
// The match and at least one odds observation must exist; public/cash flow
// is optional. The model probability carries forward from the latest prior
// analysis, falling back to a de-biased implied probability.
func (s *AnalysisService) AnalyzeFromStore(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.AnalysisSnapshot, error) {
	if _, err := s.repo.GetMatch(ctx, matchID); err != nil {
		return nil, err
	}

	market, err := s.repo.LatestMarketSnapshot(ctx, matchID, marketType, side)
	if err != nil {
		return nil, err
	}

	flow, err := s.repo.LatestPublicCashSnapshot(ctx, matchID, marketType, side)
	if err != nil && !apperr.IsNotFound(err) {
		return nil, err
	}

	currentOdds := market.CurrentOdds.InexactFloat64()

	var openOdds *float64
	if market.OpenOdds.Valid {
		v := market.OpenOdds.Decimal.InexactFloat64()
		openOdds = &v
	}

	modelProb := fallbackModelProb(currentOdds)
	if prior, err := s.repo.LatestAnalysisSnapshot(ctx, matchID, marketType, side); err == nil {
		modelProb = prior.ModelProb
	} else if !apperr.IsNotFound(err) {
		return nil, err
	}

	payload := AnalyzePayload{
		MatchID:     matchID,
		MarketType:  marketType,
		Side:        side,
		OpenOdds:    openOdds,
		CurrentOdds: currentOdds,
		ModelProb:   modelProb,
		Confidence:  defaultStoreConfidence,
	}
	if flow != nil {
		payload.PublicPercent = flow.PublicPercent
		payload.CashPercent = flow.CashPercent
	}

	return s.SaveFromPayload(ctx, payload)
}

// fallbackModelProb de-biases the implied probability into a usable model
// estimate when no prior analysis exists for the key.
func fallbackModelProb(currentOdds float64) float64 {
	p := 0.0
	if currentOdds > 0 {
		p = 1 / currentOdds
	}
	if p < fallbackProbFloor {
		return fallbackProbFloor
	}
	if p > fallbackProbCeil {
		return fallbackProbCeil
	}
	return p
}
