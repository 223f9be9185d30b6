package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

const (
	// recentAnalysesForTop bounds how many analyses per match are ranked
	// when annotating listings.
	recentAnalysesForTop = 60

	// recentRowsForDetails bounds how many rows of each snapshot kind feed
	// the latest-per-key reduction on the details view.
	recentRowsForDetails = 300
)

// QueryService is the read side: match listings annotated with their top
// verdict, and per-match detail projections reduced to latest-per-key.
type QueryService struct {
	repo   Repository
	cache  AnalysisCache
	logger zerolog.Logger
}

// NewQueryService creates a new query service
func NewQueryService(repo Repository, cache AnalysisCache, logger zerolog.Logger) *QueryService {
	return &QueryService{
		repo:   repo,
		cache:  cache,
		logger: logger.With().Str("component", "query_service").Logger(),
	}
}

// ListMatches returns matches for the filter, each annotated with its
// highest-ranked recent analysis (verdict rank, then sharp score, then
// recency). Matches without analyses carry a nil annotation.
func (s *QueryService) ListMatches(ctx context.Context, filter models.MatchFilter) ([]models.MatchWithTopAnalysis, error) {
	matches, err := s.repo.ListMatches(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]models.MatchWithTopAnalysis, 0, len(matches))
	for _, m := range matches {
		analyses, err := s.repo.RecentAnalysisSnapshots(ctx, m.ID, recentAnalysesForTop)
		if err != nil {
			return nil, err
		}
		out = append(out, models.MatchWithTopAnalysis{
			Match:       m,
			TopAnalysis: models.TopAnalysis(analyses),
		})
	}

	s.logger.Debug().
		Int("count", len(out)).
		Msg("listed matches with top analysis")

	return out, nil
}

// GetMatchDetails returns the match plus the latest snapshot per
// (market, side) key of each kind and the top-ranked analysis among the
// reduced analyses. The redis cache is tried first for analyses; any cache
// problem falls through to the store.
func (s *QueryService) GetMatchDetails(ctx context.Context, matchID uuid.UUID) (*models.MatchDetails, error) {
	match, err := s.repo.GetMatch(ctx, matchID)
	if err != nil {
		return nil, err
	}

	marketRows, err := s.repo.RecentMarketSnapshots(ctx, matchID, recentRowsForDetails)
	if err != nil {
		return nil, err
	}
	flowRows, err := s.repo.RecentPublicCashSnapshots(ctx, matchID, recentRowsForDetails)
	if err != nil {
		return nil, err
	}

	analyses, err := s.cache.GetByMatch(ctx, matchID)
	if err != nil || len(analyses) == 0 {
		if err != nil {
			s.logger.Warn().
				Err(err).
				Str("match_id", matchID.String()).
				Msg("analysis cache unavailable, reading store")
		}
		rows, err := s.repo.RecentAnalysisSnapshots(ctx, matchID, recentRowsForDetails)
		if err != nil {
			return nil, err
		}
		analyses = models.LatestPerKey(rows)
	}

	details := &models.MatchDetails{
		Match:       *match,
		Markets:     models.LatestPerKey(marketRows),
		PublicCash:  models.LatestPerKey(flowRows),
		Analyses:    analyses,
		TopAnalysis: models.TopAnalysis(analyses),
	}
	return details, nil
}
