package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/mocks"
	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// testQueryServiceSetup is a helper struct to hold test dependencies
type testQueryServiceSetup struct {
	service   *QueryService
	mockRepo  *mocks.MockRepository
	mockCache *mocks.MockAnalysisCache
	ctx       context.Context
	ctrl      *gomock.Controller
}

// setupTestQueryService creates a test service with mocked dependencies
func setupTestQueryService(t *testing.T) *testQueryServiceSetup {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCache := mocks.NewMockAnalysisCache(ctrl)
	svc := NewQueryService(mockRepo, mockCache, zerolog.Nop())

	return &testQueryServiceSetup{
		service:   svc,
		mockRepo:  mockRepo,
		mockCache: mockCache,
		ctx:       context.Background(),
		ctrl:      ctrl,
	}
}

// cleanup cleans up test resources
func (s *testQueryServiceSetup) cleanup() {
	s.ctrl.Finish()
}

func storedMatch(id uuid.UUID, league string) models.Match {
	return models.Match{
		ID:          id,
		ExternalRef: "ext-" + id.String()[:8],
		League:      league,
		HomeTeam:    "Home",
		AwayTeam:    "Away",
		StartsAt:    time.Now().Add(4 * time.Hour),
	}
}

func storedAnalysis(matchID uuid.UUID, market models.MarketType, side models.Side, verdict models.Verdict, sharp int, at time.Time) models.AnalysisSnapshot {
	return models.AnalysisSnapshot{
		ID:         uuid.New(),
		MatchID:    matchID,
		MarketType: market,
		Side:       side,
		SharpScore: sharp,
		Verdict:    verdict,
		ComputedAt: at,
	}
}

// TestListMatches_AnnotatesTopAnalysis tests that each match carries its
// highest-ranked recent analysis
func TestListMatches_AnnotatesTopAnalysis(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	now := time.Now()
	withAnalyses := storedMatch(uuid.New(), "NBA")
	withoutAnalyses := storedMatch(uuid.New(), "NBA")
	filter := models.MatchFilter{Limit: 50}

	setup.mockRepo.EXPECT().
		ListMatches(setup.ctx, filter).
		Return([]models.Match{withAnalyses, withoutAnalyses}, nil)
	setup.mockRepo.EXPECT().
		RecentAnalysisSnapshots(setup.ctx, withAnalyses.ID, recentAnalysesForTop).
		Return([]models.AnalysisSnapshot{
			storedAnalysis(withAnalyses.ID, models.MarketMoneyline, models.SideHome, models.VerdictLean, 50, now),
			storedAnalysis(withAnalyses.ID, models.MarketMoneyline, models.SideAway, models.VerdictStrongValue, 80, now),
		}, nil)
	setup.mockRepo.EXPECT().
		RecentAnalysisSnapshots(setup.ctx, withoutAnalyses.ID, recentAnalysesForTop).
		Return(nil, nil)

	out, err := setup.service.ListMatches(setup.ctx, filter)
	require.NoError(t, err)
	require.Len(t, out, 2)

	require.NotNil(t, out[0].TopAnalysis)
	assert.Equal(t, models.VerdictStrongValue, out[0].TopAnalysis.Verdict)
	assert.Nil(t, out[1].TopAnalysis)
}

// TestListMatches_RepoError tests propagation of a listing failure
func TestListMatches_RepoError(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	filter := models.MatchFilter{Limit: 50}
	setup.mockRepo.EXPECT().
		ListMatches(setup.ctx, filter).
		Return(nil, apperr.New(apperr.KindPersistence, "list matches"))

	out, err := setup.service.ListMatches(setup.ctx, filter)
	assert.Nil(t, out)
	assert.True(t, apperr.IsPersistence(err))
}

// TestGetMatchDetails_CacheHit tests that cached analyses skip the store read
func TestGetMatchDetails_CacheHit(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	now := time.Now()
	matchID := uuid.New()
	match := storedMatch(matchID, "EPL")

	marketRows := []models.MarketSnapshot{
		{MatchID: matchID, MarketType: models.MarketMoneyline, Side: models.SideHome, CurrentOdds: decimal.RequireFromString("1.90"), ObservedAt: now.Add(-time.Hour)},
		{MatchID: matchID, MarketType: models.MarketMoneyline, Side: models.SideHome, CurrentOdds: decimal.RequireFromString("2.00"), ObservedAt: now},
	}
	cached := []models.AnalysisSnapshot{
		storedAnalysis(matchID, models.MarketMoneyline, models.SideHome, models.VerdictValue, 65, now),
	}

	setup.mockRepo.EXPECT().GetMatch(setup.ctx, matchID).Return(&match, nil)
	setup.mockRepo.EXPECT().RecentMarketSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(marketRows, nil)
	setup.mockRepo.EXPECT().RecentPublicCashSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)
	setup.mockCache.EXPECT().GetByMatch(setup.ctx, matchID).Return(cached, nil)

	details, err := setup.service.GetMatchDetails(setup.ctx, matchID)
	require.NoError(t, err)

	assert.Equal(t, match.ID, details.Match.ID)

	// market history reduced to the latest row per key
	require.Len(t, details.Markets, 1)
	assert.True(t, details.Markets[0].CurrentOdds.Equal(decimal.RequireFromString("2.00")))

	require.Len(t, details.Analyses, 1)
	require.NotNil(t, details.TopAnalysis)
	assert.Equal(t, models.VerdictValue, details.TopAnalysis.Verdict)
}

// TestGetMatchDetails_CacheMissFallsBackToStore tests the store fallback
// when the cache errors out
func TestGetMatchDetails_CacheMissFallsBackToStore(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	now := time.Now()
	matchID := uuid.New()
	match := storedMatch(matchID, "EPL")

	storeRows := []models.AnalysisSnapshot{
		storedAnalysis(matchID, models.MarketMoneyline, models.SideHome, models.VerdictLean, 50, now),
		storedAnalysis(matchID, models.MarketMoneyline, models.SideHome, models.VerdictValue, 62, now.Add(time.Minute)),
	}

	setup.mockRepo.EXPECT().GetMatch(setup.ctx, matchID).Return(&match, nil)
	setup.mockRepo.EXPECT().RecentMarketSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)
	setup.mockRepo.EXPECT().RecentPublicCashSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)
	setup.mockCache.EXPECT().GetByMatch(setup.ctx, matchID).Return(nil, errors.New("redis down"))
	setup.mockRepo.EXPECT().RecentAnalysisSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(storeRows, nil)

	details, err := setup.service.GetMatchDetails(setup.ctx, matchID)
	require.NoError(t, err)

	// store rows reduced to the latest analysis per key
	require.Len(t, details.Analyses, 1)
	assert.Equal(t, models.VerdictValue, details.Analyses[0].Verdict)
	require.NotNil(t, details.TopAnalysis)
}

// TestGetMatchDetails_EmptyCacheFallsBackToStore tests that an empty cache
// result still consults the store
func TestGetMatchDetails_EmptyCacheFallsBackToStore(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	matchID := uuid.New()
	match := storedMatch(matchID, "EPL")

	setup.mockRepo.EXPECT().GetMatch(setup.ctx, matchID).Return(&match, nil)
	setup.mockRepo.EXPECT().RecentMarketSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)
	setup.mockRepo.EXPECT().RecentPublicCashSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)
	setup.mockCache.EXPECT().GetByMatch(setup.ctx, matchID).Return(nil, nil)
	setup.mockRepo.EXPECT().RecentAnalysisSnapshots(setup.ctx, matchID, recentRowsForDetails).Return(nil, nil)

	details, err := setup.service.GetMatchDetails(setup.ctx, matchID)
	require.NoError(t, err)
	assert.Empty(t, details.Analyses)
	assert.Nil(t, details.TopAnalysis)
}

// TestGetMatchDetails_MatchNotFound tests propagation of a missing match
func TestGetMatchDetails_MatchNotFound(t *testing.T) {
	setup := setupTestQueryService(t)
	defer setup.cleanup()

	matchID := uuid.New()
	setup.mockRepo.EXPECT().
		GetMatch(setup.ctx, matchID).
		Return(nil, apperr.New(apperr.KindNotFound, "match not found"))

	details, err := setup.service.GetMatchDetails(setup.ctx, matchID)
	assert.Nil(t, details)
	assert.True(t, apperr.IsNotFound(err))
}
