package sync

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
	"github.com/cypherlabdev/value-radar-service/internal/providers"
	"github.com/cypherlabdev/value-radar-service/internal/service"
	"github.com/cypherlabdev/value-radar-service/pkg/analysis"
)

// testOrchestratorSetup is a helper struct to hold test dependencies
type testOrchestratorSetup struct {
	orchestrator  *Orchestrator
	mockRepo      *mocks.MockRepository
	mockCache     *mocks.MockAnalysisCache
	mockPublisher *mocks.MockPublisher
	mockOdds      *mocks.MockOddsProvider
	mockFlow      *mocks.MockPublicCashProvider
	mockModel     *mocks.MockModelProvider
	ctx           context.Context
	ctrl          *gomock.Controller
}

// setupTestOrchestrator creates an orchestrator with mocked dependencies
func setupTestOrchestrator(t *testing.T) *testOrchestratorSetup {
	ctrl := gomock.NewController(t)

	mockRepo := mocks.NewMockRepository(ctrl)
	mockCache := mocks.NewMockAnalysisCache(ctrl)
	mockPublisher := mocks.NewMockPublisher(ctrl)
	mockOdds := mocks.NewMockOddsProvider(ctrl)
	mockFlow := mocks.NewMockPublicCashProvider(ctrl)
	mockModel := mocks.NewMockModelProvider(ctrl)

	engine := analysis.NewEngine(analysis.DefaultParams(), zerolog.Nop())
	analyzer := service.NewAnalysisService(mockRepo, mockCache, mockPublisher, engine, zerolog.Nop())
	orchestrator := NewOrchestrator(mockRepo, analyzer, mockOdds, mockFlow, mockModel, 24*time.Hour, zerolog.Nop())

	return &testOrchestratorSetup{
		orchestrator:  orchestrator,
		mockRepo:      mockRepo,
		mockCache:     mockCache,
		mockPublisher: mockPublisher,
		mockOdds:      mockOdds,
		mockFlow:      mockFlow,
		mockModel:     mockModel,
		ctx:           context.Background(),
		ctrl:          ctrl,
	}
}

// cleanup cleans up test resources
func (s *testOrchestratorSetup) cleanup() {
	s.ctrl.Finish()
}

func fptr(v float64) *float64 { return &v }

func odds(v string) decimal.Decimal { return decimal.RequireFromString(v) }

func testMatchInfo(ref string) providers.MatchInfo {
	return providers.MatchInfo{
		ExternalRef: ref,
		Sport:       "basketball",
		League:      "NBA",
		HomeTeam:    "Lakers",
		AwayTeam:    "Celtics",
		StartsAt:    time.Now().Add(6 * time.Hour),
		Status:      "scheduled",
	}
}

func testQuotes() []providers.OddsQuote {
	return []providers.OddsQuote{
		{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "pinnacle", OpenOdds: decimal.NewNullDecimal(odds("1.90")), CurrentOdds: odds("2.00")},
		{MarketType: models.MarketMoneyline, Side: models.SideAway, Book: "pinnacle", OpenOdds: decimal.NewNullDecimal(odds("1.95")), CurrentOdds: odds("1.88")},
	}
}

func testFlows() []providers.FlowQuote {
	return []providers.FlowQuote{
		{MarketType: models.MarketMoneyline, Side: models.SideHome, PublicPercent: fptr(75), CashPercent: fptr(30)},
	}
}

func testRun() *providers.ModelRun {
	return &providers.ModelRun{
		Confidence: 0.7,
		Projections: []providers.Projection{
			{MarketType: models.MarketMoneyline, Side: models.SideHome, ModelProb: 0.55},
			{MarketType: models.MarketMoneyline, Side: models.SideAway, ModelProb: 0.45},
		},
	}
}

// expectMatchPipeline wires the happy-path expectations for one match with
// the given number of persisted analyses
func (s *testOrchestratorSetup) expectMatchPipeline(info providers.MatchInfo, quotes []providers.OddsQuote, flows []providers.FlowQuote, run *providers.ModelRun, analyses int) {
	stored := models.Match{ID: uuid.New(), ExternalRef: info.ExternalRef}

	s.mockRepo.EXPECT().UpsertMatch(s.ctx, gomock.Any()).Return(stored, nil)
	s.mockOdds.EXPECT().GetOddsForMatch(s.ctx, info).Return(quotes, nil)
	s.mockFlow.EXPECT().GetPublicCashForMatch(s.ctx, info).Return(flows, nil)
	s.mockModel.EXPECT().Run(s.ctx, info, quotes, flows).Return(run, nil)
	s.mockRepo.EXPECT().CreateMarketSnapshots(s.ctx, gomock.Len(len(quotes))).Return(nil)
	s.mockRepo.EXPECT().CreatePublicCashSnapshots(s.ctx, gomock.Len(len(flows))).Return(nil)
	s.mockRepo.EXPECT().CreateAnalysisSnapshot(s.ctx, gomock.Any()).Return(nil).Times(analyses)
	s.mockCache.EXPECT().Set(s.ctx, gomock.Any()).Return(nil).Times(analyses)
	s.mockPublisher.EXPECT().PublishAnalysis(s.ctx, gomock.Any()).Return(nil).Times(analyses)
}

// TestRun_Success tests one page processed end to end
func TestRun_Success(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	info := testMatchInfo("ext-1")
	next := "cursor-2"
	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(&providers.MatchPage{Matches: []providers.MatchInfo{info}, NextCursor: &next}, nil)
	setup.expectMatchPipeline(info, testQuotes(), testFlows(), testRun(), 2)

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 0, result.Failed)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "ext-1", result.Matches[0].ExternalRef)
	assert.NotNil(t, result.Matches[0].MatchID)
	assert.Empty(t, result.Matches[0].Error)
	require.NotNil(t, result.NextCursor)
	assert.Equal(t, "cursor-2", *result.NextCursor)
}

// TestRun_PageFetchFails tests that a failed page fetch aborts the run
func TestRun_PageFetchFails(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(nil, errors.New("feed unavailable"))

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	assert.Nil(t, result)
	assert.True(t, apperr.IsProvider(err))
}

// TestRun_MatchFailureIsolated tests that one failing match is recorded
// while the rest of the page completes
func TestRun_MatchFailureIsolated(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	good := testMatchInfo("ext-good")
	bad := testMatchInfo("ext-bad")
	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(&providers.MatchPage{Matches: []providers.MatchInfo{bad, good}}, nil)

	// the bad match dies on its odds fetch
	setup.mockRepo.EXPECT().UpsertMatch(setup.ctx, gomock.Any()).Return(models.Match{ExternalRef: bad.ExternalRef}, nil)
	setup.mockOdds.EXPECT().GetOddsForMatch(setup.ctx, bad).Return(nil, errors.New("timeout"))

	setup.expectMatchPipeline(good, testQuotes(), testFlows(), testRun(), 2)

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	require.Len(t, result.Matches, 2)
	assert.Equal(t, "ext-bad", result.Matches[0].ExternalRef)
	assert.NotEmpty(t, result.Matches[0].Error)
	assert.Nil(t, result.Matches[0].MatchID)
	assert.Equal(t, "ext-good", result.Matches[1].ExternalRef)
	assert.Empty(t, result.Matches[1].Error)
}

// TestRun_PrefersSharpBook tests that the pinnacle quote wins when several
// books price the same key
func TestRun_PrefersSharpBook(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	info := testMatchInfo("ext-1")
	quotes := []providers.OddsQuote{
		{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "softbook", CurrentOdds: odds("2.20")},
		{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "Pinnacle", CurrentOdds: odds("2.00")},
	}
	run := &providers.ModelRun{
		Confidence: 0.7,
		Projections: []providers.Projection{
			{MarketType: models.MarketMoneyline, Side: models.SideHome, ModelProb: 0.55},
		},
	}

	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(&providers.MatchPage{Matches: []providers.MatchInfo{info}}, nil)
	setup.mockRepo.EXPECT().UpsertMatch(setup.ctx, gomock.Any()).Return(models.Match{ExternalRef: info.ExternalRef}, nil)
	setup.mockOdds.EXPECT().GetOddsForMatch(setup.ctx, info).Return(quotes, nil)
	setup.mockFlow.EXPECT().GetPublicCashForMatch(setup.ctx, info).Return(nil, nil)
	setup.mockModel.EXPECT().Run(setup.ctx, info, quotes, nil).Return(run, nil)
	setup.mockRepo.EXPECT().CreateMarketSnapshots(setup.ctx, gomock.Len(2)).Return(nil)
	setup.mockRepo.EXPECT().CreatePublicCashSnapshots(setup.ctx, gomock.Len(0)).Return(nil)

	setup.mockRepo.EXPECT().
		CreateAnalysisSnapshot(setup.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snap models.AnalysisSnapshot) error {
			// implied 0.5 comes from the pinnacle 2.00, not the soft 2.20
			assert.InDelta(t, 0.5, snap.ImpliedProb, 1e-9)
			return nil
		})
	setup.mockCache.EXPECT().Set(setup.ctx, gomock.Any()).Return(nil)
	setup.mockPublisher.EXPECT().PublishAnalysis(setup.ctx, gomock.Any()).Return(nil)

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

// TestRun_DuplicateProjectionsAnalyzedOnce tests first-occurrence dedup of
// projected keys
func TestRun_DuplicateProjectionsAnalyzedOnce(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	info := testMatchInfo("ext-1")
	run := &providers.ModelRun{
		Confidence: 0.7,
		Projections: []providers.Projection{
			{MarketType: models.MarketMoneyline, Side: models.SideHome, ModelProb: 0.55},
			{MarketType: models.MarketMoneyline, Side: models.SideHome, ModelProb: 0.61},
		},
	}

	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(&providers.MatchPage{Matches: []providers.MatchInfo{info}}, nil)

	quotes := testQuotes()
	setup.mockRepo.EXPECT().UpsertMatch(setup.ctx, gomock.Any()).Return(models.Match{ExternalRef: info.ExternalRef}, nil)
	setup.mockOdds.EXPECT().GetOddsForMatch(setup.ctx, info).Return(quotes, nil)
	setup.mockFlow.EXPECT().GetPublicCashForMatch(setup.ctx, info).Return(nil, nil)
	setup.mockModel.EXPECT().Run(setup.ctx, info, quotes, nil).Return(run, nil)
	setup.mockRepo.EXPECT().CreateMarketSnapshots(setup.ctx, gomock.Any()).Return(nil)
	setup.mockRepo.EXPECT().CreatePublicCashSnapshots(setup.ctx, gomock.Any()).Return(nil)

	// only the first projection for the key reaches the engine
	setup.mockRepo.EXPECT().
		CreateAnalysisSnapshot(setup.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, snap models.AnalysisSnapshot) error {
			assert.InDelta(t, 0.55, snap.ModelProb, 1e-9)
			return nil
		})
	setup.mockCache.EXPECT().Set(setup.ctx, gomock.Any()).Return(nil)
	setup.mockPublisher.EXPECT().PublishAnalysis(setup.ctx, gomock.Any()).Return(nil)

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

// TestRun_SkipsProjectionWithoutOdds tests that a projected key with no
// odds quote produces no analysis
func TestRun_SkipsProjectionWithoutOdds(t *testing.T) {
	setup := setupTestOrchestrator(t)
	defer setup.cleanup()

	info := testMatchInfo("ext-1")
	run := &providers.ModelRun{
		Confidence: 0.7,
		Projections: []providers.Projection{
			{MarketType: models.MarketTotal, Side: models.SideOver, ModelProb: 0.52},
		},
	}

	setup.mockOdds.EXPECT().
		GetMatchesWindow(setup.ctx, gomock.Any(), gomock.Any(), nil, 10).
		Return(&providers.MatchPage{Matches: []providers.MatchInfo{info}}, nil)

	quotes := testQuotes() // moneyline only
	setup.mockRepo.EXPECT().UpsertMatch(setup.ctx, gomock.Any()).Return(models.Match{ExternalRef: info.ExternalRef}, nil)
	setup.mockOdds.EXPECT().GetOddsForMatch(setup.ctx, info).Return(quotes, nil)
	setup.mockFlow.EXPECT().GetPublicCashForMatch(setup.ctx, info).Return(nil, nil)
	setup.mockModel.EXPECT().Run(setup.ctx, info, quotes, nil).Return(run, nil)
	setup.mockRepo.EXPECT().CreateMarketSnapshots(setup.ctx, gomock.Any()).Return(nil)
	setup.mockRepo.EXPECT().CreatePublicCashSnapshots(setup.ctx, gomock.Any()).Return(nil)

	result, err := setup.orchestrator.Run(setup.ctx, nil, 10)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Processed)
}

// TestPickQuote tests sharp-book preference and fallback order
func TestPickQuote(t *testing.T) {
	quotes := []providers.OddsQuote{
		{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "alpha", CurrentOdds: odds("2.10")},
		{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "beta", CurrentOdds: odds("2.05")},
	}

	// no pinnacle: first matching quote wins
	q, ok := pickQuote(quotes, models.MarketMoneyline, models.SideHome)
	require.True(t, ok)
	assert.Equal(t, "alpha", q.Book)

	// no quote for the key at all
	_, ok = pickQuote(quotes, models.MarketTotal, models.SideOver)
	assert.False(t, ok)

	quotes = append(quotes, providers.OddsQuote{MarketType: models.MarketMoneyline, Side: models.SideHome, Book: "PINNACLE", CurrentOdds: odds("2.00")})
	q, ok = pickQuote(quotes, models.MarketMoneyline, models.SideHome)
	require.True(t, ok)
	assert.Equal(t, "PINNACLE", q.Book)
}
