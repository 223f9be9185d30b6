// Package providers defines the capability interfaces the sync pipeline
// pulls market data through. Implementations are swappable: the mock
// variants in providers/mock serve development and tests, providers/oddsapi
// talks to a real odds feed.
package providers

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// MatchInfo is a provider's view of a fixture, keyed by its stable
// external reference.
type MatchInfo struct {
	ExternalRef string    `json:"external_ref"`
	Sport       string    `json:"sport"`
	League      string    `json:"league"`
	HomeTeam    string    `json:"home_team"`
	AwayTeam    string    `json:"away_team"`
	StartsAt    time.Time `json:"starts_at"`
	Status      string    `json:"status"`
}

// MatchPage is one page of upcoming matches. NextCursor is nil on the
// final page.
type MatchPage struct {
	Matches    []MatchInfo `json:"matches"`
	NextCursor *string     `json:"next_cursor"`
}

// OddsQuote is one observed price for a (market, side) at one book.
// OpenOdds is null when the provider does not track the opening line.
type OddsQuote struct {
	MarketType  models.MarketType   `json:"market_type"`
	Side        models.Side         `json:"side"`
	Book        string              `json:"book"`
	OpenOdds    decimal.NullDecimal `json:"open_odds"`
	CurrentOdds decimal.Decimal     `json:"current_odds"`
}

// FlowQuote is one observed public/cash split for a (market, side).
// Either percentage may be absent.
type FlowQuote struct {
	MarketType    models.MarketType `json:"market_type"`
	Side          models.Side       `json:"side"`
	PublicPercent *float64          `json:"public_percent"`
	CashPercent   *float64          `json:"cash_percent"`
}

// Projection is one model-estimated outcome probability
type Projection struct {
	MarketType models.MarketType `json:"market_type"`
	Side       models.Side       `json:"side"`
	ModelProb  float64           `json:"model_prob"`
}

// ModelRun is the output of one internal-model invocation for a match.
// Only Confidence and Projections feed the analysis engine downstream.
type ModelRun struct {
	Confidence    float64      `json:"confidence"`
	ExpectedHome  float64      `json:"expected_home"`
	ExpectedAway  float64      `json:"expected_away"`
	Projections   []Projection `json:"projections"`
}

// OddsProvider serves upcoming matches and their market prices
type OddsProvider interface {
	GetMatchesWindow(ctx context.Context, from, to time.Time, cursor *string, limit int) (*MatchPage, error)
	GetOddsForMatch(ctx context.Context, match MatchInfo) ([]OddsQuote, error)
}

// PublicCashProvider serves public bet-count and money-weighted splits
type PublicCashProvider interface {
	GetPublicCashForMatch(ctx context.Context, match MatchInfo) ([]FlowQuote, error)
}

// ModelProvider runs the internal projection model against observed data
type ModelProvider interface {
	Run(ctx context.Context, match MatchInfo, odds []OddsQuote, flow []FlowQuote) (*ModelRun, error)
}
