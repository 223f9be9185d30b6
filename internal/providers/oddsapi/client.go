// Package oddsapi is an HTTP odds-feed implementation of the odds provider
// capability. Requests are rate limited and pass through a circuit breaker
// so a degraded feed fails fast instead of stalling sync pages.
package oddsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/sony/gobreaker"
	"golang.org/x/time/rate"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/internal/providers"
)

// Config holds odds feed client configuration
type Config struct {
	BaseURL        string
	APIKey         string
	Timeout        time.Duration // per-request timeout
	RequestsPerSec float64
	Burst          int
}

// Client implements providers.OddsProvider against an HTTP odds feed
type Client struct {
	cfg     Config
	http    *http.Client
	limiter *rate.Limiter
	breaker *gobreaker.CircuitBreaker
	logger  zerolog.Logger
}

// NewClient creates an odds feed client
func NewClient(cfg Config, logger zerolog.Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 10 * time.Second
	}
	if cfg.RequestsPerSec <= 0 {
		cfg.RequestsPerSec = 5
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 5
	}

	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:    "odds-feed",
		Timeout: 30 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= 5
		},
	})

	return &Client{
		cfg:     cfg,
		http:    &http.Client{Timeout: cfg.Timeout},
		limiter: rate.NewLimiter(rate.Limit(cfg.RequestsPerSec), cfg.Burst),
		breaker: breaker,
		logger:  logger.With().Str("component", "oddsapi_client").Logger(),
	}
}

type eventPayload struct {
	Ref      string    `json:"ref"`
	Sport    string    `json:"sport"`
	League   string    `json:"league"`
	HomeTeam string    `json:"home_team"`
	AwayTeam string    `json:"away_team"`
	StartsAt time.Time `json:"starts_at"`
	Status   string    `json:"status"`
}

type eventsPage struct {
	Events     []eventPayload `json:"events"`
	NextCursor *string        `json:"next_cursor"`
}

type oddsPayload struct {
	Market      string           `json:"market"`
	Side        string           `json:"side"`
	Book        string           `json:"book"`
	OpenOdds    *decimal.Decimal `json:"open_odds"`
	CurrentOdds decimal.Decimal  `json:"current_odds"`
}

type oddsList struct {
	Odds []oddsPayload `json:"odds"`
}

// GetMatchesWindow fetches one page of events inside [from, to)
func (c *Client) GetMatchesWindow(ctx context.Context, from, to time.Time, cursor *string, limit int) (*providers.MatchPage, error) {
	q := url.Values{}
	q.Set("from", from.UTC().Format(time.RFC3339))
	q.Set("to", to.UTC().Format(time.RFC3339))
	q.Set("limit", strconv.Itoa(limit))
	if cursor != nil {
		q.Set("cursor", *cursor)
	}

	var page eventsPage
	if err := c.getJSON(ctx, "/v1/events", q, &page); err != nil {
		return nil, err
	}

	out := &providers.MatchPage{NextCursor: page.NextCursor}
	for _, ev := range page.Events {
		out.Matches = append(out.Matches, providers.MatchInfo{
			ExternalRef: ev.Ref,
			Sport:       ev.Sport,
			League:      ev.League,
			HomeTeam:    ev.HomeTeam,
			AwayTeam:    ev.AwayTeam,
			StartsAt:    ev.StartsAt,
			Status:      ev.Status,
		})
	}
	return out, nil
}

// GetOddsForMatch fetches current prices for one event. Quotes with an
// unrecognized market or side are dropped rather than failing the match.
func (c *Client) GetOddsForMatch(ctx context.Context, match providers.MatchInfo) ([]providers.OddsQuote, error) {
	var list oddsList
	path := "/v1/events/" + url.PathEscape(match.ExternalRef) + "/odds"
	if err := c.getJSON(ctx, path, nil, &list); err != nil {
		return nil, err
	}

	quotes := make([]providers.OddsQuote, 0, len(list.Odds))
	for _, o := range list.Odds {
		if !models.ValidMarketType(o.Market) || !models.ValidSide(o.Side) {
			c.logger.Debug().
				Str("ref", match.ExternalRef).
				Str("market", o.Market).
				Str("side", o.Side).
				Msg("dropping quote with unrecognized market or side")
			continue
		}
		q := providers.OddsQuote{
			MarketType:  models.MarketType(o.Market),
			Side:        models.Side(o.Side),
			Book:        o.Book,
			CurrentOdds: o.CurrentOdds,
		}
		if o.OpenOdds != nil {
			q.OpenOdds = decimal.NewNullDecimal(*o.OpenOdds)
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// getJSON performs a rate-limited, circuit-broken GET and decodes the body
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return apperr.Wrap(apperr.KindProvider, err, "odds feed rate limit wait")
	}

	u := c.cfg.BaseURL + path
	if query == nil {
		query = url.Values{}
	}
	if c.cfg.APIKey != "" {
		query.Set("apiKey", c.cfg.APIKey)
	}
	if enc := query.Encode(); enc != "" {
		u += "?" + enc
	}

	body, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return nil, err
		}
		resp, err := c.http.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("odds feed returned status %d", resp.StatusCode)
		}

		var decoded json.RawMessage
		if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
		return decoded, nil
	})
	if err != nil {
		return apperr.Wrap(apperr.KindProvider, err, "GET %s", path)
	}

	if err := json.Unmarshal(body.(json.RawMessage), out); err != nil {
		return apperr.Wrap(apperr.KindProvider, err, "unmarshal %s response", path)
	}
	return nil
}
