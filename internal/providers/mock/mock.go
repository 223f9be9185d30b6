// Package mock provides deterministic in-process provider implementations.
// Every value is derived from a hash of the match's external reference, so
// repeated sync runs see stable fixtures, odds, and flow splits.
package mock

import (
	"context"
	"fmt"
	"hash/fnv"
	"math/rand"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/internal/providers"
	"github.com/cypherlabdev/value-radar-service/pkg/probability"
)

var leagues = []struct {
	sport  string
	league string
	teams  []string
}{
	{"soccer", "EPL", []string{"Arsenal", "Chelsea", "Liverpool", "Man City", "Spurs", "Newcastle"}},
	{"basketball", "NBA", []string{"Celtics", "Lakers", "Nuggets", "Bucks", "Knicks", "Suns"}},
	{"hockey", "NHL", []string{"Bruins", "Rangers", "Avalanche", "Oilers", "Panthers", "Stars"}},
}

var books = []string{"pinnacle", "bet365", "draftkings"}

// Providers implements every capability interface with generated data
type Providers struct {
	total int // fixtures in the synthetic schedule
}

// New creates the mock provider set. total bounds the synthetic schedule
// size per window.
func New(total int) *Providers {
	if total <= 0 {
		total = 12
	}
	return &Providers{total: total}
}

// GetMatchesWindow pages through the synthetic schedule. The cursor is the
// numeric offset of the next fixture.
func (p *Providers) GetMatchesWindow(ctx context.Context, from, to time.Time, cursor *string, limit int) (*providers.MatchPage, error) {
	offset := 0
	if cursor != nil {
		n, err := strconv.Atoi(*cursor)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("malformed cursor %q", *cursor)
		}
		offset = n
	}
	if limit <= 0 {
		limit = 10
	}

	page := &providers.MatchPage{}
	for i := offset; i < p.total && len(page.Matches) < limit; i++ {
		page.Matches = append(page.Matches, p.fixture(i, from, to))
	}

	if next := offset + len(page.Matches); next < p.total {
		s := strconv.Itoa(next)
		page.NextCursor = &s
	}
	return page, nil
}

func (p *Providers) fixture(i int, from, to time.Time) providers.MatchInfo {
	lg := leagues[i%len(leagues)]
	home := lg.teams[i%len(lg.teams)]
	away := lg.teams[(i+1+i/len(lg.teams))%len(lg.teams)]
	if away == home {
		away = lg.teams[(i+2)%len(lg.teams)]
	}

	span := to.Sub(from)
	start := from.Add(time.Duration(i+1) * span / time.Duration(p.total+1))

	return providers.MatchInfo{
		ExternalRef: fmt.Sprintf("mock-%s-%04d", lg.league, i),
		Sport:       lg.sport,
		League:      lg.league,
		HomeTeam:    home,
		AwayTeam:    away,
		StartsAt:    start.UTC().Truncate(time.Minute),
		Status:      "scheduled",
	}
}

// GetOddsForMatch generates moneyline prices for each book, plus a draw
// three-way line for soccer. Pinnacle always carries an opening line.
func (p *Providers) GetOddsForMatch(ctx context.Context, match providers.MatchInfo) ([]providers.OddsQuote, error) {
	rng := seededRand(match.ExternalRef, "odds")

	type priced struct {
		side models.Side
		prob float64
	}

	homeProb := 0.30 + rng.Float64()*0.40
	marketType := models.MarketMoneyline
	sides := []priced{
		{models.SideHome, homeProb},
		{models.SideAway, 1 - homeProb},
	}
	if match.Sport == "soccer" {
		marketType = models.MarketThreeWay
		draw := 0.18 + rng.Float64()*0.10
		sides = []priced{
			{models.SideHome, homeProb * (1 - draw)},
			{models.SideAway, (1 - homeProb) * (1 - draw)},
			{models.SideDraw, draw},
		}
	}

	var quotes []providers.OddsQuote
	for _, pc := range sides {
		side, prob := pc.side, pc.prob
		for bi, book := range books {
			// Each book prices with its own margin and noise.
			margin := 1.03 + 0.01*float64(bi)
			priced := prob*margin + (rng.Float64()-0.5)*0.02
			if priced < 0.02 {
				priced = 0.02
			}
			current := decimal.NewFromFloat(1 / priced).Round(3)

			quote := providers.OddsQuote{
				MarketType:  marketType,
				Side:        side,
				Book:        book,
				CurrentOdds: current,
			}
			if book == "pinnacle" {
				drift := 1 + (rng.Float64()-0.5)*0.06
				quote.OpenOdds = decimal.NewNullDecimal(current.Mul(decimal.NewFromFloat(drift)).Round(3))
			}
			quotes = append(quotes, quote)
		}
	}
	return quotes, nil
}

// GetPublicCashForMatch generates ticket/cash splits for the match's
// moneyline sides. Roughly one match in five drops cash data to exercise
// the engine's neutral fallback.
func (p *Providers) GetPublicCashForMatch(ctx context.Context, match providers.MatchInfo) ([]providers.FlowQuote, error) {
	rng := seededRand(match.ExternalRef, "flow")

	marketType := models.MarketMoneyline
	sides := []models.Side{models.SideHome, models.SideAway}
	if match.Sport == "soccer" {
		marketType = models.MarketThreeWay
		sides = append(sides, models.SideDraw)
	}

	publicShare := probability.Normalize(randomWeights(rng, len(sides)))
	cashShare := probability.Normalize(randomWeights(rng, len(sides)))
	withCash := rng.Float64() > 0.2

	quotes := make([]providers.FlowQuote, 0, len(sides))
	for i, side := range sides {
		pub := publicShare[i] * 100
		q := providers.FlowQuote{
			MarketType:    marketType,
			Side:          side,
			PublicPercent: &pub,
		}
		if withCash {
			cash := cashShare[i] * 100
			q.CashPercent = &cash
		}
		quotes = append(quotes, q)
	}
	return quotes, nil
}

// Run derives model probabilities by de-juicing the best available odds and
// tilting them with seeded noise, so projections disagree with the market
// enough to exercise every verdict branch.
func (p *Providers) Run(ctx context.Context, match providers.MatchInfo, odds []providers.OddsQuote, flow []providers.FlowQuote) (*providers.ModelRun, error) {
	rng := seededRand(match.ExternalRef, "model")

	// One quote per (market, side): prefer pinnacle.
	best := make(map[string]providers.OddsQuote)
	var order []string
	for _, q := range odds {
		key := string(q.MarketType) + "|" + string(q.Side)
		prev, ok := best[key]
		if !ok {
			best[key] = q
			order = append(order, key)
			continue
		}
		if prev.Book != "pinnacle" && q.Book == "pinnacle" {
			best[key] = q
		}
	}

	implied := make([]float64, len(order))
	for i, key := range order {
		implied[i] = probability.Implied(best[key].CurrentOdds.InexactFloat64())
	}
	fair := probability.Normalize(implied)

	run := &providers.ModelRun{
		Confidence:   0.45 + rng.Float64()*0.45,
		ExpectedHome: rng.Float64() * 3.5,
		ExpectedAway: rng.Float64() * 3.5,
	}
	for i, key := range order {
		tilt := 1 + (rng.Float64()-0.45)*0.25
		prob := fair[i] * tilt
		if prob > 0.95 {
			prob = 0.95
		}
		q := best[key]
		run.Projections = append(run.Projections, providers.Projection{
			MarketType: q.MarketType,
			Side:       q.Side,
			ModelProb:  prob,
		})
	}
	return run, nil
}

func randomWeights(rng *rand.Rand, n int) []float64 {
	w := make([]float64, n)
	for i := range w {
		w[i] = 0.2 + rng.Float64()
	}
	return w
}

func seededRand(ref, salt string) *rand.Rand {
	h := fnv.New64a()
	h.Write([]byte(ref))
	h.Write([]byte(salt))
	return rand.New(rand.NewSource(int64(h.Sum64())))
}
