package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MarketSnapshot is an immutable point-in-time odds observation for one
// (match, market, side, book). OpenOdds is null when the opening line was
// not tracked. Rows are append-only; history is the full set per key.
type MarketSnapshot struct {
	ID          uuid.UUID           `json:"id" db:"id"`
	MatchID     uuid.UUID           `json:"match_id" db:"match_id"`
	MarketType  MarketType          `json:"market_type" db:"market_type"`
	Side        Side                `json:"side" db:"side"`
	Book        string              `json:"book" db:"book"`
	OpenOdds    decimal.NullDecimal `json:"open_odds" db:"open_odds"`
	CurrentOdds decimal.Decimal     `json:"current_odds" db:"current_odds"`
	ObservedAt  time.Time           `json:"observed_at" db:"observed_at"`
}

// PublicCashSnapshot is an immutable observation of public bet-count share
// and money-weighted share for one (match, market, side). Append-only.
type PublicCashSnapshot struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	MatchID       uuid.UUID  `json:"match_id" db:"match_id"`
	MarketType    MarketType `json:"market_type" db:"market_type"`
	Side          Side       `json:"side" db:"side"`
	PublicPercent *float64   `json:"public_percent" db:"public_percent"`
	CashPercent   *float64   `json:"cash_percent" db:"cash_percent"`
	ObservedAt    time.Time  `json:"observed_at" db:"observed_at"`
}

// Keyed is implemented by snapshot types that reduce to a latest row per
// (market, side) key.
type Keyed interface {
	SnapshotKey() string
	SnapshotTime() time.Time
}

func (s MarketSnapshot) SnapshotKey() string      { return string(s.MarketType) + "|" + string(s.Side) }
func (s MarketSnapshot) SnapshotTime() time.Time  { return s.ObservedAt }
func (s PublicCashSnapshot) SnapshotKey() string  { return string(s.MarketType) + "|" + string(s.Side) }
func (s PublicCashSnapshot) SnapshotTime() time.Time { return s.ObservedAt }

// LatestPerKey reduces snapshots to the max-timestamp row per key. Ties keep
// the first row encountered, so input order decides deterministically.
// Output preserves first-seen key order.
func LatestPerKey[S Keyed](snaps []S) []S {
	index := make(map[string]int, len(snaps))
	out := make([]S, 0, len(snaps))

	for _, s := range snaps {
		key := s.SnapshotKey()
		i, seen := index[key]
		if !seen {
			index[key] = len(out)
			out = append(out, s)
			continue
		}
		if s.SnapshotTime().After(out[i].SnapshotTime()) {
			out[i] = s
		}
	}

	return out
}
