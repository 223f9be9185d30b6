package models

import (
	"time"

	"github.com/google/uuid"
)

// Verdict is the categorical recommendation produced by the analysis engine
type Verdict string

const (
	VerdictNoBet       Verdict = "NO_BET"
	VerdictLean        Verdict = "LEAN"
	VerdictValue       Verdict = "VALUE"
	VerdictStrongValue Verdict = "STRONG_VALUE"
	VerdictTrapWarning Verdict = "TRAP_WARNING"
)

// Rank orders verdicts for top-analysis selection. TRAP_WARNING ranks highest
// so it surfaces first in match listings; the order is a presentation
// convenience, not a quality claim.
func (v Verdict) Rank() int {
	switch v {
	case VerdictLean:
		return 1
	case VerdictValue:
		return 2
	case VerdictStrongValue:
		return 3
	case VerdictTrapWarning:
		return 4
	default:
		return 0
	}
}

// AnalysisSnapshot is an immutable computed verdict for one
// (match, market, side) at one timestamp. Never mutated after creation.
type AnalysisSnapshot struct {
	ID             uuid.UUID  `json:"id" db:"id"`
	MatchID        uuid.UUID  `json:"match_id" db:"match_id"`
	MarketType     MarketType `json:"market_type" db:"market_type"`
	Side           Side       `json:"side" db:"side"`
	ModelProb      float64    `json:"model_prob" db:"model_prob"`
	ImpliedProb    float64    `json:"implied_prob" db:"implied_prob"`
	Edge           float64    `json:"edge" db:"edge"`
	FairOdds       float64    `json:"fair_odds" db:"fair_odds"`
	SharpScore     int        `json:"sharp_score" db:"sharp_score"`
	MarketPressure int        `json:"market_pressure" db:"market_pressure"`
	TrapRisk       int        `json:"trap_risk" db:"trap_risk"`
	Verdict        Verdict    `json:"verdict" db:"verdict"`
	Reasons        []string   `json:"reasons" db:"-"`
	ComputedAt     time.Time  `json:"computed_at" db:"computed_at"`
}

func (s AnalysisSnapshot) SnapshotKey() string     { return string(s.MarketType) + "|" + string(s.Side) }
func (s AnalysisSnapshot) SnapshotTime() time.Time { return s.ComputedAt }

// TopAnalysis picks the highest-ranked analysis: verdict rank, then sharp
// score, then recency. The comparison is strict on every axis, so the pick
// does not depend on input order.
func TopAnalysis(analyses []AnalysisSnapshot) *AnalysisSnapshot {
	var top *AnalysisSnapshot
	for i := range analyses {
		a := &analyses[i]
		if top == nil || betterAnalysis(a, top) {
			top = a
		}
	}
	return top
}

func betterAnalysis(a, b *AnalysisSnapshot) bool {
	if a.Verdict.Rank() != b.Verdict.Rank() {
		return a.Verdict.Rank() > b.Verdict.Rank()
	}
	if a.SharpScore != b.SharpScore {
		return a.SharpScore > b.SharpScore
	}
	return a.ComputedAt.After(b.ComputedAt)
}
