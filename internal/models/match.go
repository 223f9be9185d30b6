package models

import (
	"time"

	"github.com/google/uuid"
)

// Match is a sporting fixture tracked by the sync pipeline.
// ExternalRef is the provider's stable reference and the upsert key;
// matches are never deleted by this service.
type Match struct {
	ID          uuid.UUID `json:"id" db:"id"`
	ExternalRef string    `json:"external_ref" db:"external_ref"`
	Sport       string    `json:"sport" db:"sport"`
	League      string    `json:"league" db:"league"`
	HomeTeam    string    `json:"home_team" db:"home_team"`
	AwayTeam    string    `json:"away_team" db:"away_team"`
	StartsAt    time.Time `json:"starts_at" db:"starts_at"`
	Status      string    `json:"status" db:"status"` // scheduled, in-play, ended
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// MatchFilter narrows match listings. Date selects one UTC day, inclusive.
type MatchFilter struct {
	League *string
	Date   *time.Time
	Limit  int
}

// MatchWithTopAnalysis pairs a match with its highest-ranked recent analysis,
// nil when the match has no analyses yet.
type MatchWithTopAnalysis struct {
	Match       Match             `json:"match"`
	TopAnalysis *AnalysisSnapshot `json:"top_analysis,omitempty"`
}

// MatchDetails is the full read-side projection for one match: the latest
// snapshot per (market, side) key of each kind, plus the top-ranked analysis.
type MatchDetails struct {
	Match       Match                `json:"match"`
	Markets     []MarketSnapshot     `json:"markets"`
	PublicCash  []PublicCashSnapshot `json:"public_cash"`
	Analyses    []AnalysisSnapshot   `json:"analyses"`
	TopAnalysis *AnalysisSnapshot    `json:"top_analysis,omitempty"`
}
