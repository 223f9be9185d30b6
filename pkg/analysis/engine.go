// Package analysis implements the pure scoring engine that turns market
// signals into a value verdict, plus the line-movement classifier feeding it.
package analysis

import (
	"fmt"
	"math"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/models"
	"github.com/cypherlabdev/value-radar-service/pkg/probability"
)

// Verdict thresholds, evaluated in priority order by decideVerdict.
const (
	trapRiskThreshold    = 70
	trapPublicThreshold  = 70
	strongValueSharpMin  = 75
	strongValueEdgeMin   = 0.03
	strongValueTrapMax   = 45
	valueSharpMin        = 60
	valueEdgeMin         = 0.02
	valueTrapMax         = 55
	leanEdgeMin          = 0.01
	leanSharpMin         = 55
)

const maxReasons = 6

// Params holds the scoring weights. Defaults reproduce the production
// formula; they are exposed for config-driven tuning, not per-request use.
type Params struct {
	EdgeSaturation   float64 // edge producing full edge strength (0.05 = 5pp)
	SharpMoneySpread float64 // cash/ticket divergence mapped to [-1,1] (30pp)
	EdgeWeight       float64 // sharp score contribution of edge strength
	SharpMoneyWeight float64 // sharp score contribution of positive money skew
	LineMoveWeight   float64 // sharp score contribution of line movement
	ConfidenceWeight float64 // sharp score contribution of model confidence
	PressureLine     float64 // market pressure contribution of line movement
	PressureFlow     float64 // market pressure contribution of money skew
	PressureVol      float64 // market pressure contribution of low volatility
}

// DefaultParams returns the standard scoring weights
func DefaultParams() Params {
	return Params{
		EdgeSaturation:   0.05,
		SharpMoneySpread: 30,
		EdgeWeight:       40,
		SharpMoneyWeight: 25,
		LineMoveWeight:   20,
		ConfidenceWeight: 15,
		PressureLine:     45,
		PressureFlow:     35,
		PressureVol:      20,
	}
}

// Input carries every signal the engine consumes. Pointer fields are
// optional observations; the engine substitutes neutral defaults for nil.
// The caller is responsible for CurrentOdds > 0.
type Input struct {
	MatchID                uuid.UUID
	MarketType             models.MarketType
	Side                   models.Side
	OpenOdds               *float64
	CurrentOdds            float64
	ModelProb              float64 // 0..1
	Confidence             float64 // 0..1
	PublicPercent          *float64
	CashPercent            *float64
	Volatility             *float64 // 0..1
	LineMovedAgainstPublic bool
}

// Computation is the engine output: derived probabilities, the three 0-100
// composite scores, the verdict, and at most six reason strings.
type Computation struct {
	ImpliedProb    float64         `json:"implied_prob"`
	ModelProb      float64         `json:"model_prob"`
	Edge           float64         `json:"edge"`
	FairOdds       float64         `json:"fair_odds"`
	SharpScore     int             `json:"sharp_score"`
	MarketPressure int             `json:"market_pressure"`
	TrapRisk       int             `json:"trap_risk"`
	Verdict        models.Verdict  `json:"verdict"`
	Reasons        []string        `json:"reasons"`
}

// Engine computes value verdicts from market signals. It is stateless apart
// from its weights and safe for concurrent use.
type Engine struct {
	params Params
	logger zerolog.Logger
}

// NewEngine creates an analysis engine with the given scoring weights
func NewEngine(params Params, logger zerolog.Logger) *Engine {
	return &Engine{
		params: params,
		logger: logger.With().Str("component", "analysis_engine").Logger(),
	}
}

// Compute runs the scoring formula. It is pure and never fails: inputs are
// clamped into range and nil observations fall back to neutral values.
func (e *Engine) Compute(in Input) Computation {
	impliedProb := probability.Implied(in.CurrentOdds)

	// Never exactly 0 or 1, so fair odds stay finite.
	modelProb := clamp(in.ModelProb, 0.0001, 0.9999)
	edge := modelProb - impliedProb
	fairOdds := 1 / modelProb

	edgeStrength := clamp(edge/e.params.EdgeSaturation, 0, 1)

	sharpMoney := 0.0
	if in.CashPercent != nil && in.PublicPercent != nil {
		sharpMoney = clamp((*in.CashPercent-*in.PublicPercent)/e.params.SharpMoneySpread, -1, 1)
	}

	lineMoveStrength := 0.0
	if in.OpenOdds != nil && *in.OpenOdds > 0 {
		lineMoveStrength = clamp(math.Abs(*in.OpenOdds-in.CurrentOdds) / *in.OpenOdds, 0, 1)
	}

	confidence := clamp(in.Confidence, 0, 1)

	sharpScore := roundScore(
		edgeStrength*e.params.EdgeWeight +
			math.Max(sharpMoney, 0)*e.params.SharpMoneyWeight +
			lineMoveStrength*e.params.LineMoveWeight +
			confidence*e.params.ConfidenceWeight)

	volatilityFactor := 0.5
	if in.Volatility != nil {
		volatilityFactor = clamp(1-*in.Volatility, 0, 1)
	}

	marketPressure := roundScore(
		lineMoveStrength*e.params.PressureLine +
			math.Abs(sharpMoney)*e.params.PressureFlow +
			volatilityFactor*e.params.PressureVol)

	trapRisk := e.computeTrapRisk(in, edge)

	verdict := decideVerdict(in, edge, sharpScore, trapRisk)

	c := Computation{
		ImpliedProb:    impliedProb,
		ModelProb:      modelProb,
		Edge:           edge,
		FairOdds:       fairOdds,
		SharpScore:     sharpScore,
		MarketPressure: marketPressure,
		TrapRisk:       trapRisk,
		Verdict:        verdict,
	}
	c.Reasons = e.buildReasons(in, c)

	e.logger.Debug().
		Str("match_id", in.MatchID.String()).
		Str("market", string(in.MarketType)).
		Str("side", string(in.Side)).
		Float64("edge", edge).
		Int("sharp_score", sharpScore).
		Int("trap_risk", trapRisk).
		Str("verdict", string(verdict)).
		Msg("computed analysis")

	return c
}

// computeTrapRisk accumulates fixed penalties for public-trap patterns.
// A missing cash percent defaults to 50, so that term contributes nothing.
func (e *Engine) computeTrapRisk(in Input, edge float64) int {
	risk := 0.0

	if in.PublicPercent != nil && *in.PublicPercent >= 70 {
		risk += 30
	}

	cash := 50.0
	if in.CashPercent != nil {
		cash = *in.CashPercent
	}
	if cash <= 40 {
		risk += 30
	}

	if in.LineMovedAgainstPublic {
		risk += 25
	}
	if edge < 0.01 {
		risk += 15
	}

	return roundScore(risk)
}

// decideVerdict evaluates the fixed priority ladder; first branch wins.
// Absent publicPercent defaults to 0, which keeps TRAP_WARNING unreachable
// without public flow data. That is intentional: trap detection requires
// knowing where the public actually is.
func decideVerdict(in Input, edge float64, sharpScore, trapRisk int) models.Verdict {
	public := 0.0
	if in.PublicPercent != nil {
		public = *in.PublicPercent
	}

	switch {
	case trapRisk >= trapRiskThreshold && public >= trapPublicThreshold:
		return models.VerdictTrapWarning
	case sharpScore >= strongValueSharpMin && edge >= strongValueEdgeMin && trapRisk <= strongValueTrapMax:
		return models.VerdictStrongValue
	case sharpScore >= valueSharpMin && edge >= valueEdgeMin && trapRisk <= valueTrapMax:
		return models.VerdictValue
	case edge >= leanEdgeMin || sharpScore >= leanSharpMin:
		return models.VerdictLean
	default:
		return models.VerdictNoBet
	}
}

// buildReasons renders the human-readable explanation, in fixed order,
// capped at maxReasons entries.
func (e *Engine) buildReasons(in Input, c Computation) []string {
	reasons := make([]string, 0, maxReasons)

	reasons = append(reasons, fmt.Sprintf(
		"model %.1f%% vs market-implied %.1f%% (edge %+.1f%%)",
		c.ModelProb*100, c.ImpliedProb*100, c.Edge*100))

	if in.PublicPercent != nil && in.CashPercent != nil {
		reasons = append(reasons, fmt.Sprintf(
			"cash %.0f%% vs tickets %.0f%% on this side",
			*in.CashPercent, *in.PublicPercent))
	} else {
		reasons = append(reasons, "no public betting data; assuming neutral flow")
	}

	if in.OpenOdds != nil {
		move := fmt.Sprintf("line moved %.2f -> %.2f", *in.OpenOdds, in.CurrentOdds)
		if in.LineMovedAgainstPublic {
			move += " against the public"
		}
		reasons = append(reasons, move)
	} else {
		reasons = append(reasons, "no opening odds tracked for this line")
	}

	reasons = append(reasons, fmt.Sprintf(
		"sharp %d, pressure %d, trap %d",
		c.SharpScore, c.MarketPressure, c.TrapRisk))

	switch c.Verdict {
	case models.VerdictTrapWarning:
		reasons = append(reasons, "heavy public backing with contrary money and line signals")
	case models.VerdictStrongValue, models.VerdictValue:
		reasons = append(reasons, "market appears to underprice this side at current odds")
	}

	if len(reasons) > maxReasons {
		reasons = reasons[:maxReasons]
	}
	return reasons
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// roundScore rounds to the nearest integer and clamps into [0,100]
func roundScore(v float64) int {
	n := int(math.Round(v))
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
