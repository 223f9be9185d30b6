package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// CreateMarketSnapshots appends odds observations in one transaction.
// No dedup: every sync call appends, even when values are unchanged.
func (s *Store) CreateMarketSnapshots(ctx context.Context, snaps []models.MarketSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return persistErr(err, "begin market snapshots tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO market_snapshots
			(id, match_id, market_type, side, book, open_odds, current_odds, observed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`)
	if err != nil {
		return persistErr(err, "prepare market snapshot insert")
	}
	defer stmt.Close()

	for _, snap := range snaps {
		if _, err := stmt.ExecContext(ctx,
			snap.ID, snap.MatchID, snap.MarketType, snap.Side, snap.Book,
			snap.OpenOdds, snap.CurrentOdds, snap.ObservedAt); err != nil {
			return persistErr(err, "insert market snapshot for match %s", snap.MatchID)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistErr(err, "commit market snapshots")
	}
	return nil
}

// CreatePublicCashSnapshots appends public/cash observations in one transaction
func (s *Store) CreatePublicCashSnapshots(ctx context.Context, snaps []models.PublicCashSnapshot) error {
	if len(snaps) == 0 {
		return nil
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return persistErr(err, "begin public cash snapshots tx")
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO public_cash_snapshots
			(id, match_id, market_type, side, public_percent, cash_percent, observed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`)
	if err != nil {
		return persistErr(err, "prepare public cash snapshot insert")
	}
	defer stmt.Close()

	for _, snap := range snaps {
		if _, err := stmt.ExecContext(ctx,
			snap.ID, snap.MatchID, snap.MarketType, snap.Side,
			snap.PublicPercent, snap.CashPercent, snap.ObservedAt); err != nil {
			return persistErr(err, "insert public cash snapshot for match %s", snap.MatchID)
		}
	}

	if err := tx.Commit(); err != nil {
		return persistErr(err, "commit public cash snapshots")
	}
	return nil
}

// analysisRow adapts AnalysisSnapshot for text[] scanning
type analysisRow struct {
	models.AnalysisSnapshot
	ReasonsArr pq.StringArray `db:"reasons"`
}

func (r analysisRow) snapshot() models.AnalysisSnapshot {
	snap := r.AnalysisSnapshot
	snap.Reasons = []string(r.ReasonsArr)
	return snap
}

// CreateAnalysisSnapshot appends one computed analysis row
func (s *Store) CreateAnalysisSnapshot(ctx context.Context, snap models.AnalysisSnapshot) error {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO analysis_snapshots
			(id, match_id, market_type, side, model_prob, implied_prob, edge, fair_odds,
			 sharp_score, market_pressure, trap_risk, verdict, reasons, computed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		snap.ID, snap.MatchID, snap.MarketType, snap.Side,
		snap.ModelProb, snap.ImpliedProb, snap.Edge, snap.FairOdds,
		snap.SharpScore, snap.MarketPressure, snap.TrapRisk, snap.Verdict,
		pq.StringArray(snap.Reasons), snap.ComputedAt)
	if err != nil {
		return persistErr(err, "insert analysis snapshot for match %s", snap.MatchID)
	}
	return nil
}

// LatestMarketSnapshot returns the max-timestamp odds row for one key
func (s *Store) LatestMarketSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.MarketSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var snap models.MarketSnapshot
	err := s.db.GetContext(ctx, &snap, `
		SELECT * FROM market_snapshots
		WHERE match_id = $1 AND market_type = $2 AND side = $3
		ORDER BY observed_at DESC, id ASC
		LIMIT 1`, matchID, marketType, side)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound,
			"no market snapshot for match %s %s/%s", matchID, marketType, side)
	}
	if err != nil {
		return nil, persistErr(err, "latest market snapshot for match %s", matchID)
	}
	return &snap, nil
}

// LatestPublicCashSnapshot returns the max-timestamp flow row for one key
func (s *Store) LatestPublicCashSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.PublicCashSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var snap models.PublicCashSnapshot
	err := s.db.GetContext(ctx, &snap, `
		SELECT * FROM public_cash_snapshots
		WHERE match_id = $1 AND market_type = $2 AND side = $3
		ORDER BY observed_at DESC, id ASC
		LIMIT 1`, matchID, marketType, side)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound,
			"no public cash snapshot for match %s %s/%s", matchID, marketType, side)
	}
	if err != nil {
		return nil, persistErr(err, "latest public cash snapshot for match %s", matchID)
	}
	return &snap, nil
}

// LatestAnalysisSnapshot returns the max-timestamp analysis row for one key
func (s *Store) LatestAnalysisSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.AnalysisSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var row analysisRow
	err := s.db.GetContext(ctx, &row, `
		SELECT * FROM analysis_snapshots
		WHERE match_id = $1 AND market_type = $2 AND side = $3
		ORDER BY computed_at DESC, id ASC
		LIMIT 1`, matchID, marketType, side)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound,
			"no analysis snapshot for match %s %s/%s", matchID, marketType, side)
	}
	if err != nil {
		return nil, persistErr(err, "latest analysis snapshot for match %s", matchID)
	}
	snap := row.snapshot()
	return &snap, nil
}

// RecentMarketSnapshots returns up to limit odds rows for a match, newest first
func (s *Store) RecentMarketSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.MarketSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snaps := []models.MarketSnapshot{}
	err := s.db.SelectContext(ctx, &snaps, `
		SELECT * FROM market_snapshots
		WHERE match_id = $1
		ORDER BY observed_at DESC, id ASC
		LIMIT $2`, matchID, limit)
	if err != nil {
		return nil, persistErr(err, "recent market snapshots for match %s", matchID)
	}
	return snaps, nil
}

// RecentPublicCashSnapshots returns up to limit flow rows for a match, newest first
func (s *Store) RecentPublicCashSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.PublicCashSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	snaps := []models.PublicCashSnapshot{}
	err := s.db.SelectContext(ctx, &snaps, `
		SELECT * FROM public_cash_snapshots
		WHERE match_id = $1
		ORDER BY observed_at DESC, id ASC
		LIMIT $2`, matchID, limit)
	if err != nil {
		return nil, persistErr(err, "recent public cash snapshots for match %s", matchID)
	}
	return snaps, nil
}

// RecentAnalysisSnapshots returns up to limit analysis rows for a match, newest first
func (s *Store) RecentAnalysisSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.AnalysisSnapshot, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	rows := []analysisRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT * FROM analysis_snapshots
		WHERE match_id = $1
		ORDER BY computed_at DESC, id ASC
		LIMIT $2`, matchID, limit)
	if err != nil {
		return nil, persistErr(err, "recent analysis snapshots for match %s", matchID)
	}

	snaps := make([]models.AnalysisSnapshot, 0, len(rows))
	for _, r := range rows {
		snaps = append(snaps, r.snapshot())
	}
	return snaps, nil
}
