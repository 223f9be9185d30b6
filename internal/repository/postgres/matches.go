package postgres

import (
	"context"
	"database/sql"
	"errors"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/cypherlabdev/value-radar-service/internal/apperr"
	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// UpsertMatch creates or refreshes a match keyed by its external reference.
// Mutable fields and updated_at are overwritten on conflict; matches are
// never deleted.
func (s *Store) UpsertMatch(ctx context.Context, m models.Match) (models.Match, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	now := time.Now().UTC()

	query := `
		INSERT INTO matches
			(id, external_ref, sport, league, home_team, away_team, starts_at, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
		ON CONFLICT (external_ref) DO UPDATE SET
			sport      = EXCLUDED.sport,
			league     = EXCLUDED.league,
			home_team  = EXCLUDED.home_team,
			away_team  = EXCLUDED.away_team,
			starts_at  = EXCLUDED.starts_at,
			status     = EXCLUDED.status,
			updated_at = EXCLUDED.updated_at
		RETURNING id, external_ref, sport, league, home_team, away_team, starts_at, status, created_at, updated_at`

	var out models.Match
	err := s.db.GetContext(ctx, &out, query,
		m.ID, m.ExternalRef, m.Sport, m.League, m.HomeTeam, m.AwayTeam,
		m.StartsAt, m.Status, now)
	if err != nil {
		return models.Match{}, persistErr(err, "upsert match %s", m.ExternalRef)
	}
	return out, nil
}

// GetMatch fetches one match by id
func (s *Store) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	var m models.Match
	err := s.db.GetContext(ctx, &m,
		`SELECT * FROM matches WHERE id = $1`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.New(apperr.KindNotFound, "match %s not found", id)
	}
	if err != nil {
		return nil, persistErr(err, "get match %s", id)
	}
	return &m, nil
}

// ListMatches returns matches ordered by start time ascending then creation
// time descending. League and single-UTC-day filters are optional.
func (s *Store) ListMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	query := `SELECT * FROM matches WHERE 1=1`
	args := []any{}

	if filter.League != nil {
		args = append(args, *filter.League)
		query += ` AND league = $` + itoa(len(args))
	}
	if filter.Date != nil {
		day := filter.Date.UTC().Truncate(24 * time.Hour)
		args = append(args, day)
		query += ` AND starts_at >= $` + itoa(len(args))
		args = append(args, day.Add(24*time.Hour))
		query += ` AND starts_at < $` + itoa(len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	args = append(args, limit)
	query += ` ORDER BY starts_at ASC, created_at DESC LIMIT $` + itoa(len(args))

	matches := []models.Match{}
	if err := s.db.SelectContext(ctx, &matches, query, args...); err != nil {
		return nil, persistErr(err, "list matches")
	}
	return matches, nil
}

func itoa(n int) string { return strconv.Itoa(n) }
