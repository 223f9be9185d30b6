package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// Repository is an interface that abstracts the durable store.
// This allows for easier testing and mocking.
type Repository interface {
	UpsertMatch(ctx context.Context, m models.Match) (models.Match, error)
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, filter models.MatchFilter) ([]models.Match, error)

	CreateMarketSnapshots(ctx context.Context, snaps []models.MarketSnapshot) error
	CreatePublicCashSnapshots(ctx context.Context, snaps []models.PublicCashSnapshot) error
	CreateAnalysisSnapshot(ctx context.Context, snap models.AnalysisSnapshot) error

	LatestMarketSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.MarketSnapshot, error)
	LatestPublicCashSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.PublicCashSnapshot, error)
	LatestAnalysisSnapshot(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.AnalysisSnapshot, error)

	RecentMarketSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.MarketSnapshot, error)
	RecentPublicCashSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.PublicCashSnapshot, error)
	RecentAnalysisSnapshots(ctx context.Context, matchID uuid.UUID, limit int) ([]models.AnalysisSnapshot, error)
}
