package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// AnalysisCache is an interface that abstracts the read-side cache of
// latest analyses. This allows for easier testing and mocking.
type AnalysisCache interface {
	Set(ctx context.Context, snap *models.AnalysisSnapshot) error
	Get(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.AnalysisSnapshot, error)
	GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.AnalysisSnapshot, error)
	Ping(ctx context.Context) error
	Close() error
}

// Publisher is an interface that abstracts the downstream verdict stream.
// This allows for easier testing and mocking.
type Publisher interface {
	PublishAnalysis(ctx context.Context, snap *models.AnalysisSnapshot) error
	Close() error
}
