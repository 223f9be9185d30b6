package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// RedisCache keeps the latest analysis per (match, market, side) in Redis
// as a read-side accelerator in front of the durable store.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
	logger zerolog.Logger
}

// RedisCacheConfig holds Redis cache configuration
type RedisCacheConfig struct {
	Addr     string // e.g., "localhost:6379"
	Password string
	DB       int
	TTL      time.Duration // e.g., 15 * time.Minute
}

// NewRedisCache creates a new Redis cache
func NewRedisCache(config RedisCacheConfig, logger zerolog.Logger) *RedisCache {
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr,
		Password: config.Password,
		DB:       config.DB,
	})

	return &RedisCache{
		client: client,
		ttl:    config.TTL,
		logger: logger.With().Str("component", "redis_cache").Logger(),
	}
}

func analysisKey(matchID uuid.UUID, marketType models.MarketType, side models.Side) string {
	return fmt.Sprintf("analysis:%s:%s:%s", matchID, marketType, side)
}

// Set caches an analysis snapshot under its (match, market, side) key,
// overwriting any older one.
func (c *RedisCache) Set(ctx context.Context, snap *models.AnalysisSnapshot) error {
	key := analysisKey(snap.MatchID, snap.MarketType, snap.Side)

	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis: %w", err)
	}

	if err := c.client.Set(ctx, key, data, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set in Redis: %w", err)
	}

	c.logger.Debug().
		Str("key", key).
		Dur("ttl", c.ttl).
		Msg("cached analysis snapshot")

	return nil
}

// Get retrieves one cached analysis snapshot
func (c *RedisCache) Get(ctx context.Context, matchID uuid.UUID, marketType models.MarketType, side models.Side) (*models.AnalysisSnapshot, error) {
	key := analysisKey(matchID, marketType, side)

	data, err := c.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, fmt.Errorf("analysis not found in cache")
	} else if err != nil {
		return nil, fmt.Errorf("failed to get from Redis: %w", err)
	}

	var snap models.AnalysisSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("failed to unmarshal analysis: %w", err)
	}

	return &snap, nil
}

// GetByMatch retrieves all cached analyses for a match
func (c *RedisCache) GetByMatch(ctx context.Context, matchID uuid.UUID) ([]models.AnalysisSnapshot, error) {
	pattern := fmt.Sprintf("analysis:%s:*", matchID)

	var cursor uint64
	var keys []string

	for {
		var scanKeys []string
		var err error
		scanKeys, cursor, err = c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return nil, fmt.Errorf("failed to scan keys: %w", err)
		}

		keys = append(keys, scanKeys...)

		if cursor == 0 {
			break
		}
	}

	snaps := make([]models.AnalysisSnapshot, 0, len(keys))
	for _, key := range keys {
		data, err := c.client.Get(ctx, key).Bytes()
		if err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to get key")
			continue
		}

		var snap models.AnalysisSnapshot
		if err := json.Unmarshal(data, &snap); err != nil {
			c.logger.Warn().Err(err).Str("key", key).Msg("failed to unmarshal analysis")
			continue
		}

		snaps = append(snaps, snap)
	}

	return snaps, nil
}

// Ping checks Redis connection
func (c *RedisCache) Ping(ctx context.Context) error {
	return c.client.Ping(ctx).Err()
}

// Close closes the Redis connection
func (c *RedisCache) Close() error {
	return c.client.Close()
}
