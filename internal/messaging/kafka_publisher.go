package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"

	"github.com/cypherlabdev/value-radar-service/internal/models"
)

// AnalysisMessage is the wire envelope for a published verdict
type AnalysisMessage struct {
	Analysis    models.AnalysisSnapshot `json:"analysis"`
	PublishedAt time.Time               `json:"published_at"`
}

// KafkaPublisher emits computed analyses to Kafka for downstream consumers
// (alerting, dashboards). Publish failures are the caller's to tolerate;
// the analysis itself is already durable in the store.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// KafkaPublisherConfig holds Kafka publisher configuration
type KafkaPublisherConfig struct {
	Brokers []string // e.g., ["localhost:9092"]
	Topic   string   // e.g., "analysis_verdicts"
}

// NewKafkaPublisher creates a new Kafka publisher
func NewKafkaPublisher(config KafkaPublisherConfig, logger zerolog.Logger) *KafkaPublisher {
	writer := &kafka.Writer{
		Addr:         kafka.TCP(config.Brokers...),
		Topic:        config.Topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}

	return &KafkaPublisher{
		writer: writer,
		logger: logger.With().Str("component", "kafka_publisher").Logger(),
	}
}

// PublishAnalysis sends one computed analysis, keyed by match id so all
// verdicts for a match land on the same partition.
func (p *KafkaPublisher) PublishAnalysis(ctx context.Context, snap *models.AnalysisSnapshot) error {
	msg := AnalysisMessage{
		Analysis:    *snap,
		PublishedAt: time.Now().UTC(),
	}

	value, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal analysis message: %w", err)
	}

	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(snap.MatchID.String()),
		Value: value,
	})
	if err != nil {
		return fmt.Errorf("failed to write analysis message: %w", err)
	}

	p.logger.Debug().
		Str("match_id", snap.MatchID.String()).
		Str("market", string(snap.MarketType)).
		Str("side", string(snap.Side)).
		Str("verdict", string(snap.Verdict)).
		Msg("published analysis")

	return nil
}

// Close closes the Kafka writer
func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}
