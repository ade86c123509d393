package publishers

import (
	"context"
	"encoding/json"

	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/gw-event-checkin/internal/logger"
	"github.com/sbilibin2017/gw-event-checkin/internal/models"
)

//go:generate mockgen -source=guest_events.go -destination=guest_events_mock.go -package=publishers

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// GuestEventPublisher publishes guest lifecycle notifications to Kafka.
// Publishing is best effort: failures are logged and never reach the caller.
type GuestEventPublisher struct {
	writer KafkaWriter
}

// NewGuestEventPublisher creates a publisher. A nil writer disables publishing.
func NewGuestEventPublisher(writer KafkaWriter) *GuestEventPublisher {
	return &GuestEventPublisher{writer: writer}
}

// Publish sends evt keyed by guest id.
func (p *GuestEventPublisher) Publish(ctx context.Context, evt models.GuestEvent) {
	if p.writer == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "type", evt.Type, "guest_id", evt.GuestID)
		return
	}

	data, err := json.Marshal(evt)
	if err != nil {
		logger.Log.Errorw("Failed to marshal guest event", "type", evt.Type, "guest_id", evt.GuestID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(evt.GuestID),
		Value: data,
	}

	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish guest event", "type", evt.Type, "guest_id", evt.GuestID, "error", err)
		return
	}
	logger.Log.Infow("Guest event published", "type", evt.Type, "guest_id", evt.GuestID)
}
