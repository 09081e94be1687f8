package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/workout-tracker/internal/logger"
	"github.com/sbilibin2017/workout-tracker/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=events.go -destination=mock_events.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// EventsKafkaFacade publishes workout activity events to Kafka.
// A facade without a writer drops events, which keeps the service usable without a broker.
type EventsKafkaFacade struct {
	writer KafkaWriter
	now    func() time.Time
}

// NewEventsKafkaFacade creates a new facade with a Kafka writer, which may be nil.
func NewEventsKafkaFacade(writer KafkaWriter) *EventsKafkaFacade {
	return &EventsKafkaFacade{writer: writer, now: time.Now}
}

// NewKafkaWriter builds a writer for topic on brokers, or nil when no brokers are configured.
func NewKafkaWriter(brokers []string, topic string) KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
	}
}

// Publish stamps event with an id and timestamp and writes it keyed by event id.
// Failures are logged and never returned: events are a side channel.
func (f *EventsKafkaFacade) Publish(ctx context.Context, event models.Event) {
	if event.EventID == "" {
		event.EventID = uuid.NewString()
	}
	if event.Timestamp == 0 {
		event.Timestamp = f.now().Unix()
	}

	if f.writer == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "event_id", event.EventID, "type", event.Type)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish event to Kafka", "event_id", event.EventID, "type", event.Type, "error", err)
		return
	}
	logger.Log.Infow("Event published to Kafka", "event_id", event.EventID, "type", event.Type, "user_id", event.UserID)
}

// Close closes the underlying writer, if any.
func (f *EventsKafkaFacade) Close() error {
	if f.writer == nil {
		return nil
	}
	return f.writer.Close()
}
