package messaging

import (
	"context"
	"encoding/json"
	"log/slog"
	"strconv"
	"time"

	"carrental-storefront/internal/pkg/config"
	"carrental-storefront/internal/pkg/errs"
	"carrental-storefront/internal/usecase/shared"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher uses.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

func NewWriter(cfg config.KafkaConfig) *kafka.Writer {
	return &kafka.Writer{
		Addr:         kafka.TCP(cfg.Brokers...),
		Topic:        cfg.IntentsTopic,
		Balancer:     &kafka.Hash{},
		BatchTimeout: 50 * time.Millisecond,
		RequiredAcks: kafka.RequireOne,
		Async:        false,
	}
}

// IntentPublisher writes booking intents keyed by car id, so one car's intents stay ordered.
type IntentPublisher struct {
	writer MessageWriter
}

func NewIntentPublisher(writer MessageWriter) *IntentPublisher {
	return &IntentPublisher{writer: writer}
}

func (p *IntentPublisher) Publish(ctx context.Context, intent shared.BookingIntent) error {
	payload, err := json.Marshal(intent)
	if err != nil {
		return errs.Wrap(err, "marshal booking intent")
	}
	msg := kafka.Message{
		Key:   []byte(strconv.FormatInt(intent.CarID, 10)),
		Value: payload,
		Time:  intent.CreatedAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte("booking.intent")},
			{Key: "intent_id", Value: []byte(intent.ID.String())},
		},
	}
	if err := p.writer.WriteMessages(ctx, msg); err != nil {
		return errs.Wrapf(err, "publish booking intent %s", intent.ID)
	}
	return nil
}

func (p *IntentPublisher) Close() error {
	return p.writer.Close()
}

// LogPublisher only logs intents; used when no brokers are configured.
type LogPublisher struct {
	logger *slog.Logger
}

func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	return &LogPublisher{logger: logger}
}

func (p *LogPublisher) Publish(_ context.Context, intent shared.BookingIntent) error {
	p.logger.Info("booking intent",
		"intent_id", intent.ID.String(),
		"car_id", intent.CarID,
		"days", intent.Days,
		"total_cents", intent.TotalCents,
	)
	return nil
}

var (
	_ shared.IntentPublisher = (*IntentPublisher)(nil)
	_ shared.IntentPublisher = (*LogPublisher)(nil)
)
