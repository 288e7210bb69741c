package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"
)

// BookingEvent is the payload published for booking and user lifecycle
// changes. Types: booking_created, booking_cancelled, user_registered.
type BookingEvent struct {
	EventID    string `json:"event_id"`
	Type       string `json:"type"`
	BookingID  int64  `json:"booking_id,omitempty"`
	UserID     int64  `json:"user_id"`
	FlightID   int64  `json:"flight_id,omitempty"`
	SeatClass  string `json:"seat_class,omitempty"`
	Status     string `json:"status,omitempty"`
	PricePaid  int64  `json:"price_paid,omitempty"`
	Email      string `json:"email,omitempty"`
	OccurredAt string `json:"occurred_at"`
}

type Producer struct {
	writer *kafka.Writer
}

func NewProducer(brokers []string) *Producer {
	return &Producer{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 50 * time.Millisecond,
			RequiredAcks: kafka.RequireOne,
		},
	}
}

func (p *Producer) Publish(ctx context.Context, topic, key string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload: %w", err)
	}

	message := kafka.Message{
		Topic: topic,
		Key:   []byte(key),
		Value: data,
		Time:  time.Now(),
	}
	if err := p.writer.WriteMessages(ctx, message); err != nil {
		return fmt.Errorf("write message to kafka: %w", err)
	}
	return nil
}

func (p *Producer) Close() error {
	if p.writer != nil {
		return p.writer.Close()
	}
	return nil
}
