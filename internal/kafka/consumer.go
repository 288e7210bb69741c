package kafka

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

// Consumer reads BookingEvent payloads from one topic as part of a
// consumer group. Undecodable payloads are logged and skipped so a
// poison message cannot wedge the group.
type Consumer struct {
	reader *kafka.Reader
	log    *logrus.Logger
}

func NewConsumer(brokers []string, groupID, topic string, log *logrus.Logger) *Consumer {
	return &Consumer{
		reader: kafka.NewReader(kafka.ReaderConfig{
			Brokers:           brokers,
			GroupID:           groupID,
			Topic:             topic,
			HeartbeatInterval: 3 * time.Second,
			SessionTimeout:    30 * time.Second,
		}),
		log: log,
	}
}

func (c *Consumer) Close() error {
	if c == nil || c.reader == nil {
		return nil
	}
	return c.reader.Close()
}

// Consume blocks, delivering each decoded event to the handler. It
// returns on context cancellation or when the handler fails.
func (c *Consumer) Consume(ctx context.Context, handler func(context.Context, BookingEvent) error) error {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			return err
		}

		if err := c.deliver(ctx, msg.Value, handler); err != nil {
			return err
		}
	}
}

func (c *Consumer) deliver(ctx context.Context, payload []byte, handler func(context.Context, BookingEvent) error) error {
	var event BookingEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		c.log.WithError(err).Warn("skipping undecodable event payload")
		return nil
	}
	return handler(ctx, event)
}
