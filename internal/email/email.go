package email

import (
	"context"

	"github.com/Domenick1991/galaxium-booking/internal/kafka"
	"github.com/sirupsen/logrus"
)

// Sender delivers booking notifications. Delivery is a log line for
// now; the worker wires it to the notifications topic.
type Sender struct {
	log *logrus.Logger
}

func NewSender(log *logrus.Logger) *Sender {
	return &Sender{log: log}
}

func (s *Sender) Send(ctx context.Context, event kafka.BookingEvent) error {
	s.log.WithFields(logrus.Fields{
		"event_id":   event.EventID,
		"type":       event.Type,
		"user_id":    event.UserID,
		"booking_id": event.BookingID,
		"email":      event.Email,
	}).Info("sending booking notification")
	return nil
}
