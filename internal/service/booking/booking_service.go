package booking

import (
	"context"
	"time"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/kafka"
	"github.com/Domenick1991/galaxium-booking/internal/pricing"
	"github.com/Domenick1991/galaxium-booking/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type BookingUseCase interface {
	BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error)
	CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error)
	GetBookings(ctx context.Context, userID int64) ([]domain.Booking, error)
}

// IdentityVerifier is satisfied by the users service.
type IdentityVerifier interface {
	VerifyIdentity(ctx context.Context, userID int64, name string) (*domain.User, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

type BookingService struct {
	bookings           repository.BookingRepository
	flights            repository.FlightRepository
	identity           IdentityVerifier
	producer           Producer
	eventsTopic        string
	notificationsTopic string
	log                *logrus.Logger
}

type BookFlightInput struct {
	UserID    int64  `json:"user_id"`
	Name      string `json:"name"`
	FlightID  int64  `json:"flight_id"`
	SeatClass string `json:"seat_class"`
}

type BookingServiceOption func(*BookingService)

func WithProducer(producer Producer, eventsTopic string) BookingServiceOption {
	return func(s *BookingService) {
		s.producer = producer
		s.eventsTopic = eventsTopic
	}
}

func WithNotificationsTopic(topic string) BookingServiceOption {
	return func(s *BookingService) {
		s.notificationsTopic = topic
	}
}

func NewBookingService(
	bookings repository.BookingRepository,
	flights repository.FlightRepository,
	identity IdentityVerifier,
	log *logrus.Logger,
	opts ...BookingServiceOption,
) *BookingService {
	service := &BookingService{
		bookings: bookings,
		flights:  flights,
		identity: identity,
		log:      log,
	}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

// BookFlight books one seat of the requested class. Checks run in a
// fixed order: seat class, flight existence, availability, identity.
// The availability read here is advisory; the booking repository's
// transaction re-checks it while decrementing, so two callers racing
// for the last seat cannot both succeed.
func (s *BookingService) BookFlight(ctx context.Context, input BookFlightInput) (*domain.Booking, error) {
	class, ok := domain.ParseSeatClass(input.SeatClass)
	if !ok {
		return nil, domain.ErrInvalidSeatClass(input.SeatClass)
	}

	flight, err := s.flights.GetByID(ctx, input.FlightID)
	if err != nil {
		return nil, err
	}
	if flight == nil {
		return nil, domain.ErrFlightNotFound(input.FlightID)
	}

	if flight.SeatsAvailable(class) < 1 {
		return nil, domain.ErrNoSeatsAvailable(class)
	}

	user, err := s.identity.VerifyIdentity(ctx, input.UserID, input.Name)
	if err != nil {
		return nil, err
	}

	booking := &domain.Booking{
		UserID:      user.ID,
		FlightID:    flight.ID,
		Status:      domain.BookingStatusBooked,
		SeatClass:   class,
		BookingTime: time.Now().UTC().Format(time.RFC3339),
		PricePaid:   pricing.PriceFor(flight.BasePrice, class),
	}
	if err := s.bookings.Create(ctx, booking); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"user_id":    booking.UserID,
		"flight_id":  booking.FlightID,
		"seat_class": booking.SeatClass,
		"price_paid": booking.PricePaid,
	}).Info("flight booked")

	s.publish(ctx, "booking_created", booking, user.Email)
	return booking, nil
}

// CancelBooking flips a booking to cancelled and restores one seat of
// its stored class. Price and class are never touched.
func (s *BookingService) CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	booking, err := s.bookings.Cancel(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{
		"booking_id": booking.ID,
		"flight_id":  booking.FlightID,
		"seat_class": booking.SeatClass,
	}).Info("booking cancelled")

	s.publish(ctx, "booking_cancelled", booking, "")
	return booking, nil
}

func (s *BookingService) GetBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	return s.bookings.ListByUser(ctx, userID)
}

func (s *BookingService) publish(ctx context.Context, eventType string, booking *domain.Booking, email string) {
	if s.producer == nil || s.eventsTopic == "" {
		return
	}
	event := kafka.BookingEvent{
		EventID:    uuid.NewString(),
		Type:       eventType,
		BookingID:  booking.ID,
		UserID:     booking.UserID,
		FlightID:   booking.FlightID,
		SeatClass:  string(booking.SeatClass),
		Status:     string(booking.Status),
		PricePaid:  booking.PricePaid,
		Email:      email,
		OccurredAt: time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.producer.Publish(ctx, s.eventsTopic, event.EventID, event); err != nil {
		s.log.WithError(err).WithField("type", eventType).Warn("failed to publish booking event")
	}
	if s.notificationsTopic != "" {
		if err := s.producer.Publish(ctx, s.notificationsTopic, event.EventID, event); err != nil {
			s.log.WithError(err).WithField("type", eventType).Warn("failed to publish notification event")
		}
	}
}

var _ BookingUseCase = (*BookingService)(nil)
