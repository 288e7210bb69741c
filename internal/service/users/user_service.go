package users

import (
	"context"
	"regexp"
	"time"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/kafka"
	"github.com/Domenick1991/galaxium-booking/internal/repository"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

type UserUseCase interface {
	Register(ctx context.Context, name, email string) (*domain.User, error)
	Find(ctx context.Context, name, email string) (*domain.User, error)
	VerifyIdentity(ctx context.Context, userID int64, name string) (*domain.User, error)
}

type Producer interface {
	Publish(ctx context.Context, topic, key string, value interface{}) error
}

// A local-part/domain/TLD shape check, not full RFC 5322 compliance.
var emailPattern = regexp.MustCompile(`^[A-Za-z0-9._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)

type UserService struct {
	users       repository.UserRepository
	producer    Producer
	eventsTopic string
	log         *logrus.Logger
}

type UserServiceOption func(*UserService)

func WithProducer(producer Producer, topic string) UserServiceOption {
	return func(s *UserService) {
		s.producer = producer
		s.eventsTopic = topic
	}
}

func NewUserService(users repository.UserRepository, log *logrus.Logger, opts ...UserServiceOption) *UserService {
	service := &UserService{users: users, log: log}
	for _, opt := range opts {
		opt(service)
	}
	return service
}

func (s *UserService) Register(ctx context.Context, name, email string) (*domain.User, error) {
	if !emailPattern.MatchString(email) {
		return nil, domain.ErrInvalidEmail(email)
	}

	existing, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrEmailExists(email)
	}

	user := &domain.User{Name: name, Email: email}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.WithFields(logrus.Fields{"user_id": user.ID, "email": user.Email}).Info("user registered")

	if s.producer != nil && s.eventsTopic != "" {
		event := kafka.BookingEvent{
			EventID:    uuid.NewString(),
			Type:       "user_registered",
			UserID:     user.ID,
			Email:      user.Email,
			OccurredAt: time.Now().UTC().Format(time.RFC3339),
		}
		if err := s.producer.Publish(ctx, s.eventsTopic, event.EventID, event); err != nil {
			s.log.WithError(err).Warn("failed to publish user_registered event")
		}
	}
	return user, nil
}

func (s *UserService) Find(ctx context.Context, name, email string) (*domain.User, error) {
	user, err := s.users.GetByNameAndEmail(ctx, name, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFoundByIdentity(name, email)
	}
	return user, nil
}

// VerifyIdentity looks the user up by id and requires an exact name
// match. The two failure modes stay distinct so callers can tell an
// unknown id from a wrong name.
func (s *UserService) VerifyIdentity(ctx context.Context, userID int64, name string) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound(userID)
	}
	if user.Name != name {
		return nil, domain.ErrNameMismatch(userID, name, user.Name)
	}
	return user, nil
}

var _ UserUseCase = (*UserService)(nil)
