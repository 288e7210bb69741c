package flights

import (
	"context"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/pricing"
	"github.com/Domenick1991/galaxium-booking/internal/repository"
	"github.com/sirupsen/logrus"
)

type FlightUseCase interface {
	List(ctx context.Context) ([]domain.FlightView, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
}

type FlightCache interface {
	GetFlightViews(ctx context.Context) ([]domain.FlightView, error)
	SetFlightViews(ctx context.Context, views []domain.FlightView) error
}

type FlightService struct {
	repo  repository.FlightRepository
	cache FlightCache
	log   *logrus.Logger
}

func NewFlightService(repo repository.FlightRepository, cache FlightCache, log *logrus.Logger) *FlightService {
	return &FlightService{repo: repo, cache: cache, log: log}
}

// List returns every flight with its derived per-class prices. The
// projection is served from cache when present; counters in a cached
// view may lag recent bookings.
func (s *FlightService) List(ctx context.Context) ([]domain.FlightView, error) {
	if s.cache != nil {
		if cached, err := s.cache.GetFlightViews(ctx); err == nil && cached != nil {
			return cached, nil
		}
	}

	flights, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	views := make([]domain.FlightView, 0, len(flights))
	for _, f := range flights {
		views = append(views, domain.FlightView{
			Flight:        f,
			EconomyPrice:  pricing.PriceFor(f.BasePrice, domain.SeatClassEconomy),
			BusinessPrice: pricing.PriceFor(f.BasePrice, domain.SeatClassBusiness),
			GalaxiumPrice: pricing.PriceFor(f.BasePrice, domain.SeatClassGalaxium),
		})
	}

	if s.cache != nil {
		if err := s.cache.SetFlightViews(ctx, views); err != nil {
			s.log.WithError(err).Warn("failed to cache flight views")
		}
	}
	return views, nil
}

func (s *FlightService) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	return s.repo.GetByID(ctx, id)
}

var _ FlightUseCase = (*FlightService)(nil)
