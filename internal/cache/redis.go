package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/Domenick1991/galaxium-booking/config"
	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/redis/go-redis/v9"
)

// RedisCache holds the flight-list projection. Bookings mutate seat
// counters without touching the cache, so listings may lag by up to
// the configured TTL; that staleness is accepted for the read path.
type RedisCache struct {
	client     *redis.Client
	flightsTTL time.Duration
}

func NewRedisCache(cfg config.RedisConfig, flightsTTL time.Duration) *RedisCache {
	return &RedisCache{
		client:     redis.NewClient(&redis.Options{Addr: cfg.Addr, Password: cfg.Password, DB: cfg.DB}),
		flightsTTL: flightsTTL,
	}
}

func (c *RedisCache) GetFlightViews(ctx context.Context) ([]domain.FlightView, error) {
	data, err := c.client.Get(ctx, flightsKey()).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}

	var views []domain.FlightView
	if err := json.Unmarshal(data, &views); err != nil {
		return nil, err
	}
	return views, nil
}

func (c *RedisCache) SetFlightViews(ctx context.Context, views []domain.FlightView) error {
	payload, err := json.Marshal(views)
	if err != nil {
		return err
	}
	return c.client.Set(ctx, flightsKey(), payload, c.flightsTTL).Err()
}

func flightsKey() string {
	return "cache:flights"
}
