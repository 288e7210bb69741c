package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/galaxium-booking/api"
	"github.com/Domenick1991/galaxium-booking/config"
	"github.com/Domenick1991/galaxium-booking/internal/agent"
	"github.com/Domenick1991/galaxium-booking/internal/bootstrap"
	"github.com/Domenick1991/galaxium-booking/internal/cache"
	"github.com/Domenick1991/galaxium-booking/internal/kafka"
	"github.com/Domenick1991/galaxium-booking/internal/repository"
	"github.com/Domenick1991/galaxium-booking/internal/seed"
	"github.com/Domenick1991/galaxium-booking/internal/service/booking"
	"github.com/Domenick1991/galaxium-booking/internal/service/flights"
	"github.com/Domenick1991/galaxium-booking/internal/service/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if level, err := logrus.ParseLevel(cfg.Log.Level); err == nil {
		log.SetLevel(level)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatalf("connect postgres: %v", err)
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Cache.FlightsTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	userRepo := repository.NewUserRepository(pool)
	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)

	userService := users.NewUserService(userRepo, log,
		users.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
	)
	flightService := flights.NewFlightService(flightRepo, redisCache, log)
	bookingService := booking.NewBookingService(bookingRepo, flightRepo, userService, log,
		booking.WithProducer(producer, cfg.Kafka.BookingEventsTopic),
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	if cfg.Seed.Demo {
		if err := seed.Run(ctx, userRepo, flightRepo, bookingService, log); err != nil {
			log.Fatalf("seed: %v", err)
		}
	}

	userHandler := api.NewUserHandler(userService)
	flightHandler := api.NewFlightHandler(flightService)
	bookingHandler := api.NewBookingHandler(bookingService)
	agentServer := agent.NewServer(flightService, bookingService, userService)

	if err := bootstrap.Run(ctx, cfg, log, userHandler, flightHandler, bookingHandler, agentServer); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
