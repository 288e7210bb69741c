// Package seed loads the demo dataset: ten users, ten interplanetary
// routes with a 60/30/10 economy/business/galaxium seat split, and a
// handful of bookings made through the ledger so counters stay
// consistent. Seeding is skipped when flights already exist.
package seed

import (
	"context"
	"fmt"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/repository"
	"github.com/Domenick1991/galaxium-booking/internal/service/booking"
	"github.com/sirupsen/logrus"
)

var demoUsers = []domain.User{
	{Name: "Alice", Email: "alice@example.com"},
	{Name: "Bob", Email: "bob@example.com"},
	{Name: "Charlie", Email: "charlie@galaxium.com"},
	{Name: "Diana", Email: "diana@moonmail.com"},
	{Name: "Eve", Email: "eve@marsmail.com"},
	{Name: "Frank", Email: "frank@venusmail.com"},
	{Name: "Grace", Email: "grace@jupiter.com"},
	{Name: "Heidi", Email: "heidi@europa.com"},
	{Name: "Ivan", Email: "ivan@asteroidbelt.com"},
	{Name: "Judy", Email: "judy@pluto.com"},
}

var demoFlights = []domain.Flight{
	{Origin: "Earth", Destination: "Mars", DepartureTime: "2099-01-01T09:00:00Z", ArrivalTime: "2099-01-01T17:00:00Z", BasePrice: 1000000},
	{Origin: "Earth", Destination: "Moon", DepartureTime: "2099-01-02T10:00:00Z", ArrivalTime: "2099-01-02T14:00:00Z", BasePrice: 500000},
	{Origin: "Mars", Destination: "Earth", DepartureTime: "2099-01-03T12:00:00Z", ArrivalTime: "2099-01-03T20:00:00Z", BasePrice: 950000},
	{Origin: "Venus", Destination: "Earth", DepartureTime: "2099-01-04T08:00:00Z", ArrivalTime: "2099-01-04T18:00:00Z", BasePrice: 1200000},
	{Origin: "Jupiter", Destination: "Europa", DepartureTime: "2099-01-05T15:00:00Z", ArrivalTime: "2099-01-05T19:00:00Z", BasePrice: 2000000},
	{Origin: "Earth", Destination: "Venus", DepartureTime: "2099-01-06T07:00:00Z", ArrivalTime: "2099-01-06T15:00:00Z", BasePrice: 1100000},
	{Origin: "Moon", Destination: "Mars", DepartureTime: "2099-01-07T11:00:00Z", ArrivalTime: "2099-01-07T19:00:00Z", BasePrice: 800000},
	{Origin: "Mars", Destination: "Jupiter", DepartureTime: "2099-01-08T13:00:00Z", ArrivalTime: "2099-01-08T23:00:00Z", BasePrice: 2500000},
	{Origin: "Europa", Destination: "Earth", DepartureTime: "2099-01-09T09:00:00Z", ArrivalTime: "2099-01-09T21:00:00Z", BasePrice: 3000000},
	{Origin: "Earth", Destination: "Pluto", DepartureTime: "2099-01-10T06:00:00Z", ArrivalTime: "2099-01-11T06:00:00Z", BasePrice: 5000000},
}

func Run(ctx context.Context, users repository.UserRepository, flights repository.FlightRepository, bookings booking.BookingUseCase, log *logrus.Logger) error {
	existing, err := flights.List(ctx)
	if err != nil {
		return fmt.Errorf("seed: list flights: %w", err)
	}
	if len(existing) > 0 {
		log.Info("seed skipped, flights already present")
		return nil
	}

	seededUsers := make([]domain.User, 0, len(demoUsers))
	for _, u := range demoUsers {
		user := u
		if err := users.Create(ctx, &user); err != nil {
			return fmt.Errorf("seed: create user %s: %w", user.Email, err)
		}
		seededUsers = append(seededUsers, user)
	}

	seededFlights := make([]domain.Flight, 0, len(demoFlights))
	for _, f := range demoFlights {
		flight := f
		flight.EconomySeats = 6
		flight.BusinessSeats = 3
		flight.GalaxiumSeats = 1
		if err := flights.Create(ctx, &flight); err != nil {
			return fmt.Errorf("seed: create flight %s-%s: %w", flight.Origin, flight.Destination, err)
		}
		seededFlights = append(seededFlights, flight)
	}

	// Demo bookings go through the ledger so seat counters and price
	// snapshots stay consistent with the real booking path.
	demoBookings := []struct {
		user   int
		flight int
		class  domain.SeatClass
		cancel bool
	}{
		{user: 0, flight: 0, class: domain.SeatClassEconomy},
		{user: 1, flight: 1, class: domain.SeatClassBusiness},
		{user: 2, flight: 2, class: domain.SeatClassGalaxium},
		{user: 3, flight: 0, class: domain.SeatClassEconomy, cancel: true},
	}
	for _, d := range demoBookings {
		u := seededUsers[d.user]
		f := seededFlights[d.flight]
		b, err := bookings.BookFlight(ctx, booking.BookFlightInput{
			UserID:    u.ID,
			Name:      u.Name,
			FlightID:  f.ID,
			SeatClass: string(d.class),
		})
		if err != nil {
			return fmt.Errorf("seed: book flight %d for user %d: %w", f.ID, u.ID, err)
		}
		if d.cancel {
			if _, err := bookings.CancelBooking(ctx, b.ID); err != nil {
				return fmt.Errorf("seed: cancel booking %d: %w", b.ID, err)
			}
		}
	}

	log.WithFields(logrus.Fields{"users": len(seededUsers), "flights": len(seededFlights), "bookings": len(demoBookings)}).Info("database seeded with demo data")
	return nil
}
