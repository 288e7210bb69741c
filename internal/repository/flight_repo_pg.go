package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FlightRepository interface {
	List(ctx context.Context) ([]domain.Flight, error)
	GetByID(ctx context.Context, id int64) (*domain.Flight, error)
	Create(ctx context.Context, flight *domain.Flight) error
}

const flightColumns = `flight_id, origin, destination, departure_time, arrival_time, base_price, economy_seats_available, business_seats_available, galaxium_seats_available`

type PGFlightRepository struct {
	db *pgxpool.Pool
}

func NewFlightRepository(db *pgxpool.Pool) FlightRepository {
	return &PGFlightRepository{db: db}
}

// seatColumn resolves the counter column for a seat class. Callers
// validate the class before it reaches SQL text.
func seatColumn(class domain.SeatClass) string {
	switch class {
	case domain.SeatClassBusiness:
		return "business_seats_available"
	case domain.SeatClassGalaxium:
		return "galaxium_seats_available"
	default:
		return "economy_seats_available"
	}
}

// seatExecer is satisfied by both the pool and a pgx transaction, so
// the booking transaction runs the seat operations under its own tx.
type seatExecer interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}

// reserveSeat decrements the counter for one seat class. The
// conditional UPDATE is the authoritative availability check: the row
// lock it takes serializes concurrent bookings on the same flight, so
// the last seat goes to exactly one of them.
func reserveSeat(ctx context.Context, db seatExecer, flightID int64, class domain.SeatClass) error {
	col := seatColumn(class)
	res, err := db.Exec(ctx, fmt.Sprintf(`UPDATE flights SET %s = %s - 1 WHERE flight_id=$1 AND %s > 0`, col, col, col), flightID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return domain.ErrNoSeatsAvailable(class)
	}
	return nil
}

// releaseSeat increments the class counter. A missing flight is a
// no-op: the caller is reversing a reservation it already validated.
func releaseSeat(ctx context.Context, db seatExecer, flightID int64, class domain.SeatClass) error {
	col := seatColumn(class)
	_, err := db.Exec(ctx, fmt.Sprintf(`UPDATE flights SET %s = %s + 1 WHERE flight_id=$1`, col, col), flightID)
	return err
}

func (r *PGFlightRepository) List(ctx context.Context) ([]domain.Flight, error) {
	rows, err := r.db.Query(ctx, `SELECT `+flightColumns+` FROM flights ORDER BY flight_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	flights := make([]domain.Flight, 0)
	for rows.Next() {
		var f domain.Flight
		if err := rows.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.BasePrice, &f.EconomySeats, &f.BusinessSeats, &f.GalaxiumSeats); err != nil {
			return nil, err
		}
		flights = append(flights, f)
	}
	return flights, rows.Err()
}

func (r *PGFlightRepository) GetByID(ctx context.Context, id int64) (*domain.Flight, error) {
	row := r.db.QueryRow(ctx, `SELECT `+flightColumns+` FROM flights WHERE flight_id=$1`, id)
	var f domain.Flight
	if err := row.Scan(&f.ID, &f.Origin, &f.Destination, &f.DepartureTime, &f.ArrivalTime, &f.BasePrice, &f.EconomySeats, &f.BusinessSeats, &f.GalaxiumSeats); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &f, nil
}

func (r *PGFlightRepository) Create(ctx context.Context, flight *domain.Flight) error {
	return r.db.QueryRow(ctx, `INSERT INTO flights (origin, destination, departure_time, arrival_time, base_price, economy_seats_available, business_seats_available, galaxium_seats_available)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING flight_id`,
		flight.Origin, flight.Destination, flight.DepartureTime, flight.ArrivalTime, flight.BasePrice, flight.EconomySeats, flight.BusinessSeats, flight.GalaxiumSeats).
		Scan(&flight.ID)
}

var _ FlightRepository = (*PGFlightRepository)(nil)
