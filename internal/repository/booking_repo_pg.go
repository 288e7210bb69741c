package repository

import (
	"context"
	"errors"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookingRepository interface {
	// Create inserts the booking and decrements the flight's counter
	// for the booking's seat class as one transaction.
	Create(ctx context.Context, booking *domain.Booking) error
	ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error)
	// Cancel flips the booking to cancelled and restores its seat,
	// atomically. Returns the updated booking.
	Cancel(ctx context.Context, id int64) (*domain.Booking, error)
}

const bookingColumns = `booking_id, user_id, flight_id, status, seat_class, booking_time, price_paid`

type PGBookingRepository struct {
	db *pgxpool.Pool
}

func NewBookingRepository(db *pgxpool.Pool) BookingRepository {
	return &PGBookingRepository{db: db}
}

func (r *PGBookingRepository) Create(ctx context.Context, booking *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if err := reserveSeat(ctx, tx, booking.FlightID, booking.SeatClass); err != nil {
		return err
	}

	if err := tx.QueryRow(ctx, `INSERT INTO bookings (user_id, flight_id, status, seat_class, booking_time, price_paid)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING booking_id`,
		booking.UserID, booking.FlightID, booking.Status, booking.SeatClass, booking.BookingTime, booking.PricePaid).
		Scan(&booking.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *PGBookingRepository) ListByUser(ctx context.Context, userID int64) ([]domain.Booking, error) {
	rows, err := r.db.Query(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE user_id=$1`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	bookings := make([]domain.Booking, 0)
	for rows.Next() {
		var b domain.Booking
		if err := rows.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Status, &b.SeatClass, &b.BookingTime, &b.PricePaid); err != nil {
			return nil, err
		}
		bookings = append(bookings, b)
	}
	return bookings, rows.Err()
}

func (r *PGBookingRepository) Cancel(ctx context.Context, id int64) (*domain.Booking, error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	// Lock the booking row so concurrent cancels of the same booking
	// serialize: the loser sees status already flipped.
	row := tx.QueryRow(ctx, `SELECT `+bookingColumns+` FROM bookings WHERE booking_id=$1 FOR UPDATE`, id)
	var b domain.Booking
	if err := row.Scan(&b.ID, &b.UserID, &b.FlightID, &b.Status, &b.SeatClass, &b.BookingTime, &b.PricePaid); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrBookingNotFound(id)
		}
		return nil, err
	}
	if b.Status == domain.BookingStatusCancelled {
		return nil, domain.ErrAlreadyCancelled(id, b.Status)
	}

	if err := releaseSeat(ctx, tx, b.FlightID, b.SeatClass); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `UPDATE bookings SET status=$1 WHERE booking_id=$2`, domain.BookingStatusCancelled, b.ID); err != nil {
		return nil, err
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	b.Status = domain.BookingStatusCancelled
	return &b, nil
}

var _ BookingRepository = (*PGBookingRepository)(nil)
