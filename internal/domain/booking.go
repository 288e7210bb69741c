package domain

type BookingStatus string

const (
	BookingStatusBooked    BookingStatus = "booked"
	BookingStatusCancelled BookingStatus = "cancelled"
	// BookingStatusCompleted is a valid persisted value that the
	// book/cancel paths never produce; reads pass it through unchanged.
	BookingStatusCompleted BookingStatus = "completed"
)

type SeatClass string

const (
	SeatClassEconomy  SeatClass = "economy"
	SeatClassBusiness SeatClass = "business"
	SeatClassGalaxium SeatClass = "galaxium"
)

// ParseSeatClass validates a requested seat class. The empty string
// defaults to economy.
func ParseSeatClass(s string) (SeatClass, bool) {
	switch SeatClass(s) {
	case SeatClassEconomy, SeatClassBusiness, SeatClassGalaxium:
		return SeatClass(s), true
	case "":
		return SeatClassEconomy, true
	default:
		return "", false
	}
}

// Booking is a transactional record. PricePaid is a snapshot of the
// price at booking time and, together with SeatClass and BookingTime,
// is never altered after creation; cancellation flips Status only.
type Booking struct {
	ID          int64         `json:"booking_id"`
	UserID      int64         `json:"user_id"`
	FlightID    int64         `json:"flight_id"`
	Status      BookingStatus `json:"status"`
	SeatClass   SeatClass     `json:"seat_class"`
	BookingTime string        `json:"booking_time"`
	PricePaid   int64         `json:"price_paid"`
}
