package domain

// Flight is a route record. Departure and arrival times are stored as
// ISO 8601 strings; BasePrice is the economy reference price in the
// smallest currency unit. The three seat counters are independent and
// never drop below zero.
type Flight struct {
	ID            int64  `json:"flight_id"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	DepartureTime string `json:"departure_time"`
	ArrivalTime   string `json:"arrival_time"`
	BasePrice     int64  `json:"base_price"`
	EconomySeats  int    `json:"economy_seats_available"`
	BusinessSeats int    `json:"business_seats_available"`
	GalaxiumSeats int    `json:"galaxium_seats_available"`
}

// SeatsAvailable returns the counter for the given class.
func (f *Flight) SeatsAvailable(class SeatClass) int {
	switch class {
	case SeatClassBusiness:
		return f.BusinessSeats
	case SeatClassGalaxium:
		return f.GalaxiumSeats
	default:
		return f.EconomySeats
	}
}

// FlightView is the read-only listing projection: the flight plus the
// derived price for each seat class.
type FlightView struct {
	Flight
	EconomyPrice  int64 `json:"economy_price"`
	BusinessPrice int64 `json:"business_price"`
	GalaxiumPrice int64 `json:"galaxium_price"`
}
