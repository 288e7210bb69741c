// Package pricing maps a flight's base price and a seat class to the
// price actually paid. Multipliers are fixed: economy x1, business
// x2.5 rounded down, galaxium x5.
package pricing

import "github.com/Domenick1991/galaxium-booking/internal/domain"

func PriceFor(basePrice int64, class domain.SeatClass) int64 {
	switch class {
	case domain.SeatClassBusiness:
		return basePrice * 5 / 2
	case domain.SeatClassGalaxium:
		return basePrice * 5
	default:
		return basePrice
	}
}
