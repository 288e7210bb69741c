package domain

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	CodeInvalidSeatClass ErrorCode = "INVALID_SEAT_CLASS"
	CodeFlightNotFound   ErrorCode = "FLIGHT_NOT_FOUND"
	CodeNoSeatsAvailable ErrorCode = "NO_SEATS_AVAILABLE"
	CodeUserNotFound     ErrorCode = "USER_NOT_FOUND"
	CodeNameMismatch     ErrorCode = "NAME_MISMATCH"
	CodeBookingNotFound  ErrorCode = "BOOKING_NOT_FOUND"
	CodeAlreadyCancelled ErrorCode = "ALREADY_CANCELLED"
	CodeInvalidEmail     ErrorCode = "INVALID_EMAIL"
	CodeEmailExists      ErrorCode = "EMAIL_EXISTS"
)

// Error is the business-rule outcome returned by the core services.
// Expected failures are values of this type, not panics; infrastructure
// failures propagate as plain wrapped errors instead.
type Error struct {
	Code    ErrorCode
	Message string
	Details string
}

func (e *Error) Error() string {
	if e.Details != "" {
		return e.Message + ": " + e.Details
	}
	return e.Message
}

// AsError extracts a business error from an error chain.
func AsError(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func ErrInvalidSeatClass(class string) *Error {
	return &Error{
		Code:    CodeInvalidSeatClass,
		Message: "Invalid seat class",
		Details: fmt.Sprintf("Seat class '%s' is not recognized. Valid seat classes are 'economy', 'business', and 'galaxium'.", class),
	}
}

func ErrFlightNotFound(flightID int64) *Error {
	return &Error{
		Code:    CodeFlightNotFound,
		Message: "Flight not found",
		Details: fmt.Sprintf("The specified flight_id %d does not exist in our system. Please check the flight_id or use list_flights to see available flights.", flightID),
	}
}

func ErrNoSeatsAvailable(class SeatClass) *Error {
	return &Error{
		Code:    CodeNoSeatsAvailable,
		Message: "No seats available",
		Details: fmt.Sprintf("No %s class seats are available on this flight. Please check other flights, try a different seat class, or try again later if seats become available.", class),
	}
}

func ErrUserNotFound(userID int64) *Error {
	return &Error{
		Code:    CodeUserNotFound,
		Message: "User not found",
		Details: fmt.Sprintf("User with ID %d is not registered in our system. The user might need to register first, or you may need to check if the user_id is correct.", userID),
	}
}

func ErrUserNotFoundByIdentity(name, email string) *Error {
	return &Error{
		Code:    CodeUserNotFound,
		Message: "User not found",
		Details: fmt.Sprintf("User not found with name '%s' and email '%s'. The user may not be registered in our system. Please check the spelling of both name and email, or register the user first.", name, email),
	}
}

func ErrNameMismatch(userID int64, given, registered string) *Error {
	return &Error{
		Code:    CodeNameMismatch,
		Message: "Name mismatch",
		Details: fmt.Sprintf("User ID %d exists but the name '%s' does not match the registered name '%s'. Please verify the user's name or use the correct name for this user ID.", userID, given, registered),
	}
}

func ErrBookingNotFound(bookingID int64) *Error {
	return &Error{
		Code:    CodeBookingNotFound,
		Message: "Booking not found",
		Details: fmt.Sprintf("Booking with ID %d not found. The booking may have been deleted or the booking_id may be incorrect. Please verify the booking_id or check if the booking exists.", bookingID),
	}
}

func ErrAlreadyCancelled(bookingID int64, status BookingStatus) *Error {
	return &Error{
		Code:    CodeAlreadyCancelled,
		Message: "Booking already cancelled",
		Details: fmt.Sprintf("Booking %d is already cancelled and cannot be cancelled again. The booking status is currently '%s'. If you need to make changes, please contact support.", bookingID, status),
	}
}

func ErrInvalidEmail(email string) *Error {
	return &Error{
		Code:    CodeInvalidEmail,
		Message: "Invalid email format",
		Details: fmt.Sprintf("Email '%s' is not a valid email address. Please provide an address like 'name@example.com'.", email),
	}
}

func ErrEmailExists(email string) *Error {
	return &Error{
		Code:    CodeEmailExists,
		Message: "Email already registered",
		Details: fmt.Sprintf("Email '%s' is already registered. A user with this email already exists in our system. If you're trying to access an existing account, use get_user_id with the correct name and email to get the user_id.", email),
	}
}
