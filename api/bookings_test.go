package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/service/booking"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type MockBookingUseCase struct {
	mock.Mock
}

func (m *MockBookingUseCase) BookFlight(ctx context.Context, input booking.BookFlightInput) (*domain.Booking, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) CancelBooking(ctx context.Context, bookingID int64) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *MockBookingUseCase) GetBookings(ctx context.Context, userID int64) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

func newBookingRouter(service booking.BookingUseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	NewBookingHandler(service).Register(router.Group(""))
	return router
}

func TestBookingHandler_Book_Created(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	created := &domain.Booking{
		ID:        42,
		UserID:    1,
		FlightID:  4,
		Status:    domain.BookingStatusBooked,
		SeatClass: domain.SeatClassBusiness,
		PricePaid: 250,
	}
	service.On("BookFlight", mock.Anything, booking.BookFlightInput{UserID: 1, Name: "Alice", FlightID: 4, SeatClass: "business"}).Return(created, nil).Once()

	body, _ := json.Marshal(map[string]interface{}{"user_id": 1, "name": "Alice", "flight_id": 4, "seat_class": "business"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var got domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, int64(42), got.ID)
	assert.Equal(t, domain.BookingStatusBooked, got.Status)
	assert.Equal(t, int64(250), got.PricePaid)
}

func TestBookingHandler_Book_InvalidSeatClassEnvelope(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("BookFlight", mock.Anything, mock.Anything).Return(nil, domain.ErrInvalidSeatClass("luxury")).Once()

	body, _ := json.Marshal(map[string]interface{}{"user_id": 1, "name": "Alice", "flight_id": 4, "seat_class": "luxury"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope errorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Success)
	assert.Equal(t, "INVALID_SEAT_CLASS", envelope.ErrorCode)
	assert.Contains(t, envelope.Details, "luxury")
}

func TestBookingHandler_Book_NoSeatsConflict(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("BookFlight", mock.Anything, mock.Anything).Return(nil, domain.ErrNoSeatsAvailable(domain.SeatClassGalaxium)).Once()

	body, _ := json.Marshal(map[string]interface{}{"user_id": 1, "name": "Alice", "flight_id": 4, "seat_class": "galaxium"})
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/book", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope errorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "NO_SEATS_AVAILABLE", envelope.ErrorCode)
	assert.Contains(t, envelope.Details, "galaxium")
}

func TestBookingHandler_ListForUser(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	stored := []domain.Booking{
		{ID: 1, UserID: 7, Status: domain.BookingStatusBooked, SeatClass: domain.SeatClassEconomy},
		{ID: 2, UserID: 7, Status: domain.BookingStatusCancelled, SeatClass: domain.SeatClassBusiness},
	}
	service.On("GetBookings", mock.Anything, int64(7)).Return(stored, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got []domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Len(t, got, 2)
}

func TestBookingHandler_ListForUser_InvalidID(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/bookings/abc", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	service.AssertNotCalled(t, "GetBookings")
}

func TestBookingHandler_Cancel_OK(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	cancelled := &domain.Booking{ID: 7, Status: domain.BookingStatusCancelled, SeatClass: domain.SeatClassEconomy, PricePaid: 100}
	service.On("CancelBooking", mock.Anything, int64(7)).Return(cancelled, nil).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cancel/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var got domain.Booking
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.BookingStatusCancelled, got.Status)
}

func TestBookingHandler_Cancel_AlreadyCancelled(t *testing.T) {
	service := &MockBookingUseCase{}
	router := newBookingRouter(service)

	service.On("CancelBooking", mock.Anything, int64(7)).Return(nil, domain.ErrAlreadyCancelled(7, domain.BookingStatusCancelled)).Once()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/cancel/7", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope errorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "ALREADY_CANCELLED", envelope.ErrorCode)
}
