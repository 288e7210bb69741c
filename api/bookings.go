package api

import (
	"net/http"
	"strconv"

	"github.com/Domenick1991/galaxium-booking/internal/service/booking"
	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	service booking.BookingUseCase
}

type bookFlightRequest struct {
	UserID    int64  `json:"user_id" binding:"required"`
	Name      string `json:"name" binding:"required"`
	FlightID  int64  `json:"flight_id" binding:"required"`
	SeatClass string `json:"seat_class"`
}

func NewBookingHandler(service booking.BookingUseCase) *BookingHandler {
	return &BookingHandler{service: service}
}

func (h *BookingHandler) Register(router *gin.RouterGroup) {
	router.POST("/book", h.book)
	router.GET("/bookings/:user_id", h.listForUser)
	router.POST("/cancel/:booking_id", h.cancel)
}

func (h *BookingHandler) book(c *gin.Context) {
	var req bookFlightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := h.service.BookFlight(c.Request.Context(), booking.BookFlightInput{
		UserID:    req.UserID,
		Name:      req.Name,
		FlightID:  req.FlightID,
		SeatClass: req.SeatClass,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (h *BookingHandler) listForUser(c *gin.Context) {
	userID, err := strconv.ParseInt(c.Param("user_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user_id"})
		return
	}

	bookings, err := h.service.GetBookings(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

func (h *BookingHandler) cancel(c *gin.Context) {
	bookingID, err := strconv.ParseInt(c.Param("booking_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid booking_id"})
		return
	}

	cancelled, err := h.service.CancelBooking(c.Request.Context(), bookingID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
