package api

import (
	"net/http"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/gin-gonic/gin"
)

// errorResponse is the envelope for business-rule failures.
type errorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	ErrorCode string `json:"error_code"`
	Details   string `json:"details,omitempty"`
}

func statusForCode(code domain.ErrorCode) int {
	switch code {
	case domain.CodeFlightNotFound, domain.CodeUserNotFound, domain.CodeBookingNotFound:
		return http.StatusNotFound
	case domain.CodeEmailExists, domain.CodeAlreadyCancelled, domain.CodeNoSeatsAvailable, domain.CodeNameMismatch:
		return http.StatusConflict
	default:
		return http.StatusBadRequest
	}
}

// writeError renders a business error as the envelope and anything
// else as an opaque 500; infrastructure failures are not masked as
// business outcomes.
func writeError(c *gin.Context, err error) {
	if businessErr, ok := domain.AsError(err); ok {
		c.JSON(statusForCode(businessErr.Code), errorResponse{
			Error:     businessErr.Message,
			ErrorCode: string(businessErr.Code),
			Details:   businessErr.Details,
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}
