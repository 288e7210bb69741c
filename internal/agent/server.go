// Package agent exposes the booking operations to AI agents as a
// JSON-RPC 2.0 tool-call endpoint: initialize, tools/list and
// tools/call. Tool failures carry the business error's details as
// text with an isError flag instead of a protocol-level error.
package agent

import (
	"encoding/json"
	"net/http"

	"github.com/Domenick1991/galaxium-booking/internal/domain"
	"github.com/Domenick1991/galaxium-booking/internal/service/booking"
	"github.com/Domenick1991/galaxium-booking/internal/service/flights"
	"github.com/Domenick1991/galaxium-booking/internal/service/users"
	"github.com/gin-gonic/gin"
)

const protocolVersion = "2024-11-05"

type Server struct {
	flights  flights.FlightUseCase
	bookings booking.BookingUseCase
	users    users.UserUseCase
}

func NewServer(flights flights.FlightUseCase, bookings booking.BookingUseCase, users users.UserUseCase) *Server {
	return &Server{flights: flights, bookings: bookings, users: users}
}

func (s *Server) Register(router *gin.RouterGroup) {
	router.POST("/mcp", s.handle)
}

type rpcRequest struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params"`
}

type rpcError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type rpcResponse struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  interface{}     `json:"result,omitempty"`
	Error   *rpcError       `json:"error,omitempty"`
}

type toolDescriptor struct {
	Name        string                 `json:"name"`
	Description string                 `json:"description"`
	InputSchema map[string]interface{} `json:"inputSchema"`
}

type toolContent struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type toolResult struct {
	Content []toolContent `json:"content"`
	IsError bool          `json:"isError,omitempty"`
}

type callParams struct {
	Name      string          `json:"name"`
	Arguments json.RawMessage `json:"arguments"`
}

func (s *Server) handle(c *gin.Context) {
	var req rpcRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", Error: &rpcError{Code: -32700, Message: "parse error"}})
		return
	}

	switch req.Method {
	case "initialize":
		c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: gin.H{
			"protocolVersion": protocolVersion,
			"capabilities":    gin.H{"tools": gin.H{}},
			"serverInfo":      gin.H{"name": "Galaxium Booking System", "version": "1.0.0"},
		}})
	case "tools/list":
		c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: gin.H{"tools": toolList()}})
	case "tools/call":
		var params callParams
		if err := json.Unmarshal(req.Params, &params); err != nil {
			c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32602, Message: "invalid params"}})
			return
		}
		result, err := s.callTool(c, params)
		if err != nil {
			c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32603, Message: err.Error()}})
			return
		}
		c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Result: result})
	default:
		c.JSON(http.StatusOK, rpcResponse{JSONRPC: "2.0", ID: req.ID, Error: &rpcError{Code: -32601, Message: "method not found"}})
	}
}

func (s *Server) callTool(c *gin.Context, params callParams) (*toolResult, error) {
	ctx := c.Request.Context()

	var value interface{}
	var err error

	switch params.Name {
	case "list_flights":
		value, err = s.flights.List(ctx)
	case "book_flight":
		var args struct {
			UserID    int64  `json:"user_id"`
			Name      string `json:"name"`
			FlightID  int64  `json:"flight_id"`
			SeatClass string `json:"seat_class"`
		}
		if uerr := json.Unmarshal(params.Arguments, &args); uerr != nil {
			return errorResult("invalid arguments for book_flight"), nil
		}
		value, err = s.bookings.BookFlight(ctx, booking.BookFlightInput{
			UserID:    args.UserID,
			Name:      args.Name,
			FlightID:  args.FlightID,
			SeatClass: args.SeatClass,
		})
	case "get_bookings":
		var args struct {
			UserID int64 `json:"user_id"`
		}
		if uerr := json.Unmarshal(params.Arguments, &args); uerr != nil {
			return errorResult("invalid arguments for get_bookings"), nil
		}
		value, err = s.bookings.GetBookings(ctx, args.UserID)
	case "cancel_booking":
		var args struct {
			BookingID int64 `json:"booking_id"`
		}
		if uerr := json.Unmarshal(params.Arguments, &args); uerr != nil {
			return errorResult("invalid arguments for cancel_booking"), nil
		}
		value, err = s.bookings.CancelBooking(ctx, args.BookingID)
	case "register_user":
		var args struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if uerr := json.Unmarshal(params.Arguments, &args); uerr != nil {
			return errorResult("invalid arguments for register_user"), nil
		}
		value, err = s.users.Register(ctx, args.Name, args.Email)
	case "get_user_id":
		var args struct {
			Name  string `json:"name"`
			Email string `json:"email"`
		}
		if uerr := json.Unmarshal(params.Arguments, &args); uerr != nil {
			return errorResult("invalid arguments for get_user_id"), nil
		}
		value, err = s.users.Find(ctx, args.Name, args.Email)
	default:
		return errorResult("unknown tool: " + params.Name), nil
	}

	if err != nil {
		if businessErr, ok := domain.AsError(err); ok {
			text := businessErr.Details
			if text == "" {
				text = businessErr.Message
			}
			return errorResult(text), nil
		}
		return nil, err
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return nil, err
	}
	return &toolResult{Content: []toolContent{{Type: "text", Text: string(payload)}}}, nil
}

func errorResult(text string) *toolResult {
	return &toolResult{
		Content: []toolContent{{Type: "text", Text: text}},
		IsError: true,
	}
}

func toolList() []toolDescriptor {
	return []toolDescriptor{
		{
			Name:        "list_flights",
			Description: "List all available flights with origin, destination, times, per-class prices, and seats available.",
			InputSchema: objectSchema(map[string]interface{}{}, nil),
		},
		{
			Name:        "book_flight",
			Description: "Book a seat on a specific flight for a user in the specified seat class. Optional seat_class: 'economy' (default), 'business', or 'galaxium'. Decrements available seats for the selected class if successful.",
			InputSchema: objectSchema(map[string]interface{}{
				"user_id":    map[string]interface{}{"type": "integer"},
				"name":       map[string]interface{}{"type": "string"},
				"flight_id":  map[string]interface{}{"type": "integer"},
				"seat_class": map[string]interface{}{"type": "string", "enum": []string{"economy", "business", "galaxium"}},
			}, []string{"user_id", "name", "flight_id"}),
		},
		{
			Name:        "get_bookings",
			Description: "Retrieve all bookings for a specific user by user_id.",
			InputSchema: objectSchema(map[string]interface{}{
				"user_id": map[string]interface{}{"type": "integer"},
			}, []string{"user_id"}),
		},
		{
			Name:        "cancel_booking",
			Description: "Cancel an existing booking by its booking_id. Increments available seats for the booking's seat class if successful.",
			InputSchema: objectSchema(map[string]interface{}{
				"booking_id": map[string]interface{}{"type": "integer"},
			}, []string{"booking_id"}),
		},
		{
			Name:        "register_user",
			Description: "Register a new user with a name and unique email.",
			InputSchema: objectSchema(map[string]interface{}{
				"name":  map[string]interface{}{"type": "string"},
				"email": map[string]interface{}{"type": "string"},
			}, []string{"name", "email"}),
		},
		{
			Name:        "get_user_id",
			Description: "Retrieve a user's information, including user_id, by providing both name and email.",
			InputSchema: objectSchema(map[string]interface{}{
				"name":  map[string]interface{}{"type": "string"},
				"email": map[string]interface{}{"type": "string"},
			}, []string{"name", "email"}),
		},
	}
}

func objectSchema(properties map[string]interface{}, required []string) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": properties,
	}
	if len(required) > 0 {
		schema["required"] = required
	}
	return schema
}
