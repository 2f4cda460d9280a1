// Package http exposes the order operations over an echo HTTP server.
// Domain errors are translated to status codes here; persistence causes are
// logged and never leaked into response bodies.
package http

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the single error body shape for all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ClientID int64  `json:"clientId"`
	Date     string `json:"date"`
}

// CreateOrderResponse carries the store-assigned identifier.
type CreateOrderResponse struct {
	ID int64 `json:"id"`
}

// UpdateStatusRequest is the body of PATCH /api/v1/orders/:id/status.
type UpdateStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the projection returned by GET /api/v1/orders/:id.
type OrderResponse struct {
	ID       int64     `json:"id"`
	ClientID int64     `json:"clientId"`
	Status   string    `json:"status"`
	Date     time.Time `json:"date"`
}

// StatusResponse is the body of GET /api/v1/orders/:id/status.
type StatusResponse struct {
	Status string `json:"status"`
}

// HistoryEntryResponse is one element of GET /api/v1/orders/:id/history.
type HistoryEntryResponse struct {
	Status string    `json:"status"`
	Date   time.Time `json:"date"`
}

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createOrderHandler  commands.CreateOrderCommandHandler
	updateStatusHandler commands.UpdateOrderStatusCommandHandler

	// Query handlers
	getOrderHandler        queries.GetOrderQueryHandler
	getOrderStatusHandler  queries.GetOrderStatusQueryHandler
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler

	version VersionInfo
	logger  *slog.Logger
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createOrderHandler commands.CreateOrderCommandHandler,
	updateStatusHandler commands.UpdateOrderStatusCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	getOrderStatusHandler queries.GetOrderStatusQueryHandler,
	getOrderHistoryHandler queries.GetOrderHistoryQueryHandler,
	version VersionInfo,
	logger *slog.Logger,
) *Server {
	return &Server{
		createOrderHandler:     createOrderHandler,
		updateStatusHandler:    updateStatusHandler,
		getOrderHandler:        getOrderHandler,
		getOrderStatusHandler:  getOrderStatusHandler,
		getOrderHistoryHandler: getOrderHistoryHandler,
		version:                version,
		logger:                 logger.With("component", "http_server"),
	}
}

// RegisterRoutes mounts all endpoints on the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.Use(RequireJSONContentType)

	e.GET("/version", s.GetVersion)

	api := e.Group("/api/v1")
	api.POST("/orders", s.CreateOrder)
	api.GET("/orders/:id", s.GetOrder)
	api.PATCH("/orders/:id/status", s.UpdateOrderStatus)
	api.GET("/orders/:id/status", s.GetOrderStatus)
	api.GET("/orders/:id/history", s.GetOrderHistory)
}

// CreateOrder handles POST /api/v1/orders - creates a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request CreateOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	clientID, err := kernel.NewClientID(request.ClientID)
	if err != nil {
		return badRequest(ctx, "Invalid client id")
	}

	if request.Date == "" {
		return badRequest(ctx, "Missing order date")
	}
	creationDate, err := time.Parse(time.RFC3339, request.Date)
	if err != nil {
		return badRequest(ctx, "Invalid order date")
	}

	cmd, err := commands.NewCreateOrderCommand(clientID, creationDate)
	if err != nil {
		return badRequest(ctx, "Invalid order data")
	}

	created, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateOrderResponse{ID: created.ID().Int64()})
}

// UpdateOrderStatus handles PATCH /api/v1/orders/:id/status.
func (s *Server) UpdateOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	var request UpdateStatusRequest
	if err = ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	status, err := order.ParseStatus(request.Status)
	if err != nil {
		return badRequest(ctx, "Unknown status")
	}

	cmd, err := commands.NewUpdateOrderStatusCommand(orderID, status)
	if err != nil {
		return badRequest(ctx, "Invalid status update")
	}

	if _, err = s.updateStatusHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetOrder handles GET /api/v1/orders/:id.
func (s *Server) GetOrder(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, OrderResponse{
		ID:       result.ID.Int64(),
		ClientID: result.ClientID.Int64(),
		Status:   result.Status.String(),
		Date:     result.CreationDate,
	})
}

// GetOrderStatus handles GET /api/v1/orders/:id/status.
func (s *Server) GetOrderStatus(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderStatusQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	result, err := s.getOrderStatusHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, StatusResponse{Status: result.Status.String()})
}

// GetOrderHistory handles GET /api/v1/orders/:id/history.
func (s *Server) GetOrderHistory(ctx echo.Context) error {
	orderID, err := kernel.ParseOrderID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	query, err := queries.NewGetOrderHistoryQuery(orderID)
	if err != nil {
		return badRequest(ctx, "Invalid order id")
	}

	entries, err := s.getOrderHistoryHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.mapError(ctx, err)
	}

	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		response[i] = HistoryEntryResponse{
			Status: entry.Status.String(),
			Date:   entry.ChangeDate,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// mapError translates use case errors into HTTP responses. Persistence
// causes are logged here and replaced with a generic message.
//
// Caller input is validated by the route handlers before a use case runs, so
// a validation error surfacing from a handler means corrupt stored data and
// falls through to the internal-error default.
func (s *Server) mapError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, order.ErrCreationDateInFuture):
		return badRequest(ctx, "Order date lies in the future")
	case errors.Is(err, order.ErrInvalidStatusTransition):
		return badRequest(ctx, "Status transition is not allowed")
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, ErrorResponse{
			Code:    http.StatusNotFound,
			Message: "Order not found",
		})
	case errors.Is(err, errs.ErrPersistenceFailed):
		s.logger.ErrorContext(ctx.Request().Context(), "persistence failure",
			"path", ctx.Request().URL.Path,
			"error", err)
		return internalError(ctx)
	default:
		s.logger.ErrorContext(ctx.Request().Context(), "unhandled error",
			"path", ctx.Request().URL.Path,
			"error", err)
		return internalError(ctx)
	}
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
	})
}
