package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
)

// Checkout handles POST /api/v1/checkout. Registered callers are identified by
// header; everyone else checks out as a guest and receives a guest token.
func (s *Server) Checkout(c echo.Context) error {
	var request CheckoutRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}

	sessionID := s.sessionID(c, false)
	if sessionID == "" {
		return s.fail(c, commands.ErrEmptyCart)
	}

	cmd, err := commands.NewCheckoutCommand(
		sessionID,
		callerOf(c).UserID,
		order.Contact{Name: request.Name, Email: request.Email, Phone: request.Phone},
		request.ShippingAddress,
	)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.Checkout.Handle(c.Request().Context(), cmd)
	if errors.Is(err, order.ErrStatusNotFound) {
		// the status catalogue is not seeded
		s.logger.ErrorContext(c.Request().Context(), "checkout failed", "error", err)
		return c.JSON(http.StatusInternalServerError, internalError())
	}
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusCreated, CheckoutResponse{
		OrderID:    result.OrderID.String(),
		GuestToken: result.GuestToken,
	})
}

// GetOrder handles GET /api/v1/orders/:id for admins, the owner, or a guest
// holding the order's token.
func (s *Server) GetOrder(c echo.Context) error {
	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, order.ErrOrderNotFound)
	}

	query, err := queries.NewGetOrderQuery(orderID, callerOf(c))
	if err != nil {
		return s.fail(c, err)
	}

	o, err := s.handlers.GetOrder.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrder(o))
}

// ListMyOrders handles GET /api/v1/me/orders.
func (s *Server) ListMyOrders(c echo.Context) error {
	userID := callerOf(c).UserID
	if userID == nil {
		return c.JSON(http.StatusUnauthorized, Error{
			Code:    http.StatusUnauthorized,
			Message: "Sign in to see your orders",
		})
	}

	query, err := queries.NewListUserOrdersQuery(*userID)
	if err != nil {
		return s.fail(c, err)
	}

	orders, err := s.handlers.ListUserOrders.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaries(orders))
}

// ListOrders handles GET /api/v1/admin/orders.
func (s *Server) ListOrders(c echo.Context) error {
	orders, err := s.handlers.ListOrders.Handle(c.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toOrderSummaries(orders))
}

// TransitionOrderStatus handles PATCH /api/v1/admin/orders/:id/status.
func (s *Server) TransitionOrderStatus(c echo.Context) error {
	var request TransitionStatusRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(c.Param("id"))
	if err != nil {
		return s.fail(c, order.ErrOrderNotFound)
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(orderID, request.Status, callerOf(c).UserID)
	if err != nil {
		return s.fail(c, err)
	}

	result, err := s.handlers.TransitionStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, TransitionStatusResponse{
		OrderID:        orderID.String(),
		PreviousStatus: result.Previous.String(),
		Status:         result.Current.String(),
		Changed:        result.Changed,
	})
}
