package http

import (
	"errors"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/order"
	"bookstore/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// fail writes the JSON error for err. Server-side failures are logged and
// answered with a generic message.
func (s *Server) fail(c echo.Context, err error) error {
	body := errorBody(err)
	if body.Code >= http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), "request failed",
			"method", c.Request().Method, "path", c.Path(), "error", err)
	}
	return c.JSON(body.Code, body)
}

func errorBody(err error) Error {
	var short *book.InsufficientStockError
	if errors.As(err, &short) {
		return Error{
			Code:    http.StatusConflict,
			Message: short.Error(),
			Details: StockShortage{
				BookID:    short.BookID.String(),
				Title:     short.Title,
				Available: short.Available,
				Requested: short.Requested,
			},
		}
	}

	switch {
	case errors.Is(err, errs.ErrPersistence):
		return internalError()
	case errors.Is(err, commands.ErrEmptyCart):
		return Error{Code: http.StatusBadRequest, Message: "Cart is empty"}
	case errors.Is(err, cart.ErrStockExceeded),
		errors.Is(err, commands.ErrStatusConflict):
		return Error{Code: http.StatusConflict, Message: err.Error()}
	case errors.Is(err, order.ErrStatusNotFound):
		return Error{Code: http.StatusBadRequest, Message: "Unknown order status"}
	case errors.Is(err, order.ErrOrderNotFound):
		return Error{Code: http.StatusNotFound, Message: "Order not found"}
	case errors.Is(err, cart.ErrBookUnavailable),
		errors.Is(err, cart.ErrItemNotFound),
		errors.Is(err, errs.ErrObjectNotFound):
		return Error{Code: http.StatusNotFound, Message: err.Error()}
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid):
		return Error{Code: http.StatusBadRequest, Message: err.Error()}
	default:
		return internalError()
	}
}

func internalError() Error {
	return Error{Code: http.StatusInternalServerError, Message: "Internal server error"}
}

func badRequest(c echo.Context, message string) error {
	return c.JSON(http.StatusBadRequest, Error{Code: http.StatusBadRequest, Message: message})
}
