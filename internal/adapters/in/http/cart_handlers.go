package http

import (
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// GetCart handles GET /api/v1/cart. A visitor without a session sees an empty cart.
func (s *Server) GetCart(c echo.Context) error {
	sessionID := s.sessionID(c, false)
	if sessionID == "" {
		return c.JSON(http.StatusOK, emptyCart())
	}

	query, err := queries.NewGetCartQuery(sessionID)
	if err != nil {
		return s.fail(c, err)
	}

	crt, err := s.handlers.GetCart.Handle(c.Request().Context(), query)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(crt))
}

// AddCartItem handles POST /api/v1/cart/items.
func (s *Server) AddCartItem(c echo.Context) error {
	var request AddCartItemRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bookID, err := kernel.UUIDFromString(request.BookID)
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewAddCartItemCommand(s.sessionID(c, true), bookID, request.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	crt, err := s.handlers.AddCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(crt))
}

// UpdateCartItem handles PATCH /api/v1/cart/items/:bookId.
func (s *Server) UpdateCartItem(c echo.Context) error {
	var request UpdateCartItemRequest
	if err := c.Bind(&request); err != nil {
		return badRequest(c, "Invalid request body")
	}

	bookID, err := kernel.UUIDFromString(c.Param("bookId"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewUpdateCartItemCommand(s.sessionID(c, true), bookID, request.Quantity)
	if err != nil {
		return s.fail(c, err)
	}

	crt, err := s.handlers.UpdateCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(crt))
}

// RemoveCartItem handles DELETE /api/v1/cart/items/:bookId.
func (s *Server) RemoveCartItem(c echo.Context) error {
	bookID, err := kernel.UUIDFromString(c.Param("bookId"))
	if err != nil {
		return s.fail(c, err)
	}

	cmd, err := commands.NewRemoveCartItemCommand(s.sessionID(c, true), bookID)
	if err != nil {
		return s.fail(c, err)
	}

	crt, err := s.handlers.RemoveCartItem.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, err)
	}

	return c.JSON(http.StatusOK, toCart(crt))
}
