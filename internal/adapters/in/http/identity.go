package http

import (
	"net/http"
	"strings"

	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

// Identity headers are set by the upstream auth gateway; this service trusts
// them as given.
const (
	HeaderUserID     = "X-User-ID"
	HeaderUserRole   = "X-User-Role"
	HeaderGuestToken = "X-Guest-Token"

	roleAdmin     = "admin"
	identityKey   = "identity"
	guestTokenArg = "token"
)

// identify parses the caller headers into a queries.Caller stored on the
// echo context. A malformed user id is rejected.
func (s *Server) identify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		caller := queries.Caller{
			IsAdmin:    strings.EqualFold(c.Request().Header.Get(HeaderUserRole), roleAdmin),
			GuestToken: c.Request().Header.Get(HeaderGuestToken),
		}
		if caller.GuestToken == "" {
			caller.GuestToken = c.QueryParam(guestTokenArg)
		}

		if raw := c.Request().Header.Get(HeaderUserID); raw != "" {
			userID, err := kernel.UUIDFromString(raw)
			if err != nil {
				return c.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid " + HeaderUserID + " header",
				})
			}
			caller.UserID = &userID
		}

		c.Set(identityKey, caller)
		return next(c)
	}
}

func requireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !callerOf(c).IsAdmin {
			return c.JSON(http.StatusForbidden, Error{
				Code:    http.StatusForbidden,
				Message: "Admin access required",
			})
		}
		return next(c)
	}
}

func callerOf(c echo.Context) queries.Caller {
	caller, _ := c.Get(identityKey).(queries.Caller)
	return caller
}
