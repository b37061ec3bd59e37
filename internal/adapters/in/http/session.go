package http

import (
	"net/http"
	"time"

	"bookstore/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
)

const (
	SessionCookie = "bookstore_cart"

	sessionMaxAge = 7 * 24 * time.Hour
)

// sessionID returns the cart session from the cookie. When none is present
// and create is set, a new session is started and the cookie written.
func (s *Server) sessionID(c echo.Context, create bool) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie.Value != "" {
		return cookie.Value
	}
	if !create {
		return ""
	}

	id := kernel.NewUUID().String()
	c.SetCookie(&http.Cookie{
		Name:     SessionCookie,
		Value:    id,
		Path:     "/",
		MaxAge:   int(sessionMaxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return id
}
