package http

import (
	"context"
	"log/slog"
	"net/http"

	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/cart"
	"bookstore/internal/core/domain/model/order"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Use case handlers the server depends on.
type (
	CartReader interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (*cart.Cart, error)
	}
	CartItemAdder interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (*cart.Cart, error)
	}
	CartItemUpdater interface {
		Handle(ctx context.Context, cmd commands.UpdateCartItemCommand) (*cart.Cart, error)
	}
	CartItemRemover interface {
		Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) (*cart.Cart, error)
	}
	CheckoutRunner interface {
		Handle(ctx context.Context, cmd commands.CheckoutCommand) (commands.PlaceOrderResult, error)
	}
	StatusTransitioner interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (commands.TransitionResult, error)
	}
	OrderReader interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (*order.Order, error)
	}
	OrderLister interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.OrderSummary, error)
	}
	UserOrderLister interface {
		Handle(ctx context.Context, query queries.ListUserOrdersQuery) ([]queries.OrderSummary, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	GetCart          CartReader
	AddCartItem      CartItemAdder
	UpdateCartItem   CartItemUpdater
	RemoveCartItem   CartItemRemover
	Checkout         CheckoutRunner
	TransitionStatus StatusTransitioner
	GetOrder         OrderReader
	ListOrders       OrderLister
	ListUserOrders   UserOrderLister
}

// Server translates HTTP requests into commands and queries.
//
// Caller identity, including the admin role, is read from the X-User-ID and
// X-User-Role headers without verification. The server must only be reachable
// through the auth gateway that sets those headers and strips client-supplied
// copies; exposed directly, any client can call the admin routes.
type Server struct {
	handlers     Handlers
	secureCookie bool
	logger       *slog.Logger
}

// NewServer creates a new HTTP server. secureCookie marks the cart session
// cookie Secure and should be set behind TLS. See Server for the deployment
// requirement on identity headers.
func NewServer(handlers Handlers, secureCookie bool, logger *slog.Logger) *Server {
	return &Server{
		handlers:     handlers,
		secureCookie: secureCookie,
		logger:       logger.With("component", "http"),
	}
}

// Register mounts every route on e.
//
//	GET    /health
//	GET    /api/v1/cart
//	POST   /api/v1/cart/items
//	PATCH  /api/v1/cart/items/:bookId
//	DELETE /api/v1/cart/items/:bookId
//	POST   /api/v1/checkout
//	GET    /api/v1/orders/:id
//	GET    /api/v1/me/orders
//	GET    /api/v1/admin/orders
//	PATCH  /api/v1/admin/orders/:id/status
func (s *Server) Register(e *echo.Echo) {
	e.Use(middleware.Recover())
	e.Use(s.requestLogger())

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})

	api := e.Group("/api/v1", s.identify)
	api.GET("/cart", s.GetCart)
	api.POST("/cart/items", s.AddCartItem)
	api.PATCH("/cart/items/:bookId", s.UpdateCartItem)
	api.DELETE("/cart/items/:bookId", s.RemoveCartItem)
	api.POST("/checkout", s.Checkout)
	api.GET("/orders/:id", s.GetOrder)
	api.GET("/me/orders", s.ListMyOrders)

	admin := api.Group("/admin", requireAdmin)
	admin.GET("/orders", s.ListOrders)
	admin.PATCH("/orders/:id/status", s.TransitionOrderStatus)
}

func (s *Server) requestLogger() echo.MiddlewareFunc {
	return middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:   true,
		LogURI:      true,
		LogStatus:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Status >= http.StatusInternalServerError {
				level = slog.LevelError
			}
			attrs := []slog.Attr{
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				attrs = append(attrs, slog.String("error", v.Error.Error()))
			}
			s.logger.LogAttrs(c.Request().Context(), level, "request", attrs...)
			return nil
		},
	})
}
