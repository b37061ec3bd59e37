package cmd

import (
	"log/slog"

	httpin "bookstore/internal/adapters/in/http"
	"bookstore/internal/adapters/out/channels"
	"bookstore/internal/adapters/out/guesttoken"
	"bookstore/internal/adapters/out/postgres"
	"bookstore/internal/adapters/out/postgres/auditrepo"
	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/redis/cartstore"
	"bookstore/internal/core/application/audit"
	"bookstore/internal/core/application/notify"
	"bookstore/internal/core/application/usecases/commands"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	carts      *cartstore.RedisCartStore
	tokens     *guesttoken.JWTIssuer
	dispatcher *notify.Dispatcher
	recorder   *audit.Recorder
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, redisClient *redis.Client, logger *slog.Logger) (CompositionRoot, error) {
	tokens, err := guesttoken.NewJWTIssuer(config.GuestTokenSecret, config.GuestTokenTTL)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
		carts:      cartstore.NewRedisCartStore(redisClient, config.CartTTL, logger),
		tokens:     tokens,
		dispatcher: notify.NewDispatcher(
			channels.NewLogEmailSender(config.EmailFrom, logger),
			channels.NewLogAdminAlerter(config.AdminAlertNumber, logger),
			logger,
		),
		recorder: audit.NewRecorder(auditrepo.NewGormAuditSink(gormDB), logger),
	}, nil
}

func (c *CompositionRoot) CreatePlaceOrderCommandHandler() *commands.PlaceOrderCommandHandler {
	var f commands.PlacementUoWFactory = FuncPlacementUoWFactory(func() commands.PlacementUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOrderCommandHandler(f, c.tokens, c.dispatcher, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() *commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.carts, c.CreatePlaceOrderCommandHandler(), c.logger)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() *commands.TransitionOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewTransitionOrderStatusCommandHandler(f, c.dispatcher, c.recorder, c.logger)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() *commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.carts, bookrepo.NewGormBookRepository(c.gormDB))
}

func (c *CompositionRoot) CreateUpdateCartItemCommandHandler() *commands.UpdateCartItemCommandHandler {
	return commands.NewUpdateCartItemCommandHandler(c.carts, bookrepo.NewGormBookRepository(c.gormDB))
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() *commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.carts)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.carts)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(orderrepo.NewGormOrderRepository(c.gormDB), c.tokens)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListUserOrdersQueryHandler() queries.ListUserOrdersQueryHandler {
	return queries.NewListUserOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetLowStockBooksQueryHandler() queries.GetLowStockBooksQueryHandler {
	return queries.NewGetLowStockBooksQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateLowStockAlertJob() *jobs.LowStockAlertJob {
	return jobs.NewLowStockAlertJob(
		c.CreateGetLowStockBooksQueryHandler(),
		c.dispatcher,
		c.config.LowStockThreshold,
		c.config.LowStockCron,
		c.logger,
	)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		GetCart:          c.CreateGetCartQueryHandler(),
		AddCartItem:      c.CreateAddCartItemCommandHandler(),
		UpdateCartItem:   c.CreateUpdateCartItemCommandHandler(),
		RemoveCartItem:   c.CreateRemoveCartItemCommandHandler(),
		Checkout:         c.CreateCheckoutCommandHandler(),
		TransitionStatus: c.CreateTransitionOrderStatusCommandHandler(),
		GetOrder:         c.CreateGetOrderQueryHandler(),
		ListOrders:       c.CreateListOrdersQueryHandler(),
		ListUserOrders:   c.CreateListUserOrdersQueryHandler(),
	}, c.config.CookieSecure, c.logger)
}

type FuncPlacementUoWFactory func() commands.PlacementUoW

func (f FuncPlacementUoWFactory) Create() commands.PlacementUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}
