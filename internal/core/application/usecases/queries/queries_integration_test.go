package queries_test

import (
	"context"
	"testing"
	"time"

	"bookstore/internal/adapters/out/postgres/bookrepo"
	"bookstore/internal/adapters/out/postgres/orderrepo"
	"bookstore/internal/adapters/out/postgres/pgtest"
	"bookstore/internal/core/application/usecases/queries"
	"bookstore/internal/core/domain/model/book"
	"bookstore/internal/core/domain/model/kernel"
	"bookstore/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	db *pgtest.Database
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	db, err := pgtest.Start(context.Background())
	suite.Require().NoError(err)
	suite.db = db
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.db != nil {
		suite.Require().NoError(suite.db.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Reset())
}

func (suite *QueriesIntegrationTestSuite) addBook(title string, stock int, active bool) *book.Book {
	b, err := book.RestoreBook(kernel.NewUUID(), title, "Author", "", kernel.MustMoney("100"), stock, active)
	suite.Require().NoError(err)
	suite.Require().NoError(bookrepo.NewGormBookRepository(suite.db.Gorm).Add(context.Background(), b))
	return b
}

func (suite *QueriesIntegrationTestSuite) addOrder(userID *kernel.UUID, name string, createdAt time.Time) *order.Order {
	b := suite.addBook(name+" book", 10, true)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		userID,
		order.Contact{Name: name, Email: "customer@example.com"},
		"Nairobi",
		[]order.Item{{BookID: b.ID(), Title: b.Title(), Quantity: 1, PriceAtPurchase: b.Price()}},
		b.Price(),
		createdAt,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(orderrepo.NewGormOrderRepository(suite.db.Gorm).Add(context.Background(), o))
	return o
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_NewestFirst() {
	ctx := context.Background()
	base := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	older := suite.addOrder(nil, "Older", base)
	newer := suite.addOrder(nil, "Newer", base.Add(time.Hour))
	_, err := orderrepo.NewGormOrderRepository(suite.db.Gorm).
		UpdateStatus(ctx, older.ID(), order.Pending, order.Processing, base.Add(2*time.Hour))
	suite.Require().NoError(err)

	orders, err := queries.NewListOrdersQueryHandler(suite.db.Gorm).Handle(ctx, queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(orders, 2)
	suite.True(orders[0].ID.IsEqual(newer.ID()))
	suite.Equal("Newer", orders[0].CustomerName)
	suite.Equal(order.Pending, orders[0].Status)
	suite.True(orders[1].ID.IsEqual(older.ID()))
	suite.Equal(order.Processing, orders[1].Status)
	suite.Equal("100.00", orders[1].TotalAmount.String())
}

func (suite *QueriesIntegrationTestSuite) TestListOrders_Empty() {
	orders, err := queries.NewListOrdersQueryHandler(suite.db.Gorm).
		Handle(context.Background(), queries.NewListOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(orders)
	suite.Empty(orders)
}

func (suite *QueriesIntegrationTestSuite) TestListUserOrders_OnlyOwn() {
	now := time.Now().UTC()
	me := kernel.NewUUID()
	someoneElse := kernel.NewUUID()
	mine := suite.addOrder(&me, "Me", now)
	suite.addOrder(&someoneElse, "Other", now)
	suite.addOrder(nil, "Guest", now)

	query, err := queries.NewListUserOrdersQuery(me)
	suite.Require().NoError(err)
	orders, err := queries.NewListUserOrdersQueryHandler(suite.db.Gorm).Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(orders, 1)
	suite.True(orders[0].ID.IsEqual(mine.ID()))
}

func (suite *QueriesIntegrationTestSuite) TestGetLowStockBooks() {
	suite.addBook("Plenty", 20, true)
	suite.addBook("Beta", 3, true)
	suite.addBook("Alpha", 3, true)
	suite.addBook("Gone", 0, true)
	suite.addBook("Retired", 1, false)

	query, err := queries.NewGetLowStockBooksQuery(5)
	suite.Require().NoError(err)
	books, err := queries.NewGetLowStockBooksQueryHandler(suite.db.Gorm).Handle(context.Background(), query)

	suite.Require().NoError(err)
	titles := make([]string, 0, len(books))
	for _, b := range books {
		titles = append(titles, b.Title)
	}
	suite.Equal([]string{"Gone", "Alpha", "Beta"}, titles)
	suite.Equal(0, books[0].Stock)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}
