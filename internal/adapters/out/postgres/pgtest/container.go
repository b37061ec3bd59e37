// Package pgtest starts a throwaway PostgreSQL for integration tests and
// applies the production migrations to it.
package pgtest

import (
	"context"
	"database/sql"
	"time"

	"bookstore/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// Database is a migrated test database.
type Database struct {
	Container *tcpostgres.PostgresContainer
	Gorm      *gorm.DB
	SQL       *sql.DB
}

func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	gormDB, sqlDB, err := postgres.Connect(ctx, dsn)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err = postgres.Migrate(sqlDB); err != nil {
		_ = sqlDB.Close()
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{Container: container, Gorm: gormDB, SQL: sqlDB}, nil
}

// Reset empties every table except the status catalogue.
func (d *Database) Reset() error {
	return d.Gorm.Exec("TRUNCATE TABLE order_items, orders, books, action_logs RESTART IDENTITY CASCADE").Error
}

func (d *Database) Terminate(ctx context.Context) error {
	_ = d.SQL.Close()
	return d.Container.Terminate(ctx)
}
