// Package commands contains the operations that change state: cart edits,
// order placement and order status transitions.
// Every handler follows the same shape: validate the command, do the
// transactional work through a unit of work, then run best-effort effects.
package commands

import (
	"context"

	"bookstore/internal/core/ports"
)

// Unit of Work interfaces narrowed to what each handler touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// BookRepoFactory provides the book repository bound to the current transaction.
	BookRepoFactory interface {
		BookRepository() ports.BookRepository
	}

	// OrderRepoFactory provides the order repository bound to the current transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// StatusCatalogFactory provides the status lookup bound to the current transaction.
	StatusCatalogFactory interface {
		StatusCatalog() ports.StatusCatalog
	}

	// PlacementUoW spans everything order placement writes: stock and orders.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   _, err = uow.BookRepository().DecrementStock(ctx, bookID, 2)
	//   err = uow.OrderRepository().Add(ctx, o)
	//
	//   err = uow.Commit(ctx)
	PlacementUoW interface {
		TxManager
		BookRepoFactory
		OrderRepoFactory
		StatusCatalogFactory
	}

	// PlacementUoWFactory creates new placement unit of work instances.
	PlacementUoWFactory interface {
		Create() PlacementUoW
	}

	// OrderUoW manages transactions that only touch orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}
)
