package ports

import (
	"context"
)

// UnitOfWorkFactory creates a UnitOfWork per command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a transaction boundary around the request ledger.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	// RequestRepository is bound to the transaction started by Begin.
	RequestRepository() RequestRepository
}
