// Package commands contains the wizard operations that modify a flow or submit a request.
// Every command is built through its constructor, validated, and handled by a dedicated handler.
package commands

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/ports"
)

// Unit of Work interfaces used by the submission ledger.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// RequestRepoFactory provides access to the request ledger within a transaction.
	RequestRepoFactory interface {
		RequestRepository() ports.RequestRepository
	}

	// RequestUoW manages transactions for ledger writes.
	RequestUoW interface {
		TxManager
		RequestRepoFactory
	}

	// RequestUoWFactory creates new request unit of work instances.
	RequestUoWFactory interface {
		Create() RequestUoW
	}
)

// AddressNormalizer converts the origin and destination addresses. It never fails;
// a failed conversion comes back degraded.
type AddressNormalizer interface {
	NormalizePair(ctx context.Context, origin, destination string) (address.Converted, address.Converted)
}

// Clock returns the current time. Handlers take it so tests can pin "now".
type Clock func() time.Time
