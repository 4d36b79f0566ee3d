// Package ports defines the contracts between the wholesale order engine and
// its infrastructure: repositories bound to a unit of work, and the outbound
// order event publisher.
package ports

import (
	"context"

	"wholesale/internal/core/domain/model/client"
)

// ClientRepository defines the persistence contract for clients.
// Clients are maintained by an administrative process; the engine only reads them.
type ClientRepository interface {
	// Add persists a new client. Used for seeding; the code must be unused.
	Add(ctx context.Context, c *client.Client) error

	// Get retrieves a client by code.
	// Returns an error matching errs.ErrObjectNotFound for unknown codes.
	Get(ctx context.Context, code string) (*client.Client, error)

	// SumOrderedQuantities returns the total quantity of every line of every
	// order of the client, open or shipped. A client without lines yields 0.
	SumOrderedQuantities(ctx context.Context, code string) (int, error)
}
