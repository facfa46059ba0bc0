package ports

import (
	"context"

	"changemoney-backend/internal/domain"
)

// OrderStore owns the authoritative order sequence. Implementations persist
// the whole sequence as one JSON array; every mutation is a read-modify-write
// of the entire sequence, so two independent writers can race and lose
// updates. That limitation is accepted, not hidden.
type OrderStore interface {
	// List returns the full sequence in insertion order. An empty store
	// yields an empty slice, not an error.
	List(ctx context.Context) ([]domain.Order, error)
	// Append adds one order at the end. All-or-nothing: on failure the
	// previously persisted sequence is unchanged.
	Append(ctx context.Context, order domain.Order) error
	// UpdateStatus sets status and updatedAt on the matching order and
	// returns it. Unknown ids report repository.ErrNotFound.
	UpdateStatus(ctx context.Context, id string, status domain.OrderStatus, updatedAt string) (*domain.Order, error)
	// Clear replaces the sequence with empty. The store stays usable.
	Clear(ctx context.Context) error
}

// HealthChecker is used to probe dependencies.
type HealthChecker interface {
	Health(ctx context.Context) error
}
