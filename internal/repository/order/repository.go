package order

import (
	"context"

	"storefront/internal/domain"
)

// Repository stores immutable order snapshots. Orders are only ever
// inserted; there is no update path.
type Repository interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
