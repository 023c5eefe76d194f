package cart

import (
	"context"

	"storefront/internal/domain"
)

// Repository loads and stores whole carts. Save overwrites the cart's
// entire line set and total; callers fetch, mutate the aggregate in
// memory, and write it back.
type Repository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}
