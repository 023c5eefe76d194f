package item

import (
	"context"

	"storefront/internal/domain"
)

// Repository reads the item catalog.
type Repository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
}
