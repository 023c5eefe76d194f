package user

import (
	"context"

	"storefront/internal/domain"
)

// Repository is the credential and account store.
type Repository interface {
	// Create inserts the user together with their empty cart. Both
	// rows are written in one transaction so a failed registration
	// leaves nothing behind.
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
