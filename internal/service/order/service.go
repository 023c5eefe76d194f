package order

import (
	"context"
	"io"
	"log"

	"storefront/internal/domain"

	"github.com/google/uuid"
)

type orderRepo interface {
	Create(ctx context.Context, o domain.Order) (*domain.Order, error)
	ListByUser(ctx context.Context, userID string) ([]domain.Order, error)
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
}

// Service turns carts into immutable order snapshots.
type Service struct {
	orders orderRepo
	users  userRepo
	carts  cartRepo
	logger *log.Logger
}

// New creates an order Service.
func New(orders orderRepo, users userRepo, carts cartRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{orders: orders, users: users, carts: carts, logger: logger}
}

// Submit snapshots the user's current cart into a new order and
// persists it. An empty cart yields a valid order with zero items and
// zero total. The cart itself is left untouched. Unknown users return
// domain.ErrNotFound.
func (s *Service) Submit(ctx context.Context, username string) (*domain.Order, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	cart, err := s.carts.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	order := domain.OrderFromCart(uuid.NewString(), *cart)
	created, err := s.orders.Create(ctx, order)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("user %s placed order %s", username, created.ID)
	return created, nil
}

// History returns the user's orders oldest-first. A user with no orders
// gets an empty slice. Unknown users return domain.ErrNotFound.
func (s *Service) History(ctx context.Context, username string) ([]domain.Order, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	return s.orders.ListByUser(ctx, u.ID)
}
