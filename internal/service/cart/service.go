package cart

import (
	"context"
	"io"
	"log"
	"sync"

	"storefront/internal/domain"
)

type cartRepo interface {
	GetByUser(ctx context.Context, userID string) (*domain.Cart, error)
	Save(ctx context.Context, cart *domain.Cart) error
}

type userRepo interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

type itemRepo interface {
	GetByID(ctx context.Context, id string) (*domain.Item, error)
}

// Service mutates a user's single cart. Mutations are read-modify-write
// over the whole cart record, so calls for the same user are serialized
// through a per-user mutex; without it concurrent edits would silently
// drop line items (last writer wins).
type Service struct {
	carts  cartRepo
	users  userRepo
	items  itemRepo
	locks  sync.Map
	logger *log.Logger
}

// New creates a cart Service.
func New(carts cartRepo, users userRepo, items itemRepo, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{carts: carts, users: users, items: items, logger: logger}
}

// AddItem appends quantity units of the item to the user's cart and
// persists the result. No stock check is performed; adding a catalog
// item always succeeds. Unknown user or item returns
// domain.ErrNotFound.
func (s *Service) AddItem(ctx context.Context, username, itemID string, quantity int) (*domain.Cart, error) {
	s.logger.Printf("user %s adds %s to cart", username, itemID)
	return s.mutate(ctx, username, itemID, func(cart *domain.Cart, item domain.Item) {
		cart.AddItem(item, quantity)
	})
}

// RemoveItem removes up to quantity units of the item from the user's
// cart and persists the result. Removing more units than present is not
// an error. Unknown user or item returns domain.ErrNotFound.
func (s *Service) RemoveItem(ctx context.Context, username, itemID string, quantity int) (*domain.Cart, error) {
	s.logger.Printf("user %s removes %s from cart", username, itemID)
	return s.mutate(ctx, username, itemID, func(cart *domain.Cart, item domain.Item) {
		cart.RemoveItem(item, quantity)
	})
}

func (s *Service) mutate(ctx context.Context, username, itemID string, apply func(*domain.Cart, domain.Item)) (*domain.Cart, error) {
	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	item, err := s.items.GetByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	unlock := s.lock(u.ID)
	defer unlock()

	cart, err := s.carts.GetByUser(ctx, u.ID)
	if err != nil {
		return nil, err
	}
	apply(cart, *item)
	if err := s.carts.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (s *Service) lock(userID string) func() {
	v, _ := s.locks.LoadOrStore(userID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
