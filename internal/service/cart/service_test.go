package cart

import (
	"context"
	"errors"
	"sync"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

type stubCartRepo struct {
	mu      sync.Mutex
	cart    *domain.Cart
	getErr  error
	saveErr error
	saves   int
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.getErr != nil {
		return nil, s.getErr
	}
	// Return a copy so the service mutates its own snapshot, like a row
	// read from the database.
	cp := *s.cart
	cp.Items = append([]domain.Item(nil), s.cart.Items...)
	return &cp, nil
}

func (s *stubCartRepo) Save(_ context.Context, cart *domain.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	cp := *cart
	cp.Items = append([]domain.Item(nil), cart.Items...)
	s.cart = &cp
	s.saves++
	return nil
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

type stubItemRepo struct {
	item *domain.Item
	err  error
}

func (s *stubItemRepo) GetByID(_ context.Context, _ string) (*domain.Item, error) {
	return s.item, s.err
}

func widget() *domain.Item {
	return &domain.Item{ID: "item-1", Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
}

func newTestService(cart *domain.Cart) (*Service, *stubCartRepo) {
	carts := &stubCartRepo{cart: cart}
	users := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice"}}
	items := &stubItemRepo{item: widget()}
	return New(carts, users, items, nil), carts
}

func TestAddItemUnknownUser(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero}}
	svc := New(carts, &stubUserRepo{err: domain.ErrNotFound}, &stubItemRepo{item: widget()}, nil)

	_, err := svc.AddItem(context.Background(), "ghost", "item-1", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if carts.saves != 0 {
		t.Fatalf("cart must not be saved on lookup failure")
	}
}

func TestAddItemUnknownItem(t *testing.T) {
	carts := &stubCartRepo{cart: &domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero}}
	users := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice"}}
	svc := New(carts, users, &stubItemRepo{err: domain.ErrNotFound}, nil)

	_, err := svc.AddItem(context.Background(), "alice", "missing", 1)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAddItemPersistsLinesAndTotal(t *testing.T) {
	svc, carts := newTestService(&domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero})

	got, err := svc.AddItem(context.Background(), "alice", "item-1", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 line items, got %d", len(got.Items))
	}
	if want := decimal.RequireFromString("8.97"); !got.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got.Total)
	}
	if carts.saves != 1 {
		t.Fatalf("expected 1 save, got %d", carts.saves)
	}
}

func TestRemoveItemInverseOfAdd(t *testing.T) {
	svc, carts := newTestService(&domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero})

	if _, err := svc.AddItem(context.Background(), "alice", "item-1", 3); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.RemoveItem(context.Background(), "alice", "item-1", 3)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(got.Items))
	}
	if !got.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", got.Total)
	}
	if carts.saves != 2 {
		t.Fatalf("expected 2 saves, got %d", carts.saves)
	}
}

func TestRemoveMoreThanPresent(t *testing.T) {
	svc, _ := newTestService(&domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero})

	if _, err := svc.AddItem(context.Background(), "alice", "item-1", 2); err != nil {
		t.Fatalf("add: %v", err)
	}
	got, err := svc.RemoveItem(context.Background(), "alice", "item-1", 10)
	if err != nil {
		t.Fatalf("remove: %v", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected empty cart, got %d items", len(got.Items))
	}
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	svc, carts := newTestService(&domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero})

	const workers = 16
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			if _, err := svc.AddItem(context.Background(), "alice", "item-1", 1); err != nil {
				t.Errorf("add: %v", err)
			}
		}()
	}
	wg.Wait()

	if len(carts.cart.Items) != workers {
		t.Fatalf("lost updates: expected %d line items, got %d", workers, len(carts.cart.Items))
	}
	want := widget().Price.Mul(decimal.NewFromInt(workers))
	if !carts.cart.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, carts.cart.Total)
	}
}
