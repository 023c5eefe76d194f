package order

import (
	"context"
	"errors"
	"testing"

	"storefront/internal/domain"

	"github.com/shopspring/decimal"
)

type stubOrderRepo struct {
	created   []domain.Order
	createErr error
	listErr   error
}

func (s *stubOrderRepo) Create(_ context.Context, o domain.Order) (*domain.Order, error) {
	if s.createErr != nil {
		return nil, s.createErr
	}
	s.created = append(s.created, o)
	return &o, nil
}

func (s *stubOrderRepo) ListByUser(_ context.Context, _ string) ([]domain.Order, error) {
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.created, nil
}

type stubUserRepo struct {
	user *domain.User
	err  error
}

func (s *stubUserRepo) GetByUsername(_ context.Context, _ string) (*domain.User, error) {
	return s.user, s.err
}

type stubCartRepo struct {
	cart *domain.Cart
	err  error
}

func (s *stubCartRepo) GetByUser(_ context.Context, _ string) (*domain.Cart, error) {
	return s.cart, s.err
}

func TestSubmitUnknownUser(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, nil)

	_, err := svc.Submit(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	orders := &stubOrderRepo{}
	users := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice"}}
	carts := &stubCartRepo{cart: &domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero}}
	svc := New(orders, users, carts, nil)

	got, err := svc.Submit(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.ID == "" {
		t.Fatalf("expected a generated order id")
	}
	if len(got.Items) != 0 {
		t.Fatalf("expected 0 order items, got %d", len(got.Items))
	}
	if !got.Total.Equal(decimal.Zero) {
		t.Fatalf("expected zero total, got %s", got.Total)
	}
	if len(orders.created) != 1 {
		t.Fatalf("expected order to be persisted")
	}
}

func TestSubmitSnapshotsCart(t *testing.T) {
	price := decimal.RequireFromString("2.99")
	cart := &domain.Cart{ID: "c1", UserID: "u1"}
	cart.AddItem(domain.Item{ID: "item-1", Name: "Round Widget", Price: price}, 3)

	orders := &stubOrderRepo{}
	users := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice"}}
	svc := New(orders, users, &stubCartRepo{cart: cart}, nil)

	got, err := svc.Submit(context.Background(), "alice")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Items) != 3 {
		t.Fatalf("expected 3 order items, got %d", len(got.Items))
	}
	if want := decimal.RequireFromString("8.97"); !got.Total.Equal(want) {
		t.Fatalf("expected total %s, got %s", want, got.Total)
	}
	// Submission must not touch the cart.
	if len(cart.Items) != 3 {
		t.Fatalf("cart was modified by submission")
	}
}

func TestHistoryUnknownUser(t *testing.T) {
	svc := New(&stubOrderRepo{}, &stubUserRepo{err: domain.ErrNotFound}, &stubCartRepo{}, nil)

	_, err := svc.History(context.Background(), "ghost")
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestHistoryReturnsSubmittedOrders(t *testing.T) {
	orders := &stubOrderRepo{}
	users := &stubUserRepo{user: &domain.User{ID: "u1", Username: "alice"}}
	carts := &stubCartRepo{cart: &domain.Cart{ID: "c1", UserID: "u1", Total: decimal.Zero}}
	svc := New(orders, users, carts, nil)

	first, err := svc.Submit(context.Background(), "alice")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}
	second, err := svc.Submit(context.Background(), "alice")
	if err != nil {
		t.Fatalf("submit: %v", err)
	}

	history, err := svc.History(context.Background(), "alice")
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(history))
	}
	if history[0].ID != first.ID || history[1].ID != second.ID {
		t.Fatalf("orders not in insertion order: %s, %s", history[0].ID, history[1].ID)
	}
}
