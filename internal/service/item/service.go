package item

import (
	"context"

	"storefront/internal/domain"
)

type repository interface {
	List(ctx context.Context) ([]domain.Item, error)
	GetByID(ctx context.Context, id string) (*domain.Item, error)
	FindByName(ctx context.Context, name string) ([]domain.Item, error)
}

// Service exposes catalog lookups.
type Service struct {
	repo repository
}

func New(repo repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Item, error) {
	return s.repo.List(ctx)
}

func (s *Service) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	return s.repo.GetByID(ctx, id)
}

// FindByName returns items matching the exact name. An empty result is
// reported as domain.ErrNotFound, matching the lookup endpoint's
// contract.
func (s *Service) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	items, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.ErrNotFound
	}
	return items, nil
}
