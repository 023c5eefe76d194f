package user

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"storefront/internal/domain"
	"storefront/internal/service/auth"
)

// ErrInvalidInput is returned when registration input does not meet the
// account constraints. Handlers map it to a 400.
var ErrInvalidInput = errors.New("invalid user details")

const passwordMin = 7

type repository interface {
	Create(ctx context.Context, username, passwordHash string) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

// Service handles account registration and lookup.
type Service struct {
	repo       repository
	bcryptCost int
	logger     *log.Logger
}

// New creates a Service hashing passwords at the given bcrypt cost.
func New(repo repository, bcryptCost int, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, bcryptCost: bcryptCost, logger: logger}
}

// SignupInput captures fields expected by the account creation endpoint.
type SignupInput struct {
	Username        string `json:"username"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
}

// Signup validates the input and creates the user and their empty cart
// as a single unit. A duplicate username returns
// domain.ErrAlreadyExists.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*domain.User, error) {
	username := strings.TrimSpace(in.Username)
	if username == "" || in.Password == "" || in.ConfirmPassword == "" {
		return nil, fmt.Errorf("%w: missing required fields", ErrInvalidInput)
	}
	if len(in.Password) < passwordMin {
		return nil, fmt.Errorf("%w: password must be at least %d characters", ErrInvalidInput, passwordMin)
	}
	if in.Password != in.ConfirmPassword {
		return nil, fmt.Errorf("%w: passwords do not match", ErrInvalidInput)
	}

	hashed, err := auth.HashPassword(in.Password, s.bcryptCost)
	if err != nil {
		return nil, err
	}

	u, err := s.repo.Create(ctx, username, hashed)
	if err != nil {
		return nil, err
	}
	s.logger.Printf("user account for %s created", username)
	return u, nil
}

// GetByUsername returns the user or domain.ErrNotFound.
func (s *Service) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	return s.repo.GetByUsername(ctx, username)
}

// GetByID returns the user or domain.ErrNotFound.
func (s *Service) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}
