package auth

import (
	"context"
	"errors"
	"io"
	"log"

	"storefront/internal/domain"
)

var (
	// ErrInvalidCredentials is returned when username/password do not
	// match. Unknown users produce the same error so responses do not
	// leak account existence.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrInvalidToken indicates the provided token could not be validated.
	ErrInvalidToken = errors.New("invalid token")
)

// Identity is the authenticated caller, scoped to a single request.
type Identity struct {
	Subject string
}

// CredentialStore looks up stored accounts by username.
type CredentialStore interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}

// Service authenticates credential pairs and verifies tokens on
// protected requests.
type Service struct {
	creds  CredentialStore
	codec  *TokenCodec
	logger *log.Logger
}

// New creates a Service around the given credential store and codec.
func New(creds CredentialStore, codec *TokenCodec, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{creds: creds, codec: codec, logger: logger}
}

// Login checks the credential pair and mints a token on success. No
// session state is persisted.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	u, err := s.creds.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("invalid login attempt for %s", username)
			return "", ErrInvalidCredentials
		}
		return "", err
	}
	if !VerifyPassword(password, u.PasswordHash) {
		s.logger.Printf("invalid login attempt for %s", username)
		return "", ErrInvalidCredentials
	}
	s.logger.Printf("user %s logged in", username)
	return s.codec.Encode(u.Username)
}

// Verify validates a raw token and returns the caller's identity. It
// runs once per protected request and caches nothing.
func (s *Service) Verify(raw string) (Identity, error) {
	subject, err := s.codec.Decode(raw)
	if err != nil {
		return Identity{}, ErrInvalidToken
	}
	return Identity{Subject: subject}, nil
}
