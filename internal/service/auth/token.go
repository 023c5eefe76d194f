package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenCodec encodes and decodes signed, time-bounded identity tokens.
// Tokens are HMAC-SHA512 JWTs carrying the username as subject; nothing
// is stored server-side.
type TokenCodec struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenCodec builds a codec with the process-wide signing secret and
// validity window.
func NewTokenCodec(secret string, ttl time.Duration) *TokenCodec {
	return &TokenCodec{secret: []byte(secret), ttl: ttl}
}

// Encode mints a token for subject valid from now until now plus the
// configured window.
func (c *TokenCodec) Encode(subject string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(c.secret)
}

// Decode validates raw against the signing secret and current
// wall-clock time and returns the token's subject. Any malformed,
// tampered, or expired token yields ErrInvalidToken.
func (c *TokenCodec) Decode(raw string) (string, error) {
	token, err := jwt.ParseWithClaims(
		raw,
		&jwt.RegisteredClaims{},
		func(*jwt.Token) (interface{}, error) { return c.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}
	claims, ok := token.Claims.(*jwt.RegisteredClaims)
	if !ok || claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
