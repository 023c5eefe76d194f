package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	raw, err := codec.Encode("alice")
	require.NoError(t, err)

	subject, err := codec.Decode(raw)
	require.NoError(t, err)
	assert.Equal(t, "alice", subject)
}

func TestTokenExpiredRejected(t *testing.T) {
	codec := NewTokenCodec("test-secret", -time.Minute)

	raw, err := codec.Encode("alice")
	require.NoError(t, err)

	_, err = codec.Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenTamperedPayloadRejected(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	raw, err := codec.Encode("alice")
	require.NoError(t, err)

	parts := strings.Split(raw, ".")
	require.Len(t, parts, 3)

	// Flip one byte of the payload segment.
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = codec.Decode(tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongSecretRejected(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)
	other := NewTokenCodec("other-secret", time.Hour)

	raw, err := codec.Encode("alice")
	require.NoError(t, err)

	_, err = other.Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenWrongAlgorithmRejected(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	// A token signed under the right secret but with a weaker HMAC
	// variant must be refused at the method check.
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   "alice",
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
	}
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)

	_, err = codec.Decode(raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbageRejected(t *testing.T) {
	codec := NewTokenCodec("test-secret", time.Hour)

	for _, raw := range []string{"", "not-a-token", "a.b.c"} {
		_, err := codec.Decode(raw)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", raw)
	}
}
