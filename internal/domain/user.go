package domain

import "time"

// User represents a registered account. Every user owns exactly one
// cart, created together with the account.
type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
