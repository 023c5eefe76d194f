package domain

import "github.com/shopspring/decimal"

// Item is a catalog entry. Carts and orders reference items by id and
// never mutate them.
type Item struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
}
