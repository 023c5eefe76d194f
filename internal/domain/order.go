package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderItem is a priced snapshot of one cart unit at submission time.
// Later catalog edits do not affect it.
type OrderItem struct {
	ItemID string          `json:"itemId"`
	Name   string          `json:"name"`
	Price  decimal.Decimal `json:"price"`
}

// Order is an immutable copy of a cart taken when the user submits it.
type Order struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Items     []OrderItem     `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// OrderFromCart snapshots the cart's current contents and total.
func OrderFromCart(id string, cart Cart) Order {
	items := make([]OrderItem, 0, len(cart.Items))
	for _, it := range cart.Items {
		items = append(items, OrderItem{ItemID: it.ID, Name: it.Name, Price: it.Price})
	}
	return Order{
		ID:     id,
		UserID: cart.UserID,
		Items:  items,
		Total:  cart.Total,
	}
}
