package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Cart holds a user's pending line items. Each entry in Items is one
// unit, so quantity N of an item appears as N entries. Total always
// equals the sum of the entries' prices.
type Cart struct {
	ID        string          `json:"id"`
	UserID    string          `json:"-"`
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	CreatedAt time.Time       `json:"createdAt"`
}

// AddItem appends quantity units of item and recomputes the total.
// A zero or negative quantity leaves the cart unchanged.
func (c *Cart) AddItem(item Item, quantity int) {
	for i := 0; i < quantity; i++ {
		c.Items = append(c.Items, item)
	}
	c.recomputeTotal()
}

// RemoveItem removes up to quantity units of item and recomputes the
// total. Removing more units than the cart holds is not an error; all
// present units are removed.
func (c *Cart) RemoveItem(item Item, quantity int) {
	remaining := quantity
	kept := c.Items[:0]
	for _, it := range c.Items {
		if remaining > 0 && it.ID == item.ID {
			remaining--
			continue
		}
		kept = append(kept, it)
	}
	c.Items = kept
	c.recomputeTotal()
}

func (c *Cart) recomputeTotal() {
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.Price)
	}
	c.Total = total
}
