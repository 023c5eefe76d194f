package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type itemSeed struct {
	Name        string
	Price       string
	Description string
}

// Apply inserts the starter catalog for manual testing. It is
// idempotent; rerunning updates prices in place.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	items := []itemSeed{
		{
			Name:        "Round Widget",
			Price:       "2.99",
			Description: "A widget that is round",
		},
		{
			Name:        "Square Widget",
			Price:       "1.99",
			Description: "A widget that is square",
		},
	}

	for _, it := range items {
		if err := upsertItem(ctx, pool, it); err != nil {
			return fmt.Errorf("upsert item %s: %w", it.Name, err)
		}
	}
	return nil
}

func upsertItem(ctx context.Context, pool *pgxpool.Pool, it itemSeed) error {
	const q = `
INSERT INTO items (name, price, description)
VALUES ($1, $2::numeric, $3)
ON CONFLICT (name) DO UPDATE
SET price = EXCLUDED.price,
    description = EXCLUDED.description
`
	_, err := pool.Exec(ctx, q, it.Name, it.Price, it.Description)
	return err
}
