package cart

import (
	"context"
	"errors"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUser(ctx context.Context, userID string) (*domain.Cart, error) {
	const cartQuery = `
SELECT id::text, user_id::text, total::text, created_at
FROM carts
WHERE user_id = $1
LIMIT 1
`
	var cart domain.Cart
	var total string
	err := r.pool.QueryRow(ctx, cartQuery, userID).Scan(
		&cart.ID,
		&cart.UserID,
		&total,
		&cart.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	cart.Total, err = decimal.NewFromString(total)
	if err != nil {
		return nil, err
	}

	const linesQuery = `
SELECT i.id::text, i.name, i.price::text, i.description
FROM cart_items ci
JOIN items i ON i.id = ci.item_id
WHERE ci.cart_id = $1
ORDER BY ci.position
`
	rows, err := r.pool.Query(ctx, linesQuery, cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = make([]domain.Item, 0)
	for rows.Next() {
		var it domain.Item
		var price string
		if err := rows.Scan(&it.ID, &it.Name, &price, &it.Description); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		cart.Items = append(cart.Items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &cart, nil
}

func (r *postgresRepo) Save(ctx context.Context, cart *domain.Cart) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	const updateTotal = `
UPDATE carts
SET total = $1::numeric
WHERE id = $2
`
	cmd, err := tx.Exec(ctx, updateTotal, cart.Total.StringFixed(2), cart.ID)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM cart_items WHERE cart_id = $1`, cart.ID); err != nil {
		return err
	}

	const insertLine = `
INSERT INTO cart_items (cart_id, item_id, position)
VALUES ($1, $2, $3)
`
	for pos, it := range cart.Items {
		if _, err := tx.Exec(ctx, insertLine, cart.ID, it.ID, pos); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}
