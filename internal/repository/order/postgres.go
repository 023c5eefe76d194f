package order

import (
	"context"

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

func (r *postgresRepo) Create(ctx context.Context, o domain.Order) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	const insertOrder = `
INSERT INTO orders (id, user_id, total)
VALUES ($1, $2, $3::numeric)
RETURNING created_at
`
	if err := tx.QueryRow(ctx, insertOrder, o.ID, o.UserID, o.Total.StringFixed(2)).Scan(&o.CreatedAt); err != nil {
		return nil, err
	}

	const insertItem = `
INSERT INTO order_items (order_id, item_id, name, price, position)
VALUES ($1, $2, $3, $4::numeric, $5)
`
	for pos, it := range o.Items {
		if _, err := tx.Exec(ctx, insertItem, o.ID, it.ItemID, it.Name, it.Price.StringFixed(2), pos); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return &o, nil
}

func (r *postgresRepo) ListByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	const ordersQuery = `
SELECT id::text, user_id::text, total::text, created_at
FROM orders
WHERE user_id = $1
ORDER BY seq
`
	rows, err := r.pool.Query(ctx, ordersQuery, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]domain.Order, 0)
	for rows.Next() {
		var o domain.Order
		var total string
		if err := rows.Scan(&o.ID, &o.UserID, &total, &o.CreatedAt); err != nil {
			return nil, err
		}
		if o.Total, err = decimal.NewFromString(total); err != nil {
			return nil, err
		}
		o.Items = make([]domain.OrderItem, 0)
		orders = append(orders, o)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		items, err := r.orderItems(ctx, orders[i].ID)
		if err != nil {
			return nil, err
		}
		orders[i].Items = items
	}
	return orders, nil
}

func (r *postgresRepo) orderItems(ctx context.Context, orderID string) ([]domain.OrderItem, error) {
	const q = `
SELECT item_id::text, name, price::text
FROM order_items
WHERE order_id = $1
ORDER BY position
`
	rows, err := r.pool.Query(ctx, q, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.OrderItem, 0)
	for rows.Next() {
		var it domain.OrderItem
		var price string
		if err := rows.Scan(&it.ItemID, &it.Name, &price); err != nil {
			return nil, err
		}
		if it.Price, err = decimal.NewFromString(price); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
