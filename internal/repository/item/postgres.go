package item

import (
	"context"
	"errors"

	"storefront/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
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

func (r *postgresRepo) List(ctx context.Context) ([]domain.Item, error) {
	const q = `
SELECT id::text, name, price::text, description
FROM items
ORDER BY name
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Item, error) {
	const q = `
SELECT id::text, name, price::text, description
FROM items
WHERE id = $1
LIMIT 1
`
	it, err := scanItem(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, lookupErr(err)
	}
	return it, nil
}

// lookupErr maps no-rows results and malformed uuid lookups to
// ErrNotFound; an id that cannot be a uuid refers to no item.
func lookupErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "22P02" {
		return domain.ErrNotFound
	}
	return err
}

func (r *postgresRepo) FindByName(ctx context.Context, name string) ([]domain.Item, error) {
	const q = `
SELECT id::text, name, price::text, description
FROM items
WHERE name = $1
ORDER BY id
`
	rows, err := r.pool.Query(ctx, q, name)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanItems(rows)
}

func scanItems(rows pgx.Rows) ([]domain.Item, error) {
	items := make([]domain.Item, 0)
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *it)
	}
	return items, rows.Err()
}

func scanItem(row pgx.Row) (*domain.Item, error) {
	var it domain.Item
	var price string
	if err := row.Scan(&it.ID, &it.Name, &price, &it.Description); err != nil {
		return nil, err
	}
	p, err := decimal.NewFromString(price)
	if err != nil {
		return nil, err
	}
	it.Price = p
	return &it, nil
}
