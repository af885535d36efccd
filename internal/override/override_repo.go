package override

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

//go:generate mockgen -source=override_repo.go -destination=../mock/override/override_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Override, error)
	Upsert(ctx context.Context, ov Override) (Override, error)
	Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error
}

type repository struct {
	db dbtx
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: tx}
}

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Override, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT restaurant_id, item_id, price_override, is_available_override, updated_at
		FROM item_overrides
		WHERE restaurant_id = $1`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query item_overrides: %w", err)
	}
	defer rows.Close()

	var overrides []Override
	for rows.Next() {
		var ov Override
		if err := rows.Scan(&ov.RestaurantID, &ov.ItemID, &ov.Price, &ov.IsAvailable, &ov.UpdatedAt); err != nil {
			return nil, err
		}
		overrides = append(overrides, ov)
	}
	return overrides, rows.Err()
}

func (r *repository) Upsert(ctx context.Context, ov Override) (Override, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO item_overrides (restaurant_id, item_id, price_override, is_available_override)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (restaurant_id, item_id)
		DO UPDATE SET price_override = $3, is_available_override = $4, updated_at = now()
		RETURNING restaurant_id, item_id, price_override, is_available_override, updated_at`,
		ov.RestaurantID, ov.ItemID, ov.Price, ov.IsAvailable,
	)
	var out Override
	if err := row.Scan(&out.RestaurantID, &out.ItemID, &out.Price, &out.IsAvailable, &out.UpdatedAt); err != nil {
		return Override{}, fmt.Errorf("upsert item_overrides: %w", err)
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, restaurantID, itemID uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `
		DELETE FROM item_overrides WHERE restaurant_id = $1 AND item_id = $2`,
		restaurantID, itemID,
	)
	return err
}
