package category

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

//go:generate mockgen -source=category_repo.go -destination=../mock/category/category_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Category, error)
	Create(ctx context.Context, cat Category) (Category, error)
	Rename(ctx context.Context, id uuid.UUID, name string) (Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
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

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]Category, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, restaurant_id, name, position, created_at, updated_at
		FROM categories
		WHERE restaurant_id = $1
		ORDER BY position, created_at`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []Category
	for rows.Next() {
		var cat Category
		if err := rows.Scan(&cat.ID, &cat.RestaurantID, &cat.Name, &cat.Position, &cat.CreatedAt, &cat.UpdatedAt); err != nil {
			return nil, err
		}
		categories = append(categories, cat)
	}
	return categories, rows.Err()
}

func (r *repository) Create(ctx context.Context, cat Category) (Category, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO categories (id, restaurant_id, name, position)
		VALUES ($1, $2, $3, $4)
		RETURNING id, restaurant_id, name, position, created_at, updated_at`,
		cat.ID, cat.RestaurantID, cat.Name, cat.Position,
	)
	var out Category
	if err := row.Scan(&out.ID, &out.RestaurantID, &out.Name, &out.Position, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return Category{}, fmt.Errorf("insert categories: %w", err)
	}
	return out, nil
}

func (r *repository) Rename(ctx context.Context, id uuid.UUID, name string) (Category, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE categories SET name = $2, updated_at = now()
		WHERE id = $1
		RETURNING id, restaurant_id, name, position, created_at, updated_at`,
		id, name,
	)
	var out Category
	if err := row.Scan(&out.ID, &out.RestaurantID, &out.Name, &out.Position, &out.CreatedAt, &out.UpdatedAt); err != nil {
		return Category{}, err
	}
	return out, nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	return err
}
