package restaurant

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

//go:generate mockgen -source=restaurant_repo.go -destination=../mock/restaurant/restaurant_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	GetByID(ctx context.Context, id uuid.UUID) (Restaurant, error)
	GetBySlug(ctx context.Context, slug string) (Restaurant, error)
	Create(ctx context.Context, r Restaurant) (Restaurant, error)
	UpdateTheme(ctx context.Context, id uuid.UUID, theme ThemeSettings) (Restaurant, error)
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

const restaurantColumns = `id, slug, name, currency, theme, created_at, updated_at`

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Restaurant, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+` FROM restaurants WHERE id = $1`, id)
	return scanRestaurant(row)
}

func (r *repository) GetBySlug(ctx context.Context, slug string) (Restaurant, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+restaurantColumns+` FROM restaurants WHERE slug = $1`, slug)
	return scanRestaurant(row)
}

func (r *repository) Create(ctx context.Context, in Restaurant) (Restaurant, error) {
	theme, err := json.Marshal(in.Theme)
	if err != nil {
		return Restaurant{}, fmt.Errorf("marshal theme: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO restaurants (id, slug, name, currency, theme)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING `+restaurantColumns,
		in.ID, in.Slug, in.Name, in.Currency, theme,
	)
	return scanRestaurant(row)
}

func (r *repository) UpdateTheme(ctx context.Context, id uuid.UUID, theme ThemeSettings) (Restaurant, error) {
	raw, err := json.Marshal(theme)
	if err != nil {
		return Restaurant{}, fmt.Errorf("marshal theme: %w", err)
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE restaurants SET theme = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+restaurantColumns,
		id, raw,
	)
	return scanRestaurant(row)
}

func scanRestaurant(row *sql.Row) (Restaurant, error) {
	var (
		out   Restaurant
		theme []byte
	)
	err := row.Scan(&out.ID, &out.Slug, &out.Name, &out.Currency, &theme, &out.CreatedAt, &out.UpdatedAt)
	if err != nil {
		return Restaurant{}, err
	}
	if len(theme) > 0 {
		if err := json.Unmarshal(theme, &out.Theme); err != nil {
			return Restaurant{}, fmt.Errorf("unmarshal theme: %w", err)
		}
	}
	// Stored settings predating a config migration may be partial; they are
	// normalized on the way out so callers see complete settings.
	normalized, err := out.Theme.Normalize()
	if err != nil {
		return Restaurant{}, fmt.Errorf("stored theme for %s: %w", out.ID, err)
	}
	out.Theme = normalized
	return out, nil
}
