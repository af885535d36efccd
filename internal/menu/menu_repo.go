package menu

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

//go:generate mockgen -source=menu_repo.go -destination=../mock/menu/menu_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]MenuItem, error)
	GetByID(ctx context.Context, id uuid.UUID) (MenuItem, error)
	Create(ctx context.Context, item MenuItem) (MenuItem, error)
	Update(ctx context.Context, item MenuItem) (MenuItem, error)
	SetAvailability(ctx context.Context, id uuid.UUID, available bool) error
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

const itemColumns = `
	id, restaurant_id, category_id, name, description, base_price,
	variations, customizations, is_available, position, created_at, updated_at`

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID) ([]MenuItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE restaurant_id = $1
		ORDER BY position, created_at`,
		restaurantID,
	)
	if err != nil {
		return nil, fmt.Errorf("query menu_items: %w", err)
	}
	defer rows.Close()

	var items []MenuItem
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (MenuItem, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+itemColumns+`
		FROM menu_items
		WHERE id = $1`,
		id,
	)
	return scanItem(row)
}

func (r *repository) Create(ctx context.Context, item MenuItem) (MenuItem, error) {
	variations, customizations, err := marshalSelections(item)
	if err != nil {
		return MenuItem{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		INSERT INTO menu_items (
			id, restaurant_id, category_id, name, description, base_price,
			variations, customizations, is_available, position
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING `+itemColumns,
		item.ID, item.RestaurantID, item.CategoryID, item.Name, item.Description,
		item.BasePrice, variations, customizations, item.IsAvailable, item.Position,
	)
	return scanItem(row)
}

func (r *repository) Update(ctx context.Context, item MenuItem) (MenuItem, error) {
	variations, customizations, err := marshalSelections(item)
	if err != nil {
		return MenuItem{}, err
	}

	row := r.db.QueryRowContext(ctx, `
		UPDATE menu_items
		SET category_id = $2, name = $3, description = $4, base_price = $5,
		    variations = $6, customizations = $7, is_available = $8,
		    position = $9, updated_at = now()
		WHERE id = $1
		RETURNING `+itemColumns,
		item.ID, item.CategoryID, item.Name, item.Description, item.BasePrice,
		variations, customizations, item.IsAvailable, item.Position,
	)
	return scanItem(row)
}

func (r *repository) SetAvailability(ctx context.Context, id uuid.UUID, available bool) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE menu_items SET is_available = $2, updated_at = now() WHERE id = $1`,
		id, available,
	)
	if err != nil {
		return fmt.Errorf("update menu_items availability: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *repository) Delete(ctx context.Context, id uuid.UUID) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanItem(row rowScanner) (MenuItem, error) {
	var (
		item           MenuItem
		variations     []byte
		customizations []byte
	)
	err := row.Scan(
		&item.ID, &item.RestaurantID, &item.CategoryID, &item.Name,
		&item.Description, &item.BasePrice, &variations, &customizations,
		&item.IsAvailable, &item.Position, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return MenuItem{}, err
	}
	if len(variations) > 0 {
		if err := json.Unmarshal(variations, &item.Variations); err != nil {
			return MenuItem{}, fmt.Errorf("unmarshal variations: %w", err)
		}
	}
	if len(customizations) > 0 {
		if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
			return MenuItem{}, fmt.Errorf("unmarshal customizations: %w", err)
		}
	}
	return item, nil
}

func marshalSelections(item MenuItem) (variations, customizations []byte, err error) {
	if item.Variations == nil {
		item.Variations = []Variation{}
	}
	if item.Customizations == nil {
		item.Customizations = []Customization{}
	}
	variations, err = json.Marshal(item.Variations)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal variations: %w", err)
	}
	customizations, err = json.Marshal(item.Customizations)
	if err != nil {
		return nil, nil, fmt.Errorf("marshal customizations: %w", err)
	}
	return variations, customizations, nil
}
