package order

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

//go:generate mockgen -source=order_repo.go -destination=../mock/order/order_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository

	CreateOrder(ctx context.Context, o Order) (Order, error)
	CreateOrderItem(ctx context.Context, item OrderItem) error
	GetByID(ctx context.Context, id uuid.UUID) (Order, error)
	GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Order, error)
	ListBySession(ctx context.Context, restaurantID uuid.UUID, sessionID string, limit, offset int32) ([]Order, int64, error)
	ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status sql.NullString, limit, offset int32) ([]Order, int64, error)
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

const orderColumns = `id, restaurant_id, order_number, session_id, status, customer_name, note, total, placed_at, updated_at`

func (r *repository) CreateOrder(ctx context.Context, o Order) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		INSERT INTO orders (id, restaurant_id, order_number, session_id, status, customer_name, note, total)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+orderColumns,
		o.ID, o.RestaurantID, o.OrderNumber, o.SessionID, o.Status, o.CustomerName, o.Note, o.Total,
	)
	return scanOrder(row)
}

func (r *repository) CreateOrderItem(ctx context.Context, item OrderItem) error {
	customizations, err := json.Marshal(item.Customizations)
	if err != nil {
		return fmt.Errorf("marshal customizations: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO order_items (id, order_id, item_id, name_snapshot, variation, customizations, unit_price, quantity, total_price)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		item.ID, item.OrderID, item.ItemID, item.NameSnapshot, item.Variation, customizations, item.UnitPrice, item.Quantity, item.TotalPrice,
	)
	return err
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+orderColumns+` FROM orders WHERE id = $1`, id)
	return scanOrder(row)
}

func (r *repository) GetItems(ctx context.Context, orderID uuid.UUID) ([]OrderItem, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, order_id, item_id, name_snapshot, variation, customizations, unit_price, quantity, total_price
		FROM order_items
		WHERE order_id = $1
		ORDER BY name_snapshot`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []OrderItem
	for rows.Next() {
		var (
			item           OrderItem
			customizations []byte
		)
		if err := rows.Scan(&item.ID, &item.OrderID, &item.ItemID, &item.NameSnapshot, &item.Variation, &customizations, &item.UnitPrice, &item.Quantity, &item.TotalPrice); err != nil {
			return nil, err
		}
		if len(customizations) > 0 {
			if err := json.Unmarshal(customizations, &item.Customizations); err != nil {
				return nil, fmt.Errorf("unmarshal customizations: %w", err)
			}
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (r *repository) UpdateStatus(ctx context.Context, id uuid.UUID, status string) (Order, error) {
	row := r.db.QueryRowContext(ctx, `
		UPDATE orders SET status = $2, updated_at = now()
		WHERE id = $1
		RETURNING `+orderColumns,
		id, status,
	)
	return scanOrder(row)
}

func (r *repository) ListBySession(ctx context.Context, restaurantID uuid.UUID, sessionID string, limit, offset int32) ([]Order, int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`, COUNT(*) OVER() AS total_count
		FROM orders
		WHERE restaurant_id = $1 AND session_id = $2
		ORDER BY placed_at DESC
		LIMIT $3 OFFSET $4`,
		restaurantID, sessionID, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return scanOrderList(rows)
}

func (r *repository) ListByRestaurant(ctx context.Context, restaurantID uuid.UUID, status sql.NullString, limit, offset int32) ([]Order, int64, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+orderColumns+`, COUNT(*) OVER() AS total_count
		FROM orders
		WHERE restaurant_id = $1 AND ($2::text IS NULL OR status = $2)
		ORDER BY placed_at DESC
		LIMIT $3 OFFSET $4`,
		restaurantID, status, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	return scanOrderList(rows)
}

func scanOrder(row *sql.Row) (Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.RestaurantID, &o.OrderNumber, &o.SessionID, &o.Status, &o.CustomerName, &o.Note, &o.Total, &o.PlacedAt, &o.UpdatedAt)
	if err != nil {
		return Order{}, err
	}
	return o, nil
}

func scanOrderList(rows *sql.Rows) ([]Order, int64, error) {
	var (
		orders []Order
		total  int64
	)
	for rows.Next() {
		var o Order
		if err := rows.Scan(&o.ID, &o.RestaurantID, &o.OrderNumber, &o.SessionID, &o.Status, &o.CustomerName, &o.Note, &o.Total, &o.PlacedAt, &o.UpdatedAt, &total); err != nil {
			return nil, 0, err
		}
		orders = append(orders, o)
	}
	return orders, total, rows.Err()
}
