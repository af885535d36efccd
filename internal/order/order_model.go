package order

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "PENDING"
	StatusPreparing = "PREPARING"
	StatusReady     = "READY"
	StatusCompleted = "COMPLETED"
	StatusCancelled = "CANCELLED"
)

// statusTransitions is the kitchen workflow. Cancellation is only possible
// before the kitchen starts preparing.
var statusTransitions = map[string]map[string]struct{}{
	StatusPending: {
		StatusPreparing: {},
		StatusCancelled: {},
	},
	StatusPreparing: {
		StatusReady: {},
	},
	StatusReady: {
		StatusCompleted: {},
	},
	StatusCompleted: {},
	StatusCancelled: {},
}

type Order struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	OrderNumber  string
	SessionID    string
	Status       string
	CustomerName sql.NullString
	Note         sql.NullString
	Total        decimal.Decimal
	PlacedAt     time.Time
	UpdatedAt    time.Time
}

type OrderItem struct {
	ID             uuid.UUID
	OrderID        uuid.UUID
	ItemID         uuid.UUID
	NameSnapshot   string
	Variation      sql.NullString
	Customizations []string
	UnitPrice      decimal.Decimal
	Quantity       int32
	TotalPrice     decimal.Decimal
}
