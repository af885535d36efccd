package override

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savindushenal/menuvibe-api/internal/cart"
)

// Override adjusts an item's price and/or availability for one deployment
// without touching the catalog record. Absence of a row means "no override".
type Override struct {
	RestaurantID uuid.UUID
	ItemID       uuid.UUID
	Price        decimal.NullDecimal
	IsAvailable  sql.NullBool
	UpdatedAt    time.Time
}

// Snapshot maps the row into the shape the cart engine consumes.
func (o Override) Snapshot() cart.Override {
	ov := cart.Override{ItemID: o.ItemID.String()}
	if o.Price.Valid {
		price := o.Price.Decimal
		ov.Price = &price
	}
	if o.IsAvailable.Valid {
		available := o.IsAvailable.Bool
		ov.Available = &available
	}
	return ov
}
