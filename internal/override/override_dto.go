package override

import (
	"time"

	"github.com/shopspring/decimal"
)

// SetRequest with both fields nil clears the override entirely.
type SetRequest struct {
	PriceOverride       *decimal.Decimal `json:"priceOverride"`
	IsAvailableOverride *bool            `json:"isAvailableOverride"`
}

type OverrideResponse struct {
	ItemID              string           `json:"itemId"`
	PriceOverride       *decimal.Decimal `json:"priceOverride,omitempty"`
	IsAvailableOverride *bool            `json:"isAvailableOverride,omitempty"`
	UpdatedAt           time.Time        `json:"updatedAt"`
}
