package menu

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savindushenal/menuvibe-api/internal/cart"
)

// Variation and Customization are stored as JSONB on the menu_items row, so
// the json tags double as the storage format.
type Variation struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

type Customization struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type MenuItem struct {
	ID             uuid.UUID
	RestaurantID   uuid.UUID
	CategoryID     uuid.NullUUID
	Name           string
	Description    string
	BasePrice      decimal.Decimal
	Variations     []Variation
	Customizations []Customization
	IsAvailable    bool
	Position       int32
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Snapshot maps the persistent record into the read-only shape the cart
// engine prices against.
func (m MenuItem) Snapshot() cart.Item {
	item := cart.Item{
		ID:          m.ID.String(),
		Name:        m.Name,
		BasePrice:   m.BasePrice,
		IsAvailable: m.IsAvailable,
	}
	for _, v := range m.Variations {
		item.Variations = append(item.Variations, cart.Variation{
			Name:        v.Name,
			Price:       v.Price,
			IsAvailable: v.IsAvailable,
		})
	}
	for _, c := range m.Customizations {
		item.Customizations = append(item.Customizations, cart.Customization{
			Name:  c.Name,
			Price: c.Price,
		})
	}
	return item
}
