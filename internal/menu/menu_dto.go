package menu

import (
	"time"

	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

type VariationInput struct {
	Name        string          `json:"name" binding:"required" validate:"required"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable *bool           `json:"isAvailable"`
}

type CustomizationInput struct {
	Name  string          `json:"name" binding:"required" validate:"required"`
	Price decimal.Decimal `json:"price"`
}

type CreateItemRequest struct {
	CategoryID     string               `json:"categoryId"`
	Name           string               `json:"name" binding:"required" validate:"required"`
	Description    string               `json:"description"`
	BasePrice      decimal.Decimal      `json:"basePrice"`
	Variations     []VariationInput     `json:"variations"`
	Customizations []CustomizationInput `json:"customizations"`
	IsAvailable    *bool                `json:"isAvailable"`
	Position       int32                `json:"position"`
}

type UpdateItemRequest struct {
	CategoryID     *string              `json:"categoryId"`
	Name           *string              `json:"name"`
	Description    *string              `json:"description"`
	BasePrice      *decimal.Decimal     `json:"basePrice"`
	Variations     []VariationInput     `json:"variations"`
	Customizations []CustomizationInput `json:"customizations"`
	IsAvailable    *bool                `json:"isAvailable"`
	Position       *int32               `json:"position"`
}

type SetAvailabilityRequest struct {
	IsAvailable *bool `json:"isAvailable" binding:"required" validate:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type VariationResponse struct {
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	IsAvailable bool            `json:"isAvailable"`
}

type CustomizationResponse struct {
	Name  string          `json:"name"`
	Price decimal.Decimal `json:"price"`
}

type ItemResponse struct {
	ID             string                  `json:"id"`
	RestaurantID   string                  `json:"restaurantId"`
	CategoryID     *string                 `json:"categoryId,omitempty"`
	Name           string                  `json:"name"`
	Description    string                  `json:"description,omitempty"`
	BasePrice      decimal.Decimal         `json:"basePrice"`
	Variations     []VariationResponse     `json:"variations"`
	Customizations []CustomizationResponse `json:"customizations"`
	IsAvailable    bool                    `json:"isAvailable"`
	Position       int32                   `json:"position"`
	UpdatedAt      time.Time               `json:"updatedAt"`

	// Display values after applying any deployment override; only set on the
	// public storefront listing.
	DisplayPrice *decimal.Decimal `json:"displayPrice,omitempty"`
	IsOverridden bool             `json:"isOverridden,omitempty"`
}
