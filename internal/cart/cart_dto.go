package cart

import "github.com/shopspring/decimal"

type AddItemRequest struct {
	ItemID         string   `json:"itemId" validate:"required,uuid"`
	Quantity       int      `json:"quantity"`
	Variation      string   `json:"variation"`
	Customizations []string `json:"customizations"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

type LineResponse struct {
	Key            string          `json:"key"`
	ItemID         string          `json:"itemId"`
	Name           string          `json:"name"`
	Quantity       int             `json:"quantity"`
	Variation      string          `json:"variation,omitempty"`
	Customizations []string        `json:"customizations"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	LineTotal      decimal.Decimal `json:"lineTotal"`
}

type CartResponse struct {
	Lines []LineResponse  `json:"lines"`
	Count int             `json:"count"`
	Total decimal.Decimal `json:"total"`
}
