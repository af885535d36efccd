package order

import (
	"time"

	"github.com/shopspring/decimal"
)

// ==================== REQUEST STRUCTS ====================

type CheckoutRequest struct {
	CustomerName string `json:"customerName" validate:"max=120"`
	Note         string `json:"note" validate:"max=500"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// ==================== RESPONSE STRUCTS ====================

type OrderResponse struct {
	ID           string              `json:"id"`
	OrderNumber  string              `json:"orderNumber"`
	Status       string              `json:"status"`
	CustomerName string              `json:"customerName,omitempty"`
	Note         string              `json:"note,omitempty"`
	Total        decimal.Decimal     `json:"total"`
	PlacedAt     time.Time           `json:"placedAt"`
	Items        []OrderItemResponse `json:"items,omitempty"`
}

type OrderItemResponse struct {
	ID             string          `json:"id"`
	ItemID         string          `json:"itemId"`
	Name           string          `json:"name"`
	Quantity       int32           `json:"quantity"`
	UnitPrice      decimal.Decimal `json:"unitPrice"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Variation      string          `json:"selectedVariation,omitempty"`
	Customizations []string        `json:"selectedCustomizations"`
}

type ListOrderResponse struct {
	Orders []OrderResponse `json:"orders"`
	Total  int64           `json:"total"`
	Page   int32           `json:"page"`
	Limit  int32           `json:"limit"`
}

func mapOrderToResponse(o Order, items []OrderItem) OrderResponse {
	res := OrderResponse{
		ID:          o.ID.String(),
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Total:       o.Total,
		PlacedAt:    o.PlacedAt,
	}
	if o.CustomerName.Valid {
		res.CustomerName = o.CustomerName.String
	}
	if o.Note.Valid {
		res.Note = o.Note.String
	}

	for _, item := range items {
		customizations := item.Customizations
		if customizations == nil {
			customizations = []string{}
		}
		itemRes := OrderItemResponse{
			ID:             item.ID.String(),
			ItemID:         item.ItemID.String(),
			Name:           item.NameSnapshot,
			Quantity:       item.Quantity,
			UnitPrice:      item.UnitPrice,
			Subtotal:       item.TotalPrice,
			Customizations: customizations,
		}
		if item.Variation.Valid {
			itemRes.Variation = item.Variation.String
		}
		res.Items = append(res.Items, itemRes)
	}
	return res
}
