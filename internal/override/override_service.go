package override

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savindushenal/menuvibe-api/internal/cart"
)

//go:generate mockgen -source=override_service.go -destination=../mock/override/override_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, restaurantID string) ([]OverrideResponse, error)
	Set(ctx context.Context, restaurantID, itemID string, req SetRequest) (OverrideResponse, error)
	Clear(ctx context.Context, restaurantID, itemID string) error

	// Snapshot feeds the cart engine. Absence of a row means no override,
	// so an empty slice is a normal result.
	Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]cart.Override, error)
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, restaurantID string) ([]OverrideResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, ErrInvalidRestaurantID
	}

	rows, err := s.repo.ListByRestaurant(ctx, rid)
	if err != nil {
		return nil, err
	}

	res := make([]OverrideResponse, 0, len(rows))
	for _, ov := range rows {
		res = append(res, mapToResponse(ov))
	}
	return res, nil
}

func (s *service) Set(ctx context.Context, restaurantID, itemID string, req SetRequest) (OverrideResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return OverrideResponse{}, ErrInvalidRestaurantID
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return OverrideResponse{}, ErrInvalidItemID
	}

	// Clearing both aspects is the same as deleting the override row.
	if req.PriceOverride == nil && req.IsAvailableOverride == nil {
		if err := s.repo.Delete(ctx, rid, iid); err != nil {
			return OverrideResponse{}, err
		}
		return OverrideResponse{ItemID: itemID}, nil
	}

	if req.PriceOverride != nil && req.PriceOverride.IsNegative() {
		return OverrideResponse{}, ErrNegativePrice
	}

	ov := Override{RestaurantID: rid, ItemID: iid}
	if req.PriceOverride != nil {
		ov.Price = decimal.NullDecimal{Decimal: *req.PriceOverride, Valid: true}
	}
	if req.IsAvailableOverride != nil {
		ov.IsAvailable = sql.NullBool{Bool: *req.IsAvailableOverride, Valid: true}
	}

	saved, err := s.repo.Upsert(ctx, ov)
	if err != nil {
		return OverrideResponse{}, err
	}
	return mapToResponse(saved), nil
}

func (s *service) Clear(ctx context.Context, restaurantID, itemID string) error {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return ErrInvalidRestaurantID
	}
	iid, err := uuid.Parse(itemID)
	if err != nil {
		return ErrInvalidItemID
	}
	return s.repo.Delete(ctx, rid, iid)
}

func (s *service) Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]cart.Override, error) {
	rows, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	overrides := make([]cart.Override, 0, len(rows))
	for _, ov := range rows {
		overrides = append(overrides, ov.Snapshot())
	}
	return overrides, nil
}

func mapToResponse(ov Override) OverrideResponse {
	res := OverrideResponse{
		ItemID:    ov.ItemID.String(),
		UpdatedAt: ov.UpdatedAt,
	}
	if ov.Price.Valid {
		price := ov.Price.Decimal
		res.PriceOverride = &price
	}
	if ov.IsAvailable.Valid {
		available := ov.IsAvailable.Bool
		res.IsAvailableOverride = &available
	}
	return res
}
