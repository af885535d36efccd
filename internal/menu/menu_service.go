package menu

import (
	"context"
	"database/sql"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	"github.com/savindushenal/menuvibe-api/internal/override"
)

//go:generate mockgen -source=menu_service.go -destination=../mock/menu/menu_service_mock.go -package=mock
type Service interface {
	// ListPublic returns the storefront view: overrides applied to display
	// price and availability.
	ListPublic(ctx context.Context, restaurantID string) ([]ItemResponse, error)

	// Dashboard operations. The catalog is validated here, on write, so the
	// cart engine never sees malformed price data.
	List(ctx context.Context, restaurantID string) ([]ItemResponse, error)
	Create(ctx context.Context, restaurantID string, req CreateItemRequest) (ItemResponse, error)
	Update(ctx context.Context, itemID string, req UpdateItemRequest) (ItemResponse, error)
	SetAvailability(ctx context.Context, itemID string, available bool) error
	Delete(ctx context.Context, itemID string) error

	// Snapshot feeds the cart engine with the restaurant's catalog.
	Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]cart.Item, error)
}

type service struct {
	repo        Repository
	overrideSvc override.Service
	validate    *validator.Validate
}

func NewService(repo Repository, overrideSvc override.Service) Service {
	return &service{
		repo:        repo,
		overrideSvc: overrideSvc,
		validate:    validator.New(),
	}
}

func (s *service) ListPublic(ctx context.Context, restaurantID string) ([]ItemResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, ErrInvalidRestaurantID
	}

	items, err := s.repo.ListByRestaurant(ctx, rid)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrideSvc.Snapshot(ctx, rid)
	if err != nil {
		return nil, err
	}

	// The same engine that prices carts computes the display values, so the
	// storefront can never disagree with checkout.
	snapshots := make([]cart.Item, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, item.Snapshot())
	}
	engine := cart.NewEngine(snapshots, overrides)

	res := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		mapped := mapItemToResponse(item)
		display, err := engine.ResolveUnitPrice(item.ID.String(), "", nil)
		if err != nil {
			return nil, err
		}
		mapped.DisplayPrice = &display
		mapped.IsAvailable = engine.IsAvailable(item.ID.String())
		mapped.IsOverridden = !display.Equal(item.BasePrice)
		res = append(res, mapped)
	}
	return res, nil
}

func (s *service) List(ctx context.Context, restaurantID string) ([]ItemResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, ErrInvalidRestaurantID
	}

	items, err := s.repo.ListByRestaurant(ctx, rid)
	if err != nil {
		return nil, err
	}

	res := make([]ItemResponse, 0, len(items))
	for _, item := range items {
		res = append(res, mapItemToResponse(item))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateItemRequest) (ItemResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return ItemResponse{}, ErrInvalidRestaurantID
	}
	if err := s.validate.Struct(req); err != nil {
		return ItemResponse{}, ErrInvalidPayload
	}

	item := MenuItem{
		ID:             uuid.New(),
		RestaurantID:   rid,
		Name:           req.Name,
		Description:    req.Description,
		BasePrice:      req.BasePrice,
		Variations:     mapVariationInputs(req.Variations),
		Customizations: mapCustomizationInputs(req.Customizations),
		IsAvailable:    req.IsAvailable == nil || *req.IsAvailable,
		Position:       req.Position,
	}
	if req.CategoryID != "" {
		cid, err := uuid.Parse(req.CategoryID)
		if err != nil {
			return ItemResponse{}, ErrInvalidItemID
		}
		item.CategoryID = uuid.NullUUID{UUID: cid, Valid: true}
	}

	if err := validateItem(item); err != nil {
		return ItemResponse{}, err
	}

	created, err := s.repo.Create(ctx, item)
	if err != nil {
		return ItemResponse{}, err
	}
	return mapItemToResponse(created), nil
}

func (s *service) Update(ctx context.Context, itemID string, req UpdateItemRequest) (ItemResponse, error) {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return ItemResponse{}, ErrInvalidItemID
	}

	item, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ItemResponse{}, ErrItemNotFound
		}
		return ItemResponse{}, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.Description != nil {
		item.Description = *req.Description
	}
	if req.BasePrice != nil {
		item.BasePrice = *req.BasePrice
	}
	if req.Variations != nil {
		item.Variations = mapVariationInputs(req.Variations)
	}
	if req.Customizations != nil {
		item.Customizations = mapCustomizationInputs(req.Customizations)
	}
	if req.IsAvailable != nil {
		item.IsAvailable = *req.IsAvailable
	}
	if req.Position != nil {
		item.Position = *req.Position
	}
	if req.CategoryID != nil {
		if *req.CategoryID == "" {
			item.CategoryID = uuid.NullUUID{}
		} else {
			cid, err := uuid.Parse(*req.CategoryID)
			if err != nil {
				return ItemResponse{}, ErrInvalidItemID
			}
			item.CategoryID = uuid.NullUUID{UUID: cid, Valid: true}
		}
	}

	if err := validateItem(item); err != nil {
		return ItemResponse{}, err
	}

	updated, err := s.repo.Update(ctx, item)
	if err != nil {
		return ItemResponse{}, err
	}
	return mapItemToResponse(updated), nil
}

func (s *service) SetAvailability(ctx context.Context, itemID string, available bool) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return ErrInvalidItemID
	}
	if err := s.repo.SetAvailability(ctx, id, available); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrItemNotFound
		}
		return err
	}
	return nil
}

func (s *service) Delete(ctx context.Context, itemID string) error {
	id, err := uuid.Parse(itemID)
	if err != nil {
		return ErrInvalidItemID
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]cart.Item, error) {
	items, err := s.repo.ListByRestaurant(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	snapshots := make([]cart.Item, 0, len(items))
	for _, item := range items {
		snapshots = append(snapshots, item.Snapshot())
	}
	return snapshots, nil
}

// validateItem enforces the catalog invariants on write: no negative prices,
// no duplicate variation or customization names. A missing or malformed
// price is rejected here instead of being silently priced as zero later.
func validateItem(item MenuItem) error {
	if item.BasePrice.IsNegative() {
		return ErrNegativePrice
	}

	variationNames := make(map[string]struct{}, len(item.Variations))
	for _, v := range item.Variations {
		if v.Price.IsNegative() {
			return ErrNegativePrice
		}
		if _, dup := variationNames[v.Name]; dup {
			return ErrDuplicateVariation
		}
		variationNames[v.Name] = struct{}{}
	}

	customizationNames := make(map[string]struct{}, len(item.Customizations))
	for _, c := range item.Customizations {
		if c.Price.IsNegative() {
			return ErrNegativePrice
		}
		if _, dup := customizationNames[c.Name]; dup {
			return ErrDuplicateCustomization
		}
		customizationNames[c.Name] = struct{}{}
	}
	return nil
}

func mapVariationInputs(inputs []VariationInput) []Variation {
	out := make([]Variation, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Variation{
			Name:        in.Name,
			Price:       in.Price,
			IsAvailable: in.IsAvailable == nil || *in.IsAvailable,
		})
	}
	return out
}

func mapCustomizationInputs(inputs []CustomizationInput) []Customization {
	out := make([]Customization, 0, len(inputs))
	for _, in := range inputs {
		out = append(out, Customization{Name: in.Name, Price: in.Price})
	}
	return out
}

func mapItemToResponse(item MenuItem) ItemResponse {
	res := ItemResponse{
		ID:             item.ID.String(),
		RestaurantID:   item.RestaurantID.String(),
		Name:           item.Name,
		Description:    item.Description,
		BasePrice:      item.BasePrice,
		Variations:     make([]VariationResponse, 0, len(item.Variations)),
		Customizations: make([]CustomizationResponse, 0, len(item.Customizations)),
		IsAvailable:    item.IsAvailable,
		Position:       item.Position,
		UpdatedAt:      item.UpdatedAt,
	}
	if item.CategoryID.Valid {
		cid := item.CategoryID.UUID.String()
		res.CategoryID = &cid
	}
	for _, v := range item.Variations {
		res.Variations = append(res.Variations, VariationResponse(v))
	}
	for _, c := range item.Customizations {
		res.Customizations = append(res.Customizations, CustomizationResponse(c))
	}
	return res
}
