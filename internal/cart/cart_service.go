package cart

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/shopspring/decimal"
)

// CatalogSource supplies the menu snapshot the pricing engine works from.
// Implemented by the menu service.
type CatalogSource interface {
	Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]Item, error)
}

// OverrideSource supplies per-item price and availability overrides.
// Implemented by the override service.
type OverrideSource interface {
	Snapshot(ctx context.Context, restaurantID uuid.UUID) ([]Override, error)
}

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	Detail(ctx context.Context, restaurantID uuid.UUID, sessionID string) (CartResponse, error)
	Count(ctx context.Context, restaurantID uuid.UUID, sessionID string) (int, error)
	AddItem(ctx context.Context, restaurantID uuid.UUID, sessionID string, req AddItemRequest) (CartResponse, error)
	UpdateQuantity(ctx context.Context, restaurantID uuid.UUID, sessionID, lineKey string, req UpdateQuantityRequest) (CartResponse, error)
	RemoveLine(ctx context.Context, restaurantID uuid.UUID, sessionID, lineKey string) (CartResponse, error)
	Clear(ctx context.Context, restaurantID uuid.UUID, sessionID string) error

	// Payload prices the stored cart for checkout. The stored cart is not
	// modified, so a failed checkout leaves it intact.
	Payload(ctx context.Context, restaurantID uuid.UUID, sessionID string) (OrderPayload, error)
}

type Deps struct {
	Store     Store
	Catalog   CatalogSource
	Overrides OverrideSource
	Logger    *zap.Logger
}

type service struct {
	store     Store
	catalog   CatalogSource
	overrides OverrideSource
	validate  *validator.Validate
	logger    *zap.Logger
}

func NewService(deps Deps) Service {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		store:     deps.Store,
		catalog:   deps.Catalog,
		overrides: deps.Overrides,
		validate:  validator.New(),
		logger:    logger.Named("cart"),
	}
}

func (s *service) engineFor(ctx context.Context, restaurantID uuid.UUID) (*Engine, error) {
	items, err := s.catalog.Snapshot(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	overrides, err := s.overrides.Snapshot(ctx, restaurantID)
	if err != nil {
		return nil, err
	}
	return NewEngine(items, overrides), nil
}

func (s *service) Detail(ctx context.Context, restaurantID uuid.UUID, sessionID string) (CartResponse, error) {
	engine, err := s.engineFor(ctx, restaurantID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	res, pruned := s.mapCart(engine, &c)
	if pruned {
		// Lines whose items were removed from the menu since they were added
		// cannot be priced anymore, so they are dropped from the stored cart.
		if err := s.store.Save(ctx, restaurantID, sessionID, c); err != nil {
			s.logger.Warn("failed to persist pruned cart", zap.Error(err))
		}
	}
	return res, nil
}

func (s *service) Count(ctx context.Context, restaurantID uuid.UUID, sessionID string) (int, error) {
	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return 0, ErrCartFailed
	}
	return c.Count(), nil
}

func (s *service) AddItem(ctx context.Context, restaurantID uuid.UUID, sessionID string, req AddItemRequest) (CartResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return CartResponse{}, ErrInvalidPayload
	}

	engine, err := s.engineFor(ctx, restaurantID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}
	item, ok := engine.Item(req.ItemID)
	if !ok {
		return CartResponse{}, ErrCatalogConflict
	}
	if err := validateSelections(item, req.Variation, req.Customizations); err != nil {
		return CartResponse{}, err
	}

	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	if !engine.Add(&c, req.ItemID, req.Quantity, req.Variation, req.Customizations) {
		return CartResponse{}, ErrItemUnavailable
	}
	if err := s.store.Save(ctx, restaurantID, sessionID, c); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	res, _ := s.mapCart(engine, &c)
	return res, nil
}

// The engine skips unknown selection names when pricing; rejecting them here
// keeps them out of stored carts entirely.
func validateSelections(item Item, variation string, customizations []string) error {
	if variation != "" {
		found := false
		for _, v := range item.Variations {
			if v.Name == variation {
				found = true
				break
			}
		}
		if !found {
			return ErrUnknownSelection
		}
	}

	known := make(map[string]struct{}, len(item.Customizations))
	for _, c := range item.Customizations {
		known[c.Name] = struct{}{}
	}
	for _, name := range customizations {
		if _, ok := known[name]; !ok {
			return ErrUnknownSelection
		}
	}
	return nil
}

func (s *service) UpdateQuantity(ctx context.Context, restaurantID uuid.UUID, sessionID, lineKey string, req UpdateQuantityRequest) (CartResponse, error) {
	engine, err := s.engineFor(ctx, restaurantID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	c.UpdateQuantity(lineKey, req.Quantity)
	if err := s.store.Save(ctx, restaurantID, sessionID, c); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	res, _ := s.mapCart(engine, &c)
	return res, nil
}

func (s *service) RemoveLine(ctx context.Context, restaurantID uuid.UUID, sessionID, lineKey string) (CartResponse, error) {
	engine, err := s.engineFor(ctx, restaurantID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return CartResponse{}, ErrCartFailed
	}

	c.Remove(lineKey)
	if err := s.store.Save(ctx, restaurantID, sessionID, c); err != nil {
		return CartResponse{}, ErrCartFailed
	}

	res, _ := s.mapCart(engine, &c)
	return res, nil
}

func (s *service) Clear(ctx context.Context, restaurantID uuid.UUID, sessionID string) error {
	if err := s.store.Clear(ctx, restaurantID, sessionID); err != nil {
		return ErrCartFailed
	}
	return nil
}

func (s *service) Payload(ctx context.Context, restaurantID uuid.UUID, sessionID string) (OrderPayload, error) {
	engine, err := s.engineFor(ctx, restaurantID)
	if err != nil {
		return OrderPayload{}, ErrCartFailed
	}

	c, err := s.store.Load(ctx, restaurantID, sessionID)
	if err != nil {
		return OrderPayload{}, ErrCartFailed
	}

	payload, err := engine.BuildOrderPayload(&c)
	if err != nil {
		if errors.Is(err, ErrCatalogMismatch) {
			return OrderPayload{}, ErrCatalogConflict
		}
		return OrderPayload{}, ErrCartFailed
	}
	return payload, nil
}

// mapCart prices every line through the engine. Lines that can no longer be
// priced are removed from c; the second return reports whether any were.
func (s *service) mapCart(engine *Engine, c *Cart) (CartResponse, bool) {
	res := CartResponse{Lines: []LineResponse{}}
	kept := c.Lines[:0]
	pruned := false

	for _, l := range c.Lines {
		unit, err := engine.ResolveUnitPrice(l.ItemID, l.Variation, l.Customizations)
		if err != nil {
			pruned = true
			continue
		}
		kept = append(kept, l)

		item, _ := engine.Item(l.ItemID)
		customizations := l.Customizations
		if customizations == nil {
			customizations = []string{}
		}
		res.Lines = append(res.Lines, LineResponse{
			Key:            l.Key(),
			ItemID:         l.ItemID,
			Name:           item.Name,
			Quantity:       l.Quantity,
			Variation:      l.Variation,
			Customizations: customizations,
			UnitPrice:      unit,
			LineTotal:      unit.Mul(decimal.NewFromInt(int64(l.Quantity))),
		})
	}
	c.Lines = kept

	res.Count = c.Count()
	total, err := engine.Total(c)
	if err == nil {
		res.Total = total
	}
	return res, pruned
}
