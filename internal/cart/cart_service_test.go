package cart_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	mock "github.com/savindushenal/menuvibe-api/internal/mock/cart"
)

type serviceFixture struct {
	store     *mock.MockStore
	catalog   *mock.MockCatalogSource
	overrides *mock.MockOverrideSource
	svc       cart.Service
}

func newServiceFixture(t *testing.T) serviceFixture {
	ctrl := gomock.NewController(t)
	store := mock.NewMockStore(ctrl)
	catalog := mock.NewMockCatalogSource(ctrl)
	overrides := mock.NewMockOverrideSource(ctrl)

	return serviceFixture{
		store:     store,
		catalog:   catalog,
		overrides: overrides,
		svc: cart.NewService(cart.Deps{
			Store:     store,
			Catalog:   catalog,
			Overrides: overrides,
		}),
	}
}

func catalogFixture(itemID string) []cart.Item {
	return []cart.Item{
		{
			ID:          itemID,
			Name:        "Margherita",
			BasePrice:   decimal.NewFromInt(1790),
			IsAvailable: true,
			Variations: []cart.Variation{
				{Name: "Large", Price: decimal.NewFromInt(2290), IsAvailable: true},
			},
			Customizations: []cart.Customization{
				{Name: "extra-cheese", Price: decimal.NewFromInt(250)},
			},
		},
	}
}

func TestCartService_AddItem(t *testing.T) {
	restaurantID := uuid.New()
	sessionID := "sess-1"
	itemID := uuid.NewString()
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		f := newServiceFixture(t)

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(cart.Cart{}, nil)
		f.store.EXPECT().Save(ctx, restaurantID, sessionID, gomock.Any()).Return(nil)

		res, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:         itemID,
			Quantity:       2,
			Variation:      "Large",
			Customizations: []string{"extra-cheese"},
		})

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Count)
		if assert.Len(t, res.Lines, 1) {
			assert.True(t, res.Lines[0].UnitPrice.Equal(decimal.NewFromInt(2540)))
			assert.True(t, res.Total.Equal(decimal.NewFromInt(5080)))
		}
	})

	t.Run("merges_with_existing_line", func(t *testing.T) {
		f := newServiceFixture(t)
		existing := cart.Cart{Lines: []cart.Line{
			{ItemID: itemID, Quantity: 2},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(existing, nil)
		f.store.EXPECT().Save(ctx, restaurantID, sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, c cart.Cart) error {
				assert.Len(t, c.Lines, 1)
				assert.Equal(t, 5, c.Lines[0].Quantity)
				return nil
			})

		res, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:   itemID,
			Quantity: 3,
		})

		assert.NoError(t, err)
		assert.Equal(t, 5, res.Count)
	})

	t.Run("unknown_item_conflicts", func(t *testing.T) {
		f := newServiceFixture(t)

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)

		_, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:   uuid.NewString(),
			Quantity: 1,
		})

		assert.ErrorIs(t, err, cart.ErrCatalogConflict)
	})

	t.Run("unknown_variation_is_rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)

		_, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:    itemID,
			Quantity:  1,
			Variation: "Gigantic",
		})

		assert.ErrorIs(t, err, cart.ErrUnknownSelection)
	})

	t.Run("unknown_customization_is_rejected", func(t *testing.T) {
		f := newServiceFixture(t)

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)

		_, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:         itemID,
			Quantity:       1,
			Customizations: []string{"gold leaf"},
		})

		assert.ErrorIs(t, err, cart.ErrUnknownSelection)
	})

	t.Run("unavailable_item_is_rejected_without_saving", func(t *testing.T) {
		f := newServiceFixture(t)
		items := catalogFixture(itemID)
		items[0].IsAvailable = false

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(items, nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(cart.Cart{}, nil)

		_, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID:   itemID,
			Quantity: 1,
		})

		assert.ErrorIs(t, err, cart.ErrItemUnavailable)
	})

	t.Run("invalid_payload", func(t *testing.T) {
		f := newServiceFixture(t)

		_, err := f.svc.AddItem(ctx, restaurantID, sessionID, cart.AddItemRequest{
			ItemID: "not-a-uuid",
		})

		assert.ErrorIs(t, err, cart.ErrInvalidPayload)
	})
}

func TestCartService_Detail(t *testing.T) {
	restaurantID := uuid.New()
	sessionID := "sess-1"
	itemID := uuid.NewString()
	ctx := context.Background()

	t.Run("prices_stored_lines", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{
			{ItemID: itemID, Variation: "Large", Quantity: 3},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)

		res, err := f.svc.Detail(ctx, restaurantID, sessionID)

		assert.NoError(t, err)
		if assert.Len(t, res.Lines, 1) {
			assert.Equal(t, "Margherita", res.Lines[0].Name)
			assert.True(t, res.Lines[0].LineTotal.Equal(decimal.NewFromInt(6870)))
		}
		assert.True(t, res.Total.Equal(decimal.NewFromInt(6870)))
	})

	t.Run("prunes_lines_for_deleted_items", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{
			{ItemID: itemID, Quantity: 1},
			{ItemID: uuid.NewString(), Quantity: 2},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)
		f.store.EXPECT().Save(ctx, restaurantID, sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, c cart.Cart) error {
				assert.Len(t, c.Lines, 1)
				return nil
			})

		res, err := f.svc.Detail(ctx, restaurantID, sessionID)

		assert.NoError(t, err)
		assert.Len(t, res.Lines, 1)
		assert.Equal(t, 1, res.Count)
	})

	t.Run("applies_overrides", func(t *testing.T) {
		f := newServiceFixture(t)
		price := decimal.NewFromInt(750)
		stored := cart.Cart{Lines: []cart.Line{
			{ItemID: itemID, Variation: "Large", Quantity: 1},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return([]cart.Override{
			{ItemID: itemID, Price: &price},
		}, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)

		res, err := f.svc.Detail(ctx, restaurantID, sessionID)

		assert.NoError(t, err)
		assert.True(t, res.Total.Equal(decimal.NewFromInt(750)))
	})
}

func TestCartService_UpdateQuantity(t *testing.T) {
	restaurantID := uuid.New()
	sessionID := "sess-1"
	itemID := uuid.NewString()
	ctx := context.Background()
	lineKey := cart.Line{ItemID: itemID}.Key()

	t.Run("zero_removes_line", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{{ItemID: itemID, Quantity: 3}}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)
		f.store.EXPECT().Save(ctx, restaurantID, sessionID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, _ string, c cart.Cart) error {
				assert.Empty(t, c.Lines)
				return nil
			})

		res, err := f.svc.UpdateQuantity(ctx, restaurantID, sessionID, lineKey, cart.UpdateQuantityRequest{Quantity: 0})

		assert.NoError(t, err)
		assert.Equal(t, 0, res.Count)
		assert.True(t, res.Total.IsZero())
	})

	t.Run("sets_exact_quantity", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{{ItemID: itemID, Quantity: 1}}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)
		f.store.EXPECT().Save(ctx, restaurantID, sessionID, gomock.Any()).Return(nil)

		res, err := f.svc.UpdateQuantity(ctx, restaurantID, sessionID, lineKey, cart.UpdateQuantityRequest{Quantity: 7})

		assert.NoError(t, err)
		assert.Equal(t, 7, res.Count)
	})
}

func TestCartService_Payload(t *testing.T) {
	restaurantID := uuid.New()
	sessionID := "sess-1"
	itemID := uuid.NewString()
	ctx := context.Background()

	t.Run("builds_priced_payload_without_touching_store", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{
			{ItemID: itemID, Variation: "Large", Customizations: []string{"extra-cheese"}, Quantity: 3},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)

		payload, err := f.svc.Payload(ctx, restaurantID, sessionID)

		assert.NoError(t, err)
		if assert.Len(t, payload.Lines, 1) {
			assert.Equal(t, "Margherita", payload.Lines[0].Name)
			assert.True(t, payload.Lines[0].UnitPrice.Equal(decimal.NewFromInt(2540)))
		}
		assert.True(t, payload.Total.Equal(decimal.NewFromInt(7620)))
	})

	t.Run("stale_line_conflicts", func(t *testing.T) {
		f := newServiceFixture(t)
		stored := cart.Cart{Lines: []cart.Line{
			{ItemID: uuid.NewString(), Quantity: 1},
		}}

		f.catalog.EXPECT().Snapshot(ctx, restaurantID).Return(catalogFixture(itemID), nil)
		f.overrides.EXPECT().Snapshot(ctx, restaurantID).Return(nil, nil)
		f.store.EXPECT().Load(ctx, restaurantID, sessionID).Return(stored, nil)

		_, err := f.svc.Payload(ctx, restaurantID, sessionID)

		assert.ErrorIs(t, err, cart.ErrCatalogConflict)
	})
}

func TestCartService_Clear(t *testing.T) {
	restaurantID := uuid.New()
	sessionID := "sess-1"
	ctx := context.Background()

	f := newServiceFixture(t)
	f.store.EXPECT().Clear(ctx, restaurantID, sessionID).Return(nil)

	assert.NoError(t, f.svc.Clear(ctx, restaurantID, sessionID))
}
