package menu_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/savindushenal/menuvibe-api/internal/cart"
	"github.com/savindushenal/menuvibe-api/internal/menu"
	mockmenu "github.com/savindushenal/menuvibe-api/internal/mock/menu"
	mockoverride "github.com/savindushenal/menuvibe-api/internal/mock/override"
)

type menuFixture struct {
	repo      *mockmenu.MockRepository
	overrides *mockoverride.MockService
	svc       menu.Service
}

func newMenuFixture(t *testing.T) menuFixture {
	ctrl := gomock.NewController(t)
	repo := mockmenu.NewMockRepository(ctrl)
	overrides := mockoverride.NewMockService(ctrl)
	return menuFixture{
		repo:      repo,
		overrides: overrides,
		svc:       menu.NewService(repo, overrides),
	}
}

func TestService_ListPublic(t *testing.T) {
	restaurantID := uuid.New()
	margheritaID := uuid.New()
	garlicBreadID := uuid.New()

	items := []menu.MenuItem{
		{
			ID:           margheritaID,
			RestaurantID: restaurantID,
			Name:         "Margherita",
			BasePrice:    decimal.NewFromInt(1790),
			IsAvailable:  true,
		},
		{
			ID:           garlicBreadID,
			RestaurantID: restaurantID,
			Name:         "Garlic Bread",
			BasePrice:    decimal.NewFromInt(650),
			IsAvailable:  true,
		},
	}

	t.Run("applies price override to display price", func(t *testing.T) {
		f := newMenuFixture(t)
		happyHour := decimal.NewFromInt(1490)

		f.repo.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return(items, nil)
		f.overrides.EXPECT().Snapshot(gomock.Any(), restaurantID).Return([]cart.Override{
			{ItemID: margheritaID.String(), Price: &happyHour},
		}, nil)

		res, err := f.svc.ListPublic(context.Background(), restaurantID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.True(t, res[0].DisplayPrice.Equal(decimal.NewFromInt(1490)))
		assert.True(t, res[0].IsOverridden)
		assert.True(t, res[1].DisplayPrice.Equal(decimal.NewFromInt(650)))
		assert.False(t, res[1].IsOverridden)
	})

	t.Run("availability override hides the item", func(t *testing.T) {
		f := newMenuFixture(t)
		unavailable := false

		f.repo.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return(items, nil)
		f.overrides.EXPECT().Snapshot(gomock.Any(), restaurantID).Return([]cart.Override{
			{ItemID: garlicBreadID.String(), Available: &unavailable},
		}, nil)

		res, err := f.svc.ListPublic(context.Background(), restaurantID.String())

		assert.NoError(t, err)
		assert.True(t, res[0].IsAvailable)
		assert.False(t, res[1].IsAvailable)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.svc.ListPublic(context.Background(), "not-a-uuid")

		assert.ErrorIs(t, err, menu.ErrInvalidRestaurantID)
	})
}

func TestService_Create(t *testing.T) {
	restaurantID := uuid.New()

	t.Run("success defaults to available", func(t *testing.T) {
		f := newMenuFixture(t)

		f.repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item menu.MenuItem) (menu.MenuItem, error) {
				assert.Equal(t, "Margherita", item.Name)
				assert.True(t, item.BasePrice.Equal(decimal.NewFromInt(1790)))
				assert.True(t, item.IsAvailable)
				assert.Len(t, item.Variations, 2)
				assert.Len(t, item.Customizations, 1)
				return item, nil
			})

		res, err := f.svc.Create(context.Background(), restaurantID.String(), menu.CreateItemRequest{
			Name:      "Margherita",
			BasePrice: decimal.NewFromInt(1790),
			Variations: []menu.VariationInput{
				{Name: "Medium", Price: decimal.NewFromInt(1790)},
				{Name: "Large", Price: decimal.NewFromInt(2290)},
			},
			Customizations: []menu.CustomizationInput{
				{Name: "extra cheese", Price: decimal.NewFromInt(250)},
			},
		})

		assert.NoError(t, err)
		assert.Equal(t, "Margherita", res.Name)
		assert.True(t, res.IsAvailable)
	})

	t.Run("missing name", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.svc.Create(context.Background(), restaurantID.String(), menu.CreateItemRequest{
			BasePrice: decimal.NewFromInt(100),
		})

		assert.ErrorIs(t, err, menu.ErrInvalidPayload)
	})

	t.Run("negative base price", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.svc.Create(context.Background(), restaurantID.String(), menu.CreateItemRequest{
			Name:      "Broken",
			BasePrice: decimal.NewFromInt(-10),
		})

		assert.ErrorIs(t, err, menu.ErrNegativePrice)
	})

	t.Run("duplicate variation name", func(t *testing.T) {
		f := newMenuFixture(t)

		_, err := f.svc.Create(context.Background(), restaurantID.String(), menu.CreateItemRequest{
			Name:      "Margherita",
			BasePrice: decimal.NewFromInt(1790),
			Variations: []menu.VariationInput{
				{Name: "Large", Price: decimal.NewFromInt(2290)},
				{Name: "Large", Price: decimal.NewFromInt(2490)},
			},
		})

		assert.ErrorIs(t, err, menu.ErrDuplicateVariation)
	})
}

func TestService_Update(t *testing.T) {
	itemID := uuid.New()

	t.Run("patches only provided fields", func(t *testing.T) {
		f := newMenuFixture(t)
		existing := menu.MenuItem{
			ID:          itemID,
			Name:        "Margherita",
			Description: "Classic",
			BasePrice:   decimal.NewFromInt(1790),
			IsAvailable: true,
		}
		newPrice := decimal.NewFromInt(1890)

		f.repo.EXPECT().GetByID(gomock.Any(), itemID).Return(existing, nil)
		f.repo.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, item menu.MenuItem) (menu.MenuItem, error) {
				assert.Equal(t, "Margherita", item.Name)
				assert.True(t, item.BasePrice.Equal(newPrice))
				return item, nil
			})

		res, err := f.svc.Update(context.Background(), itemID.String(), menu.UpdateItemRequest{
			BasePrice: &newPrice,
		})

		assert.NoError(t, err)
		assert.True(t, res.BasePrice.Equal(newPrice))
	})

	t.Run("not found", func(t *testing.T) {
		f := newMenuFixture(t)

		f.repo.EXPECT().GetByID(gomock.Any(), itemID).Return(menu.MenuItem{}, sql.ErrNoRows)

		_, err := f.svc.Update(context.Background(), itemID.String(), menu.UpdateItemRequest{})

		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})
}

func TestService_SetAvailability(t *testing.T) {
	itemID := uuid.New()

	t.Run("success", func(t *testing.T) {
		f := newMenuFixture(t)

		f.repo.EXPECT().SetAvailability(gomock.Any(), itemID, false).Return(nil)

		assert.NoError(t, f.svc.SetAvailability(context.Background(), itemID.String(), false))
	})

	t.Run("not found", func(t *testing.T) {
		f := newMenuFixture(t)

		f.repo.EXPECT().SetAvailability(gomock.Any(), itemID, true).Return(sql.ErrNoRows)

		err := f.svc.SetAvailability(context.Background(), itemID.String(), true)

		assert.ErrorIs(t, err, menu.ErrItemNotFound)
	})
}

func TestService_Snapshot(t *testing.T) {
	f := newMenuFixture(t)
	restaurantID := uuid.New()
	itemID := uuid.New()

	f.repo.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return([]menu.MenuItem{
		{
			ID:        itemID,
			Name:      "Margherita",
			BasePrice: decimal.NewFromInt(1790),
			Variations: []menu.Variation{
				{Name: "Large", Price: decimal.NewFromInt(2290), IsAvailable: true},
			},
			Customizations: []menu.Customization{
				{Name: "extra cheese", Price: decimal.NewFromInt(250)},
			},
			IsAvailable: true,
		},
	}, nil)

	snapshot, err := f.svc.Snapshot(context.Background(), restaurantID)

	assert.NoError(t, err)
	assert.Len(t, snapshot, 1)
	assert.Equal(t, itemID.String(), snapshot[0].ID)
	assert.Len(t, snapshot[0].Variations, 1)
	assert.True(t, snapshot[0].Variations[0].Price.Equal(decimal.NewFromInt(2290)))
}
