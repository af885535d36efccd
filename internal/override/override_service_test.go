package override_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockoverride "github.com/savindushenal/menuvibe-api/internal/mock/override"
	"github.com/savindushenal/menuvibe-api/internal/override"
)

func newOverrideFixture(t *testing.T) (*mockoverride.MockRepository, override.Service) {
	ctrl := gomock.NewController(t)
	repo := mockoverride.NewMockRepository(ctrl)
	return repo, override.NewService(repo)
}

func TestService_Set(t *testing.T) {
	restaurantID := uuid.New()
	itemID := uuid.New()

	t.Run("sets price override", func(t *testing.T) {
		repo, svc := newOverrideFixture(t)
		price := decimal.NewFromInt(750)

		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ov override.Override) (override.Override, error) {
				assert.Equal(t, restaurantID, ov.RestaurantID)
				assert.Equal(t, itemID, ov.ItemID)
				assert.True(t, ov.Price.Valid)
				assert.True(t, ov.Price.Decimal.Equal(price))
				assert.False(t, ov.IsAvailable.Valid)
				return ov, nil
			})

		res, err := svc.Set(context.Background(), restaurantID.String(), itemID.String(), override.SetRequest{
			PriceOverride: &price,
		})

		assert.NoError(t, err)
		assert.Equal(t, itemID.String(), res.ItemID)
		assert.True(t, res.PriceOverride.Equal(price))
		assert.Nil(t, res.IsAvailableOverride)
	})

	t.Run("sets availability override", func(t *testing.T) {
		repo, svc := newOverrideFixture(t)
		hidden := false

		repo.EXPECT().
			Upsert(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, ov override.Override) (override.Override, error) {
				assert.False(t, ov.Price.Valid)
				assert.True(t, ov.IsAvailable.Valid)
				assert.False(t, ov.IsAvailable.Bool)
				return ov, nil
			})

		res, err := svc.Set(context.Background(), restaurantID.String(), itemID.String(), override.SetRequest{
			IsAvailableOverride: &hidden,
		})

		assert.NoError(t, err)
		assert.NotNil(t, res.IsAvailableOverride)
		assert.False(t, *res.IsAvailableOverride)
	})

	t.Run("empty request deletes the row", func(t *testing.T) {
		repo, svc := newOverrideFixture(t)

		repo.EXPECT().Delete(gomock.Any(), restaurantID, itemID).Return(nil)

		res, err := svc.Set(context.Background(), restaurantID.String(), itemID.String(), override.SetRequest{})

		assert.NoError(t, err)
		assert.Equal(t, itemID.String(), res.ItemID)
		assert.Nil(t, res.PriceOverride)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, svc := newOverrideFixture(t)
		price := decimal.NewFromInt(-1)

		_, err := svc.Set(context.Background(), restaurantID.String(), itemID.String(), override.SetRequest{
			PriceOverride: &price,
		})

		assert.ErrorIs(t, err, override.ErrNegativePrice)
	})

	t.Run("invalid item id", func(t *testing.T) {
		_, svc := newOverrideFixture(t)

		_, err := svc.Set(context.Background(), restaurantID.String(), "nope", override.SetRequest{})

		assert.ErrorIs(t, err, override.ErrInvalidItemID)
	})
}

func TestService_Clear(t *testing.T) {
	restaurantID := uuid.New()
	itemID := uuid.New()

	repo, svc := newOverrideFixture(t)
	repo.EXPECT().Delete(gomock.Any(), restaurantID, itemID).Return(nil)

	assert.NoError(t, svc.Clear(context.Background(), restaurantID.String(), itemID.String()))
}

func TestService_Snapshot(t *testing.T) {
	restaurantID := uuid.New()
	itemID := uuid.New()

	repo, svc := newOverrideFixture(t)
	repo.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return([]override.Override{
		{
			RestaurantID: restaurantID,
			ItemID:       itemID,
			Price:        decimal.NullDecimal{Decimal: decimal.NewFromInt(750), Valid: true},
			IsAvailable:  sql.NullBool{Bool: true, Valid: true},
		},
	}, nil)

	overrides, err := svc.Snapshot(context.Background(), restaurantID)

	assert.NoError(t, err)
	assert.Len(t, overrides, 1)
	assert.Equal(t, itemID.String(), overrides[0].ItemID)
	assert.True(t, overrides[0].Price.Equal(decimal.NewFromInt(750)))
	assert.True(t, *overrides[0].Available)
}
