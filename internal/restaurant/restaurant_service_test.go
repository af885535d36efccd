package restaurant_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	mockrestaurant "github.com/savindushenal/menuvibe-api/internal/mock/restaurant"
	"github.com/savindushenal/menuvibe-api/internal/restaurant"
)

func newRestaurantFixture(t *testing.T) (*mockrestaurant.MockRepository, restaurant.Service) {
	ctrl := gomock.NewController(t)
	repo := mockrestaurant.NewMockRepository(ctrl)
	return repo, restaurant.NewService(repo)
}

func TestService_GetBySlug(t *testing.T) {
	t.Run("success normalizes slug", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().
			GetBySlug(gomock.Any(), "bella-napoli").
			Return(restaurant.Restaurant{
				ID:       uuid.New(),
				Slug:     "bella-napoli",
				Name:     "Bella Napoli",
				Currency: "LKR",
				Theme:    restaurant.DefaultTheme(),
			}, nil)

		res, err := svc.GetBySlug(context.Background(), "  Bella-Napoli ")

		assert.NoError(t, err)
		assert.Equal(t, "bella-napoli", res.Slug)
		assert.Equal(t, "LKR", res.Currency)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().GetBySlug(gomock.Any(), "ghost-kitchen").Return(restaurant.Restaurant{}, sql.ErrNoRows)

		_, err := svc.GetBySlug(context.Background(), "ghost-kitchen")

		assert.ErrorIs(t, err, restaurant.ErrNotFound)
	})

	t.Run("empty slug", func(t *testing.T) {
		_, svc := newRestaurantFixture(t)

		_, err := svc.GetBySlug(context.Background(), "   ")

		assert.ErrorIs(t, err, restaurant.ErrInvalidRestaurantID)
	})
}

func TestService_Create(t *testing.T) {
	t.Run("success applies default theme", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, r restaurant.Restaurant) (restaurant.Restaurant, error) {
				assert.Equal(t, "kopi-corner", r.Slug)
				assert.Equal(t, "LKR", r.Currency)
				assert.Equal(t, restaurant.DefaultTheme(), r.Theme)
				return r, nil
			})

		res, err := svc.Create(context.Background(), restaurant.CreateRequest{
			Slug:     "Kopi-Corner",
			Name:     "Kopi Corner",
			Currency: "lkr",
		})

		assert.NoError(t, err)
		assert.Equal(t, "kopi-corner", res.Slug)
	})

	t.Run("duplicate slug", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(restaurant.Restaurant{}, &pq.Error{Code: "23505"})

		_, err := svc.Create(context.Background(), restaurant.CreateRequest{
			Slug:     "kopi-corner",
			Name:     "Kopi Corner",
			Currency: "LKR",
		})

		assert.ErrorIs(t, err, restaurant.ErrSlugTaken)
	})

	t.Run("invalid payload", func(t *testing.T) {
		_, svc := newRestaurantFixture(t)

		_, err := svc.Create(context.Background(), restaurant.CreateRequest{
			Slug:     "ab",
			Name:     "X",
			Currency: "RUPEES",
		})

		assert.ErrorIs(t, err, restaurant.ErrInvalidPayload)
	})
}

func TestService_UpdateTheme(t *testing.T) {
	restaurantID := uuid.New()
	current := restaurant.Restaurant{
		ID:    restaurantID,
		Slug:  "bella-napoli",
		Theme: restaurant.DefaultTheme(),
	}

	t.Run("merges patch onto stored theme", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)
		hide := false

		repo.EXPECT().GetByID(gomock.Any(), restaurantID).Return(current, nil)
		repo.EXPECT().
			UpdateTheme(gomock.Any(), restaurantID, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ uuid.UUID, theme restaurant.ThemeSettings) (restaurant.Restaurant, error) {
				assert.Equal(t, "list", theme.Layout)
				assert.Equal(t, "#6f4e37", theme.AccentColor)
				assert.False(t, theme.ShowImages)
				// untouched field keeps its stored value
				assert.Equal(t, current.Theme.ColorTheme, theme.ColorTheme)
				updated := current
				updated.Theme = theme
				return updated, nil
			})

		res, err := svc.UpdateTheme(context.Background(), restaurantID, restaurant.UpdateThemeRequest{
			Layout:      "list",
			AccentColor: "#6f4e37",
			ShowImages:  &hide,
		})

		assert.NoError(t, err)
		assert.Equal(t, "list", res.Theme.Layout)
	})

	t.Run("unknown layout rejected", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().GetByID(gomock.Any(), restaurantID).Return(current, nil)

		_, err := svc.UpdateTheme(context.Background(), restaurantID, restaurant.UpdateThemeRequest{
			Layout: "masonry",
		})

		assert.ErrorIs(t, err, restaurant.ErrInvalidTheme)
	})

	t.Run("restaurant missing", func(t *testing.T) {
		repo, svc := newRestaurantFixture(t)

		repo.EXPECT().GetByID(gomock.Any(), restaurantID).Return(restaurant.Restaurant{}, sql.ErrNoRows)

		_, err := svc.UpdateTheme(context.Background(), restaurantID, restaurant.UpdateThemeRequest{})

		assert.ErrorIs(t, err, restaurant.ErrNotFound)
	})
}
