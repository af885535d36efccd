package category_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/savindushenal/menuvibe-api/internal/category"
	mockcategory "github.com/savindushenal/menuvibe-api/internal/mock/category"
)

func newCategoryFixture(t *testing.T) (*mockcategory.MockRepository, category.Service) {
	ctrl := gomock.NewController(t)
	repo := mockcategory.NewMockRepository(ctrl)
	return repo, category.NewService(repo)
}

func TestService_List(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, svc := newCategoryFixture(t)
		restaurantID := uuid.New()

		repo.EXPECT().ListByRestaurant(gomock.Any(), restaurantID).Return([]category.Category{
			{ID: uuid.New(), RestaurantID: restaurantID, Name: "Pizzas", Position: 1},
			{ID: uuid.New(), RestaurantID: restaurantID, Name: "Sides", Position: 2},
		}, nil)

		res, err := svc.List(context.Background(), restaurantID.String())

		assert.NoError(t, err)
		assert.Len(t, res, 2)
		assert.Equal(t, "Pizzas", res[0].Name)
	})

	t.Run("invalid restaurant id", func(t *testing.T) {
		_, svc := newCategoryFixture(t)

		_, err := svc.List(context.Background(), "bogus")

		assert.ErrorIs(t, err, category.ErrInvalidRestaurantID)
	})
}

func TestService_Create(t *testing.T) {
	repo, svc := newCategoryFixture(t)
	restaurantID := uuid.New()

	repo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cat category.Category) (category.Category, error) {
			assert.Equal(t, restaurantID, cat.RestaurantID)
			assert.Equal(t, "Drinks", cat.Name)
			assert.Equal(t, int32(3), cat.Position)
			return cat, nil
		})

	res, err := svc.Create(context.Background(), restaurantID.String(), category.CreateCategoryRequest{
		Name:     "Drinks",
		Position: 3,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Drinks", res.Name)
}

func TestService_Rename(t *testing.T) {
	categoryID := uuid.New()

	t.Run("success", func(t *testing.T) {
		repo, svc := newCategoryFixture(t)

		repo.EXPECT().
			Rename(gomock.Any(), categoryID, "Starters").
			Return(category.Category{ID: categoryID, Name: "Starters"}, nil)

		res, err := svc.Rename(context.Background(), categoryID.String(), category.RenameCategoryRequest{Name: "Starters"})

		assert.NoError(t, err)
		assert.Equal(t, "Starters", res.Name)
	})

	t.Run("not found", func(t *testing.T) {
		repo, svc := newCategoryFixture(t)

		repo.EXPECT().
			Rename(gomock.Any(), categoryID, "Starters").
			Return(category.Category{}, sql.ErrNoRows)

		_, err := svc.Rename(context.Background(), categoryID.String(), category.RenameCategoryRequest{Name: "Starters"})

		assert.ErrorIs(t, err, category.ErrCategoryNotFound)
	})
}

func TestService_Delete(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		repo, svc := newCategoryFixture(t)
		categoryID := uuid.New()

		repo.EXPECT().Delete(gomock.Any(), categoryID).Return(nil)

		assert.NoError(t, svc.Delete(context.Background(), categoryID.String()))
	})

	t.Run("invalid id", func(t *testing.T) {
		_, svc := newCategoryFixture(t)

		err := svc.Delete(context.Background(), "bogus")

		assert.ErrorIs(t, err, category.ErrInvalidCategoryID)
	})
}
