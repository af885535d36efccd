package category

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
)

//go:generate mockgen -source=category_service.go -destination=../mock/category/category_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, restaurantID string) ([]CategoryResponse, error)
	Create(ctx context.Context, restaurantID string, req CreateCategoryRequest) (CategoryResponse, error)
	Rename(ctx context.Context, categoryID string, req RenameCategoryRequest) (CategoryResponse, error)
	Delete(ctx context.Context, categoryID string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context, restaurantID string) ([]CategoryResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return nil, ErrInvalidRestaurantID
	}

	categories, err := s.repo.ListByRestaurant(ctx, rid)
	if err != nil {
		return nil, err
	}

	res := make([]CategoryResponse, 0, len(categories))
	for _, cat := range categories {
		res = append(res, mapToResponse(cat))
	}
	return res, nil
}

func (s *service) Create(ctx context.Context, restaurantID string, req CreateCategoryRequest) (CategoryResponse, error) {
	rid, err := uuid.Parse(restaurantID)
	if err != nil {
		return CategoryResponse{}, ErrInvalidRestaurantID
	}

	created, err := s.repo.Create(ctx, Category{
		ID:           uuid.New(),
		RestaurantID: rid,
		Name:         req.Name,
		Position:     req.Position,
	})
	if err != nil {
		return CategoryResponse{}, err
	}
	return mapToResponse(created), nil
}

func (s *service) Rename(ctx context.Context, categoryID string, req RenameCategoryRequest) (CategoryResponse, error) {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return CategoryResponse{}, ErrInvalidCategoryID
	}

	renamed, err := s.repo.Rename(ctx, id, req.Name)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return CategoryResponse{}, ErrCategoryNotFound
		}
		return CategoryResponse{}, err
	}
	return mapToResponse(renamed), nil
}

func (s *service) Delete(ctx context.Context, categoryID string) error {
	id, err := uuid.Parse(categoryID)
	if err != nil {
		return ErrInvalidCategoryID
	}
	return s.repo.Delete(ctx, id)
}

func mapToResponse(cat Category) CategoryResponse {
	return CategoryResponse{
		ID:           cat.ID.String(),
		RestaurantID: cat.RestaurantID.String(),
		Name:         cat.Name,
		Position:     cat.Position,
	}
}
