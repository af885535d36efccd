package restaurant

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Service interface {
	GetBySlug(ctx context.Context, slug string) (RestaurantResponse, error)
	GetByID(ctx context.Context, id uuid.UUID) (RestaurantResponse, error)
	Create(ctx context.Context, req CreateRequest) (RestaurantResponse, error)
	UpdateTheme(ctx context.Context, id uuid.UUID, req UpdateThemeRequest) (RestaurantResponse, error)
}

type service struct {
	repo     Repository
	validate *validator.Validate
}

func NewService(repo Repository) Service {
	return &service{
		repo:     repo,
		validate: validator.New(),
	}
}

func (s *service) GetBySlug(ctx context.Context, slug string) (RestaurantResponse, error) {
	slug = strings.TrimSpace(strings.ToLower(slug))
	if slug == "" {
		return RestaurantResponse{}, ErrInvalidRestaurantID
	}

	r, err := s.repo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantResponse{}, ErrNotFound
		}
		return RestaurantResponse{}, ErrRestaurantFailed
	}
	return mapRestaurantToResponse(r), nil
}

func (s *service) GetByID(ctx context.Context, id uuid.UUID) (RestaurantResponse, error) {
	r, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantResponse{}, ErrNotFound
		}
		return RestaurantResponse{}, ErrRestaurantFailed
	}
	return mapRestaurantToResponse(r), nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (RestaurantResponse, error) {
	req.Slug = strings.TrimSpace(strings.ToLower(req.Slug))
	req.Currency = strings.TrimSpace(strings.ToUpper(req.Currency))
	if err := s.validate.Struct(req); err != nil {
		return RestaurantResponse{}, ErrInvalidPayload
	}

	r, err := s.repo.Create(ctx, Restaurant{
		ID:       uuid.New(),
		Slug:     req.Slug,
		Name:     req.Name,
		Currency: req.Currency,
		Theme:    DefaultTheme(),
	})
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return RestaurantResponse{}, ErrSlugTaken
		}
		return RestaurantResponse{}, ErrRestaurantFailed
	}
	return mapRestaurantToResponse(r), nil
}

func (s *service) UpdateTheme(ctx context.Context, id uuid.UUID, req UpdateThemeRequest) (RestaurantResponse, error) {
	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantResponse{}, ErrNotFound
		}
		return RestaurantResponse{}, ErrRestaurantFailed
	}

	next := current.Theme
	if req.Layout != "" {
		next.Layout = req.Layout
	}
	if req.ColorTheme != "" {
		next.ColorTheme = req.ColorTheme
	}
	if req.AccentColor != "" {
		next.AccentColor = req.AccentColor
	}
	if req.ShowImages != nil {
		next.ShowImages = *req.ShowImages
	}

	normalized, err := next.Normalize()
	if err != nil {
		return RestaurantResponse{}, ErrInvalidTheme
	}

	updated, err := s.repo.UpdateTheme(ctx, id, normalized)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return RestaurantResponse{}, ErrNotFound
		}
		return RestaurantResponse{}, ErrRestaurantFailed
	}
	return mapRestaurantToResponse(updated), nil
}
