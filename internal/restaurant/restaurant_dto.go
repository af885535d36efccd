package restaurant

import "time"

type CreateRequest struct {
	Slug     string `json:"slug" validate:"required,min=3,max=64,lowercase"`
	Name     string `json:"name" validate:"required,min=2,max=120"`
	Currency string `json:"currency" validate:"required,len=3,uppercase"`
}

type UpdateThemeRequest struct {
	Layout      string `json:"layout"`
	ColorTheme  string `json:"colorTheme"`
	AccentColor string `json:"accentColor"`
	ShowImages  *bool  `json:"showImages"`
}

type RestaurantResponse struct {
	ID        string        `json:"id"`
	Slug      string        `json:"slug"`
	Name      string        `json:"name"`
	Currency  string        `json:"currency"`
	Theme     ThemeSettings `json:"theme"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func mapRestaurantToResponse(r Restaurant) RestaurantResponse {
	return RestaurantResponse{
		ID:        r.ID.String(),
		Slug:      r.Slug,
		Name:      r.Name,
		Currency:  r.Currency,
		Theme:     r.Theme,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}
