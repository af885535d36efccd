package category

type CreateCategoryRequest struct {
	Name     string `json:"name" binding:"required"`
	Position int32  `json:"position"`
}

type RenameCategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	RestaurantID string `json:"restaurantId"`
	Name         string `json:"name"`
	Position     int32  `json:"position"`
}
