package category

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Position     int32
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
