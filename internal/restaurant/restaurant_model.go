package restaurant

import (
	"time"

	"github.com/google/uuid"
)

type Restaurant struct {
	ID        uuid.UUID
	Slug      string
	Name      string
	Currency  string
	Theme     ThemeSettings
	CreatedAt time.Time
	UpdatedAt time.Time
}
