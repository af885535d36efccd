package seed

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"

	"github.com/savindushenal/menuvibe-api/internal/restaurant"
)

// SeedRestaurants creates the two demo storefronts the frontend ships with.
func SeedRestaurants(db *sql.DB) error {
	ctx := context.Background()
	repo := restaurant.NewRepository(db)

	restaurants := []restaurant.Restaurant{
		{
			ID:       uuid.New(),
			Slug:     "bella-napoli",
			Name:     "Bella Napoli",
			Currency: "LKR",
			Theme: restaurant.ThemeSettings{
				Layout:      "grid",
				ColorTheme:  "dark",
				AccentColor: "#e63946",
				ShowImages:  true,
			},
		},
		{
			ID:       uuid.New(),
			Slug:     "kopi-corner",
			Name:     "Kopi Corner",
			Currency: "LKR",
			Theme: restaurant.ThemeSettings{
				Layout:      "list",
				ColorTheme:  "terracotta",
				AccentColor: "#6f4e37",
				ShowImages:  false,
			},
		},
	}

	for _, r := range restaurants {
		if _, err := repo.Create(ctx, r); err != nil {
			// usually a duplicate slug on re-run
			log.Printf("skip seed restaurant %s: %v", r.Slug, err)
			continue
		}
	}

	log.Println("Seeding restaurants completed.")
	return nil
}
