package seed

import (
	"context"
	"database/sql"
	"log"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/savindushenal/menuvibe-api/internal/category"
	"github.com/savindushenal/menuvibe-api/internal/menu"
	"github.com/savindushenal/menuvibe-api/internal/override"
	"github.com/savindushenal/menuvibe-api/internal/restaurant"
)

// SeedMenus fills both demo storefronts with categories and priced items.
// SeedRestaurants must run first.
func SeedMenus(db *sql.DB) error {
	ctx := context.Background()

	restaurantRepo := restaurant.NewRepository(db)
	categoryRepo := category.NewRepository(db)
	menuRepo := menu.NewRepository(db)
	overrideRepo := override.NewRepository(db)

	if err := seedPizzeria(ctx, restaurantRepo, categoryRepo, menuRepo, overrideRepo); err != nil {
		return err
	}
	if err := seedCoffeeShop(ctx, restaurantRepo, categoryRepo, menuRepo); err != nil {
		return err
	}

	log.Println("Seeding menus completed.")
	return nil
}

func seedPizzeria(
	ctx context.Context,
	restaurants restaurant.Repository,
	categories category.Repository,
	menus menu.Repository,
	overrides override.Repository,
) error {
	r, err := restaurants.GetBySlug(ctx, "bella-napoli")
	if err != nil {
		return err
	}

	pizzas, err := categories.Create(ctx, category.Category{
		ID:           uuid.New(),
		RestaurantID: r.ID,
		Name:         "Pizzas",
		Position:     1,
	})
	if err != nil {
		log.Printf("skip seed pizzeria categories: %v", err)
		return nil
	}
	sides, err := categories.Create(ctx, category.Category{
		ID:           uuid.New(),
		RestaurantID: r.ID,
		Name:         "Sides",
		Position:     2,
	})
	if err != nil {
		return err
	}

	items := []menu.MenuItem{
		{
			ID:           uuid.New(),
			RestaurantID: r.ID,
			CategoryID:   nullUUIDOf(pizzas.ID),
			Name:         "Margherita",
			Description:  "San Marzano tomato, fior di latte, fresh basil.",
			BasePrice:    decimal.NewFromInt(1790),
			Variations: []menu.Variation{
				{Name: "Medium", Price: decimal.NewFromInt(1790), IsAvailable: true},
				{Name: "Large", Price: decimal.NewFromInt(2290), IsAvailable: true},
			},
			Customizations: []menu.Customization{
				{Name: "extra cheese", Price: decimal.NewFromInt(250)},
				{Name: "olives", Price: decimal.NewFromInt(150)},
			},
			IsAvailable: true,
			Position:    1,
		},
		{
			ID:           uuid.New(),
			RestaurantID: r.ID,
			CategoryID:   nullUUIDOf(pizzas.ID),
			Name:         "Diavola",
			Description:  "Spicy salami, chili oil, mozzarella.",
			BasePrice:    decimal.NewFromInt(2190),
			Variations: []menu.Variation{
				{Name: "Medium", Price: decimal.NewFromInt(2190), IsAvailable: true},
				{Name: "Large", Price: decimal.NewFromInt(2690), IsAvailable: true},
			},
			Customizations: []menu.Customization{
				{Name: "extra cheese", Price: decimal.NewFromInt(250)},
			},
			IsAvailable: true,
			Position:    2,
		},
		{
			ID:           uuid.New(),
			RestaurantID: r.ID,
			CategoryID:   nullUUIDOf(sides.ID),
			Name:         "Garlic Bread",
			Description:  "Wood-fired with herb butter.",
			BasePrice:    decimal.NewFromInt(650),
			IsAvailable:  true,
			Position:     1,
		},
	}

	var margherita menu.MenuItem
	for _, item := range items {
		created, err := menus.Create(ctx, item)
		if err != nil {
			log.Printf("skip seed item %s: %v", item.Name, err)
			continue
		}
		if created.Name == "Margherita" {
			margherita = created
		}
	}

	// happy-hour price on the flagship pizza
	if margherita.ID != uuid.Nil {
		_, err = overrides.Upsert(ctx, override.Override{
			RestaurantID: r.ID,
			ItemID:       margherita.ID,
			Price:        decimal.NullDecimal{Decimal: decimal.NewFromInt(1490), Valid: true},
		})
		if err != nil {
			log.Printf("skip seed override: %v", err)
		}
	}

	return nil
}

func seedCoffeeShop(
	ctx context.Context,
	restaurants restaurant.Repository,
	categories category.Repository,
	menus menu.Repository,
) error {
	r, err := restaurants.GetBySlug(ctx, "kopi-corner")
	if err != nil {
		return err
	}

	drinks, err := categories.Create(ctx, category.Category{
		ID:           uuid.New(),
		RestaurantID: r.ID,
		Name:         "Drinks",
		Position:     1,
	})
	if err != nil {
		log.Printf("skip seed coffee categories: %v", err)
		return nil
	}

	items := []menu.MenuItem{
		{
			ID:           uuid.New(),
			RestaurantID: r.ID,
			CategoryID:   nullUUIDOf(drinks.ID),
			Name:         "Flat White",
			Description:  "Double ristretto, silky microfoam.",
			BasePrice:    decimal.NewFromInt(900),
			Variations: []menu.Variation{
				{Name: "Small", Price: decimal.NewFromInt(900), IsAvailable: true},
				{Name: "Large", Price: decimal.NewFromInt(1100), IsAvailable: true},
			},
			Customizations: []menu.Customization{
				{Name: "oat milk", Price: decimal.NewFromInt(150)},
				{Name: "extra shot", Price: decimal.NewFromInt(200)},
			},
			IsAvailable: true,
			Position:    1,
		},
		{
			ID:           uuid.New(),
			RestaurantID: r.ID,
			CategoryID:   nullUUIDOf(drinks.ID),
			Name:         "Cold Brew",
			Description:  "18-hour steep, served over ice.",
			BasePrice:    decimal.NewFromInt(1050),
			IsAvailable:  true,
			Position:     2,
		},
	}

	for _, item := range items {
		if _, err := menus.Create(ctx, item); err != nil {
			log.Printf("skip seed item %s: %v", item.Name, err)
		}
	}

	return nil
}

func nullUUIDOf(id uuid.UUID) uuid.NullUUID {
	return uuid.NullUUID{UUID: id, Valid: true}
}
