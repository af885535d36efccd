package restaurant_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/savindushenal/menuvibe-api/internal/restaurant"
)

func TestThemeSettings_Normalize(t *testing.T) {
	t.Run("empty_settings_get_defaults", func(t *testing.T) {
		normalized, err := restaurant.ThemeSettings{}.Normalize()
		assert.NoError(t, err)
		assert.Equal(t, restaurant.LayoutGrid, normalized.Layout)
		assert.Equal(t, restaurant.ThemeClassic, normalized.ColorTheme)
	})

	t.Run("recognized_values_pass_through", func(t *testing.T) {
		in := restaurant.ThemeSettings{
			Layout:      restaurant.LayoutCarousel,
			ColorTheme:  restaurant.ThemeTerracotta,
			AccentColor: "#C8553D",
			ShowImages:  true,
		}
		normalized, err := in.Normalize()
		assert.NoError(t, err)
		assert.Equal(t, in, normalized)
	})

	t.Run("unrecognized_layout_is_rejected", func(t *testing.T) {
		_, err := restaurant.ThemeSettings{Layout: "masonry"}.Normalize()
		assert.Error(t, err)
	})

	t.Run("unrecognized_color_theme_is_rejected", func(t *testing.T) {
		_, err := restaurant.ThemeSettings{ColorTheme: "neon"}.Normalize()
		assert.Error(t, err)
	})

	t.Run("malformed_accent_color_is_rejected", func(t *testing.T) {
		_, err := restaurant.ThemeSettings{AccentColor: "red"}.Normalize()
		assert.Error(t, err)

		_, err = restaurant.ThemeSettings{AccentColor: "#FFF"}.Normalize()
		assert.Error(t, err)
	})
}
