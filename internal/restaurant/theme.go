package restaurant

import (
	"fmt"
	"regexp"
)

// Layouts and color themes the storefront renderers understand. The stored
// settings are validated against these once, at write and load time, so
// render code downstream never needs fallback chains.
const (
	LayoutGrid     = "grid"
	LayoutList     = "list"
	LayoutCarousel = "carousel"
)

const (
	ThemeClassic    = "classic"
	ThemeDark       = "dark"
	ThemeTerracotta = "terracotta"
	ThemeMint       = "mint"
)

var (
	knownLayouts = map[string]struct{}{
		LayoutGrid:     {},
		LayoutList:     {},
		LayoutCarousel: {},
	}
	knownColorThemes = map[string]struct{}{
		ThemeClassic:    {},
		ThemeDark:       {},
		ThemeTerracotta: {},
		ThemeMint:       {},
	}
	hexColorPattern = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)
)

// ThemeSettings is the explicit, enumerated storefront configuration.
// Stored as JSONB on the restaurant row.
type ThemeSettings struct {
	Layout      string `json:"layout"`
	ColorTheme  string `json:"colorTheme"`
	AccentColor string `json:"accentColor,omitempty"`
	ShowImages  bool   `json:"showImages"`
}

// DefaultTheme is applied to restaurants that have never customized their
// storefront.
func DefaultTheme() ThemeSettings {
	return ThemeSettings{
		Layout:     LayoutGrid,
		ColorTheme: ThemeClassic,
		ShowImages: true,
	}
}

// Normalize fills unset fields with defaults and rejects unrecognized
// values. Called once where settings enter the system, not at render sites.
func (t ThemeSettings) Normalize() (ThemeSettings, error) {
	if t.Layout == "" {
		t.Layout = LayoutGrid
	}
	if t.ColorTheme == "" {
		t.ColorTheme = ThemeClassic
	}

	if _, ok := knownLayouts[t.Layout]; !ok {
		return ThemeSettings{}, fmt.Errorf("unrecognized layout %q", t.Layout)
	}
	if _, ok := knownColorThemes[t.ColorTheme]; !ok {
		return ThemeSettings{}, fmt.Errorf("unrecognized color theme %q", t.ColorTheme)
	}
	if t.AccentColor != "" && !hexColorPattern.MatchString(t.AccentColor) {
		return ThemeSettings{}, fmt.Errorf("accent color %q is not a #RRGGBB value", t.AccentColor)
	}
	return t, nil
}
