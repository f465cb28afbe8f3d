package forecast

import (
	"strings"

	"beltempo/internal/domain/entity"
)

// themeRows is evaluated in order; the first row listing a description wins.
var themeRows = []struct {
	theme        entity.Theme
	descriptions []string
}{
	{entity.ThemeSun, []string{"clear sky", "few clouds", "isolated clouds"}},
	{entity.ThemeClouds, []string{"broken clouds", "overcast clouds", "scattered clouds", "few clouds"}},
	{entity.ThemeRain, []string{"light rain", "light shower rain"}},
	{entity.ThemeStorm, []string{"heavy rain", "moderate rain", "thunderstorm with rain"}},
}

// Classify maps a provider weather description to a display theme. Unknown descriptions are cloudy.
func Classify(description string) entity.Theme {
	normalized := strings.ToLower(strings.TrimSpace(description))
	for _, row := range themeRows {
		for _, candidate := range row.descriptions {
			if normalized == candidate {
				return row.theme
			}
		}
	}
	return entity.ThemeClouds
}

// IconFor returns the icon file name of a theme.
func IconFor(theme entity.Theme) string {
	return string(theme) + ".svg"
}
