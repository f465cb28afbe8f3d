package forecast

import (
	"testing"

	"beltempo/internal/domain/entity"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		description string
		want        entity.Theme
	}{
		{"clear sky", entity.ThemeSun},
		{"Clear Sky", entity.ThemeSun},
		{"  ISOLATED CLOUDS ", entity.ThemeSun},
		{"few clouds", entity.ThemeSun},
		{"Broken clouds", entity.ThemeClouds},
		{"overcast clouds", entity.ThemeClouds},
		{"scattered clouds", entity.ThemeClouds},
		{"Light Rain", entity.ThemeRain},
		{"light shower rain", entity.ThemeRain},
		{"Heavy rain", entity.ThemeStorm},
		{"moderate rain", entity.ThemeStorm},
		{"Thunderstorm with rain", entity.ThemeStorm},
		{"Fog", entity.ThemeClouds},
		{"", entity.ThemeClouds},
		{"light rain and snow", entity.ThemeClouds},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			if got := Classify(tt.description); got != tt.want {
				t.Errorf("Classify(%q) = %s, want %s", tt.description, got, tt.want)
			}
			if again := Classify(tt.description); again != tt.want {
				t.Errorf("second Classify(%q) = %s", tt.description, again)
			}
		})
	}
}

func TestIconFor(t *testing.T) {
	if got := IconFor(entity.ThemeStorm); got != "storm.svg" {
		t.Errorf("IconFor(storm) = %q", got)
	}
}
