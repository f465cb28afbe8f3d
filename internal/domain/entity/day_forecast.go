package entity

// Theme selects the page styling and icon for a forecast.
type Theme string

const (
	ThemeSun    Theme = "sun"
	ThemeClouds Theme = "clouds"
	ThemeRain   Theme = "rain"
	ThemeStorm  Theme = "storm"
)

type DayForecast struct {
	Description string `json:"description"`
	Low         int    `json:"low"`
	High        int    `json:"high"`
	Theme       Theme  `json:"theme"`
	Icon        string `json:"icon"`
}

// DatedForecast pairs a forecast with its display labels, e.g. "TUE" and "07".
type DatedForecast struct {
	Weekday  string      `json:"weekday"`
	Day      string      `json:"day"`
	Forecast DayForecast `json:"forecast"`
}
