package external

// WeatherbitDailyResponse is the Weatherbit /forecast/daily body.
type WeatherbitDailyResponse struct {
	CityName    string                 `json:"city_name"`
	CountryCode string                 `json:"country_code"`
	Timezone    string                 `json:"timezone"`
	Data        []WeatherbitDailyEntry `json:"data"`
}

// WeatherbitDailyEntry is a single forecast day.
type WeatherbitDailyEntry struct {
	ValidDate string             `json:"valid_date"`
	Temp      *float64           `json:"temp"`
	LowTemp   *float64           `json:"low_temp"`
	MaxTemp   *float64           `json:"max_temp"`
	Weather   *WeatherbitWeather `json:"weather"`
}

type WeatherbitWeather struct {
	Icon        string `json:"icon"`
	Code        int    `json:"code"`
	Description string `json:"description"`
}

// WeatherbitError is the body of rejected calls (bad key, quota, bad coordinates).
type WeatherbitError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}
