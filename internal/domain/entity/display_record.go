package entity

// DisplayRecord is everything the dashboard page renders for one request.
type DisplayRecord struct {
	City              string          `json:"city"`
	Country           string          `json:"country"`
	Latitude          float64         `json:"latitude"`
	Longitude         float64         `json:"longitude"`
	LocationSource    LocationSource  `json:"locationSource"`
	Date              string          `json:"date"`
	Time              string          `json:"time"`
	Timezone          string          `json:"timezone"`
	Today             DayForecast     `json:"today"`
	NextDays          []DatedForecast `json:"nextDays"`
	ForecastAvailable bool            `json:"forecastAvailable"`
	Summary           string          `json:"summary"`
	SummaryURL        string          `json:"summaryUrl"`
	SummaryAvailable  bool            `json:"summaryAvailable"`
	Theme             Theme           `json:"theme"`
	Caption           string          `json:"caption"`
}
