package entity

// LocationSource tells how a Location was obtained.
type LocationSource string

const (
	SourceIP      LocationSource = "ip"
	SourceName    LocationSource = "name"
	SourceDefault LocationSource = "default"
)

const (
	DefaultCity      = "London"
	DefaultCountry   = "United Kingdom"
	DefaultLatitude  = 51.5074
	DefaultLongitude = 0.1278
)

type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Location is the place a dashboard is built for. Coordinates is nil until geocoded.
type Location struct {
	City        string         `json:"city"`
	Country     string         `json:"country"`
	Coordinates *Coordinates   `json:"coordinates,omitempty"`
	Source      LocationSource `json:"source"`
}

// Resolved reports whether every field needed by the forecast, summary and time stages is set.
func (l Location) Resolved() bool {
	return l.City != "" && l.Country != "" && l.Coordinates != nil
}

// Query is the free-text form used for forward geocoding.
func (l Location) Query() string {
	return l.City + " " + l.Country
}

// DefaultLocation is used whenever a request cannot be resolved to a place.
func DefaultLocation() Location {
	return Location{
		City:    DefaultCity,
		Country: DefaultCountry,
		Coordinates: &Coordinates{
			Latitude:  DefaultLatitude,
			Longitude: DefaultLongitude,
		},
		Source: SourceDefault,
	}
}

// OrDefault returns l when it is resolved and the default location otherwise.
func (l Location) OrDefault() Location {
	if l.Resolved() {
		return l
	}
	return DefaultLocation()
}
