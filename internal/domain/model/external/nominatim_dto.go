package external

// NominatimPlace is one element of the Nominatim /search JSON array.
// Coordinates are sent as strings.
type NominatimPlace struct {
	PlaceID     int64  `json:"place_id"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
	DisplayName string `json:"display_name"`
	Class       string `json:"class"`
	Type        string `json:"type"`
}

// NominatimError is returned by Nominatim for rejected queries.
type NominatimError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}
