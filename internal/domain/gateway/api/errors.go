package api

import "errors"

var (
	// ErrLocationUnresolved means the IP could not be mapped to a city, country and coordinates.
	ErrLocationUnresolved = errors.New("location unresolved")

	// ErrGeocodeUnresolved means forward geocoding returned no usable result.
	ErrGeocodeUnresolved = errors.New("geocode unresolved")

	// ErrSummaryNotFound means the encyclopedia has no page for the query.
	ErrSummaryNotFound = errors.New("summary page not found")

	// ErrSummaryAmbiguous means the best page for the query is a disambiguation page.
	ErrSummaryAmbiguous = errors.New("summary page is ambiguous")
)
