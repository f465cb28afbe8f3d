package reference

import (
	"context"
	"strconv"

	"beltempo/internal/domain/model"
	"beltempo/internal/infra/dataset"
	"beltempo/pkg/util/stringutils"
)

type cityMatch struct {
	city    string
	country string
}

// FileReferenceGateway serves lookups from an in-memory copy of the countries table.
// It is immutable after construction and safe for concurrent use.
type FileReferenceGateway struct {
	source    string
	countries []dataset.CountryRecord
	byCountry map[string]int
	byCity    map[string]cityMatch
}

var _ Gateway = (*FileReferenceGateway)(nil)

// NewFileReferenceGateway indexes records. source only labels the health output.
func NewFileReferenceGateway(source string, records []dataset.CountryRecord) *FileReferenceGateway {
	gateway := &FileReferenceGateway{
		source:    source,
		countries: records,
		byCountry: make(map[string]int, len(records)),
		byCity:    make(map[string]cityMatch),
	}

	for i, record := range records {
		key := stringutils.ToTitle(record.Country)
		if _, exists := gateway.byCountry[key]; !exists {
			gateway.byCountry[key] = i
		}
		for _, city := range record.Cities {
			cityKey := stringutils.ToTitle(city)
			if _, exists := gateway.byCity[cityKey]; exists {
				continue
			}
			gateway.byCity[cityKey] = cityMatch{city: city, country: record.Country}
		}
	}

	return gateway
}

func (gateway *FileReferenceGateway) IsCountry(ctx context.Context, name string) (bool, error) {
	_, found, err := gateway.FindCountry(ctx, name)
	return found, err
}

func (gateway *FileReferenceGateway) FindCountry(_ context.Context, name string) (string, bool, error) {
	index, found := gateway.byCountry[stringutils.ToTitle(name)]
	if !found {
		return "", false, nil
	}
	return gateway.countries[index].Country, true, nil
}

func (gateway *FileReferenceGateway) FindCity(_ context.Context, name string) (string, string, bool, error) {
	match, found := gateway.byCity[stringutils.ToTitle(name)]
	if !found {
		return "", "", false, nil
	}
	return match.city, match.country, true, nil
}

func (gateway *FileReferenceGateway) CapitalOf(_ context.Context, country string) (string, bool, error) {
	index, found := gateway.byCountry[stringutils.ToTitle(country)]
	if !found || gateway.countries[index].Capital == "" {
		return "", false, nil
	}
	return gateway.countries[index].Capital, true, nil
}

func (gateway *FileReferenceGateway) Health(_ context.Context) model.ComponentHealthStatus {
	status := model.StatusUp
	if len(gateway.countries) == 0 {
		status = model.StatusDown
	}
	return model.ComponentHealthStatus{
		Status: status,
		Details: map[string]string{
			"source":    gateway.source,
			"countries": strconv.Itoa(len(gateway.countries)),
			"cities":    strconv.Itoa(len(gateway.byCity)),
		},
	}
}
