// Package dataset holds the static reference data bundled with the binary: the
// country/capital/cities table and the list of IANA timezone identifiers.
package dataset

import (
	"bufio"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:embed countries.json
var countriesJSON []byte

//go:embed zones.txt
var zonesText string

// CountryRecord is one entry of the countries table. Order in the file is significant:
// ambiguous city names resolve to the first country listing them.
type CountryRecord struct {
	Country string   `json:"country"`
	Capital string   `json:"capital"`
	Cities  []string `json:"cities"`
}

// Countries decodes the bundled countries table.
func Countries() ([]CountryRecord, error) {
	return ParseCountries(strings.NewReader(string(countriesJSON)))
}

// LoadCountries reads a countries table from path, or the bundled one when path is empty.
func LoadCountries(path string) ([]CountryRecord, error) {
	if path == "" {
		return Countries()
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open countries file: %w", err)
	}
	defer func() { _ = file.Close() }()
	return ParseCountries(file)
}

// ParseCountries decodes a JSON array of CountryRecord.
func ParseCountries(r io.Reader) ([]CountryRecord, error) {
	var records []CountryRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("failed to decode countries table: %w", err)
	}
	for i, record := range records {
		if record.Country == "" {
			return nil, fmt.Errorf("countries table entry %d has no country name", i)
		}
	}
	return records, nil
}

// Zones returns the IANA timezone identifiers in lexical order.
func Zones() []string {
	zones := make([]string, 0, 600)
	scanner := bufio.NewScanner(strings.NewReader(zonesText))
	for scanner.Scan() {
		if zone := strings.TrimSpace(scanner.Text()); zone != "" {
			zones = append(zones, zone)
		}
	}
	return zones
}
