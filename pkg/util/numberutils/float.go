package numberutils

import (
	"math"
	"strconv"
)

// RoundToInt rounds half away from zero.
func RoundToInt(value float64) int {
	return int(math.Round(value))
}

// FormatFloat renders value with the shortest representation that round-trips.
func FormatFloat(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}

// ParseFloatWithDefault converts s to a float64, returning defaultVal when s is not a number.
func ParseFloatWithDefault(s string, defaultVal float64) float64 {
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return f
	}
	return defaultVal
}

// ParseFloatWithError converts s to a float64 and returns any conversion error.
func ParseFloatWithError(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

// IsFloatInRange checks if value is within [min, max].
func IsFloatInRange(value, min, max float64) bool {
	return value >= min && value <= max
}
