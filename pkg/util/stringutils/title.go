package stringutils

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ToTitle collapses inner whitespace and title-cases every word ("new  YORK" -> "New York").
func ToTitle(value string) string {
	fields := strings.Fields(value)
	if len(fields) == 0 {
		return ""
	}
	// cases.Caser keeps state between calls, so one is built per invocation.
	return cases.Title(language.English).String(strings.Join(fields, " "))
}

// Truncate cuts value to at most max runes, never splitting a multi-byte character.
func Truncate(value string, max int) string {
	if max <= 0 {
		return ""
	}
	runes := []rune(value)
	if len(runes) <= max {
		return value
	}
	return string(runes[:max])
}
