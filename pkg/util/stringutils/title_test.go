package stringutils

import "testing"

func TestToTitle(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"france", "France"},
		{"  new   YORK ", "New York"},
		{"united kingdom", "United Kingdom"},
		{"são paulo", "São Paulo"},
		{"", ""},
		{"   ", ""},
	}
	for _, tt := range tests {
		if got := ToTitle(tt.in); got != tt.want {
			t.Errorf("ToTitle(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestToTitleIsIdempotent(t *testing.T) {
	once := ToTitle("bosnia and herzegovina")
	if twice := ToTitle(once); twice != once {
		t.Errorf("ToTitle not idempotent: %q then %q", once, twice)
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("Zürich", 2); got != "Zü" {
		t.Errorf("Truncate() = %q, want Zü", got)
	}
	if got := Truncate("Oslo", 10); got != "Oslo" {
		t.Errorf("Truncate() = %q, want Oslo", got)
	}
	if got := Truncate("Oslo", 0); got != "" {
		t.Errorf("Truncate() = %q, want empty", got)
	}
}
