package validation

import (
	"errors"
	"testing"
)

func TestParseCoordinates_MissingOrBlank(t *testing.T) {
	tests := []struct {
		name string
		lat  string
		lon  string
	}{
		{"both empty", "", ""},
		{"lat empty", "", "-74.0060"},
		{"lon empty", "40.7128", ""},
		{"lat spaces", "   ", "-74.0060"},
		{"lon tab", "40.7128", "\t"},
		{"both whitespace", "  ", " \t "},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCoordinates(tc.lat, tc.lon)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrCoordinatesMissing) {
				t.Errorf("error = %v, want ErrCoordinatesMissing", err)
			}
		})
	}
}

func TestParseCoordinates_LatitudeNotNumeric(t *testing.T) {
	tests := []struct {
		name string
		lat  string
	}{
		{"letters", "abc"},
		{"comma decimal", "40,7"},
		{"trailing garbage", "40.7x"},
		{"lone sign", "-"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCoordinates(tc.lat, "-74.0060")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrLatitudeNotNumeric) {
				t.Errorf("error = %v, want ErrLatitudeNotNumeric", err)
			}
		})
	}
}

func TestParseCoordinates_LongitudeNotNumeric(t *testing.T) {
	_, err := ParseCoordinates("40.7128", "west")
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	if !errors.Is(err, ErrLongitudeNotNumeric) {
		t.Errorf("error = %v, want ErrLongitudeNotNumeric", err)
	}
}

// Latitude parse errors are reported before longitude is even looked at.
func TestParseCoordinates_LatitudeCheckedFirst(t *testing.T) {
	_, err := ParseCoordinates("abc", "xyz")
	if !errors.Is(err, ErrLatitudeNotNumeric) {
		t.Errorf("error = %v, want ErrLatitudeNotNumeric", err)
	}
}

func TestParseCoordinates_LatitudeOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		lat  string
	}{
		{"over", "91"},
		{"under", "-91"},
		{"far over", "1000"},
		{"nan", "NaN"},
		{"inf", "Inf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCoordinates(tc.lat, "0")
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrLatitudeOutOfRange) {
				t.Errorf("error = %v, want ErrLatitudeOutOfRange", err)
			}
		})
	}
}

func TestParseCoordinates_LongitudeOutOfRange(t *testing.T) {
	tests := []struct {
		name string
		lon  string
	}{
		{"over", "181"},
		{"under", "-181"},
		{"nan", "nan"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseCoordinates("0", tc.lon)
			if err == nil {
				t.Fatal("expected error, got nil")
			}
			if !errors.Is(err, ErrLongitudeOutOfRange) {
				t.Errorf("error = %v, want ErrLongitudeOutOfRange", err)
			}
		})
	}
}

func TestParseCoordinates_Boundaries(t *testing.T) {
	tests := []struct {
		name string
		lat  string
		lon  string
	}{
		{"north pole", "90", "0"},
		{"south pole", "-90", "0"},
		{"date line east", "0", "180"},
		{"date line west", "0", "-180"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ParseCoordinates(tc.lat, tc.lon); err != nil {
				t.Errorf("ParseCoordinates(%q, %q) err = %v, want nil", tc.lat, tc.lon, err)
			}
		})
	}
}

func TestParseCoordinates_KeepsOriginalStrings(t *testing.T) {
	coords, err := ParseCoordinates("40.7128", "-74.0060")
	if err != nil {
		t.Fatalf("ParseCoordinates() err = %v", err)
	}
	if coords.LatRaw != "40.7128" {
		t.Errorf("LatRaw = %q, want %q", coords.LatRaw, "40.7128")
	}
	// -74.0060 reformatted through a float64 would lose its trailing zero.
	if coords.LonRaw != "-74.0060" {
		t.Errorf("LonRaw = %q, want %q", coords.LonRaw, "-74.0060")
	}
	if coords.Lat != 40.7128 {
		t.Errorf("Lat = %v, want 40.7128", coords.Lat)
	}
	if coords.Lon != -74.006 {
		t.Errorf("Lon = %v, want -74.006", coords.Lon)
	}
}

func TestParseCoordinates_TrimsWhitespace(t *testing.T) {
	coords, err := ParseCoordinates(" 40.7128 ", "\t-74.0060\n")
	if err != nil {
		t.Fatalf("ParseCoordinates() err = %v", err)
	}
	if coords.LatRaw != "40.7128" || coords.LonRaw != "-74.0060" {
		t.Errorf("raw = %q/%q, want trimmed values", coords.LatRaw, coords.LonRaw)
	}
}

func TestParseCoordinates_ScientificNotation(t *testing.T) {
	coords, err := ParseCoordinates("4.07128e1", "-7.4e1")
	if err != nil {
		t.Fatalf("ParseCoordinates() err = %v", err)
	}
	if coords.Lat != 40.7128 || coords.Lon != -74 {
		t.Errorf("parsed = %v/%v, want 40.7128/-74", coords.Lat, coords.Lon)
	}
}
