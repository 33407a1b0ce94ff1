package validation

import (
	"errors"
	"strconv"
	"strings"
)

// ErrCoordinatesMissing is returned when lat or lon is absent or blank.
var ErrCoordinatesMissing = errors.New("lat or lon missing")

// ErrLatitudeNotNumeric is returned when lat does not parse as a float.
var ErrLatitudeNotNumeric = errors.New("latitude not numeric")

// ErrLongitudeNotNumeric is returned when lon does not parse as a float.
var ErrLongitudeNotNumeric = errors.New("longitude not numeric")

// ErrLatitudeOutOfRange is returned when lat is outside [-90, 90].
var ErrLatitudeOutOfRange = errors.New("latitude out of range")

// ErrLongitudeOutOfRange is returned when lon is outside [-180, 180].
var ErrLongitudeOutOfRange = errors.New("longitude out of range")

// Coordinates holds a validated latitude/longitude pair. LatRaw and LonRaw
// keep the trimmed original strings; upstream requests and response payloads
// use those rather than reformatting the parsed floats.
type Coordinates struct {
	LatRaw string
	LonRaw string
	Lat    float64
	Lon    float64
}

// ParseCoordinates validates lat/lon query values in the order the handler
// reports them: missing/blank first, then numeric parse of lat, then lon,
// then range checks. Parsing is strconv.ParseFloat, which is locale-invariant
// (period decimal separator, no grouping). Range checks are written so NaN
// fails them; ParseFloat accepts "NaN" but it is never a valid coordinate.
func ParseCoordinates(lat, lon string) (Coordinates, error) {
	lat = strings.TrimSpace(lat)
	lon = strings.TrimSpace(lon)
	if lat == "" || lon == "" {
		return Coordinates{}, ErrCoordinatesMissing
	}

	latF, err := strconv.ParseFloat(lat, 64)
	if err != nil {
		return Coordinates{}, ErrLatitudeNotNumeric
	}
	lonF, err := strconv.ParseFloat(lon, 64)
	if err != nil {
		return Coordinates{}, ErrLongitudeNotNumeric
	}

	if !(latF >= -90 && latF <= 90) {
		return Coordinates{}, ErrLatitudeOutOfRange
	}
	if !(lonF >= -180 && lonF <= 180) {
		return Coordinates{}, ErrLongitudeOutOfRange
	}

	return Coordinates{LatRaw: lat, LonRaw: lon, Lat: latF, Lon: lonF}, nil
}
