package city

import (
	"errors"
	"fmt"
)

// ErrNegativeCoordinate indicates a GeoLocation coordinate below zero.
var ErrNegativeCoordinate = errors.New("city: coordinate cannot be negative")

// GeoLocation is an immutable 2D integer coordinate on the city grid.
// Latitude is the row index, Longitude the column index; both are ≥ 0.
// GeoLocation is a comparable value type: equality and map keying work
// field-by-field.
type GeoLocation struct {
	Latitude  int
	Longitude int
}

// NewGeoLocation validates and constructs a GeoLocation.
// Returns ErrNegativeCoordinate when either coordinate is below zero.
// Complexity: O(1).
func NewGeoLocation(latitude, longitude int) (GeoLocation, error) {
	if latitude < 0 {
		return GeoLocation{}, fmt.Errorf("%w: latitude %d", ErrNegativeCoordinate, latitude)
	}
	if longitude < 0 {
		return GeoLocation{}, fmt.Errorf("%w: longitude %d", ErrNegativeCoordinate, longitude)
	}

	return GeoLocation{Latitude: latitude, Longitude: longitude}, nil
}

// ID renders the stable vertex identifier "lat,lon" used by the derived
// connectivity graph. The scheme is fixed and documented; graph vertex IDs
// and grid coordinates convert without lookup tables.
func (l GeoLocation) ID() string {
	return fmt.Sprintf("%d,%d", l.Latitude, l.Longitude)
}

// String renders the location as "(lat, lon)".
func (l GeoLocation) String() string {
	return fmt.Sprintf("(%d, %d)", l.Latitude, l.Longitude)
}

// Less orders locations lexicographically: latitude first, then longitude.
// Used as the deterministic tie-break when ranking equally hot cells.
func (l GeoLocation) Less(other GeoLocation) bool {
	if l.Latitude != other.Latitude {
		return l.Latitude < other.Latitude
	}

	return l.Longitude < other.Longitude
}
