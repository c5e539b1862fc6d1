package kernel

import (
	"errors"
	"fmt"
	"math"

	"marketplace/internal/pkg/errs"
	"marketplace/internal/pkg/guard"
)

// Degrees is an angle in decimal degrees, as reported by a device GPS.
type Degrees float64

const (
	LatitudeMin  Degrees = -90
	LatitudeMax  Degrees = 90
	LongitudeMin Degrees = -180
	LongitudeMax Degrees = 180
)

// ErrLocationIsNotConstructed is returned when validating the zero Location.
var ErrLocationIsNotConstructed = errs.NewValueIsRequiredError(
	"location must be created via NewLocation constructor")

// Location is a WGS84 position reported by a delivery agent. It is an
// immutable value object; the zero value is invalid.
//
// Example:
//
//	loc, err := kernel.NewLocation(-23.5505, -46.6333)
//	if err != nil {
//	    return err
//	}
//	fmt.Println(loc) // Location(-23.550500,-46.633300)
type Location struct { //nolint:recvcheck //using for validation
	latitude  Degrees
	longitude Degrees
	guard     guard.ConstructorGuard
}

// NewLocation validates latitude in [-90, 90] and longitude in [-180, 180].
// NaN and infinities are out of range.
func NewLocation(latitude, longitude Degrees) (Location, error) {
	loc := Location{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(loc.setLatitude(latitude), loc.setLongitude(longitude)); err != nil {
		return Location{}, err
	}

	return loc, nil
}

func (l Location) Validate() error {
	return l.guard.Validate(ErrLocationIsNotConstructed)
}

func (l Location) Latitude() Degrees {
	return l.latitude
}

func (l Location) Longitude() Degrees {
	return l.longitude
}

func (l Location) String() string {
	return fmt.Sprintf("Location(%f,%f)", l.latitude, l.longitude)
}

// IsEqual compares two constructed locations coordinate by coordinate.
func (l Location) IsEqual(other Location) (bool, error) {
	if err := errors.Join(l.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return l == other, nil
}

// setLatitude and setLongitude use pointer receivers so that NewLocation can
// validate while it builds the value.
func (l *Location) setLatitude(latitude Degrees) error {
	if !inRange(latitude, LatitudeMin, LatitudeMax) {
		return errs.NewValueIsOutOfRangeError("latitude", latitude, LatitudeMin, LatitudeMax)
	}

	l.latitude = latitude
	return nil
}

func (l *Location) setLongitude(longitude Degrees) error {
	if !inRange(longitude, LongitudeMin, LongitudeMax) {
		return errs.NewValueIsOutOfRangeError("longitude", longitude, LongitudeMin, LongitudeMax)
	}

	l.longitude = longitude
	return nil
}

func inRange(v, minValue, maxValue Degrees) bool {
	if math.IsNaN(float64(v)) {
		return false
	}
	return v >= minValue && v <= maxValue
}
