package kernel

import (
	"errors"
	"fmt"

	"storecourier/internal/pkg/errs"
	"storecourier/internal/pkg/guard"
)

const (
	LatitudeMin  = -90.0
	LatitudeMax  = 90.0
	LongitudeMin = -180.0
	LongitudeMax = 180.0
)

// ErrCoordinatesAreNotConstructed is returned when validating zero-value Coordinates.
var ErrCoordinatesAreNotConstructed = errs.NewValueIsRequiredError(
	"coordinates must be created via NewCoordinates")

// Coordinates is a WGS84 point returned by the geocoding service.
// The zero value is invalid.
type Coordinates struct { //nolint:recvcheck //using for validation
	lat   float64
	lng   float64
	guard guard.ConstructorGuard
}

// NewCoordinates validates latitude and longitude ranges.
func NewCoordinates(lat, lng float64) (Coordinates, error) {
	c := Coordinates{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(c.setLatitude(lat), c.setLongitude(lng)); err != nil {
		return Coordinates{}, err
	}

	return c, nil
}

func (c Coordinates) Validate() error {
	return c.guard.Validate(ErrCoordinatesAreNotConstructed)
}

func (c Coordinates) Latitude() float64 {
	return c.lat
}

func (c Coordinates) Longitude() float64 {
	return c.lng
}

func (c Coordinates) IsEqual(other Coordinates) bool {
	return c.lat == other.lat && c.lng == other.lng
}

func (c Coordinates) String() string {
	return fmt.Sprintf("Coordinates(%.6f,%.6f)", c.lat, c.lng)
}

func (c *Coordinates) setLatitude(lat float64) error {
	if lat < LatitudeMin || lat > LatitudeMax {
		return errs.NewValueIsOutOfRangeError("latitude", lat, LatitudeMin, LatitudeMax)
	}
	c.lat = lat
	return nil
}

func (c *Coordinates) setLongitude(lng float64) error {
	if lng < LongitudeMin || lng > LongitudeMax {
		return errs.NewValueIsOutOfRangeError("longitude", lng, LongitudeMin, LongitudeMax)
	}
	c.lng = lng
	return nil
}
