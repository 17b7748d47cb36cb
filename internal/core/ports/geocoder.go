package ports

import (
	"context"
	"time"

	"storecourier/internal/core/domain/model/address"
)

// Geocoder converts a free-text address into administrative units.
// Any failure, including an empty result set, is returned as an error.
type Geocoder interface {
	Convert(ctx context.Context, rawAddress string) (address.GeocodeResult, error)
}

// AddressCache memoizes successful conversions by the raw address string.
type AddressCache interface {
	// Get reports false on a miss or an expired entry.
	Get(ctx context.Context, rawAddress string) (address.Converted, bool)

	// Set stores the value for ttl. Implementations may evict earlier on size pressure.
	Set(ctx context.Context, rawAddress string, value address.Converted, ttl time.Duration)
}
