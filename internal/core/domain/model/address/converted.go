// Package address holds the result of normalizing a free-text store address
// into Korean administrative units.
package address

import (
	"strings"

	"storecourier/internal/core/domain/model/kernel"
)

// GeocodeResult is what the geocoding service returns for one address.
type GeocodeResult struct {
	Sido         string
	Sigungu      string
	AdminDong    string
	LegalDong    string
	Coordinates  kernel.Coordinates
	RoadAddress  string
	JibunAddress string
}

// Converted is a normalized address, or a degraded fallback that carries the
// original text verbatim when the geocoding call failed.
type Converted struct {
	original  string
	converted *GeocodeResult
	degraded  bool
}

// NewConverted wraps a successful geocoding result.
func NewConverted(original string, result GeocodeResult) Converted {
	r := result
	return Converted{original: original, converted: &r}
}

// NewDegraded is used whenever the geocoding call could not produce a result.
func NewDegraded(original string) Converted {
	return Converted{original: original, degraded: true}
}

func (c Converted) Original() string {
	return c.original
}

// Converted returns nil for a degraded address.
func (c Converted) Converted() *GeocodeResult {
	if c.converted == nil {
		return nil
	}
	r := *c.converted
	return &r
}

func (c Converted) Degraded() bool {
	return c.degraded
}

func (c Converted) Sido() string {
	if c.converted == nil {
		return ""
	}
	return c.converted.Sido
}

func (c Converted) Sigungu() string {
	if c.converted == nil {
		return ""
	}
	return c.converted.Sigungu
}

func (c Converted) AdminDong() string {
	if c.converted == nil {
		return ""
	}
	return c.converted.AdminDong
}

func (c Converted) LegalDong() string {
	if c.converted == nil {
		return ""
	}
	return c.converted.LegalDong
}

// Coordinates reports false when the address is degraded or the geocoder returned no point.
func (c Converted) Coordinates() (kernel.Coordinates, bool) {
	if c.converted == nil || c.converted.Coordinates.Validate() != nil {
		return kernel.Coordinates{}, false
	}
	return c.converted.Coordinates, true
}

// DongAddress is the dong-level display address, "서울특별시 강남구 역삼1동".
// A degraded address, or a result without any administrative unit, yields the original text.
func (c Converted) DongAddress() string {
	if c.converted == nil {
		return c.original
	}
	parts := make([]string, 0, 3)
	for _, p := range []string{c.converted.Sido, c.converted.Sigungu, c.converted.AdminDong} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return c.original
	}
	return strings.Join(parts, " ")
}
