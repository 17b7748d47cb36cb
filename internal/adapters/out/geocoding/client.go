// Package geocoding is the HTTP client of the geocoding service.
package geocoding

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/kernel"
	"storecourier/internal/core/ports"
)

var ErrNoResult = errors.New("geocoding returned no result")

type resultDTO struct {
	Sido         string   `json:"sido"`
	Sigungu      string   `json:"sigungu"`
	AdminDong    string   `json:"admin_dong"`
	LegalDong    string   `json:"legal_dong"`
	Lat          *float64 `json:"lat"`
	Lng          *float64 `json:"lng"`
	RoadAddress  string   `json:"road_address"`
	JibunAddress string   `json:"jibun_address"`
}

type responseDTO struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Results []resultDTO `json:"results"`
}

// Client calls GET {base}/v1/address/convert?address=...
type Client struct {
	Base string
	HTTP *http.Client
}

func NewClient(base string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, HTTP: httpClient}
}

// Convert returns the first result. A non-2xx status, success=false and an empty
// result list are all errors.
func (c *Client) Convert(ctx context.Context, rawAddress string) (address.GeocodeResult, error) {
	u := c.Base + "/v1/address/convert?address=" + url.QueryEscape(rawAddress)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return address.GeocodeResult{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return address.GeocodeResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return address.GeocodeResult{}, fmt.Errorf("geocoding get: %s", resp.Status)
	}

	var out responseDTO
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return address.GeocodeResult{}, fmt.Errorf("geocoding decode: %w", err)
	}
	if !out.Success {
		return address.GeocodeResult{}, fmt.Errorf("geocoding rejected %q: %s", rawAddress, out.Message)
	}
	if len(out.Results) == 0 {
		return address.GeocodeResult{}, fmt.Errorf("%w for %q", ErrNoResult, rawAddress)
	}

	return toDomain(out.Results[0]), nil
}

func toDomain(dto resultDTO) address.GeocodeResult {
	result := address.GeocodeResult{
		Sido:         dto.Sido,
		Sigungu:      dto.Sigungu,
		AdminDong:    dto.AdminDong,
		LegalDong:    dto.LegalDong,
		RoadAddress:  dto.RoadAddress,
		JibunAddress: dto.JibunAddress,
	}
	if dto.Lat != nil && dto.Lng != nil {
		if coords, err := kernel.NewCoordinates(*dto.Lat, *dto.Lng); err == nil {
			result.Coordinates = coords
		}
	}
	return result
}

var _ ports.Geocoder = (*Client)(nil)
