// Package courier is the HTTP client of the third-party courier submission service.
package courier

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"storecourier/internal/core/domain/model/address"
	"storecourier/internal/core/domain/model/carrier"
	"storecourier/internal/core/domain/model/wizard"
	"storecourier/internal/core/ports"
)

type partyDTO struct {
	StoreCode    string `json:"store_code"`
	StoreName    string `json:"store_name"`
	Department   string `json:"department"`
	ManagerName  string `json:"manager_name"`
	ManagerPhone string `json:"manager_phone"`
	Address      string `json:"address"`
	DongAddress  string `json:"dong_address"`
	LegalDong    string `json:"legal_dong,omitempty"`
}

type requestDTO struct {
	RequestID    string          `json:"request_id"`
	DeliveryType string          `json:"delivery_type"`
	Origin       partyDTO        `json:"origin"`
	Destination  partyDTO        `json:"destination"`
	Payload      carrier.Payload `json:"payload"`
}

type responseDTO struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// Client posts pickup requests to {base}/v1/pickups with a bearer token.
type Client struct {
	Base  string
	Token string
	HTTP  *http.Client
}

func NewClient(base, token string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{Base: base, Token: token, HTTP: httpClient}
}

// Submit returns an error only when no courier answer could be read.
// A non-2xx status with a JSON body is a rejection carrying the body's message.
func (c *Client) Submit(ctx context.Context, request carrier.SubmissionRequest) (carrier.Result, error) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(toDTO(request)); err != nil {
		return carrier.Result{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Base+"/v1/pickups", buf)
	if err != nil {
		return carrier.Result{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return carrier.Result{}, err
	}
	defer resp.Body.Close()

	var out responseDTO
	if err = json.NewDecoder(resp.Body).Decode(&out); err != nil {
		if resp.StatusCode/100 != 2 {
			return carrier.Result{}, fmt.Errorf("courier post: %s", resp.Status)
		}
		return carrier.Result{}, fmt.Errorf("courier decode: %w", err)
	}

	if resp.StatusCode/100 != 2 {
		return carrier.Result{Success: false, Message: out.Message}, nil
	}
	return carrier.Result{Success: out.Success, Message: out.Message}, nil
}

func toDTO(r carrier.SubmissionRequest) requestDTO {
	return requestDTO{
		RequestID:    r.RequestID.String(),
		DeliveryType: r.DeliveryType.String(),
		Origin:       partyToDTO(r.Origin, r.OriginAddress),
		Destination:  partyToDTO(r.Destination, r.DestinationAddress),
		Payload:      r.Payload,
	}
}

func partyToDTO(sel wizard.Selection, addr address.Converted) partyDTO {
	return partyDTO{
		StoreCode:    sel.Store().Code(),
		StoreName:    sel.Store().Name(),
		Department:   sel.Department(),
		ManagerName:  sel.Manager().Name(),
		ManagerPhone: sel.Manager().Phone().Digits(),
		Address:      addr.Original(),
		DongAddress:  addr.DongAddress(),
		LegalDong:    addr.LegalDong(),
	}
}

var _ ports.CourierGateway = (*Client)(nil)
