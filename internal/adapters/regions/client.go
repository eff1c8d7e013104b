// Package regions looks up Indonesian administrative regions for the
// cascading address dropdowns. The upstream is the public emsifa
// wilayah API; failures surface to the caller and the UI falls back to
// free-text entry.
package regions

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const defaultBaseURL = "https://www.emsifa.com/api-wilayah-indonesia/api"

type Region struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	PostalCode string `json:"postal_code,omitempty"`
}

type Client struct {
	baseURL    string
	httpClient *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{baseURL: baseURL, httpClient: &http.Client{Timeout: 10 * time.Second}}
}

func (c *Client) fetch(ctx context.Context, path string) ([]Region, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, err
	}
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("region lookup status %d", resp.StatusCode)
	}
	var out []Region
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Client) Provinces(ctx context.Context) ([]Region, error) {
	return c.fetch(ctx, "/provinces.json")
}

func (c *Client) Regencies(ctx context.Context, provinceID string) ([]Region, error) {
	return c.fetch(ctx, "/regencies/"+provinceID+".json")
}

func (c *Client) Districts(ctx context.Context, regencyID string) ([]Region, error) {
	return c.fetch(ctx, "/districts/"+regencyID+".json")
}

func (c *Client) Villages(ctx context.Context, districtID string) ([]Region, error) {
	return c.fetch(ctx, "/villages/"+districtID+".json")
}
