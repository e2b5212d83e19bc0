// Package pricingsvc implements the PricingService port over the pricing
// team's HTTP API.
package pricingsvc

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
)

const defaultTimeout = 5 * time.Second

// Client calls the pricing HTTP API. A zero unit price in the response is a
// valid price; absence of a price is a 404.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a pricing client for the given base URL, e.g.
// "http://pricing:8080".
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: defaultTimeout},
	}
}

type priceResponse struct {
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// GetCurrentPrice fetches the current unit price for a sku in the given
// currency. A missing price maps to ObjectNotFoundError; transport and
// server failures map to InfrastructureError.
func (c *Client) GetCurrentPrice(ctx context.Context, sku string, currency kernel.Currency) (kernel.Money, error) {
	endpoint := fmt.Sprintf("%s/prices/%s?currency=%s",
		c.baseURL, url.PathEscape(sku), url.QueryEscape(string(currency)))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return kernel.Money{}, errs.NewInfrastructureError("build pricing request", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return kernel.Money{}, errs.NewInfrastructureError("call pricing service", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return kernel.Money{}, errs.NewObjectNotFoundError("price", sku)
	case resp.StatusCode != http.StatusOK:
		return kernel.Money{}, errs.NewInfrastructureError("call pricing service",
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var body priceResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return kernel.Money{}, errs.NewInfrastructureError("decode pricing response", err)
	}

	responseCurrency, err := kernel.CurrencyFromString(body.Currency)
	if err != nil {
		return kernel.Money{}, errs.NewInfrastructureError("decode pricing response", err)
	}

	return kernel.NewMoney(body.Amount, responseCurrency)
}
