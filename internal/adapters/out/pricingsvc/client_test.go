package pricingsvc_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"orders/internal/adapters/out/pricingsvc"
	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClient_GetCurrentPrice(t *testing.T) {
	t.Run("returns the price", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/prices/SKU-001", r.URL.Path)
			assert.Equal(t, "EUR", r.URL.Query().Get("currency"))

			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"amount": 12.5, "currency": "EUR"}`))
		}))
		defer server.Close()

		client := pricingsvc.NewClient(server.URL)
		price, err := client.GetCurrentPrice(t.Context(), "SKU-001", kernel.CurrencyEUR)
		require.NoError(t, err)

		assert.InDelta(t, 12.5, price.Amount(), 1e-9)
		assert.Equal(t, kernel.CurrencyEUR, price.Currency())
	})

	t.Run("missing price maps to not found", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}))
		defer server.Close()

		client := pricingsvc.NewClient(server.URL)
		_, err := client.GetCurrentPrice(t.Context(), "SKU-404", kernel.CurrencyEUR)

		var notFoundErr *errs.ObjectNotFoundError
		require.ErrorAs(t, err, &notFoundErr)
		assert.Equal(t, "price", notFoundErr.Resource)
	})

	t.Run("server error maps to infrastructure error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer server.Close()

		client := pricingsvc.NewClient(server.URL)
		_, err := client.GetCurrentPrice(t.Context(), "SKU-001", kernel.CurrencyEUR)

		assert.ErrorIs(t, err, errs.ErrInfrastructure)
	})

	t.Run("unreachable server maps to infrastructure error", func(t *testing.T) {
		client := pricingsvc.NewClient("http://127.0.0.1:1")
		_, err := client.GetCurrentPrice(t.Context(), "SKU-001", kernel.CurrencyEUR)

		assert.ErrorIs(t, err, errs.ErrInfrastructure)
	})

	t.Run("malformed body maps to infrastructure error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte("not json"))
		}))
		defer server.Close()

		client := pricingsvc.NewClient(server.URL)
		_, err := client.GetCurrentPrice(t.Context(), "SKU-001", kernel.CurrencyEUR)

		assert.ErrorIs(t, err, errs.ErrInfrastructure)
	})

	t.Run("unknown currency in response maps to infrastructure error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`{"amount": 10, "currency": "GBP"}`))
		}))
		defer server.Close()

		client := pricingsvc.NewClient(server.URL)
		_, err := client.GetCurrentPrice(t.Context(), "SKU-001", kernel.CurrencyEUR)

		assert.ErrorIs(t, err, errs.ErrInfrastructure)
	})
}
