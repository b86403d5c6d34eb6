package backend_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/backend"
)

func newServer(t *testing.T, h http.HandlerFunc) *backend.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return backend.NewClient(srv.URL+"/", 2*time.Second)
}

func TestGetLowStockProducts_ReenviaTokenYDecodifica(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/low-stock", r.URL.Path)
		assert.Equal(t, "Bearer user-token", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("X-Customer-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"productName":"Red Shirt","sku":"RS-01","stockQty":2,"category":"Shirts"},
			{"productName":"Blue Jeans","stockQty":0}
		]`))
	})

	items, err := client.GetLowStockProducts(context.Background(), repository.Credentials{Token: "user-token"})
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, "Red Shirt", items[0].ProductName)
	assert.Equal(t, "RS-01", items[0].SKU)
	assert.Equal(t, 2, items[0].StockQty)
	assert.Equal(t, "", items[1].SKU)
}

func TestGetLowStockProducts_RespuestaNullEsListaVacia(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`null`))
	})

	items, err := client.GetLowStockProducts(context.Background(), repository.Credentials{Token: "t"})
	require.NoError(t, err)
	assert.NotNil(t, items)
	assert.Empty(t, items)
}

func TestGetMonthlyReport_ParametrosYCantidades(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/reports/monthly", r.URL.Path)
		assert.Equal(t, "2026", r.URL.Query().Get("year"))
		assert.Equal(t, "10", r.URL.Query().Get("month"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"productSales":[{"productName":"Red Shirt","quantity":12},{"productName":"Red Shirt","quantity":8.5}],
			"totalSales":1520.75,"totalProfit":300,"totalLoss":0,"totalQuantitySold":20.5
		}`))
	})

	rep, err := client.GetMonthlyReport(context.Background(), repository.Credentials{Token: "t"}, 2026, 10)
	require.NoError(t, err)
	require.Len(t, rep.ProductSales, 2)
	assert.True(t, rep.ProductSales[1].Quantity.Equal(decimal.RequireFromString("8.5")))
	assert.True(t, rep.TotalSales.Equal(decimal.RequireFromString("1520.75")))
}

func TestGetMonthlyReport_MesInvalido(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:1", time.Second)
	_, err := client.GetMonthlyReport(context.Background(), repository.Credentials{Token: "t"}, 2026, 13)
	assert.True(t, errors.Is(err, domain.ErrInvalidInput))
}

func TestErrores_401SeMapeaAUpstreamUnauthorized(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.GetLowStockProducts(context.Background(), repository.Credentials{Token: "expired"})
	assert.True(t, errors.Is(err, domain.ErrUpstreamUnauthorized))
}

func TestErrores_5xxIncluyeMensajeDelBackend(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"message":"report service down","status":500}`))
	})

	_, err := client.GetMonthlyReport(context.Background(), repository.Credentials{Token: "t"}, 2026, 1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrUpstream))
	assert.Contains(t, err.Error(), "report service down")
}

func TestErrores_FalloDeTransporte(t *testing.T) {
	client := backend.NewClient("http://127.0.0.1:1", 500*time.Millisecond)
	_, err := client.GetLowStockProducts(context.Background(), repository.Credentials{Token: "t"})
	assert.True(t, errors.Is(err, domain.ErrUpstream))
}

func TestCredenciales_TokenDeServicioEnviaCliente(t *testing.T) {
	client := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer svc", r.Header.Get("Authorization"))
		assert.Equal(t, "42", r.Header.Get("X-Customer-Id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	})

	_, err := client.GetLowStockProducts(context.Background(), repository.Credentials{Token: "svc", CustomerID: "42"})
	require.NoError(t, err)
}
