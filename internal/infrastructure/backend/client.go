// Package backend implementa el puerto repository.InventoryFeed contra el
// backend REST de inventario usando resty.
package backend

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
)

var _ repository.InventoryFeed = (*Client)(nil)

const (
	lowStockPath = "/api/reports/low-stock"
	monthlyPath  = "/api/reports/monthly"

	headerCustomerID = "X-Customer-Id"
)

// Client cliente HTTP del backend de inventario.
type Client struct {
	http *resty.Client
}

// NewClient construye el cliente. timeout <= 0 usa 15s.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	rc := resty.New().
		SetBaseURL(strings.TrimSuffix(baseURL, "/")).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetTimeout(timeout)

	return &Client{http: rc}
}

// apiError cuerpo de error del backend (Spring: {"message": "...", "status": 401, ...}).
type apiError struct {
	Message string `json:"message"`
	Error   string `json:"error"`
	Status  int    `json:"status"`
}

// GetLowStockProducts GET /api/reports/low-stock.
func (c *Client) GetLowStockProducts(ctx context.Context, cred repository.Credentials) ([]entity.StockItem, error) {
	var items []entity.StockItem
	apiErr := new(apiError)

	resp, err := c.request(ctx, cred).
		SetResult(&items).
		SetError(apiErr).
		Get(lowStockPath)
	if err := checkResponse("low-stock", resp, err, apiErr); err != nil {
		return nil, err
	}
	if items == nil {
		items = []entity.StockItem{}
	}
	return items, nil
}

// GetMonthlyReport GET /api/reports/monthly?year=&month=.
func (c *Client) GetMonthlyReport(ctx context.Context, cred repository.Credentials, year, month int) (*entity.MonthlySalesReport, error) {
	if month < 1 || month > 12 {
		return nil, fmt.Errorf("monthly report: mes %d: %w", month, domain.ErrInvalidInput)
	}
	report := new(entity.MonthlySalesReport)
	apiErr := new(apiError)

	resp, err := c.request(ctx, cred).
		SetQueryParam("year", strconv.Itoa(year)).
		SetQueryParam("month", strconv.Itoa(month)).
		SetResult(report).
		SetError(apiErr).
		Get(monthlyPath)
	if err := checkResponse("monthly report", resp, err, apiErr); err != nil {
		return nil, err
	}
	return report, nil
}

func (c *Client) request(ctx context.Context, cred repository.Credentials) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if cred.Token != "" {
		req.SetAuthToken(cred.Token)
	}
	if cred.CustomerID != "" {
		req.SetHeader(headerCustomerID, cred.CustomerID)
	}
	return req
}

// checkResponse traduce errores de transporte y códigos HTTP a errores de dominio.
func checkResponse(op string, resp *resty.Response, err error, apiErr *apiError) error {
	if err != nil {
		return fmt.Errorf("%s: %w: %v", op, domain.ErrUpstream, err)
	}
	code := resp.StatusCode()
	if code == http.StatusUnauthorized {
		return fmt.Errorf("%s: %w", op, domain.ErrUpstreamUnauthorized)
	}
	if code >= http.StatusBadRequest {
		msg := apiErr.Message
		if msg == "" {
			msg = apiErr.Error
		}
		return fmt.Errorf("%s: %w: status=%d message=%s", op, domain.ErrUpstream, code, msg)
	}
	return nil
}
