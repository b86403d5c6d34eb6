package entity

import "github.com/shopspring/decimal"

// StockItem fila del feed de bajo stock del backend (GET /api/reports/low-stock).
// El umbral de "bajo stock" lo decide el backend; aquí solo se consume.
type StockItem struct {
	ProductID   string `json:"productId,omitempty"`
	ProductName string `json:"productName"`
	SKU         string `json:"sku,omitempty"`
	StockQty    int    `json:"stockQty"`
}

// SalesLine línea de ventas por producto del reporte mensual.
// Quantity no se valida: negativos o fraccionarios se acumulan tal cual.
type SalesLine struct {
	ProductID   string          `json:"productId,omitempty"`
	ProductName string          `json:"productName"`
	Quantity    decimal.Decimal `json:"quantity"`
}

// MonthlySalesReport respuesta de GET /api/reports/monthly.
// Los totales no los usa el scorer; se conservan para los exportes y el digest.
type MonthlySalesReport struct {
	ProductSales      []SalesLine     `json:"productSales"`
	TotalSales        decimal.Decimal `json:"totalSales"`
	TotalProfit       decimal.Decimal `json:"totalProfit"`
	TotalLoss         decimal.Decimal `json:"totalLoss"`
	TotalQuantitySold decimal.Decimal `json:"totalQuantitySold"`
}
