package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// RestockSnapshot foto persistida de un reporte de reposición (digest programado
// o ejecución manual). Items guarda la lista ya enriquecida.
type RestockSnapshot struct {
	ID             string
	CustomerID     string
	Period         string // "2026-10"
	GeneratedAt    time.Time
	SalesAvailable bool
	TotalLow       int
	OutOfStock     int
	VeryLow        int
	HighPriority   int
	Items          []SnapshotItem
}

// SnapshotItem fila de un snapshot.
type SnapshotItem struct {
	ProductName  string          `json:"productName"`
	SKU          string          `json:"sku,omitempty"`
	StockQty     int             `json:"stockQty"`
	MonthlySales decimal.Decimal `json:"monthlySales"`
	Velocity     decimal.Decimal `json:"velocity"`
	Priority     string          `json:"priority"`
}
