package dto

import (
	"time"

	"github.com/jhoicas/Inventario-restock/internal/domain/restock"
)

// LowStockQuery parámetros de GET /api/restock/low-stock.
type LowStockQuery struct {
	Search string `query:"q"` // filtro por nombre (subcadena, sin mayúsculas)
}

// ExportQuery parámetros de GET /api/restock/low-stock/export.
type ExportQuery struct {
	Format string `query:"format"` // csv | xlsx | pdf (default csv)
	Search string `query:"q"`
}

// LowStockReportDTO respuesta del reporte de bajo stock con prioridad de demanda.
type LowStockReportDTO struct {
	// Período de ventas usado para la velocidad (mes calendario, ej: "2026-10")
	Period      string    `json:"period"`
	PeriodLabel string    `json:"period_label"` // ej: "Octubre 2026"
	GeneratedAt time.Time `json:"generated_at"`

	// false si el reporte de ventas falló: todas las ventas quedan en 0
	SalesAvailable bool `json:"sales_available"`

	Summary restock.Summary             `json:"summary"`
	Items   []restock.EnrichedStockItem `json:"items"`
}

// SnapshotDTO salida de un snapshot guardado.
type SnapshotDTO struct {
	ID             string          `json:"id"`
	CustomerID     string          `json:"customer_id"`
	Period         string          `json:"period"`
	GeneratedAt    time.Time       `json:"generated_at"`
	SalesAvailable bool            `json:"sales_available"`
	Summary        restock.Summary `json:"summary"`
	ItemCount      int             `json:"item_count"`
}

// SnapshotListResponse lista de snapshots de un cliente.
type SnapshotListResponse struct {
	Items []SnapshotDTO `json:"items"`
	Page  PageResponse  `json:"page"`
}
