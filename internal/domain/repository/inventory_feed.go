package repository

import (
	"context"

	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
)

// Credentials cómo autenticarse ante el backend de inventario.
type Credentials struct {
	Token string // bearer del usuario o token de servicio
	// CustomerID cliente a consultar con un token de servicio (cabecera X-Customer-Id).
	// Con token de usuario va vacío: el backend toma el cliente del propio token.
	CustomerID string
}

// InventoryFeed puerto hacia el backend REST de inventario (DIP).
type InventoryFeed interface {
	// GetLowStockProducts productos bajo el umbral de reposición del backend.
	GetLowStockProducts(ctx context.Context, cred Credentials) ([]entity.StockItem, error)

	// GetMonthlyReport ventas agregadas del mes (month 1-12).
	GetMonthlyReport(ctx context.Context, cred Credentials, year, month int) (*entity.MonthlySalesReport, error)
}
