// Package export implementa los formatos tabulares del reporte de bajo stock (CSV y XLSX).
package export

import (
	"strconv"

	"github.com/jhoicas/Inventario-restock/internal/domain/restock"
)

// Header columnas comunes a todos los formatos tabulares.
var Header = []string{"Product", "SKU", "Stock Qty", "Monthly Sales", "Velocity", "Priority"}

// Row valores de texto de una fila; SKU vacío se exporta vacío.
func Row(it restock.EnrichedStockItem) []string {
	return []string{
		it.ProductName,
		it.SKU,
		strconv.Itoa(it.StockQty),
		it.MonthlySales.String(),
		it.Velocity.StringFixed(3),
		string(it.Priority),
	}
}
