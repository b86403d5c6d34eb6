package dto

import "github.com/shopspring/decimal"

// Ventas y velocidad viajan como números JSON (120, 4.5), igual que los
// devuelve el backend de inventario, no como strings.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
