// Package restock contiene el cálculo de prioridad de reposición para los
// productos con bajo stock: une el feed de bajo stock con las ventas del período
// y clasifica cada producto en High / Medium / Low según su velocidad de venta.
package restock

import "github.com/shopspring/decimal"

// Priority clasificación de urgencia de reposición mostrada como badge en la consola.
type Priority string

const (
	PriorityHigh   Priority = "High"
	PriorityMedium Priority = "Medium"
	PriorityLow    Priority = "Low"
)

var (
	// score > 1.5 → High; 1.5 pertenece a Medium.
	highThreshold = decimal.RequireFromString("1.5")
	// score >= 0.5 → Medium; 0.5 pertenece a Medium.
	mediumThreshold = decimal.RequireFromString("0.5")
)

// Classify traduce el score en prioridad. Ambos extremos del rango Medium son inclusivos.
func Classify(score decimal.Decimal) Priority {
	switch {
	case score.GreaterThan(highThreshold):
		return PriorityHigh
	case score.GreaterThanOrEqual(mediumThreshold):
		return PriorityMedium
	default:
		return PriorityLow
	}
}

// Label texto del badge, ej: "High Demand".
func (p Priority) Label() string {
	return string(p) + " Demand"
}
