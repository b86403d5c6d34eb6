package restock

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"

	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
)

// SalesWindowDays divisor fijo para la velocidad (unidades/día), independiente
// de los días reales del mes consultado.
const SalesWindowDays = 30

var (
	windowDays = decimal.NewFromInt(SalesWindowDays)
	one        = decimal.NewFromInt(1)
)

// EnrichedStockItem StockItem + ventas del período + prioridad calculada.
type EnrichedStockItem struct {
	entity.StockItem
	MonthlySales decimal.Decimal `json:"monthlySales"`
	Velocity     decimal.Decimal `json:"velocity"` // unidades/día
	Score        decimal.Decimal `json:"-"`        // solo insumo de la clasificación
	Priority     Priority        `json:"priority"`
}

// Summary contadores de las tarjetas del reporte de bajo stock.
type Summary struct {
	TotalLow   int `json:"totalLow"`
	OutOfStock int `json:"outOfStock"` // stockQty == 0
	VeryLow    int `json:"veryLow"`    // 0 < stockQty <= 3

	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

// BuildSalesMap suma quantity por productName (sensible a mayúsculas).
// Dos productos distintos con el mismo nombre quedan fusionados.
func BuildSalesMap(lines []entity.SalesLine) map[string]decimal.Decimal {
	sales := make(map[string]decimal.Decimal, len(lines))
	for _, l := range lines {
		sales[l.ProductName] = sales[l.ProductName].Add(l.Quantity)
	}
	return sales
}

// Score enriquece cada producto con sus ventas, velocidad y prioridad.
// Conserva el orden y la cardinalidad de items; un producto sin ventas registradas
// se trata como 0 ventas. sales puede ser nil.
func Score(items []entity.StockItem, sales map[string]decimal.Decimal) []EnrichedStockItem {
	out := make([]EnrichedStockItem, 0, len(items))
	for _, item := range items {
		monthly := sales[item.ProductName] // cero si no existe
		velocity := monthly.Div(windowDays)
		score := demandScore(velocity, item.StockQty)

		out = append(out, EnrichedStockItem{
			StockItem:    item,
			MonthlySales: monthly,
			Velocity:     velocity,
			Score:        score,
			Priority:     Classify(score),
		})
	}
	return out
}

// demandScore = velocity / (stockQty + 1). El +1 evita la división por cero con stock 0.
// Un stockQty de -1 (dato inválido del backend) no debe tumbar el reporte: se
// satura hacia High si hay ventas y hacia Low si no las hay.
func demandScore(velocity decimal.Decimal, stockQty int) decimal.Decimal {
	denom := decimal.NewFromInt(int64(stockQty)).Add(one)
	if denom.IsZero() {
		if velocity.IsPositive() {
			return highThreshold.Add(one)
		}
		return decimal.Zero
	}
	return velocity.Div(denom)
}

// Summarize calcula los contadores sobre la lista ya enriquecida (y filtrada).
func Summarize(items []EnrichedStockItem) Summary {
	s := Summary{TotalLow: len(items)}
	for _, it := range items {
		switch {
		case it.StockQty == 0:
			s.OutOfStock++
		case it.StockQty > 0 && it.StockQty <= 3:
			s.VeryLow++
		}
		switch it.Priority {
		case PriorityHigh:
			s.High++
		case PriorityMedium:
			s.Medium++
		default:
			s.Low++
		}
	}
	return s
}

// FilterByName búsqueda del cuadro de texto de la consola: subcadena sin
// distinguir mayúsculas. term vacío devuelve items sin cambios; los espacios
// cuentan como parte del término.
func FilterByName(items []EnrichedStockItem, term string) []EnrichedStockItem {
	if term == "" {
		return items
	}
	fold := cases.Fold()
	needle := fold.String(term)

	out := make([]EnrichedStockItem, 0, len(items))
	for _, it := range items {
		if strings.Contains(fold.String(it.ProductName), needle) {
			out = append(out, it)
		}
	}
	return out
}
