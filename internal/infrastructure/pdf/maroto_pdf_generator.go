// Package pdf implementa el exporte PDF del reporte de bajo stock.
//
// Layout de la página A4:
//
//	┌─────────────────────────────────────────────────────────────┐
//	│  HEADER: Título + periodo    │  Fecha de generación          │
//	│  ─────────────────────────────────────────────────────────  │
//	│  RESUMEN: Total | Sin stock | Muy bajo | Alta demanda        │
//	│  ─────────────────────────────────────────────────────────  │
//	│  TABLA: Producto | SKU | Stock | Ventas | Velocidad | Prior. │
//	│  ─────────────────────────────────────────────────────────  │
//	│  FOOTER: fórmula de prioridad + aviso de ventas              │
//	└─────────────────────────────────────────────────────────────┘
package pdf

import (
	"context"
	"fmt"
	"strconv"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
	"github.com/jhoicas/Inventario-restock/internal/domain/restock"
)

// ── Paleta de colores ─────────────────────────────────────────────────────────

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite   = &props.Color{Red: 255, Green: 255, Blue: 255}
	colorHigh    = &props.Color{Red: 185, Green: 28, Blue: 28}
	colorMedium  = &props.Color{Red: 180, Green: 110, Blue: 0}
)

// ── Generator ─────────────────────────────────────────────────────────────────

var _ apprestock.ReportRenderer = (*MarotoPDFGenerator)(nil)

// MarotoPDFGenerator implementa restock.ReportRenderer usando Maroto v2.
type MarotoPDFGenerator struct {
	author string
}

// NewMarotoPDFGenerator construye el generador; author va en los metadatos del PDF.
func NewMarotoPDFGenerator(author string) *MarotoPDFGenerator {
	return &MarotoPDFGenerator{author: nonEmpty(author, "Inventario")}
}

func (g *MarotoPDFGenerator) ContentType() string { return "application/pdf" }
func (g *MarotoPDFGenerator) Extension() string   { return "pdf" }

// Render genera el PDF y devuelve sus bytes.
func (g *MarotoPDFGenerator) Render(_ context.Context, report *dto.LowStockReportDTO) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle("Low Stock Alerts", true).
		WithAuthor(g.author, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(report))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(summaryRow(report.Summary))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.3}))

	m.AddRows(tableHeaderRow())
	if len(report.Items) == 0 {
		m.AddRows(row.New(10).Add(col.New(12).Add(
			text.New("No low stock items found", props.Text{
				Size: 9, Align: align.Center, Color: colorGray, Top: 3,
			}),
		)))
	}
	for _, r := range tableDetailRows(report.Items) {
		m.AddRows(r)
	}

	m.AddRows(line.NewRow(3))
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(footerRows(report)...)

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// ── Secciones ─────────────────────────────────────────────────────────────────

func headerRow(report *dto.LowStockReportDTO) core.Row {
	return row.New(16).Add(
		col.New(8).Add(
			text.New("LOW STOCK ALERTS", props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 1,
			}),
			text.New("Periodo de ventas: "+report.PeriodLabel, props.Text{
				Size: 9, Top: 9, Color: colorGray,
			}),
		),
		col.New(4).Add(
			text.New("Generado", props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Right,
				Color: colorPrimary, Top: 1,
			}),
			text.New(report.GeneratedAt.Format("02/01/2006 15:04"), props.Text{
				Size: 9, Align: align.Right, Top: 7,
			}),
		),
	)
}

// summaryRow: las tarjetas de la consola en una sola fila.
func summaryRow(s restock.Summary) core.Row {
	card := func(label string, value int) core.Col {
		return col.New(3).Add(
			text.New(label, props.Text{Size: 7, Align: align.Center, Color: colorGray, Top: 1}),
			text.New(strconv.Itoa(value), props.Text{
				Style: fontstyle.Bold, Size: 12, Align: align.Center, Top: 5,
			}),
		)
	}
	return row.New(14).Add(
		card("Total Low Stock Items", s.TotalLow),
		card("Out of Stock", s.OutOfStock),
		card("Very Low (1-3 Qty)", s.VeryLow),
		card("High Demand", s.High),
	)
}

func tableHeaderRow() core.Row {
	h := func(label string, size int, a align.Type) core.Col {
		return col.New(size).Add(text.New(label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: a,
			Color: colorWhite, Top: 2, Left: 1, Right: 1,
		}))
	}
	return row.New(8).WithStyle(&props.Cell{BackgroundColor: colorPrimary}).Add(
		h("Product", 4, align.Left),
		h("SKU", 2, align.Left),
		h("Stock", 1, align.Center),
		h("Sales", 2, align.Right),
		h("Velocity", 1, align.Right),
		h("Priority", 2, align.Center),
	)
}

func tableDetailRows(items []restock.EnrichedStockItem) []core.Row {
	result := make([]core.Row, 0, len(items))
	for _, it := range items {
		result = append(result, row.New(7).Add(
			col.New(4).Add(text.New(it.ProductName,
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1})),
			col.New(2).Add(text.New(nonEmpty(it.SKU, "—"),
				props.Text{Size: 8, Align: align.Left, Top: 1, Left: 1, Color: colorGray})),
			col.New(1).Add(text.New(strconv.Itoa(it.StockQty),
				props.Text{Size: 8, Align: align.Center, Top: 1})),
			col.New(2).Add(text.New(it.MonthlySales.String(),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(1).Add(text.New(it.Velocity.StringFixed(2),
				props.Text{Size: 8, Align: align.Right, Top: 1, Right: 1})),
			col.New(2).Add(text.New(it.Priority.Label(), props.Text{
				Style: fontstyle.Bold, Size: 8, Align: align.Center, Top: 1,
				Color: priorityColor(it.Priority),
			})),
		))
	}
	return result
}

func footerRows(report *dto.LowStockReportDTO) []core.Row {
	rows := []core.Row{
		row.New(8).Add(col.New(12).Add(
			text.New(
				"Prioridad = (ventas del mes / 30) / (stock + 1). "+
					"High > 1.5, Medium entre 0.5 y 1.5, Low < 0.5.",
				props.Text{Size: 6.5, Color: colorGray, Top: 2},
			),
		)),
	}
	if !report.SalesAvailable {
		rows = append(rows, row.New(6).Add(col.New(12).Add(
			text.New("Reporte de ventas no disponible: todas las ventas se tomaron como 0.",
				props.Text{Style: fontstyle.Bold, Size: 7, Color: colorHigh, Top: 1}),
		)))
	}
	return rows
}

// ── helpers ───────────────────────────────────────────────────────────────────

func priorityColor(p restock.Priority) *props.Color {
	switch p {
	case restock.PriorityHigh:
		return colorHigh
	case restock.PriorityMedium:
		return colorMedium
	default:
		return colorGray
	}
}

func nonEmpty(s, fallback string) string {
	if s != "" {
		return s
	}
	return fallback
}
