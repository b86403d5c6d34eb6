package export

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
)

var _ apprestock.ReportRenderer = (*XLSXRenderer)(nil)

const (
	itemsSheet   = "Low Stock"
	summarySheet = "Summary"
)

// XLSXRenderer libro Excel con la hoja "Low Stock" (detalle) y "Summary" (tarjetas).
type XLSXRenderer struct{}

// NewXLSXRenderer construye el renderer.
func NewXLSXRenderer() *XLSXRenderer { return &XLSXRenderer{} }

// Render genera el libro en memoria.
func (r *XLSXRenderer) Render(_ context.Context, report *dto.LowStockReportDTO) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", itemsSheet); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("xlsx: estilo: %w", err)
	}

	header := make([]interface{}, len(Header))
	for i, h := range Header {
		header[i] = h
	}
	if err := f.SetSheetRow(itemsSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("xlsx: encabezado: %w", err)
	}
	if err := f.SetCellStyle(itemsSheet, "A1", "F1", bold); err != nil {
		return nil, fmt.Errorf("xlsx: estilo encabezado: %w", err)
	}

	for i, it := range report.Items {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		values := []interface{}{
			it.ProductName,
			it.SKU,
			it.StockQty,
			it.MonthlySales.InexactFloat64(),
			it.Velocity.Round(3).InexactFloat64(),
			string(it.Priority),
		}
		if err := f.SetSheetRow(itemsSheet, cell, &values); err != nil {
			return nil, fmt.Errorf("xlsx: fila %d: %w", i+2, err)
		}
	}
	if err := f.SetColWidth(itemsSheet, "A", "A", 36); err != nil {
		return nil, err
	}

	if _, err := f.NewSheet(summarySheet); err != nil {
		return nil, fmt.Errorf("xlsx: hoja resumen: %w", err)
	}
	summary := [][]interface{}{
		{"Period", report.PeriodLabel},
		{"Sales available", report.SalesAvailable},
		{"Total Low Stock Items", report.Summary.TotalLow},
		{"Out of Stock", report.Summary.OutOfStock},
		{"Very Low (1-3 Qty)", report.Summary.VeryLow},
		{"High Demand", report.Summary.High},
	}
	for i, row := range summary {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(summarySheet, cell, &row); err != nil {
			return nil, fmt.Errorf("xlsx: resumen: %w", err)
		}
	}
	if err := f.SetColWidth(summarySheet, "A", "A", 24); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *XLSXRenderer) ContentType() string {
	return "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
}
func (r *XLSXRenderer) Extension() string { return "xlsx" }
