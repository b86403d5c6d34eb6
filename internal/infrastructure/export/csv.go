package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	apprestock "github.com/jhoicas/Inventario-restock/internal/application/restock"
)

var _ apprestock.ReportRenderer = (*CSVRenderer)(nil)

// CSVRenderer CSV RFC 4180: comillas solo cuando el campo tiene coma, comilla o salto de línea.
type CSVRenderer struct{}

// NewCSVRenderer construye el renderer.
func NewCSVRenderer() *CSVRenderer { return &CSVRenderer{} }

// Render escribe encabezado + una fila por producto.
func (r *CSVRenderer) Render(_ context.Context, report *dto.LowStockReportDTO) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(Header); err != nil {
		return nil, fmt.Errorf("csv: encabezado: %w", err)
	}
	for _, it := range report.Items {
		if err := w.Write(Row(it)); err != nil {
			return nil, fmt.Errorf("csv: fila %q: %w", it.ProductName, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("csv: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *CSVRenderer) ContentType() string { return "text/csv; charset=utf-8" }
func (r *CSVRenderer) Extension() string   { return "csv" }
