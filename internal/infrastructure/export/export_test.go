package export_test

import (
	"bytes"
	"context"
	"encoding/csv"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/restock"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/export"
)

func sampleReport() *dto.LowStockReportDTO {
	items := restock.Score(
		[]entity.StockItem{
			{ProductName: "Red Shirt", SKU: "RS-1", StockQty: 2},
			{ProductName: `Jeans, "slim"`, StockQty: 10},
		},
		map[string]decimal.Decimal{"Red Shirt": decimal.NewFromInt(150)},
	)
	return &dto.LowStockReportDTO{
		Period:         "2026-10",
		PeriodLabel:    "Octubre 2026",
		GeneratedAt:    time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		SalesAvailable: true,
		Summary:        restock.Summarize(items),
		Items:          items,
	}
}

func TestCSVRenderer_EncabezadoYFilas(t *testing.T) {
	data, err := export.NewCSVRenderer().Render(context.Background(), sampleReport())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, export.Header, records[0])
	assert.Equal(t, []string{"Red Shirt", "RS-1", "2", "150", "5.000", "High"}, records[1])
	// coma y comillas quedan escapadas y vuelven intactas
	assert.Equal(t, []string{`Jeans, "slim"`, "", "10", "0", "0.000", "Low"}, records[2])
}

func TestCSVRenderer_ListaVaciaSoloEncabezado(t *testing.T) {
	data, err := export.NewCSVRenderer().Render(context.Background(), &dto.LowStockReportDTO{})
	require.NoError(t, err)
	assert.Equal(t, "Product,SKU,Stock Qty,Monthly Sales,Velocity,Priority\n", string(data))
}

func TestXLSXRenderer_HojasYValores(t *testing.T) {
	r := export.NewXLSXRenderer()
	data, err := r.Render(context.Background(), sampleReport())
	require.NoError(t, err)
	assert.Equal(t, "xlsx", r.Extension())

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	assert.Equal(t, []string{"Low Stock", "Summary"}, f.GetSheetList())

	rows, err := f.GetRows("Low Stock")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, export.Header, rows[0])
	assert.Equal(t, "Red Shirt", rows[1][0])
	assert.Equal(t, "2", rows[1][2])
	assert.Equal(t, "High", rows[1][5])

	total, err := f.GetCellValue("Summary", "B3")
	require.NoError(t, err)
	assert.Equal(t, "2", total)
}
