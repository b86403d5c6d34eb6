package pdf_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/restock"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/pdf"
)

func TestMarotoPDFGenerator_Render(t *testing.T) {
	items := restock.Score(
		[]entity.StockItem{{ProductName: "Red Shirt", SKU: "RS-1", StockQty: 2}, {ProductName: "Blue Jeans", StockQty: 0}},
		map[string]decimal.Decimal{"Red Shirt": decimal.NewFromInt(150)},
	)
	report := &dto.LowStockReportDTO{
		Period:      "2026-10",
		PeriodLabel: "Octubre 2026",
		GeneratedAt: time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC),
		Summary:     restock.Summarize(items),
		Items:       items,
	}

	g := pdf.NewMarotoPDFGenerator("Tienda Uno")
	data, err := g.Render(context.Background(), report)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, []byte("%PDF")))
	assert.Equal(t, "application/pdf", g.ContentType())
}

func TestMarotoPDFGenerator_ListaVacia(t *testing.T) {
	data, err := pdf.NewMarotoPDFGenerator("").Render(context.Background(), &dto.LowStockReportDTO{})
	require.NoError(t, err)
	assert.NotEmpty(t, data)
}
