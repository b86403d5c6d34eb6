// Package restock contiene los casos de uso del reporte de reposición:
// reporte de bajo stock con prioridad de demanda, exportes y digest programado.
package restock

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	domrestock "github.com/jhoicas/Inventario-restock/internal/domain/restock"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// ReportUseCase arma el reporte de bajo stock: une el feed de bajo stock con las
// ventas del mes en curso y calcula la prioridad de cada producto.
type ReportUseCase struct {
	feed repository.InventoryFeed
	log  *logger.Logger
	now  func() time.Time
}

// NewReportUseCase construye el caso de uso. now nil usa time.Now.
func NewReportUseCase(feed repository.InventoryFeed, log *logger.Logger, now func() time.Time) *ReportUseCase {
	if now == nil {
		now = time.Now
	}
	return &ReportUseCase{feed: feed, log: log.Component("restock.report"), now: now}
}

// GetLowStockReport reporte para el usuario autenticado, filtrado por q.Search.
// El resumen se calcula sobre la lista ya filtrada.
func (uc *ReportUseCase) GetLowStockReport(
	ctx context.Context,
	p *authz.Principal,
	q dto.LowStockQuery,
) (*dto.LowStockReportDTO, error) {
	if p == nil || p.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	report, err := uc.Build(ctx, repository.Credentials{Token: p.Token})
	if err != nil {
		return nil, err
	}
	if q.Search != "" {
		report.Items = domrestock.FilterByName(report.Items, q.Search)
		report.Summary = domrestock.Summarize(report.Items)
	}
	return report, nil
}

// Build consulta ambos feeds en paralelo y hace el join cuando los dos terminan.
//
//   - Falla el feed de bajo stock → error (no hay nada que mostrar).
//   - Falla el reporte de ventas → se degrada: ventas en 0 y SalesAvailable=false.
func (uc *ReportUseCase) Build(ctx context.Context, cred repository.Credentials) (*dto.LowStockReportDTO, error) {
	now := uc.now()
	year, month := now.Year(), int(now.Month())

	type lowStockResult struct {
		items []entity.StockItem
		err   error
	}
	type salesResult struct {
		report *entity.MonthlySalesReport
		err    error
	}

	lowCh := make(chan lowStockResult, 1)
	salesCh := make(chan salesResult, 1)

	go func() {
		items, err := uc.feed.GetLowStockProducts(ctx, cred)
		lowCh <- lowStockResult{items, err}
	}()
	go func() {
		rep, err := uc.feed.GetMonthlyReport(ctx, cred, year, month)
		salesCh <- salesResult{rep, err}
	}()

	low := <-lowCh
	sales := <-salesCh

	if low.err != nil {
		return nil, fmt.Errorf("restock: bajo stock: %w", low.err)
	}

	salesAvailable := true
	var salesMap map[string]decimal.Decimal
	if sales.err != nil || sales.report == nil {
		salesAvailable = false
		uc.log.Warn().Err(sales.err).
			Str("customer_id", cred.CustomerID).
			Int("year", year).Int("month", month).
			Msg("reporte mensual no disponible, ventas en 0")
	} else {
		salesMap = domrestock.BuildSalesMap(sales.report.ProductSales)
	}

	items := domrestock.Score(low.items, salesMap)

	uc.log.Debug().
		Int("items", len(items)).
		Bool("sales_available", salesAvailable).
		Msg("reporte de bajo stock calculado")

	return &dto.LowStockReportDTO{
		Period:         fmt.Sprintf("%04d-%02d", year, month),
		PeriodLabel:    monthLabel(now),
		GeneratedAt:    now,
		SalesAvailable: salesAvailable,
		Summary:        domrestock.Summarize(items),
		Items:          items,
	}, nil
}

// monthLabel devuelve una etiqueta legible del mes, ej: "Febrero 2026".
func monthLabel(t time.Time) string {
	months := [...]string{
		"Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
		"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
	}
	return fmt.Sprintf("%s %d", months[t.Month()-1], t.Year())
}
