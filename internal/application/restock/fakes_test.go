package restock_test

import (
	"context"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
)

// fakeFeed InventoryFeed en memoria que registra las credenciales recibidas.
type fakeFeed struct {
	mu sync.Mutex

	items    []entity.StockItem
	lowErr   error
	sales    []entity.SalesLine
	salesErr error

	lowCalls   []repository.Credentials
	salesCalls []repository.Credentials
	year       int
	month      int

	// si no es nil, ambas llamadas esperan a que se cierre (verifica paralelismo)
	gate chan struct{}
}

func (f *fakeFeed) GetLowStockProducts(_ context.Context, cred repository.Credentials) ([]entity.StockItem, error) {
	f.mu.Lock()
	f.lowCalls = append(f.lowCalls, cred)
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	if f.lowErr != nil {
		return nil, f.lowErr
	}
	return append([]entity.StockItem(nil), f.items...), nil
}

func (f *fakeFeed) GetMonthlyReport(_ context.Context, cred repository.Credentials, year, month int) (*entity.MonthlySalesReport, error) {
	f.mu.Lock()
	f.salesCalls = append(f.salesCalls, cred)
	f.year, f.month = year, month
	f.mu.Unlock()
	if f.gate != nil {
		<-f.gate
	}
	if f.salesErr != nil {
		return nil, f.salesErr
	}
	return &entity.MonthlySalesReport{ProductSales: f.sales}, nil
}

func fixedClock() time.Time {
	return time.Date(2026, time.October, 18, 9, 30, 0, 0, time.UTC)
}

func line(name string, qty int64) entity.SalesLine {
	return entity.SalesLine{ProductName: name, Quantity: decimal.NewFromInt(qty)}
}

func shirtsAndJeans() *fakeFeed {
	return &fakeFeed{
		items: []entity.StockItem{
			{ProductName: "Red Shirt", SKU: "RS-1", StockQty: 2},
			{ProductName: "Blue Jeans", SKU: "BJ-1", StockQty: 10},
		},
		sales: []entity.SalesLine{line("Red Shirt", 150), line("Blue Jeans", 15)},
	}
}

// fakeRenderer ReportRenderer que guarda el reporte recibido.
type fakeRenderer struct {
	got *dto.LowStockReportDTO
	err error
}

func (r *fakeRenderer) Render(_ context.Context, report *dto.LowStockReportDTO) ([]byte, error) {
	r.got = report
	if r.err != nil {
		return nil, r.err
	}
	return []byte("rendered"), nil
}

func (r *fakeRenderer) ContentType() string { return "text/plain" }
func (r *fakeRenderer) Extension() string   { return "txt" }
