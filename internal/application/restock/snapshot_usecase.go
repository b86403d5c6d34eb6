package restock

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-restock/internal/application/dto"
	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/authz"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	domrestock "github.com/jhoicas/Inventario-restock/internal/domain/restock"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

// SnapshotUseCase guarda y lista fotos del reporte de bajo stock por cliente.
type SnapshotUseCase struct {
	report *ReportUseCase
	repo   repository.SnapshotRepository
	log    *logger.Logger
	newID  func() string
}

// NewSnapshotUseCase construye el caso de uso; los IDs son UUID v4.
func NewSnapshotUseCase(report *ReportUseCase, repo repository.SnapshotRepository, log *logger.Logger) *SnapshotUseCase {
	return &SnapshotUseCase{
		report: report,
		repo:   repo,
		log:    log.Component("restock.snapshot"),
		newID:  uuid.NewString,
	}
}

// Create ejecución manual para el cliente del usuario autenticado.
func (uc *SnapshotUseCase) Create(ctx context.Context, p *authz.Principal) (*dto.SnapshotDTO, error) {
	if p == nil || p.Token == "" {
		return nil, domain.ErrUnauthorized
	}
	if p.CustomerID == "" {
		return nil, fmt.Errorf("el usuario no pertenece a un cliente: %w", domain.ErrInvalidInput)
	}
	s, err := uc.Capture(ctx, repository.Credentials{Token: p.Token}, p.CustomerID)
	if err != nil {
		return nil, err
	}
	out := toSnapshotDTO(s)
	return &out, nil
}

// List snapshots del cliente del usuario, más recientes primero.
func (uc *SnapshotUseCase) List(ctx context.Context, p *authz.Principal, page dto.PageRequest) (*dto.SnapshotListResponse, error) {
	if p == nil {
		return nil, domain.ErrUnauthorized
	}
	if p.CustomerID == "" {
		return nil, fmt.Errorf("el usuario no pertenece a un cliente: %w", domain.ErrInvalidInput)
	}
	page.DefaultPage()

	list, total, err := uc.repo.ListByCustomer(ctx, p.CustomerID, page.Limit, page.Offset)
	if err != nil {
		return nil, fmt.Errorf("listar snapshots: %w", err)
	}
	items := make([]dto.SnapshotDTO, 0, len(list))
	for _, s := range list {
		items = append(items, toSnapshotDTO(s))
	}
	return &dto.SnapshotListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: page.Limit, Offset: page.Offset, Total: total},
	}, nil
}

// Capture arma el reporte con las credenciales dadas y lo persiste.
func (uc *SnapshotUseCase) Capture(ctx context.Context, cred repository.Credentials, customerID string) (*entity.RestockSnapshot, error) {
	report, err := uc.report.Build(ctx, cred)
	if err != nil {
		return nil, err
	}

	items := make([]entity.SnapshotItem, len(report.Items))
	for i, it := range report.Items {
		items[i] = entity.SnapshotItem{
			ProductName:  it.ProductName,
			SKU:          it.SKU,
			StockQty:     it.StockQty,
			MonthlySales: it.MonthlySales,
			Velocity:     it.Velocity,
			Priority:     string(it.Priority),
		}
	}
	s := &entity.RestockSnapshot{
		ID:             uc.newID(),
		CustomerID:     customerID,
		Period:         report.Period,
		GeneratedAt:    report.GeneratedAt,
		SalesAvailable: report.SalesAvailable,
		TotalLow:       report.Summary.TotalLow,
		OutOfStock:     report.Summary.OutOfStock,
		VeryLow:        report.Summary.VeryLow,
		HighPriority:   report.Summary.High,
		Items:          items,
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		return nil, fmt.Errorf("guardar snapshot: %w", err)
	}

	uc.log.Info().
		Str("customer_id", customerID).
		Str("snapshot_id", s.ID).
		Int("total_low", s.TotalLow).
		Int("high_priority", s.HighPriority).
		Bool("sales_available", s.SalesAvailable).
		Msg("snapshot de reposición guardado")
	return s, nil
}

func toSnapshotDTO(s *entity.RestockSnapshot) dto.SnapshotDTO {
	// Medium y Low no tienen columna propia: se derivan de los items.
	sum := domrestock.Summary{
		TotalLow:   s.TotalLow,
		OutOfStock: s.OutOfStock,
		VeryLow:    s.VeryLow,
		High:       s.HighPriority,
	}
	for _, it := range s.Items {
		switch domrestock.Priority(it.Priority) {
		case domrestock.PriorityMedium:
			sum.Medium++
		case domrestock.PriorityLow:
			sum.Low++
		}
	}
	return dto.SnapshotDTO{
		ID:             s.ID,
		CustomerID:     s.CustomerID,
		Period:         s.Period,
		GeneratedAt:    s.GeneratedAt,
		SalesAvailable: s.SalesAvailable,
		Summary:        sum,
		ItemCount:      len(s.Items),
	}
}
