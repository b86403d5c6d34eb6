package repository

import (
	"context"

	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
)

// SnapshotRepository persistencia de snapshots de reposición por cliente.
type SnapshotRepository interface {
	Save(ctx context.Context, s *entity.RestockSnapshot) error
	// ListByCustomer devuelve los más recientes primero, paginado, y el total del cliente.
	ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.RestockSnapshot, int, error)
}
