// Package memory implementa los puertos de persistencia en memoria (store por defecto y tests).
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
)

var _ repository.SnapshotRepository = (*SnapshotRepository)(nil)

// SnapshotRepository guarda los snapshots por cliente; se pierde al reiniciar.
type SnapshotRepository struct {
	mu         sync.RWMutex
	ids        map[string]struct{}
	byCustomer map[string][]*entity.RestockSnapshot
}

// NewSnapshotRepository construye el store vacío.
func NewSnapshotRepository() *SnapshotRepository {
	return &SnapshotRepository{
		ids:        make(map[string]struct{}),
		byCustomer: make(map[string][]*entity.RestockSnapshot),
	}
}

// Save guarda una copia; un ID repetido es ErrInvalidInput.
func (r *SnapshotRepository) Save(_ context.Context, s *entity.RestockSnapshot) error {
	if s == nil || s.ID == "" {
		return fmt.Errorf("snapshot sin id: %w", domain.ErrInvalidInput)
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.ids[s.ID]; exists {
		return fmt.Errorf("snapshot %s ya existe: %w", s.ID, domain.ErrInvalidInput)
	}
	cp := *s
	cp.Items = append([]entity.SnapshotItem(nil), s.Items...)

	r.ids[s.ID] = struct{}{}
	list := append(r.byCustomer[s.CustomerID], &cp)
	sort.SliceStable(list, func(i, j int) bool {
		return list[i].GeneratedAt.After(list[j].GeneratedAt)
	})
	r.byCustomer[s.CustomerID] = list
	return nil
}

// ListByCustomer más recientes primero.
func (r *SnapshotRepository) ListByCustomer(_ context.Context, customerID string, limit, offset int) ([]*entity.RestockSnapshot, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	list := r.byCustomer[customerID]
	total := len(list)
	if offset >= total {
		return []*entity.RestockSnapshot{}, total, nil
	}
	end := total
	if limit > 0 && offset+limit < total {
		end = offset + limit
	}
	out := make([]*entity.RestockSnapshot, 0, end-offset)
	for _, s := range list[offset:end] {
		cp := *s
		out = append(out, &cp)
	}
	return out, total, nil
}
