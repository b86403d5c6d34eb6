package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/domain/repository"
	"github.com/jhoicas/Inventario-restock/pkg/config"
	"github.com/jhoicas/Inventario-restock/pkg/logger"
)

var _ repository.SnapshotRepository = (*SnapshotRepo)(nil)

// Querier subconjunto de *pgxpool.Pool / pgx.Tx usado por el repositorio.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const schemaSQL = `
CREATE TABLE IF NOT EXISTS restock_snapshots (
	id              UUID PRIMARY KEY,
	customer_id     TEXT        NOT NULL,
	period          TEXT        NOT NULL,
	generated_at    TIMESTAMPTZ NOT NULL,
	sales_available BOOLEAN     NOT NULL,
	total_low       INT         NOT NULL,
	out_of_stock    INT         NOT NULL,
	very_low        INT         NOT NULL,
	high_priority   INT         NOT NULL,
	items           JSONB       NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_restock_snapshots_customer
	ON restock_snapshots (customer_id, generated_at DESC);`

// SnapshotRepo implementación del puerto SnapshotRepository sobre PostgreSQL.
// Items se guarda como JSONB.
type SnapshotRepo struct {
	db Querier
}

// NewSnapshotRepository construye el adaptador.
func NewSnapshotRepository(db Querier) *SnapshotRepo {
	return &SnapshotRepo{db: db}
}

// EnsureSchema crea la tabla y el índice si no existen.
func (r *SnapshotRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.Exec(ctx, schemaSQL); err != nil {
		return fmt.Errorf("crear tabla restock_snapshots: %w", err)
	}
	return nil
}

// Save inserta un snapshot.
func (r *SnapshotRepo) Save(ctx context.Context, s *entity.RestockSnapshot) error {
	items, err := json.Marshal(s.Items)
	if err != nil {
		return fmt.Errorf("serializar items: %w", err)
	}
	query := `
		INSERT INTO restock_snapshots (id, customer_id, period, generated_at, sales_available,
			total_low, out_of_stock, very_low, high_priority, items)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`
	_, err = r.db.Exec(ctx, query,
		s.ID, s.CustomerID, s.Period, s.GeneratedAt, s.SalesAvailable,
		s.TotalLow, s.OutOfStock, s.VeryLow, s.HighPriority, items,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("snapshot %s ya existe: %w", s.ID, domain.ErrInvalidInput)
		}
		return fmt.Errorf("insert restock_snapshot: %w", err)
	}
	return nil
}

// ListByCustomer más recientes primero, con el total del cliente.
func (r *SnapshotRepo) ListByCustomer(ctx context.Context, customerID string, limit, offset int) ([]*entity.RestockSnapshot, int, error) {
	var total int
	if err := r.db.QueryRow(ctx,
		`SELECT COUNT(*) FROM restock_snapshots WHERE customer_id = $1`, customerID,
	).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count restock_snapshots: %w", err)
	}

	query := `
		SELECT id, customer_id, period, generated_at, sales_available,
			total_low, out_of_stock, very_low, high_priority, items
		FROM restock_snapshots
		WHERE customer_id = $1
		ORDER BY generated_at DESC
		LIMIT $2 OFFSET $3`
	rows, err := r.db.Query(ctx, query, customerID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list restock_snapshots: %w", err)
	}
	defer rows.Close()

	list := make([]*entity.RestockSnapshot, 0, limit)
	for rows.Next() {
		var (
			s   entity.RestockSnapshot
			raw []byte
		)
		if err := rows.Scan(
			&s.ID, &s.CustomerID, &s.Period, &s.GeneratedAt, &s.SalesAvailable,
			&s.TotalLow, &s.OutOfStock, &s.VeryLow, &s.HighPriority, &raw,
		); err != nil {
			return nil, 0, fmt.Errorf("scan restock_snapshot: %w", err)
		}
		if err := json.Unmarshal(raw, &s.Items); err != nil {
			return nil, 0, fmt.Errorf("items de %s: %w", s.ID, err)
		}
		list = append(list, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("rows restock_snapshots: %w", err)
	}
	return list, total, nil
}

// Open conecta el pool, crea el esquema y devuelve el repositorio junto con el cierre del pool.
func Open(ctx context.Context, cfg config.DBConfig, log *logger.Logger) (*SnapshotRepo, func(), error) {
	pool, err := NewPool(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}
	repo := NewSnapshotRepository(pool)
	if err := repo.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, nil, err
	}
	log.Info().Str("dsn", redactDSN(cfg.ConnectionString())).Msg("store de snapshots en PostgreSQL")
	return repo, pool.Close, nil
}
