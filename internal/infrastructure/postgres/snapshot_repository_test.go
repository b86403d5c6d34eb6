package postgres_test

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-restock/internal/domain"
	"github.com/jhoicas/Inventario-restock/internal/domain/entity"
	"github.com/jhoicas/Inventario-restock/internal/infrastructure/postgres"
	"github.com/jhoicas/Inventario-restock/pkg/config"
)

// Requiere TEST_DATABASE_URL apuntando a una base descartable.
func testPool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL no definido")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	pool, err := postgres.NewPool(ctx, config.DBConfig{DatabaseURL: dsn})
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return pool
}

func TestSnapshotRepo_SaveYList(t *testing.T) {
	pool := testPool(t)
	ctx := context.Background()
	repo := postgres.NewSnapshotRepository(pool)
	require.NoError(t, repo.EnsureSchema(ctx))

	customer := "test-" + uuid.NewString()
	base := time.Date(2026, 10, 18, 6, 0, 0, 0, time.UTC)
	older := &entity.RestockSnapshot{
		ID: uuid.NewString(), CustomerID: customer, Period: "2026-10",
		GeneratedAt: base, SalesAvailable: true, TotalLow: 1, HighPriority: 1,
		Items: []entity.SnapshotItem{{
			ProductName: "Red Shirt", StockQty: 2,
			MonthlySales: decimal.NewFromInt(150), Velocity: decimal.NewFromInt(5), Priority: "High",
		}},
	}
	newer := &entity.RestockSnapshot{
		ID: uuid.NewString(), CustomerID: customer, Period: "2026-10",
		GeneratedAt: base.Add(24 * time.Hour), Items: []entity.SnapshotItem{},
	}
	require.NoError(t, repo.Save(ctx, older))
	require.NoError(t, repo.Save(ctx, newer))

	list, total, err := repo.ListByCustomer(ctx, customer, 10, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, total)
	require.Len(t, list, 2)
	assert.Equal(t, newer.ID, list[0].ID)
	require.Len(t, list[1].Items, 1)
	assert.True(t, decimal.NewFromInt(150).Equal(list[1].Items[0].MonthlySales))

	err = repo.Save(ctx, older)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
