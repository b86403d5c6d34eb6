package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Inventario-restock/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "0.0.0.0:8090", cfg.HTTP.Addr())
	assert.Equal(t, 15*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "memory", cfg.Snapshot.Store)
	assert.False(t, cfg.Digest.Enabled())
	assert.False(t, cfg.Digest.RunOnStart)
	assert.Equal(t, "inventory-pro", cfg.JWT.Issuer)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("HTTP_PORT", "9000")
	t.Setenv("BACKEND_BASE_URL", "http://inventory:8080")
	t.Setenv("BACKEND_TIMEOUT_SECONDS", "3")
	t.Setenv("BACKEND_SERVICE_TOKEN", "svc")
	t.Setenv("SNAPSHOT_STORE", "Postgres")
	t.Setenv("DIGEST_CRON", "0 7 * * *")
	t.Setenv("DIGEST_CUSTOMERS", " 1, 2 ,,3")
	t.Setenv("DIGEST_RUN_ON_START", "true")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.HTTP.Port)
	assert.Equal(t, "http://inventory:8080", cfg.Backend.BaseURL)
	assert.Equal(t, 3*time.Second, cfg.Backend.Timeout)
	assert.Equal(t, "postgres", cfg.Snapshot.Store)
	assert.Equal(t, []string{"1", "2", "3"}, cfg.Digest.Customers)
	assert.True(t, cfg.Digest.Enabled())
	assert.True(t, cfg.Digest.RunOnStart)
}

func TestLoad_SinSecretFalla(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestValidate_DigestSinTokenDeServicio(t *testing.T) {
	cfg := &config.Config{
		JWT:      config.JWTConfig{Secret: "x"},
		Backend:  config.BackendConfig{BaseURL: "http://b"},
		Snapshot: config.SnapshotConfig{Store: "memory"},
		Digest:   config.DigestConfig{Cron: "@daily", Customers: []string{"1"}},
	}
	assert.Error(t, cfg.Validate())

	cfg.Backend.ServiceToken = "svc"
	assert.NoError(t, cfg.Validate())
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w/rd", DBName: "inv", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw%2Frd@db:5432/inv?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x"
	assert.Equal(t, "postgres://x", c.ConnectionString())
}
