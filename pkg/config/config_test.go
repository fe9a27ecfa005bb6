package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/triple000-it/schiedam/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STORE_BACKEND", "")
	t.Setenv("CART_BACKEND", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "schiedam-cart", cfg.Cart.Key)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, "https://via.placeholder.com", cfg.Placeholder.BaseURL)
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STORE_BACKEND", "MEMORY")
	t.Setenv("STORE_SEED_DEMO", "true")
	t.Setenv("CART_BACKEND", "redis")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_AUTO_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.BackendMemory, cfg.Store.Backend)
	assert.True(t, cfg.Store.SeedDemo)
	assert.Equal(t, config.CartRedis, cfg.Cart.Backend)
	assert.Equal(t, 3, cfg.Redis.DB)
	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.False(t, cfg.DB.AutoMigrate)
}

func TestLoad_RechazaBackendDesconocido(t *testing.T) {
	t.Setenv("STORE_BACKEND", "mongo")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSNEscapaPassword(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss/w", DBName: "schiedam", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%2Fw@db:5432/schiedam?sslmode=disable", c.DSN())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
