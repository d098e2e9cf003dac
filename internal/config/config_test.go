package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/segyhp/affordability-engine/internal/calculator"
)

func TestLoadFrom_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost/affordability?sslmode=disable")

	cfg, err := LoadFrom()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:8080", cfg.Address())
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 10, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.GetConnMaxLifetime())
	assert.Equal(t, 15*time.Second, cfg.GetReadTimeout())
	assert.Equal(t, 15*time.Second, cfg.GetWriteTimeout())
	assert.True(t, cfg.Redis.Enabled)
	assert.Equal(t, "localhost:6379", cfg.RedisAddress())
	assert.Equal(t, time.Hour, cfg.GetCacheTTL())
	assert.Equal(t, "0 0 3 * * *", cfg.Scheduler.PurgeSchedule)
	assert.Equal(t, 720*time.Hour, cfg.GetRetention())
	assert.Equal(t, "Australia/Sydney", cfg.GetLocation().String())
	assert.Equal(t, 60, cfg.RateLimit.Requests)
	assert.Equal(t, time.Minute, cfg.GetRateLimitWindow())
	assert.Equal(t, 5*time.Second, cfg.GetHealthTimeout())
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())

	engine := cfg.EngineConfig()
	assert.Equal(t, int64(100000), engine.MinPrice)
	assert.Equal(t, int64(10000000), engine.MaxPrice)
	assert.Equal(t, 50, engine.MaxIterations)
	assert.Equal(t, int64(1000), engine.Tolerance)
	assert.Equal(t, "0.1", engine.LMIStep.String())
	assert.Equal(t, calculator.StrategyOptimized, engine.Strategy)
}

func TestLoadFrom_EnvironmentOverrides(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_URL", "file:affordability.db")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "1")
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("SEARCH_STRATEGY", "single-pass")
	t.Setenv("SEARCH_TOLERANCE", "500")
	t.Setenv("CACHE_TTL", "10m")
	t.Setenv("REDIS_ENABLED", "false")

	cfg, err := LoadFrom()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, "0.0.0.0:9090", cfg.Address())
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, calculator.StrategySinglePass, cfg.EngineConfig().Strategy)
	assert.Equal(t, int64(500), cfg.EngineConfig().Tolerance)
	assert.Equal(t, 10*time.Minute, cfg.GetCacheTTL())
	assert.False(t, cfg.Redis.Enabled)
}

func TestLoadFrom_EnvFile(t *testing.T) {
	dir := t.TempDir()
	envFile := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("DATABASE_URL=postgres://db/affordability\nRATE_LIMIT_REQUESTS=5\n"), 0o600))

	// godotenv sets process variables; clear them when the test ends.
	t.Setenv("DATABASE_URL", "")
	t.Setenv("RATE_LIMIT_REQUESTS", "")
	os.Unsetenv("DATABASE_URL")
	os.Unsetenv("RATE_LIMIT_REQUESTS")

	cfg, err := LoadFrom(filepath.Join(dir, "missing.env"), envFile)
	require.NoError(t, err)

	assert.Equal(t, "postgres://db/affordability", cfg.Database.URL)
	assert.Equal(t, 5, cfg.RateLimit.Requests)
}

func TestLoadLocal(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "postgres")
	t.Setenv("DATABASE_URL", "postgres://ignored")
	t.Setenv("SEARCH_STRATEGY", "single-pass")

	path := filepath.Join(t.TempDir(), "history.db")
	cfg, err := LoadLocal(path)
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, path, cfg.Database.URL)
	assert.Equal(t, 1, cfg.Database.MaxOpenConns)
	assert.Equal(t, calculator.StrategySinglePass, cfg.EngineConfig().Strategy)
}

func TestLoadFrom_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{name: "missing database url", env: map[string]string{}},
		{name: "unknown driver", env: map[string]string{"DATABASE_URL": "x", "DATABASE_DRIVER": "mysql"}},
		{name: "bad duration", env: map[string]string{"DATABASE_URL": "x", "CACHE_TTL": "soon"}},
		{name: "bad timezone", env: map[string]string{"DATABASE_URL": "x", "SCHEDULER_TIMEZONE": "Mars/Olympus"}},
		{name: "bad lmi step", env: map[string]string{"DATABASE_URL": "x", "SEARCH_LMI_STEP": "tenth"}},
		{name: "bad strategy", env: map[string]string{"DATABASE_URL": "x", "SEARCH_STRATEGY": "greedy"}},
		{name: "inverted search range", env: map[string]string{"DATABASE_URL": "x", "SEARCH_MAX_PRICE": "1000"}},
		{name: "zero rate limit", env: map[string]string{"DATABASE_URL": "x", "RATE_LIMIT_REQUESTS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("DATABASE_URL", "")
			for key, value := range tt.env {
				t.Setenv(key, value)
			}

			_, err := LoadFrom()
			assert.Error(t, err)
		})
	}
}
