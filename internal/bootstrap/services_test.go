package bootstrap

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/workforce-hrms/admin-ui/config"
	"github.com/workforce-hrms/admin-ui/internal/adapters/memory"
)

func testAppConfig() config.AppConfig {
	cfg := config.AppConfig{}
	cfg.Backend.BaseURL = "http://localhost:9090"
	cfg.Session.RedisAddr = "" // force in-memory sessions
	cfg.Sanitize()
	return cfg
}

func TestInitAdapters_FallsBackToMemoryWithoutRedis(t *testing.T) {
	adapters := InitAdapters(context.Background(), testAppConfig(), slog.Default())
	t.Cleanup(adapters.Close)

	require.NotNil(t, adapters.Backend)
	assert.Nil(t, adapters.RedisClient)
	assert.IsType(t, &memory.SessionStore{}, adapters.Sessions)
}

func TestInitServices_WiresEverything(t *testing.T) {
	cfg := testAppConfig()
	adapters := InitAdapters(context.Background(), cfg, slog.Default())
	t.Cleanup(adapters.Close)

	services := InitServices(cfg, adapters, slog.Default())

	assert.NotNil(t, services.Auth)
	assert.NotNil(t, services.Employees)
	assert.NotNil(t, services.Departments)
	assert.NotNil(t, services.Leaves)
	assert.NotNil(t, services.Payroll)
	assert.NotNil(t, services.Reports)
	assert.NotNil(t, services.Dashboard)
	assert.NotNil(t, services.Filter)
}

func TestParseLogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, parseLogLevel("debug"))
	assert.Equal(t, slog.LevelWarn, parseLogLevel("WARN"))
	assert.Equal(t, slog.LevelError, parseLogLevel("error"))
	assert.Equal(t, slog.LevelInfo, parseLogLevel("anything else"))
}
