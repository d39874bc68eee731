package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var configKeys = []string{
	"DATABASE_URL", "DB_HOST", "DB_PORT", "DB_USER", "DB_PASSWORD", "DB_NAME", "DB_SSLMODE",
	"HOST", "PORT", "HTTP_READ_TIMEOUT", "HTTP_WRITE_TIMEOUT", "HTTP_IDLE_TIMEOUT", "SHUTDOWN_TIMEOUT",
	"CORS_ALLOWED_ORIGINS", "LOG_LEVEL", "LOG_FORMAT", "MIGRATE_ON_START", "SEED_DEMO_DATA",
}

// clearEnv blanks every setting so the host environment cannot leak in.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range configKeys {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://fyyur@localhost:5432/fyyur?sslmode=disable")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://fyyur@localhost:5432/fyyur?sslmode=disable", cfg.Database.URL)
	assert.Equal(t, "0.0.0.0:5000", cfg.Server.Addr())
	assert.Equal(t, 15*time.Second, cfg.Server.ReadTimeout)
	assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, []string{"http://localhost:5000"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "json", cfg.Logging.Format)
	assert.False(t, cfg.Startup.MigrateOnStart)
	assert.False(t, cfg.Startup.SeedDemoData)
}

func TestLoadBuildsURLFromParts(t *testing.T) {
	clearEnv(t)
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_USER", "fyyur")
	t.Setenv("DB_PASSWORD", "p@ss word")
	t.Setenv("DB_NAME", "fyyur")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "postgres://fyyur:p%40ss%20word@db:5432/fyyur?sslmode=disable", cfg.Database.URL)
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("DATABASE_URL", "postgres://localhost/fyyur")
	t.Setenv("HOST", "127.0.0.1")
	t.Setenv("PORT", "8080")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.example, ,http://b.example")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("MIGRATE_ON_START", "true")
	t.Setenv("SEED_DEMO_DATA", "1")
	t.Setenv("SHUTDOWN_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:8080", cfg.Server.Addr())
	assert.Equal(t, []string{"http://a.example", "http://b.example"}, cfg.CORS.AllowedOrigins)
	assert.Equal(t, "debug", cfg.Logging.Level)
	assert.True(t, cfg.Startup.MigrateOnStart)
	assert.True(t, cfg.Startup.SeedDemoData)
	assert.Equal(t, 3*time.Second, cfg.Server.ShutdownTimeout)
}

func TestLoadReportsEveryProblem(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "70000")
	t.Setenv("LOG_LEVEL", "loud")
	t.Setenv("MIGRATE_ON_START", "maybe")
	t.Setenv("HTTP_READ_TIMEOUT", "soon")

	_, err := Load()
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "DATABASE_URL is required")
	assert.Contains(t, msg, "PORT must be between 1 and 65535")
	assert.Contains(t, msg, "LOG_LEVEL must be one of")
	assert.Contains(t, msg, "MIGRATE_ON_START must be true or false")
	assert.Contains(t, msg, "HTTP_READ_TIMEOUT must be a positive duration")
}

func TestLoadEnvFilesDoesNotOverride(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")

	path := filepath.Join(t.TempDir(), "local.env")
	require.NoError(t, os.WriteFile(path, []byte("PORT=7000\nLOG_FORMAT=text\n"), 0o600))

	// LOG_FORMAT is blank rather than unset, so unset it for godotenv to fill.
	require.NoError(t, os.Unsetenv("LOG_FORMAT"))
	LoadEnvFiles(path, filepath.Join(t.TempDir(), "missing.env"))
	t.Cleanup(func() { os.Unsetenv("LOG_FORMAT") })

	assert.Equal(t, "9000", os.Getenv("PORT"))
	assert.Equal(t, "text", os.Getenv("LOG_FORMAT"))
}
