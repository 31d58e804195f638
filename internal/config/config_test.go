package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("REDIS_URL", "")
	t.Setenv("TELEGRAM_API_TOKEN", "")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Empty(t, cfg.LogLevel)
	assert.Equal(t, 10, cfg.QuestionsPerPage)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, 15*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, 20, cfg.DB.MaxConnections)
	assert.True(t, cfg.DB.Migrate)
	assert.False(t, cfg.DB.Enabled())
	assert.Equal(t, 10*time.Minute, cfg.Redis.TTL)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://localhost:5432/trivia")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("APP_ENV", "production")
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.True(t, cfg.DB.Enabled())
	assert.Equal(t, "postgres://localhost:5432/trivia", cfg.DB.URL)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Redis.URL)
	assert.Equal(t, "token", cfg.TelegramAPIToken)
}

func TestLoad_File(t *testing.T) {
	t.Setenv("DATABASE_URL", "")

	dir := t.TempDir()
	data := []byte("questions_per_page: 5\ndatabase:\n  migrate: false\nhttp:\n  read_timeout: 3s\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), data, 0o600))

	cfg, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.QuestionsPerPage)
	assert.False(t, cfg.DB.Migrate)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_InvalidPageSize(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("questions_per_page: 0\n"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
}
