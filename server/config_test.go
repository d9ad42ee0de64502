package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ListenAddr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORS.AllowOrigins)
	assert.True(t, cfg.CORS.AllowCredentials)
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, `
listen_addr: ":9100"
database_url: "postgres://localhost/pipelines"
cors:
  allow_origins:
    - "https://builder.example.com"
  allow_credentials: false
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, ":9100", cfg.ListenAddr)
	assert.Equal(t, "postgres://localhost/pipelines", cfg.DatabaseURL)
	assert.Equal(t, []string{"https://builder.example.com"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
}

func TestLoadConfigExpandsEnv(t *testing.T) {
	t.Setenv("PIPELINE_PORT", "7070")
	path := writeConfig(t, "listen_addr: \":${PIPELINE_PORT}\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.ListenAddr)
}

func TestLoadConfigDatabaseURLEnvWins(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://env/db")
	path := writeConfig(t, "database_url: \"postgres://file/db\"\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "postgres://env/db", cfg.DatabaseURL)
}

func TestLoadConfigRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, "listen_adr: \":9999\"\n")

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/config.yaml")
	assert.Error(t, err)
}
