package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0644))
	return path
}

func TestLoad_FromEnvFile(t *testing.T) {
	path := writeEnvFile(t, `GEMINI_API_KEY=file-key
GEMINI_MODEL=custom-model
GEMINI_ENDPOINT=https://example.com
GEMINI_TIMEOUT_SECONDS=30
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "file-key", cfg.APIKey)
	assert.Equal(t, "custom-model", cfg.Model)
	assert.Equal(t, "https://example.com", cfg.Endpoint)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.NoError(t, cfg.RequireAPIKey())
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such.env"))
	require.NoError(t, err)

	assert.Empty(t, cfg.APIKey)
	assert.Equal(t, "gemini-3-pro-image-preview", cfg.Model)
	assert.Equal(t, "https://generativelanguage.googleapis.com", cfg.Endpoint)
	assert.Equal(t, 120*time.Second, cfg.RequestTimeout)
}

func TestLoad_EnvironmentOverridesFile(t *testing.T) {
	path := writeEnvFile(t, "GEMINI_API_KEY=file-key\n")
	t.Setenv("GEMINI_API_KEY", "env-key")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.APIKey)
}

func TestLoad_EnvironmentOnly(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "env-only-key")
	t.Setenv("GEMINI_TIMEOUT_SECONDS", "45")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "env-only-key", cfg.APIKey)
	assert.Equal(t, 45*time.Second, cfg.RequestTimeout)
}

func TestLoad_MalformedFile(t *testing.T) {
	path := writeEnvFile(t, "GEMINI_API_KEY no equals sign here\n")

	_, err := Load(path)
	assert.Error(t, err)
}

func TestRequireAPIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.RequireAPIKey()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "GEMINI_API_KEY")

	cfg.APIKey = "k"
	assert.NoError(t, cfg.RequireAPIKey())
}
