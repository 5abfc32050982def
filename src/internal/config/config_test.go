package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"BANCO_CONFIG", "BANCO_API_URL", "BANCO_HTTP_TIMEOUT", "BANCO_CHANNEL_ID",
		"BANCO_CHANNEL_KEY", "BANCO_STUB_ADDR", "BANCO_LOG_LEVEL",
	} {
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", cfg.APIBaseURL)
	assert.Equal(t, time.Duration(0), cfg.HTTPTimeout)
	assert.Equal(t, ":8080", cfg.StubAddr)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.HasChannelCredentials())
}

func TestLoadFromEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_API_URL", "https://banco.example.com/api/")
	t.Setenv("BANCO_HTTP_TIMEOUT", "5s")
	t.Setenv("BANCO_CHANNEL_ID", " portal ")
	t.Setenv("BANCO_CHANNEL_KEY", "secret")
	t.Setenv("BANCO_LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "https://banco.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 5*time.Second, cfg.HTTPTimeout)
	assert.Equal(t, "portal", cfg.ChannelID)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.True(t, cfg.HasChannelCredentials())
}

func TestLoadFromFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "banco.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api_url: http://10.0.0.5:9000/api\nstub_addr: \":9000\"\n"), 0o600))
	t.Setenv("BANCO_CONFIG", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "http://10.0.0.5:9000/api", cfg.APIBaseURL)
	assert.Equal(t, ":9000", cfg.StubAddr)
}

func TestLoadRejectsBadURL(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_API_URL", "ftp://banco.example.com")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http or https")
}

func TestLoadMissingConfigFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("BANCO_CONFIG", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
}

func TestNormalizeBaseURL(t *testing.T) {
	got, err := NormalizeBaseURL(" http://127.0.0.1:8080/api// ")
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:8080/api", got)

	got, err = NormalizeBaseURL("")
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/api", got)

	_, err = NormalizeBaseURL("http://")
	require.Error(t, err)
}
