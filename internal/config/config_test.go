package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PMD_API_BASE_URL", "https://api.example.test/api")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, "https://api.example.test/api", cfg.APIBaseURL)
	require.Equal(t, 30*time.Second, cfg.APITimeout)
	require.Equal(t, "8085", cfg.AppPort)
	require.Equal(t, "*", cfg.AppUrl)
	require.Equal(t, DefaultAppName, cfg.AppName)
}

func TestLoadConfigMissingBaseURL(t *testing.T) {
	t.Setenv("PMD_API_BASE_URL", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfigRejectsRelativeURL(t *testing.T) {
	t.Setenv("PMD_API_BASE_URL", "/api")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "not an absolute URL")
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PMD_API_BASE_URL", "http://localhost:8000/api")
	t.Setenv("PMD_API_TIMEOUT", "5s")
	t.Setenv("PMD_APP_PORT", "9000")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.Equal(t, 5*time.Second, cfg.APITimeout)
	require.Equal(t, "9000", cfg.AppPort)
}
