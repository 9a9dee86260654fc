package client

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.True(t, cfg.BreakerEnabled)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("OPENSHOP_BASE_URL", "https://shop.example.com")
	t.Setenv("OPENSHOP_HTTP_TIMEOUT", "10s")
	t.Setenv("OPENSHOP_HTTP_MAX_RETRIES", "1")
	t.Setenv("OPENSHOP_BREAKER_ENABLED", "false")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "https://shop.example.com", cfg.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Timeout)
	assert.Equal(t, 1, cfg.MaxRetries)
	assert.False(t, cfg.BreakerEnabled)
}

func TestLoadConfig_RejectsBadBreakerRatio(t *testing.T) {
	t.Setenv("OPENSHOP_BREAKER_FAILURE_RATIO", "1.5")

	_, err := LoadConfig()
	assert.Error(t, err)
}

func TestLoadConfig_RejectsNegativeRetries(t *testing.T) {
	t.Setenv("OPENSHOP_HTTP_MAX_RETRIES", "-1")

	_, err := LoadConfig()
	assert.Error(t, err)
}
