package common

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv(EnvKeyIOTApiBaseURL, "http://localhost:8080/")
	t.Setenv(EnvKeyIOTStreamURL, "ws://localhost:8081")
	t.Setenv(EnvKeyIOTLedgerStore, "")
	t.Setenv(EnvKeyIOTWarningThreshold, "")
	t.Setenv(EnvKeyIOTRefreshInterval, "")
	t.Setenv(EnvKeyIOTRequestTimeout, "")
	t.Setenv(EnvKeyIOTDefaultRate, "")
	t.Setenv(EnvKeyIOTDefaultBurst, "")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, LedgerStoreDB, cfg.LedgerStore)
	assert.Equal(t, DefaultWarningThreshold, cfg.WarningThreshold)
	assert.Equal(t, time.Minute, cfg.RefreshInterval)
	assert.Equal(t, 15*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 20, cfg.DefaultBurst)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv(EnvKeyIOTApiBaseURL, "http://localhost:8080/")
	t.Setenv(EnvKeyIOTStreamURL, "ws://localhost:8081")

	{
		t.Setenv(EnvKeyIOTLedgerStore, "redis")
		_, err := LoadConfig()
		assert.Error(t, err)
		t.Setenv(EnvKeyIOTLedgerStore, "file")
	}

	{
		t.Setenv(EnvKeyIOTWarningThreshold, "high")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, EnvKeyIOTWarningThreshold)
		t.Setenv(EnvKeyIOTWarningThreshold, "900")
	}

	{
		t.Setenv(EnvKeyIOTRefreshInterval, "often")
		_, err := LoadConfig()
		assert.ErrorContains(t, err, EnvKeyIOTRefreshInterval)
		t.Setenv(EnvKeyIOTRefreshInterval, "30s")
	}

	cfg, err := LoadConfig()
	require.NoError(t, err)
	assert.Equal(t, LedgerStoreFile, cfg.LedgerStore)
	assert.Equal(t, 900.0, cfg.WarningThreshold)
	assert.Equal(t, 30*time.Second, cfg.RefreshInterval)
}

func TestLoadConfig_MissingURLs(t *testing.T) {
	t.Setenv(EnvKeyIOTApiBaseURL, "")
	t.Setenv(EnvKeyIOTStreamURL, "ws://localhost:8081")

	_, err := LoadConfig()
	assert.ErrorContains(t, err, EnvKeyIOTApiBaseURL)
}
