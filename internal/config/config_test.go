package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "jwt-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.Waitlist.ClaimTTL)
	assert.Equal(t, time.Minute, cfg.Waitlist.SweepInterval)
	assert.True(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 10, cfg.RateLimit.Capacity)
	assert.Equal(t, 5, cfg.RateLimit.RefillTokens)
	assert.Equal(t, time.Minute, cfg.RateLimit.RefillInterval)
	assert.Equal(t, 2*time.Minute, cfg.RateLimit.TTL)
}

func TestLoadParsesRateLimitOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_ENABLED", "false")
	t.Setenv("RATE_LIMIT_CAPACITY", "25")
	t.Setenv("RATE_LIMIT_REFILL_TOKENS", "7")
	t.Setenv("RATE_LIMIT_REFILL_INTERVAL", "30s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.False(t, cfg.RateLimit.Enabled)
	assert.Equal(t, 25, cfg.RateLimit.Capacity)
	assert.Equal(t, 7, cfg.RateLimit.RefillTokens)
	assert.Equal(t, 30*time.Second, cfg.RateLimit.RefillInterval)
	assert.Equal(t, time.Minute, cfg.RateLimit.TTL)
}

func TestLoadRejectsBadRateLimitValues(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("RATE_LIMIT_CAPACITY", "many")

	_, err := Load()
	assert.ErrorContains(t, err, "RATE_LIMIT_CAPACITY")
}

func TestLoadRequiresSecrets(t *testing.T) {
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("JWT_SECRET_KEY", "")

	_, err := Load()
	assert.ErrorContains(t, err, "JWT_SECRET_KEY")
}
