//go:build unit

package config_test

import (
	"testing"
	"time"

	"flight-onboard/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5000", cfg.Server.OnboardAddr())
	assert.Equal(t, ":8000", cfg.Server.FlightStatusAddr())
	assert.Equal(t, []string{"*"}, cfg.CORS.AllowOrigins)
	assert.False(t, cfg.CORS.AllowCredentials)
	assert.True(t, cfg.CORS.FlightStatusAllowCredentials)
	assert.Equal(t, 30*time.Second, cfg.Server.ShutdownTimeout)
	assert.Empty(t, cfg.Seed.File)
	assert.False(t, cfg.Telemetry.Enabled)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("ONBOARD_PORT", "5050")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("SEED_FILE", "/tmp/seed.yaml")
	t.Setenv("OTEL_ENABLED", "true")
	t.Setenv("FLIGHT_STATUS_CORS_ALLOW_CREDENTIALS", "false")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, ":5050", cfg.Server.OnboardAddr())
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowOrigins)
	assert.Equal(t, "/tmp/seed.yaml", cfg.Seed.File)
	assert.True(t, cfg.Telemetry.Enabled)
	assert.False(t, cfg.CORS.FlightStatusAllowCredentials)
}

func TestCORSConfig_WithCredentials(t *testing.T) {
	base := config.NewTestConfig().CORS

	withCreds := base.WithCredentials(true)

	assert.True(t, withCreds.AllowCredentials)
	assert.False(t, base.AllowCredentials, "receiver must not change")
	assert.Equal(t, base.AllowOrigins, withCreds.AllowOrigins)
}

func TestLoadConfig_Invalid(t *testing.T) {
	t.Setenv("SERVER_READ_TIMEOUT", "soon")

	_, err := config.LoadConfig()
	assert.Error(t, err)
}
