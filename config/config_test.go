package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// Env-only deployment: no config file ships, so every value must arrive
// through environment variables.
func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9999")
	t.Setenv("DATABASE_URL", "mongodb://example:27017")
	t.Setenv("DATABASE_NAME", "bettermann_test")
	t.Setenv("ENV", "production")
	t.Setenv("MAX_REQUESTS_PER_MIN", "7")

	LoadConfig()

	assert.Equal(t, "9999", AppConfig.AppPort)
	assert.Equal(t, "mongodb://example:27017", AppConfig.DatabaseURL)
	assert.Equal(t, "bettermann_test", AppConfig.DatabaseName)
	assert.Equal(t, 7, AppConfig.MaxRequestsPerMin)
	assert.True(t, IsProduction())
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("APP_PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("DATABASE_NAME", "")
	t.Setenv("ENV", "")
	t.Setenv("MAX_REQUESTS_PER_MIN", "")

	LoadConfig()

	assert.Equal(t, "8080", AppConfig.AppPort)
	assert.Empty(t, AppConfig.DatabaseURL)
	assert.Empty(t, AppConfig.DatabaseName)
	assert.Equal(t, 100, AppConfig.MaxRequestsPerMin)
	assert.False(t, IsProduction())
}
