package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tms/internal/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "tms", cfg.JWT.Issuer)
	assert.Equal(t, 3, cfg.Codes.MaxLength)
	assert.Equal(t, 3, cfg.Codes.MaxRetries)
	assert.Equal(t, 5*time.Second, cfg.Lookup.Timeout)
	assert.Equal(t, int64(10), cfg.S3.MaxFileSizeMB)
	assert.False(t, cfg.Log.Debug())
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("TMS_CODES_MAX_LENGTH", "4")
	t.Setenv("TMS_LOOKUP_IFSC_BASE_URL", "http://ifsc.local/")
	t.Setenv("TMS_CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")
	t.Setenv("TMS_LOG_LEVEL", "DEBUG")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 4, cfg.Codes.MaxLength)
	assert.Equal(t, "http://ifsc.local", cfg.Lookup.IFSCBaseURL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORS.AllowedOrigins)
	assert.True(t, cfg.Log.Debug())
}

func TestLoad_PortOverride(t *testing.T) {
	t.Setenv("PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Server.Port)

	t.Setenv("TMS_SERVER_PORT", ":7070")
	cfg, err = config.Load()
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Server.Port)
}

func TestLoad_RejectsNonPositiveCodeSettings(t *testing.T) {
	t.Setenv("TMS_CODES_MAX_RETRIES", "0")

	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_DSN(t *testing.T) {
	db := config.DBConfig{Host: "db", Port: 5433, User: "u", Password: "p", Name: "n", SSLMode: "require"}
	assert.Equal(t, "postgres://u:p@db:5433/n?sslmode=require", db.DSN())
}
