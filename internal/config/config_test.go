package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("STORAGE_DRIVER", "")
	t.Setenv("ALLOW_UNVERIFIED_PASSWORD_RESET", "")

	cfg := Load()

	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTTTL)
	assert.Equal(t, StorageDriverPostgres, cfg.StorageDriver)
	assert.True(t, cfg.AllowUnverifiedPasswordReset)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SERVER_PORT", "9000")
	t.Setenv("JWT_TTL", "90m")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test ,")
	t.Setenv("ALLOW_UNVERIFIED_PASSWORD_RESET", "false")
	t.Setenv("S3_BUCKET", "avatars")
	t.Setenv("S3_ACCESS_KEY", "key")
	t.Setenv("S3_SECRET_KEY", "secret")

	cfg := Load()

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, 90*time.Minute, cfg.JWTTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowedOrigins)
	assert.False(t, cfg.AllowUnverifiedPasswordReset)
	assert.True(t, cfg.S3.Enabled())
}

func TestInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("REDIS_DB", "abc")
	t.Setenv("DEFAULT_PER_PAGE", "")

	cfg := Load()

	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 15, cfg.DefaultPerPage)
}
