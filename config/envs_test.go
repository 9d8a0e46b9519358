package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func setRequired(t *testing.T) {
	t.Helper()
	for key, value := range map[string]string{
		"DB_HOST":    "localhost",
		"DB_PORT":    "27017",
		"DB_USER":    "maze",
		"DB_PASS":    "secret",
		"DB_NAME":    "mazegen",
		"REDIS_ADDR": "localhost:6379",
		"JWT_SECRET": "jwt-secret",
		"JWT_ISSUER": "mazegen",
		"HOST_IP":    "0.0.0.0",
		"REST_PORT":  "8080",
	} {
		t.Setenv(key, value)
	}
}

func TestLoadDefaults(t *testing.T) {
	setRequired(t)

	cfg := Load()
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 27017, cfg.DBPort)
	assert.Equal(t, 8080, cfg.RESTPort)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, 3600, cfg.CacheTTLSeconds)
	assert.Equal(t, 720, cfg.ReplayTokenTTLHours)
	assert.Equal(t, 16, cfg.MaxBatch)
	assert.Equal(t, cfg, Envs)
}

func TestLoadOverrides(t *testing.T) {
	setRequired(t)
	t.Setenv("GIN_MODE", "debug")
	t.Setenv("CACHE_TTL_SECONDS", "60")
	t.Setenv("MAX_BATCH", "4")
	t.Setenv("REDIS_PASSWORD", "hunter2")

	cfg := Load()
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, 60, cfg.CacheTTLSeconds)
	assert.Equal(t, 4, cfg.MaxBatch)
	assert.Equal(t, "hunter2", cfg.RedisPassword)
}
