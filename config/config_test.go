package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("JWT_TTL", "")
	t.Setenv("BCRYPT_COST", "")
	t.Setenv("DATASTORE_DRIVER", "")

	cfg := Load()
	assert.Equal(t, "4000", cfg.Port)
	assert.Equal(t, 8*time.Hour, cfg.JWTTTL)
	assert.Equal(t, time.Hour, cfg.ResetTokenTTL)
	assert.Equal(t, 8, cfg.BcryptCost)
	assert.False(t, cfg.UsePostgres())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("DATASTORE_DRIVER", "Postgres")
	t.Setenv("JWT_TTL", "30m")
	t.Setenv("BCRYPT_COST", "notanint")
	t.Setenv("DATASTORE_BEST_EFFORT", "true")

	cfg := Load()
	assert.True(t, cfg.UsePostgres())
	assert.Equal(t, 30*time.Minute, cfg.JWTTTL)
	assert.Equal(t, 8, cfg.BcryptCost)
	assert.True(t, cfg.DatastoreBestEffort)
}

func TestCORSOrigins(t *testing.T) {
	cfg := &Config{CORSAllowedOrigins: " http://a.test, ,http://b.test "}
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSOrigins())
}
