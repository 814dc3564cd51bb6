//go:build unit

package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequired(t *testing.T) {
	t.Helper()
	t.Setenv("PORT", "8080")
	t.Setenv("DB_USER", "bmv")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_NAME", "bookmyvenue")
	t.Setenv("JWT_SECRET", "signing-key")
}

func TestLoadConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		setRequired(t)

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Server.Port)
		assert.Equal(t, 10*time.Second, cfg.Server.ShutdownTimeout)
		assert.Equal(t, "localhost", cfg.DB.Host)
		assert.Equal(t, int32(20), cfg.DB.MaxConns)
		assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORS.AllowOrigins)
		assert.Equal(t, "Lax", cfg.Cookie.SameSite)
		assert.False(t, cfg.Redis.Enabled())
		assert.False(t, cfg.AMQP.Enabled())
		assert.False(t, cfg.Booking.RequirePaymentForConfirm)
	})

	t.Run("overrides", func(t *testing.T) {
		setRequired(t)
		t.Setenv("REDIS_URL", "redis://cache:6379/0")
		t.Setenv("REDIS_VENUE_TTL", "30s")
		t.Setenv("AMQP_URL", "amqp://guest:guest@mq:5672/")
		t.Setenv("BOOKING_REQUIRE_PAYMENT_FOR_CONFIRM", "true")

		cfg, err := LoadConfig()
		require.NoError(t, err)

		assert.True(t, cfg.Redis.Enabled())
		assert.Equal(t, 30*time.Second, cfg.Redis.VenueTTL)
		assert.True(t, cfg.AMQP.Enabled())
		assert.Equal(t, "bookmyvenue.events", cfg.AMQP.Exchange)
		assert.True(t, cfg.Booking.RequirePaymentForConfirm)
	})

	t.Run("missing secret", func(t *testing.T) {
		setRequired(t)
		t.Setenv("JWT_SECRET", "")
		require.NoError(t, os.Unsetenv("JWT_SECRET"))

		_, err := LoadConfig()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "JWT_SECRET")
	})
}

func TestJWTConfig_TokenDuration(t *testing.T) {
	c := JWTConfig{Duration: "90m"}
	d, err := c.TokenDuration()
	require.NoError(t, err)
	assert.Equal(t, 90*time.Minute, d)

	c.Duration = "a day"
	_, err = c.TokenDuration()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_DURATION")
}

func TestDBConfig_BuildDSN(t *testing.T) {
	c := DBConfig{
		Host: "db", Port: "5432", User: "u", Password: "p",
		DBName: "bmv", SSLMode: "require", TimeZone: "UTC",
	}
	assert.Equal(t, "postgres://u:p@db:5432/bmv?sslmode=require&timezone=UTC", c.BuildDSN())
}
