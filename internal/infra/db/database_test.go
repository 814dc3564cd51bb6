//go:build unit

package db

import (
	"testing"
	"time"

	"bookmyvenue/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoolConfig(t *testing.T) {
	base := config.DBConfig{
		Host:     "db.internal",
		Port:     "6543",
		User:     "bmv",
		Password: "secret",
		DBName:   "bookmyvenue",
		SSLMode:  "disable",
		TimeZone: "Asia/Kolkata",
	}

	t.Run("explicit max conns", func(t *testing.T) {
		cfg := base
		cfg.MaxConns = 7

		poolCfg, err := poolConfig(cfg)
		require.NoError(t, err)
		assert.Equal(t, int32(7), poolCfg.MaxConns)
		assert.Equal(t, "db.internal", poolCfg.ConnConfig.Host)
		assert.Equal(t, uint16(6543), poolCfg.ConnConfig.Port)
		assert.Equal(t, "bookmyvenue", poolCfg.ConnConfig.Database)
		assert.Equal(t, "Asia/Kolkata", poolCfg.ConnConfig.RuntimeParams["timezone"])
		assert.Equal(t, time.Hour, poolCfg.MaxConnLifetime)
		assert.Equal(t, 15*time.Minute, poolCfg.MaxConnIdleTime)
	})

	t.Run("zero max conns keeps the driver default", func(t *testing.T) {
		poolCfg, err := poolConfig(base)
		require.NoError(t, err)
		assert.Positive(t, poolCfg.MaxConns)
	})

	t.Run("unparseable port", func(t *testing.T) {
		cfg := base
		cfg.Port = "not-a-port"

		_, err := poolConfig(cfg)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse database config")
	})
}
