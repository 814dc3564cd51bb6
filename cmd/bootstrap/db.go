package bootstrap

import (
	"log/slog"

	"bookmyvenue/internal/infra/db"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/metrics"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(
		NewDB,
	),
)

// NewDB opens the pool, exports its gauges and closes it when the app stops.
func NewDB(lc fx.Lifecycle, cfg config.Config, m *metrics.Metrics, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, cleanup, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}
	m.WatchPool(func() metrics.PoolStats { return pool.Stat() })
	logger.Info("Database connected",
		"host", cfg.DB.Host,
		"database", cfg.DB.DBName,
		"max_conns", pool.Config().MaxConns)

	lc.Append(fx.StopHook(cleanup))
	return pool, nil
}
