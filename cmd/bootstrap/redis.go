package bootstrap

import (
	"context"
	"log/slog"

	"bookmyvenue/internal/infra/cache"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/errs"
	"bookmyvenue/internal/usecase/queries"

	"github.com/redis/go-redis/v9"
	"go.uber.org/fx"
)

var RedisModule = fx.Module("redis",
	fx.Provide(
		NewVenueDetailCache,
	),
)

// NewVenueDetailCache falls back to a no-op cache when REDIS_URL is unset.
func NewVenueDetailCache(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (queries.VenueDetailCache, error) {
	if !cfg.Redis.Enabled() {
		logger.Info("Redis disabled, venue detail cache is off")
		return cache.NopCache{}, nil
	}

	opts, err := redis.ParseURL(cfg.Redis.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid REDIS_URL")
	}
	client := redis.NewClient(opts)

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := client.Ping(ctx).Err(); err != nil {
				return errs.Wrap(err, "ping redis")
			}
			return nil
		},
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	return cache.NewVenueCache(client, cfg.Redis.VenueTTL), nil
}
