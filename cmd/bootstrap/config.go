package bootstrap

import (
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/errs"

	"go.uber.org/fx"
)

var ConfigModule = fx.Module("config",
	fx.Provide(
		NewConfig,
	),
)

// NewConfig loads the environment and rejects values that would only fail on first use.
func NewConfig() (config.Config, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return config.Config{}, err
	}
	if _, err := cfg.JWT.TokenDuration(); err != nil {
		return config.Config{}, err
	}
	if cfg.AMQP.Enabled() && cfg.AMQP.Exchange == "" {
		return config.Config{}, errs.New("AMQP_EXCHANGE is required when AMQP_URL is set")
	}
	return cfg, nil
}
