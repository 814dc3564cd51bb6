package bootstrap

import (
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/jwt"

	"go.uber.org/fx"
)

var JWTModule = fx.Module("jwt",
	fx.Provide(func(cfg config.Config, clk clock.Clock) (*jwt.Service, error) {
		ttl, err := cfg.JWT.TokenDuration()
		if err != nil {
			return nil, err
		}
		return jwt.NewService(cfg.JWT.Secret, ttl, clk), nil
	}),
)
