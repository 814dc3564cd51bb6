package bootstrap

import (
	"bookmyvenue/cmd/bootstrap/components"

	"go.uber.org/fx"
)

// Module is the full production graph. Callers supply the *gin.Engine.
var Module = fx.Options(
	ConfigModule,
	LoggerModule,
	DBModule,
	JWTModule,
	RedisModule,
	WorkerModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
