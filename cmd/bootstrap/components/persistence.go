package components

import (
	"bookmyvenue/internal/infra/readstore"
	"bookmyvenue/internal/infra/repository"
	"bookmyvenue/internal/infra/sqlc"
	"bookmyvenue/internal/infra/uow"
	"bookmyvenue/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

// PersistenceModule expects a *pgxpool.Pool from DBModule (or the e2e harness).
var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		// one stateless query set, exposed under every narrow interface that consumes it
		fx.Annotate(
			sqlc.New,
			fx.As(
				fx.Self(),
				new(readstore.BookingReadQueries),
				new(readstore.CatalogReadQueries),
				new(readstore.UserReadQueries),
				new(repository.NotificationWriteQueries),
			),
		),
		poolAsDBTX,
	),
	fx.Provide(
		fx.Annotate(readstore.NewBookingReadStore, fx.As(new(queries.BookingReadStore))),
		fx.Annotate(readstore.NewCatalogReadStore, fx.As(new(queries.CatalogReadStore))),
		fx.Annotate(readstore.NewUserReadStore, fx.As(new(queries.UserReadStore))),
	),
	fx.Provide(
		uow.NewPostgresUoW,
		repository.NewNotificationRepository,
	),
)

func poolAsDBTX(pool *pgxpool.Pool) sqlc.DBTX { return pool }
