package components

import (
	"bookmyvenue/internal/domain/booking"
	"bookmyvenue/internal/pkg/clock"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/metrics"
	"bookmyvenue/internal/usecase"
	"bookmyvenue/internal/usecase/commands"
	"bookmyvenue/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	fx.Provide(
		clock.NewRealClock,
		metrics.New,
		fx.Annotate(booking.NewCatalogPriceCalculator, fx.As(new(booking.PriceCalculator))),
		newBookingServices,
		usecase.NewTokenValidator,
	),
	fx.Provide(
		queries.NewUserQueries,
		queries.NewBookingQueries,
		queries.NewCatalogQueries,
	),
	fx.Provide(
		commands.NewAuthCommands,
		commands.NewBookingUseCase,
		commands.NewCatalogUseCase,
	),
)

func newBookingServices(clk clock.Clock, calc booking.PriceCalculator, cfg config.Config) *booking.Services {
	return &booking.Services{
		Clock:           clk,
		PriceCalculator: calc,
		Policy:          booking.Policy{RequirePaymentForConfirm: cfg.Booking.RequirePaymentForConfirm},
	}
}
