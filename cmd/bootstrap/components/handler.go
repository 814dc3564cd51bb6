package components

import (
	"bookmyvenue/internal/handler"
	"bookmyvenue/internal/handler/api"
	"bookmyvenue/internal/handler/middleware"

	"go.uber.org/fx"
)

// HandlerModule registers every route on the *gin.Engine supplied by the caller.
var HandlerModule = fx.Module("handler",
	fx.Provide(
		middleware.NewAuthMiddleware,
		api.NewAuthHandler,
		api.NewBookingHandler,
		api.NewCatalogHandler,
		api.NewAdminHandler,
		collectHandlers,
	),
	fx.Invoke(handler.NewRouter),
)

func collectHandlers(auth *api.AuthHandler, bookings *api.BookingHandler, catalog *api.CatalogHandler, admin *api.AdminHandler) handler.Handlers {
	return handler.Handlers{Auth: auth, Booking: bookings, Catalog: catalog, Admin: admin}
}
