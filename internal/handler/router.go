package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"bookmyvenue/internal/domain/user"
	"bookmyvenue/internal/handler/api"
	"bookmyvenue/internal/handler/middleware"
	"bookmyvenue/internal/pkg/config"
	"bookmyvenue/internal/pkg/metrics"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

type Handlers struct {
	Auth    *api.AuthHandler
	Booking *api.BookingHandler
	Catalog *api.CatalogHandler
	Admin   *api.AdminHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics, hs Handlers, authMiddleware *middleware.AuthMiddleware) {
	setupMiddleware(engine, cfg, logger, m)
	setupRoutes(engine, m, hs, authMiddleware)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *middleware.Logger, m *metrics.Metrics) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(logger.LoggingMiddleware())
	engine.Use(middleware.Metrics(m))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, m *metrics.Metrics, hs Handlers, authMiddleware *middleware.AuthMiddleware) {
	engine.GET("/health", healthCheck)
	engine.GET("/metrics", gin.WrapH(promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})))

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	requireAuth := authMiddleware.RequireAuth()
	businessOnly := authMiddleware.RequireRole(user.RoleBusiness)
	adminOnly := authMiddleware.RequireRole(user.RoleAdmin)

	apiGroup := engine.Group("/api")
	{
		auth := apiGroup.Group("/auth")
		{
			addRoutes(auth, []route{
				{Method: http.MethodPost, Path: "/register", Handler: hs.Auth.Register},
				{Method: http.MethodPost, Path: "/login", Handler: hs.Auth.Login},
			})

			authRequired := auth.Group("")
			authRequired.Use(requireAuth)
			addRoutes(authRequired, []route{
				{Method: http.MethodPost, Path: "/logout", Handler: hs.Auth.Logout},
				{Method: http.MethodGet, Path: "/me", Handler: hs.Auth.Me},
				{Method: http.MethodPatch, Path: "/me", Handler: hs.Auth.UpdateMe},
			})
		}

		addRoutes(apiGroup.Group("/catalog"), []route{
			{Method: http.MethodGet, Path: "/services", Handler: hs.Catalog.List},
			{Method: http.MethodGet, Path: "/services/:id", Handler: hs.Catalog.Get},
			{Method: http.MethodGet, Path: "/venues/search", Handler: hs.Catalog.SearchVenues},
			{Method: http.MethodGet, Path: "/venues/:id", Handler: hs.Catalog.VenueDetail},
		})

		addRoutes(apiGroup.Group("/venues"), []route{
			{Method: http.MethodGet, Path: "/:id/bookings", Handler: hs.Booking.ListVenueSlots},
		})

		bookings := apiGroup.Group("/bookings")
		bookings.Use(requireAuth)
		{
			addRoutes(bookings, []route{
				{Method: http.MethodPost, Path: "", Handler: hs.Booking.Create},
				{Method: http.MethodGet, Path: "/mine", Handler: hs.Booking.ListMine},
				{Method: http.MethodGet, Path: "/history", Handler: hs.Booking.History},
				{Method: http.MethodGet, Path: "/:id", Handler: hs.Booking.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: hs.Booking.ChangeStatus},
				{Method: http.MethodPost, Path: "/:id/cancel", Handler: hs.Booking.Cancel},
				{Method: http.MethodPatch, Path: "/:id/payment", Handler: hs.Booking.UpdatePayment},
				{Method: http.MethodPut, Path: "/:id/selections", Handler: hs.Booking.ReplaceSelections},
				{Method: http.MethodDelete, Path: "/:id", Handler: hs.Booking.Delete, Mw: []gin.HandlerFunc{businessOnly}},
			})
		}

		business := apiGroup.Group("/business")
		business.Use(requireAuth, businessOnly)
		{
			addRoutes(business, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: hs.Booking.ListForBusiness},
				{Method: http.MethodGet, Path: "/bookings/pending", Handler: hs.Booking.ListPendingForBusiness},
				{Method: http.MethodGet, Path: "/services", Handler: hs.Catalog.ListOwn},
				{Method: http.MethodPost, Path: "/services", Handler: hs.Catalog.Create},
				{Method: http.MethodPost, Path: "/services/bulk", Handler: hs.Catalog.CreateBulk},
				{Method: http.MethodPatch, Path: "/services/:id", Handler: hs.Catalog.Update},
				{Method: http.MethodDelete, Path: "/services/:id", Handler: hs.Catalog.Delete},
			})
		}

		admin := apiGroup.Group("/admin")
		admin.Use(requireAuth, adminOnly)
		{
			addRoutes(admin, []route{
				{Method: http.MethodGet, Path: "/bookings", Handler: hs.Admin.ListBookings},
				{Method: http.MethodGet, Path: "/users", Handler: hs.Admin.ListUsers},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
