package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"carrental-storefront/internal/handler/api"
	"carrental-storefront/internal/handler/middleware"
	"carrental-storefront/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Locations *api.LocationHandler
	Cars      *api.CarHandler
	Booking   *api.BookingHandler
	Admin     *api.AdminCarHandler
}

func NewRouter(engine *gin.Engine, cfg config.Config, logger *slog.Logger, h Handlers) {
	setupMiddleware(engine, cfg, logger)
	setupRoutes(engine, h)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	// Logging runs first so recovery can report the request id
	engine.Use(middleware.LoggingMiddleware(logger, cfg.Log))
	engine.Use(middleware.CustomRecovery(logger))
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.ErrorHandler(logger))
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		locations := apiGroup.Group("/locations")
		addRoutes(locations, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Locations.List},
			{Method: http.MethodGet, Path: "/resolve", Handler: h.Locations.Resolve},
		})

		cars := apiGroup.Group("/cars")
		addRoutes(cars, []route{
			{Method: http.MethodGet, Path: "", Handler: h.Cars.List},
			{Method: http.MethodGet, Path: "/:id", Handler: h.Cars.Get},
			{Method: http.MethodGet, Path: "/:id/calendar", Handler: h.Cars.Calendar},
			{Method: http.MethodPost, Path: "/:id/calendar/select", Handler: h.Cars.SelectDay},
			{Method: http.MethodGet, Path: "/:id/countdown", Handler: h.Cars.Countdown, Mw: []gin.HandlerFunc{noBuffering}},
			{Method: http.MethodPost, Path: "/:id/booking/confirm", Handler: h.Booking.Confirm},
		})

		admin := apiGroup.Group("/admin/cars")
		addRoutes(admin, []route{
			{Method: http.MethodPost, Path: "", Handler: h.Admin.Create},
			{Method: http.MethodPatch, Path: "/:id", Handler: h.Admin.Update},
		})
	}
}

// noBuffering asks reverse proxies to pass event streams through unbuffered.
func noBuffering(c *gin.Context) {
	c.Header("X-Accel-Buffering", "no")
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
