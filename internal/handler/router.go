package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"flight-onboard/internal/handler/api"
	"flight-onboard/internal/handler/middleware"
	"flight-onboard/internal/pkg/config"
)

const (
	SurfaceOnboard      = "onboard"
	SurfaceFlightStatus = "flight-status"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

// Engines holds one gin engine per HTTP surface. Each is served on its own port.
type Engines struct {
	Onboard      *gin.Engine
	FlightStatus *gin.Engine
}

func NewEngines(cfg config.Config, logger *middleware.Logger, onboardHandler *api.OnboardHandler, flightHandler *api.FlightStatusHandler) *Engines {
	onboard := gin.New()
	setupMiddleware(onboard, cfg.CORS, logger, SurfaceOnboard)
	setupOnboardRoutes(onboard, cfg.Static, onboardHandler)

	flights := gin.New()
	setupMiddleware(flights, cfg.CORS.WithCredentials(cfg.CORS.FlightStatusAllowCredentials), logger, SurfaceFlightStatus)
	setupFlightStatusRoutes(flights, flightHandler)

	return &Engines{
		Onboard:      onboard,
		FlightStatus: flights,
	}
}

func setupMiddleware(engine *gin.Engine, corsCfg config.CORSConfig, logger *middleware.Logger, surface string) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(corsCfg))
	engine.Use(logger.LoggingMiddleware(surface))
	engine.Use(middleware.ErrorHandler())

	engine.GET("/health", healthCheck)
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}

func setupOnboardRoutes(engine *gin.Engine, static config.StaticConfig, h *api.OnboardHandler) {
	apiGroup := engine.Group("/api")
	addRoutes(apiGroup, []route{
		{Method: http.MethodGet, Path: "/snacks", Handler: h.ListSnacks},
		{Method: http.MethodGet, Path: "/assentos", Handler: h.ListSeats},
		{Method: http.MethodPost, Path: "/pedido", Handler: h.PlaceOrder},
	})

	if static.Dir != "" {
		engine.Static("/static", static.Dir)
	}
}

func setupFlightStatusRoutes(engine *gin.Engine, h *api.FlightStatusHandler) {
	engine.GET("/", h.Welcome)

	// "/status/all" is a static segment and wins over the code parameter
	status := engine.Group("/status")
	addRoutes(status, []route{
		{Method: http.MethodGet, Path: "/all", Handler: h.ListStatuses},
		{Method: http.MethodGet, Path: "/:codigo_voo", Handler: h.GetStatus},
	})
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
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, r.Handler)
		case http.MethodPost:
			g.POST(r.Path, r.Handler)
		default:
			g.Handle(r.Method, r.Path, r.Handler)
		}
	}
}
