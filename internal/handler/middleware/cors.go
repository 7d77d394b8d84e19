package middleware

import (
	"log/slog"
	"slices"

	"flight-onboard/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware builds the CORS policy. A "*" entry opens the API to any
// origin, which is what the static demo pages served from file:// need.
// Browsers refuse a literal "*" on credentialed responses, so with
// AllowCredentials the request origin is echoed back instead.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    cfg.ExposeHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	switch {
	case slices.Contains(cfg.AllowOrigins, "*") && cfg.AllowCredentials:
		corsCfg.AllowOriginFunc = func(string) bool { return true }
	case slices.Contains(cfg.AllowOrigins, "*"):
		corsCfg.AllowAllOrigins = true
	default:
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	slog.Debug("CORS middleware initialized", "AllowOrigins", cfg.AllowOrigins, "AllowAll", corsCfg.AllowAllOrigins, "AllowCredentials", cfg.AllowCredentials)
	return cors.New(corsCfg)
}
