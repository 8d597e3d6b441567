package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/guttosm/etfpulse/internal/middleware"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// requestTimeout bounds every request's context.
const requestTimeout = 10 * time.Second

// NewRouter creates a Gin engine with middlewares and the v1 routes.
//
// Responsibilities:
//   - Registers global middlewares (RequestID, Logger, Recovery, ErrorHandler, RateLimiter, Timeout).
//   - Mounts Swagger docs (/swagger/*any).
//   - Configures API v1 routes (/v1).
//
// Note:
//   - Health and readiness endpoints are registered in app.InitializeApp().
func NewRouter(handler *Handler) *gin.Engine {
	router := gin.New()

	// ─── Middlewares ───────────────────────────────
	router.Use(
		middleware.RequestID(),
		middleware.RequestLogger(),
		middleware.RecoveryMiddleware(),
		middleware.ErrorHandler,
		middleware.RateLimiter(),
		middleware.Timeout(requestTimeout),
	)

	// ─── Swagger ──────────────────────────────────
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// ─── API v1 ───────────────────────────────────
	v1 := router.Group("/v1")
	{
		v1.GET("/etfs", handler.ListETFs)
		v1.GET("/etfs/:symbol", handler.GetETF)
		v1.GET("/prices/:symbol", handler.GetPrices)
		v1.GET("/stats/:symbol", handler.GetStats)
	}

	return router
}
