package server

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/generation"
	"resume-ai-backend/internal/services/health"
	"resume-ai-backend/internal/shared/config"
	"resume-ai-backend/internal/shared/metrics"
	"resume-ai-backend/internal/shared/server/middleware"
	"resume-ai-backend/internal/shared/server/respond"
)

// RouterDeps holds the handlers mounted by NewRouter.
type RouterDeps struct {
	Config            config.Config
	GenerationHandler *generation.Handler
	Health            *health.Service
}

// NewRouter constructs the Gin engine with middleware and routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	if gin.Mode() != gin.TestMode {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.HandleMethodNotAllowed = true

	r.Use(
		middleware.RequestID(),
		middleware.Trace(config.AppName),
		middleware.TraceHeader(),
		middleware.Logging(),
		middleware.Recovery(),
		middleware.CORS(deps.Config.CORSAllowOrigin),
		appVersion(),
	)

	r.NoRoute(func(c *gin.Context) {
		respond.Detail(c, http.StatusNotFound, "Not Found")
	})
	r.NoMethod(func(c *gin.Context) {
		respond.Detail(c, http.StatusMethodNotAllowed, "Method Not Allowed")
	})

	healthSvc := deps.Health
	if healthSvc == nil {
		healthSvc = health.NewService()
	}
	r.GET("/health", func(c *gin.Context) {
		respond.OK(c, healthSvc.Status())
	})
	r.GET("/metrics", metrics.Handler())

	if deps.GenerationHandler != nil {
		deps.GenerationHandler.RegisterRoutes(r)
	}

	return r
}

func appVersion() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("X-App-Version", config.AppVersion)
		c.Next()
	}
}

// Addr normalizes the listen address.
func Addr(port string) string {
	if port == "" {
		return ":8080"
	}
	if port[0] == ':' {
		return port
	}
	return ":" + port
}
