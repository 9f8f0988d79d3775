package middleware

import (
	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"resume-ai-backend/internal/shared/telemetry"
)

// Trace starts a server span per request using the global tracer provider.
func Trace(serviceName string) gin.HandlerFunc {
	return otelgin.Middleware(serviceName)
}

// TraceHeader exposes the current trace ID as X-Trace-Id when a span is recording.
func TraceHeader() gin.HandlerFunc {
	return func(c *gin.Context) {
		if traceID := telemetry.TraceID(c.Request.Context()); traceID != "" {
			c.Header("X-Trace-Id", traceID)
		}
		c.Next()
	}
}
