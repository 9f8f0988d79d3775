package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/shared/telemetry"
)

// DetailResponse is the error body returned to callers.
type DetailResponse struct {
	Detail string `json:"detail"`
}

// Detail logs the failure and aborts with {"detail": message}. Client errors
// log at warn, server errors at error.
func Detail(c *gin.Context, status int, message string) {
	log := telemetry.Error
	if status < http.StatusInternalServerError {
		log = telemetry.Warn
	}
	log("http.error", map[string]any{
		"status":     status,
		"detail":     message,
		"path":       c.Request.URL.Path,
		"method":     c.Request.Method,
		"request_id": c.GetString("requestId"),
		"trace_id":   telemetry.TraceID(c.Request.Context()),
	})

	c.AbortWithStatusJSON(status, DetailResponse{Detail: message})
}
