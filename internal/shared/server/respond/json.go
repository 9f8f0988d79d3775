package respond

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK writes payload as a 200 JSON response.
func OK(c *gin.Context, payload any) {
	c.JSON(http.StatusOK, payload)
}
