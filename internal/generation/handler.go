package generation

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"resume-ai-backend/internal/shared/server/respond"
)

// Generator is the behavior the handler needs from the service.
type Generator interface {
	Generate(ctx context.Context, req Request) (Result, error)
}

// Handler wires HTTP handlers to the generation service.
type Handler struct {
	Svc Generator
}

// NewHandler constructs a Handler.
func NewHandler(svc Generator) *Handler {
	return &Handler{Svc: svc}
}

// RegisterRoutes attaches generation routes to the router group.
func (h *Handler) RegisterRoutes(rg gin.IRoutes) {
	rg.POST("/generate", h.generate)
}

func (h *Handler) generate(c *gin.Context) {
	var body generateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		respond.Detail(c, http.StatusUnprocessableEntity, err.Error())
		return
	}

	res, err := h.Svc.Generate(c.Request.Context(), body.toRequest())
	if err != nil {
		var upstream *UpstreamError
		switch {
		case errors.Is(err, ErrServiceUnavailable):
			respond.Detail(c, http.StatusInternalServerError, ErrServiceUnavailable.Error())
		case errors.As(err, &upstream):
			respond.Detail(c, http.StatusInternalServerError, upstream.Error())
		default:
			respond.Detail(c, http.StatusInternalServerError, "OpenAI error: "+err.Error())
		}
		return
	}

	respond.OK(c, toGenerateResponse(res))
}
