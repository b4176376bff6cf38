package usage

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"resumind-backend/internal/shared/server/middleware"
	"resumind-backend/internal/shared/server/respond"
)

// Handler exposes the caller's AI usage allowance.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Register mounts the usage routes on the given group.
func (h *Handler) Register(rg *gin.RouterGroup) {
	rg.GET("/usage", h.get)
}

func (h *Handler) get(c *gin.Context) {
	u, err := h.svc.Get(c.Request.Context(), middleware.UserIDFromContext(c))
	if err != nil {
		respond.Internal(c, "internal_error", "failed to load usage")
		return
	}
	respond.JSON(c, http.StatusOK, u)
}
