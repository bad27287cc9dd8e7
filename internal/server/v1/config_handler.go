package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/internal/server/middleware"
	"github.com/nulzo/model-catalog-api/internal/server/validator"
	"github.com/nulzo/model-catalog-api/pkg/api"
	"github.com/nulzo/model-catalog-api/pkg/schema"
)

// HandleConfigCheck validates a caller-owned AIConfig against the catalog:
// does the selected model exist, and is it selectable with the keys the
// config carries. The config is never stored.
func (h *Handler) HandleConfigCheck(c *gin.Context) {
	var cfg schema.AIConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		c.Error(api.ValidationError(validator.ParseValidationError(err)))
		return
	}

	id := middleware.GetIdentity(c)
	_, known := h.registry.GetModel(cfg.Model)

	c.JSON(http.StatusOK, api.ConfigCheckResponse{
		Model:     cfg.Model,
		Known:     known,
		Available: h.registry.IsAvailable(cfg.Model, id.Pro, cfg.APIKeys),
	})
}
