package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/internal/server/middleware"
	"github.com/nulzo/model-catalog-api/pkg/api"
	"github.com/nulzo/model-catalog-api/pkg/schema"
)

// HandleListProviders returns the provider table in display order.
func (h *Handler) HandleListProviders(c *gin.Context) {
	c.JSON(http.StatusOK, api.NewList(h.registry.ListProviders()))
}

// HandleListModels returns the catalog, optionally scoped to one provider via
// ?provider=. An unknown provider yields an empty list, not an error.
func (h *Handler) HandleListModels(c *gin.Context) {
	if provider := c.Query("provider"); provider != "" {
		models := h.registry.ListModelsForProvider(schema.ServiceID(provider))
		c.JSON(http.StatusOK, api.NewList(models))
		return
	}
	c.JSON(http.StatusOK, api.NewList(h.registry.ListModels()))
}

// HandleGroupedModels returns one group per provider that owns models, in
// provider-table order.
func (h *Handler) HandleGroupedModels(c *gin.Context) {
	c.JSON(http.StatusOK, api.NewList(h.registry.GroupByProvider()))
}

// HandleSelectableModels filters the catalog down to what the calling
// identity can actually use.
func (h *Handler) HandleSelectableModels(c *gin.Context) {
	id := middleware.GetIdentity(c)
	models := h.registry.ListSelectableModels(id.Pro, id.Keys)
	c.JSON(http.StatusOK, api.NewList(models))
}

// HandleDefaultModel returns the default model id for the caller's tier.
func (h *Handler) HandleDefaultModel(c *gin.Context) {
	id := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, gin.H{
		"model": h.registry.DefaultModel(id.Pro),
		"pro":   id.Pro,
	})
}

// HandleGetModel looks up a single model. The id travels as a query parameter
// because OpenRouter ids contain slashes.
func (h *Handler) HandleGetModel(c *gin.Context) {
	modelID := c.Query("id")
	if modelID == "" {
		c.Error(api.BadRequestError("missing required query parameter: id"))
		return
	}

	m, ok := h.registry.GetModel(modelID)
	if !ok {
		c.Error(api.NotFoundError("model not found: " + modelID))
		return
	}
	c.JSON(http.StatusOK, m)
}

// HandleModelAvailability reports whether the calling identity can select the
// model, alongside the catalog's advisory access record.
func (h *Handler) HandleModelAvailability(c *gin.Context) {
	modelID := c.Query("id")
	if modelID == "" {
		c.Error(api.BadRequestError("missing required query parameter: id"))
		return
	}

	m, ok := h.registry.GetModel(modelID)
	if !ok {
		c.Error(api.NotFoundError("model not found: " + modelID))
		return
	}

	id := middleware.GetIdentity(c)
	c.JSON(http.StatusOK, api.AvailabilityResponse{
		Model:        m.ID,
		Available:    h.registry.IsAvailable(m.ID, id.Pro, id.Keys),
		Availability: m.Availability,
	})
}

// HandleModelSDKConfig resolves the descriptor an SDK factory needs to build
// a client for the model.
func (h *Handler) HandleModelSDKConfig(c *gin.Context) {
	modelID := c.Query("id")
	if modelID == "" {
		c.Error(api.BadRequestError("missing required query parameter: id"))
		return
	}

	cfg, ok := h.registry.SDKConfig(modelID)
	if !ok {
		c.Error(api.NotFoundError("model not found: " + modelID))
		return
	}
	c.JSON(http.StatusOK, cfg)
}
