package v1

import (
	"github.com/nulzo/model-catalog-api/internal/catalog"
	"go.uber.org/zap"
)

// Handler serves the read-only catalog endpoints.
type Handler struct {
	registry *catalog.Registry
	logger   *zap.Logger
}

func NewHandler(registry *catalog.Registry, logger *zap.Logger) *Handler {
	return &Handler{
		registry: registry,
		logger:   logger,
	}
}
