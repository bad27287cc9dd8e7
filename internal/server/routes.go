package server

import (
	"github.com/nulzo/model-catalog-api/internal/server/middleware"
	v1 "github.com/nulzo/model-catalog-api/internal/server/v1"
)

const serviceName = "model-catalog-api"

func (s *Server) SetupRoutes() {
	// 1. Global Middleware
	s.router.Use(middleware.RequestID())
	s.router.Use(middleware.CORS())
	s.router.Use(middleware.ErrorHandler(s.logger))
	if s.config.Tracing.Enabled {
		s.router.Use(middleware.Tracing(serviceName))
	}

	// 2. Health Check (Public)
	healthHandler := v1.NewHealthHandler()
	s.router.GET("/health", healthHandler.Health)

	// 3. API V1 Group
	limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerSecond, s.config.RateLimit.Burst, s.logger)

	api := s.router.Group("/v1")
	api.Use(limiter.Middleware())
	api.Use(middleware.Entitlement(s.registry.ListProviders(), s.config.Entitlement.ProTokens, s.envKeys))
	{
		handler := v1.NewHandler(s.registry, s.logger)

		api.GET("/providers", handler.HandleListProviders)

		api.GET("/models", handler.HandleListModels)
		api.GET("/models/grouped", handler.HandleGroupedModels)
		api.GET("/models/selectable", handler.HandleSelectableModels)
		api.GET("/models/default", handler.HandleDefaultModel)

		// Single-model lookups take ?id= because OpenRouter model ids
		// contain slashes.
		api.GET("/model", handler.HandleGetModel)
		api.GET("/model/availability", handler.HandleModelAvailability)
		api.GET("/model/sdk-config", handler.HandleModelSDKConfig)

		api.POST("/config/check", handler.HandleConfigCheck)
	}
}
