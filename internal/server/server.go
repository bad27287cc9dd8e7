package server

import (
	"net/http"
	"time"

	ginzap "github.com/gin-contrib/zap"
	"github.com/gin-gonic/gin"
	"github.com/nulzo/model-catalog-api/internal/catalog"
	"github.com/nulzo/model-catalog-api/internal/config"
	"github.com/nulzo/model-catalog-api/pkg/schema"
	"go.uber.org/zap"
)

type Server struct {
	router   *gin.Engine
	config   *config.Config
	logger   *zap.Logger
	registry *catalog.Registry
	envKeys  []schema.APIKey
}

func New(cfg *config.Config, logger *zap.Logger, registry *catalog.Registry, envKeys []schema.APIKey) *Server {

	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	engine.Use(ginzap.Ginzap(logger, time.RFC3339, true))
	engine.Use(ginzap.RecoveryWithZap(logger, true))

	s := &Server{
		router:   engine,
		config:   cfg,
		logger:   logger,
		registry: registry,
		envKeys:  envKeys,
	}

	s.SetupRoutes()
	return s
}

func (s *Server) Handler() http.Handler {
	return s.router
}
