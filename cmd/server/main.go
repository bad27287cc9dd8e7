package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nulzo/model-catalog-api/internal/catalog"
	"github.com/nulzo/model-catalog-api/internal/cli"
	"github.com/nulzo/model-catalog-api/internal/config"
	"github.com/nulzo/model-catalog-api/internal/platform/logger"
	"github.com/nulzo/model-catalog-api/internal/platform/otel"
	"github.com/nulzo/model-catalog-api/internal/server"
	"github.com/nulzo/model-catalog-api/internal/server/validator"
	"github.com/nulzo/model-catalog-api/pkg/schema"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger.Initialize(logger.DefaultConfig())
	defer logger.Sync()
	zlog := logger.Get()

	validator.InitValidator()

	// Build the registry up front so a broken table kills the process at
	// boot instead of surfacing as absent lookups later.
	registry, err := catalog.New()
	if err != nil {
		zlog.Fatal("catalog tables invalid", zap.Error(err))
	}

	envKeys := config.ResolveAPIKeys(registry.ListProviders())
	logInventory(zlog, registry, envKeys)

	if cfg.Tracing.Enabled {
		shutdown, err := otel.InitTracer("model-catalog-api", zlog, os.Stdout)
		if err != nil {
			zlog.Fatal("failed to initialize tracer", zap.Error(err))
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = shutdown(ctx)
		}()
	}

	srv := server.New(cfg, zlog, registry, envKeys)
	httpServer := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      srv.Handler(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		zlog.Info("catalog server listening", zap.String("port", cfg.Server.Port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zlog.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zlog.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(ctx); err != nil {
		zlog.Error("forced shutdown", zap.Error(err))
	}
}

// logInventory prints the provider/model inventory at boot so an operator can
// see at a glance which services have a credential in the environment.
func logInventory(zlog *zap.Logger, registry *catalog.Registry, envKeys []schema.APIKey) {
	keyed := make(map[schema.ServiceID]bool, len(envKeys))
	for _, k := range envKeys {
		keyed[k.Service] = true
	}

	for _, p := range registry.ListProviders() {
		mark := cli.CrossMark()
		note := cli.Style("no credential in env", cli.Yellow)
		if keyed[p.ID] {
			mark = cli.CheckMark()
			note = cli.Style(p.EnvKey+" set", cli.Green)
		}
		zlog.Info(fmt.Sprintf("%s %s\t%s", mark, cli.Style(string(p.ID), cli.Bold), note),
			zap.Int("models", len(registry.ListModelsForProvider(p.ID))),
		)
	}
	zlog.Info("catalog loaded",
		zap.Int("providers", len(registry.ListProviders())),
		zap.Int("models", len(registry.ListModels())),
	)
}
