package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/caarlos0/env/v11"

	"github.com/DenysFlnk/playerroster/internal/api"
	"github.com/DenysFlnk/playerroster/internal/factory"
	postgresstorage "github.com/DenysFlnk/playerroster/internal/storage/postgres"
	redisstorage "github.com/DenysFlnk/playerroster/internal/storage/redis"
)

type serverEnv struct {
	Port        int    `env:"PORT" envDefault:"8080"`
	StorageType string `env:"STORAGE_TYPE" envDefault:"memory"`
	DatabaseURL string `env:"DATABASE_URL"`
	RedisURL    string `env:"REDIS_URL"`
}

func main() {
	// Set up logging with JSON output
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	var envCfg serverEnv
	if err := env.Parse(&envCfg); err != nil {
		logger.Error("failed to parse environment", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Build factory config from environment
	cfg := factory.Config{
		Logger:      logger,
		StorageType: envCfg.StorageType,
	}

	switch envCfg.StorageType {
	case factory.StorageTypePostgres:
		if envCfg.DatabaseURL == "" {
			logger.Error("DATABASE_URL required when STORAGE_TYPE=postgres")
			os.Exit(1)
		}
		pgCfg := postgresstorage.DefaultConfig()
		pgCfg.URL = envCfg.DatabaseURL
		cfg.PostgresConfig = &pgCfg
	case factory.StorageTypeRedis:
		if envCfg.RedisURL == "" {
			logger.Error("REDIS_URL required when STORAGE_TYPE=redis")
			os.Exit(1)
		}
		redisCfg := redisstorage.DefaultConfig()
		redisCfg.URL = envCfg.RedisURL
		cfg.RedisConfig = &redisCfg
	}

	// Handle graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Create application factory
	app, err := factory.New(ctx, cfg)
	if err != nil {
		logger.Error("failed to create application", slog.String("error", err.Error()))
		os.Exit(1)
	}

	// Create API router
	router := api.NewRouter(api.RouterConfig{
		Logger:        logger,
		PlayerService: app.PlayerService,
	})

	// Create server
	serverConfig := api.DefaultServerConfig()
	serverConfig.Port = envCfg.Port
	server := api.NewServer(router, serverConfig, logger)

	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		logger.Info("shutdown signal received")
		cancel()
	}()

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	logger.Info("server started", slog.String("addr", server.Addr()))

	// Wait for shutdown or error
	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case <-ctx.Done():
		if err := server.Shutdown(context.Background()); err != nil {
			logger.Error("shutdown error", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}
