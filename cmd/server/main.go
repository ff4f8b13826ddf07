package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	config "github.com/offmylawn101/slopwatch/configs"
	"github.com/offmylawn101/slopwatch/internal/application/services"
	"github.com/offmylawn101/slopwatch/internal/core/ports"
	"github.com/offmylawn101/slopwatch/internal/infrastructure/health"
	"github.com/offmylawn101/slopwatch/internal/infrastructure/httpserver"
	"github.com/offmylawn101/slopwatch/internal/infrastructure/redis"
	"github.com/offmylawn101/slopwatch/internal/infrastructure/repositories"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	// Setup logger
	logger := logrus.New()
	if cfg.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.Log.Level)
	if err != nil {
		logger.SetLevel(logrus.InfoLevel)
	} else {
		logger.SetLevel(level)
	}

	logger.Info("Starting SlopWatch vote API...")

	// Restore vote state from the snapshot document
	snapshotRepo := repositories.NewSnapshotFileRepository(cfg.Storage.DataFile, logger)
	voteService := services.NewVoteService(context.Background(), snapshotRepo, logger)

	logger.WithField("data_file", cfg.Storage.DataFile).Info("Vote store ready")

	hcSlice := []ports.HealthChecker{health.NewSnapshotHealthChecker(cfg.Storage.DataFile)}

	// Select the rate limit counter backend
	var rateLimitRepo ports.RateLimitRepository
	switch cfg.RateLimit.Backend {
	case "redis":
		redisClient, err := redis.NewRedisClient(&cfg.Redis)
		if err != nil {
			logger.Fatal("Failed to connect to Redis:", err)
		}
		defer redisClient.Close()
		logger.Info("Connected to Redis successfully")
		rateLimitRepo = repositories.NewRateLimitRedisRepository(redisClient, cfg.RateLimit.KeyPrefix)
		hcSlice = append(hcSlice, health.NewRedisHealthChecker(redisClient))
	default:
		rateLimitRepo = repositories.NewRateLimitMemoryRepository()
	}

	rateLimiterConfig := &services.RateLimiterConfig{
		RequestsPerWindow: cfg.RateLimit.RequestsPerWindow,
		Window:            cfg.RateLimit.Window,
	}
	rateLimiterService := services.NewRateLimiterService(rateLimitRepo, rateLimiterConfig, logger)

	// Create server configuration
	serverConfig := &httpserver.ServerConfig{
		Host:           cfg.Server.Host,
		Port:           cfg.Server.Port,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		TLSCertFile:    cfg.Server.TLSCertFile,
		TLSKeyFile:     cfg.Server.TLSKeyFile,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}

	deps := httpserver.ServerDeps{
		VoteService:        voteService,
		RateLimiterService: rateLimiterService,
		HealthCheckers:     hcSlice,
	}

	server := httpserver.NewServer(serverConfig, logger, deps)

	// Start server in a goroutine
	go func() {
		if err := server.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server:", err)
		}
	}()

	logger.Infof("Server started on %s:%s", cfg.Server.Host, cfg.Server.Port)

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Fatal("Server forced to shutdown:", err)
	}

	logger.Info("Server exited")
}
