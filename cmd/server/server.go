package main

import (
	"context"
	"fmt"

	"codeberg.org/issuetracker/server/docs"
	"codeberg.org/issuetracker/server/internal/config"
	"codeberg.org/issuetracker/server/internal/errors"
	"codeberg.org/issuetracker/server/internal/logger"
	"codeberg.org/issuetracker/server/internal/metrics"
	"codeberg.org/issuetracker/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// creates and configures a new server instance with all dependencies
func NewServer(ctx context.Context, cfg *config.Config) (*Server, error) {
	errors.SetEnvironment(cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	// publish configured metadata in the api document
	docs.SwaggerInfo.Title = cfg.API.Title
	docs.SwaggerInfo.Version = cfg.API.Version
	docs.SwaggerInfo.Description = cfg.API.Description

	if cfg.IsProduction() && cfg.AllowAllOrigins() {
		logger.Warn("CORS allows every origin in production")
	}

	router := gin.New()

	server := &Server{
		config:  cfg,
		metrics: metrics.New(cfg.API.Version),
		router:  router,
	}

	// rate limiting is opt-in
	if cfg.RateLimit != "" {
		limiter, err := ratelimit.New(ctx, cfg.RateLimit, cfg.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize rate limiter: %w", err)
		}

		logger.Info("rate limiter initialized",
			"rate", cfg.RateLimit,
			"redis", cfg.RedisURL != "",
		)
		server.limiter = limiter
	} else {
		logger.Debug("rate limiting disabled")
	}

	RegisterRoutes(router, server)

	return server, nil
}

// releases resources held by the server
func (s *Server) Close() error {
	if s.limiter == nil {
		return nil
	}

	return s.limiter.Close()
}
