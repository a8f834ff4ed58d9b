package main

import (
	"codeberg.org/issuetracker/server/api/rest/docs"
	"codeberg.org/issuetracker/server/api/rest/health"
	"codeberg.org/issuetracker/server/api/rest/issues"
	apidocs "codeberg.org/issuetracker/server/docs"
	"codeberg.org/issuetracker/server/internal/errors"
	"codeberg.org/issuetracker/server/internal/logger"
	"github.com/gin-gonic/gin"
)

// sets up all API routes and middleware
func RegisterRoutes(router *gin.Engine, server *Server) {
	router.Use(
		errors.Recovery(),
		logger.Middleware(),
		server.metrics.Middleware(),
	)

	// gin copies the chain at registration, so these routes never see CORS
	// or the rate limit and answer any caller
	router.GET("/health", health.Handler)
	router.GET("/metrics", server.metrics.Handler())
	router.GET("/openapi.json", docs.Handler(apidocs.SwaggerInfo.InstanceName()))

	// engine-level so preflights for /api/v1 paths reach it through NoRoute
	router.Use(CORSMiddleware(server.config))

	v1 := router.Group("/api/v1")
	if server.limiter != nil {
		v1.Use(server.limiter.Middleware())
	}

	{
		issues.RegisterRoutes(v1)
	}

	logger.Debug("routes registered", "count", len(router.Routes()))
}
