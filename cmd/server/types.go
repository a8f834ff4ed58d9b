package main

import (
	"codeberg.org/issuetracker/server/internal/config"
	"codeberg.org/issuetracker/server/internal/metrics"
	"codeberg.org/issuetracker/server/internal/ratelimit"
	"github.com/gin-gonic/gin"
)

// holds all dependencies and state for the API server
type Server struct {
	config  *config.Config
	limiter *ratelimit.Limiter
	metrics *metrics.Metrics
	router  *gin.Engine
}
