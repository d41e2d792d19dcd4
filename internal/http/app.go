package http

import (
	"fence_estimate_backend/platform/config"
	"fence_estimate_backend/platform/httpkit"
	"fence_estimate_backend/platform/logger"
)

// App holds the fully initialized application dependencies.
// This is populated by main.go (the composition root) and passed to the router.
type App struct {
	// Config holds the HTTP server settings.
	Config config.HTTPConfig
	// Logger is the structured logger.
	Logger *logger.Logger
	// PublicRateLimiter is shared by all public routes.
	PublicRateLimiter *httpkit.IPRateLimiter
	// Modules contains all HTTP-facing domain modules.
	Modules []Module
}
