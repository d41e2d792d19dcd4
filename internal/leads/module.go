// Package leads provides the estimate booking bounded context module.
// This file wires scoring, slot generation and the public estimate routes.
package leads

import (
	apphttp "fence_estimate_backend/internal/http"
	"fence_estimate_backend/internal/leads/handler"
	"fence_estimate_backend/internal/leads/scheduling"
	"fence_estimate_backend/internal/leads/service"
	"fence_estimate_backend/platform/logger"
	"fence_estimate_backend/platform/validator"
)

// Module is the leads bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	service *service.Service
}

// NewModule creates the leads module around a configured slot generator.
func NewModule(slots *scheduling.Generator, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(slots, log)
	return &Module{
		handler: handler.New(svc, val),
		service: svc,
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "leads"
}

// Service returns the booking service for use outside HTTP, e.g. the CLI.
func (m *Module) Service() *service.Service {
	return m.service
}

// RegisterRoutes mounts the public estimate routes behind the public rate limiter.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	estimate := ctx.V1.Group("/estimate")
	if ctx.PublicRateLimiter != nil {
		estimate.Use(ctx.PublicRateLimiter.RateLimit())
	}
	m.handler.RegisterRoutes(estimate)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
