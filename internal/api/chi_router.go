// Nutrilens - Nutrition Dataset Analytics and Diet Insights
// Copyright 2026 Nutrilens Authors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/nutrilens/nutrilens

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nutrilens/nutrilens/internal/config"
	"github.com/nutrilens/nutrilens/internal/middleware"
)

// Router wires handlers and middleware into the HTTP surface.
type Router struct {
	handler  *Handler
	security config.SecurityConfig
}

// NewRouter creates a router for the given handler and security settings.
func NewRouter(handler *Handler, security config.SecurityConfig) *Router {
	return &Router{
		handler:  handler,
		security: security,
	}
}

// chiMiddleware adapts http.HandlerFunc middleware to Chi's
// func(http.Handler) http.Handler so it can be used with r.Use().
func chiMiddleware(mw func(http.HandlerFunc) http.HandlerFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return mw(next.ServeHTTP)
	}
}

// Setup configures all HTTP routes.
func (router *Router) Setup() http.Handler {
	r := chi.NewRouter()

	// Global middleware, applied to all routes in order.
	r.Use(chiMiddleware(middleware.RequestID)) // Add X-Request-ID header with logging context
	r.Use(chimiddleware.RealIP)                // Extract real IP from X-Forwarded-For
	r.Use(chimiddleware.Recoverer)             // Recover from panics
	r.Use(router.corsHandler())                // CORS must be global to handle OPTIONS preflight

	// Health gets permissive rate limiting so monitors can poll freely.
	r.Route("/api/v1/health", func(r chi.Router) {
		r.Use(httprate.LimitByIP(1000, time.Minute))
		r.Get("/", router.handler.Health)
	})

	// Data endpoints share the configured rate limit and Prometheus
	// instrumentation.
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(router.rateLimit())
		r.Use(chiMiddleware(middleware.PrometheusMetrics))

		r.Get("/diets", router.handler.DietOptions)
		r.Post("/analytics", router.handler.Analytics)
		r.Get("/results", router.handler.Results)
		r.Get("/results/cleaned", router.handler.CleanedDataset)
		r.Post("/pipeline/run", router.handler.RunPipeline)
	})

	// Prometheus metrics endpoint, unauthenticated and unlimited so
	// scrapers are never throttled.
	r.Handle("/metrics", promhttp.Handler())

	return r
}

// corsHandler builds the CORS middleware from the configured origins.
func (router *Router) corsHandler() func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: router.security.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", "X-Request-ID"},
		MaxAge:         86400,
	})
}

// rateLimit builds the per-IP rate limiter from the configured budget.
func (router *Router) rateLimit() func(http.Handler) http.Handler {
	reqs := router.security.RateLimitReqs
	window := router.security.RateLimitWindow
	if reqs <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if window <= 0 {
		window = time.Minute
	}
	return httprate.LimitByIP(reqs, window)
}
