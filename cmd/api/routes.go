// Package main provides the API server entry point.
package main

import (
	"github.com/stkrizh/conduit/internal/infrastructure/httpserver"
	"github.com/stkrizh/conduit/internal/middleware"
)

// SetupRoutes configures all API routes and middleware chains.
func SetupRoutes(c *Container) *httpserver.Server {
	server := httpserver.NewServer(httpserver.ServerConfig{
		Host:            c.Config.Server.Host,
		Port:            c.Config.Server.Port,
		ReadTimeout:     c.Config.Server.ReadTimeout,
		WriteTimeout:    c.Config.Server.WriteTimeout,
		ShutdownTimeout: c.Config.Server.ShutdownTimeout,
	}, c.Logger)

	server.Use(middleware.Logging(middleware.LoggingConfig{
		Logger:    c.Logger,
		SkipPaths: []string{"/health", "/ready"},
	}))

	authCfg := middleware.AuthConfig{
		Logger:            c.Logger,
		TokenValidator:    c.JWTManager,
		RevocationChecker: c.Revocations,
	}
	authRequired := middleware.Auth(authCfg)
	authOptional := middleware.OptionalAuth(authCfg)

	e := server.Echo()

	// Container implements httpserver.HealthChecker, so it backs the
	// health endpoints directly.
	httpserver.NewHealthEndpoints(c).Register(e)

	api := e.Group("/api")
	c.UserHandler.RegisterRoutes(api, authRequired)
	c.ProfileHandler.RegisterRoutes(api, authRequired, authOptional)

	return server
}
