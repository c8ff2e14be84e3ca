package middleware

import (
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HTTP status code thresholds for log levels.
const (
	statusClientError = 400
	statusServerError = 500
)

const (
	// RequestIDHeader is the header name for request ID.
	RequestIDHeader = "X-Request-ID"

	// RequestIDKey is the context key for request ID.
	RequestIDKey = "request_id"
)

// LoggingConfig holds configuration for the logging middleware.
type LoggingConfig struct {
	Logger    *slog.Logger
	SkipPaths []string
}

// DefaultLoggingConfig returns a LoggingConfig with sensible defaults.
func DefaultLoggingConfig() LoggingConfig {
	return LoggingConfig{
		Logger:    slog.Default(),
		SkipPaths: []string{"/health", "/ready"},
	}
}

// Logging returns a middleware that logs HTTP requests with request ID tracking.
func Logging(config LoggingConfig) echo.MiddlewareFunc {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}

	skipPaths := make(map[string]struct{}, len(config.SkipPaths))
	for _, path := range config.SkipPaths {
		skipPaths[path] = struct{}{}
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			res := c.Response()
			path := req.URL.Path

			if _, ok := skipPaths[path]; ok {
				return next(c)
			}

			requestID := req.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.New().String()
			}
			c.Set(RequestIDKey, requestID)
			res.Header().Set(RequestIDHeader, requestID)

			start := time.Now()
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			attrs := []any{
				slog.String("request_id", requestID),
				slog.String("method", req.Method),
				slog.String("path", path),
				slog.Int("status", res.Status),
				slog.Duration("duration", time.Since(start)),
			}

			switch {
			case res.Status >= statusServerError:
				config.Logger.Error("request failed", attrs...)
			case res.Status >= statusClientError:
				config.Logger.Warn("request rejected", attrs...)
			default:
				config.Logger.Info("request handled", attrs...)
			}

			return err
		}
	}
}
