// Package middleware provides Echo middleware for the API server.
package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stkrizh/conduit/internal/domain/uuid"
)

// Context keys for authentication data.
const (
	// ContextKeyUserID is the echo context key for the authenticated user id.
	ContextKeyUserID = "user_id"

	// ContextKeyToken is the echo context key for the raw bearer token.
	ContextKeyToken = "auth_token"
)

// Auth errors.
var (
	ErrMissingAuthHeader = errors.New("missing authorization header")
	ErrInvalidAuthHeader = errors.New("invalid authorization header format")
	ErrTokenRevoked      = errors.New("token revoked")
)

// TokenValidator validates a raw token and resolves the user id it is bound to.
// Declared on the consumer side; implemented by auth.JWTManager.
type TokenValidator interface {
	Validate(ctx context.Context, token string) (uuid.UUID, error)
}

// RevocationChecker reports whether a validated token has been revoked.
// Declared on the consumer side; implemented by auth.RevocationChecker.
type RevocationChecker interface {
	IsTokenRevoked(ctx context.Context, token string) (bool, error)
}

// AuthConfig holds configuration for the auth middleware.
type AuthConfig struct {
	// Logger is the structured logger for auth events.
	Logger *slog.Logger

	// TokenValidator validates bearer tokens. Required.
	TokenValidator TokenValidator

	// RevocationChecker rejects signed-out tokens.
	// Optional - if nil, no revocation check is performed.
	RevocationChecker RevocationChecker
}

// Auth returns middleware that requires a valid bearer token.
// Requests without one are rejected with 401 before reaching the handler.
func Auth(cfg AuthConfig) echo.MiddlewareFunc {
	return newAuthMiddleware(cfg, true)
}

// OptionalAuth returns middleware that resolves the actor identity when a
// token is present but lets anonymous requests through. Handlers observe
// anonymity as a zero user id.
func OptionalAuth(cfg AuthConfig) echo.MiddlewareFunc {
	return newAuthMiddleware(cfg, false)
}

func newAuthMiddleware(cfg AuthConfig, required bool) echo.MiddlewareFunc {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := extractToken(c.Request().Header.Get(echo.HeaderAuthorization))
			if err != nil {
				if !required && errors.Is(err, ErrMissingAuthHeader) {
					return next(c)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}

			ctx := c.Request().Context()
			userID, err := cfg.TokenValidator.Validate(ctx, token)
			if err != nil {
				logger.InfoContext(ctx, "rejected invalid token",
					slog.String("error", err.Error()),
				)
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
			}

			if cfg.RevocationChecker != nil {
				revoked, revErr := cfg.RevocationChecker.IsTokenRevoked(ctx, token)
				if revErr != nil {
					logger.ErrorContext(ctx, "failed to check token revocation",
						slog.String("error", revErr.Error()),
					)
					return echo.NewHTTPError(http.StatusServiceUnavailable, "authentication unavailable")
				}
				if revoked {
					return echo.NewHTTPError(http.StatusUnauthorized, "invalid or expired token")
				}
			}

			c.Set(ContextKeyUserID, userID)
			c.Set(ContextKeyToken, token)
			return next(c)
		}
	}
}

// extractToken parses the Authorization header. Both "Bearer <token>" and
// the conduit-style "Token <token>" schemes are accepted.
func extractToken(header string) (string, error) {
	if header == "" {
		return "", ErrMissingAuthHeader
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return "", ErrInvalidAuthHeader
	}

	scheme := strings.ToLower(parts[0])
	if scheme != "bearer" && scheme != "token" {
		return "", ErrInvalidAuthHeader
	}

	return parts[1], nil
}

// GetUserID returns the authenticated user id from the echo context, or a
// zero UUID for anonymous requests.
func GetUserID(c echo.Context) uuid.UUID {
	userID, ok := c.Get(ContextKeyUserID).(uuid.UUID)
	if !ok {
		return ""
	}
	return userID
}

// GetToken returns the raw bearer token from the echo context, or an empty
// string for anonymous requests.
func GetToken(c echo.Context) string {
	token, ok := c.Get(ContextKeyToken).(string)
	if !ok {
		return ""
	}
	return token
}
