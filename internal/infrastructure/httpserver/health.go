package httpserver

import (
	"context"
	"net/http"

	"github.com/labstack/echo/v4"
)

// Health status constants.
const (
	// StatusHealthy indicates the component is fully operational.
	StatusHealthy = "healthy"

	// StatusUnhealthy indicates the component is not operational.
	StatusUnhealthy = "unhealthy"
)

// ComponentStatus represents the health status of a single component.
type ComponentStatus struct {
	Name    string `json:"name"`
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse represents the response for health endpoints.
type HealthResponse struct {
	Status     string            `json:"status"`
	Components []ComponentStatus `json:"components,omitempty"`
}

// HealthChecker reports the health of infrastructure components.
// Implemented by the DI container.
type HealthChecker interface {
	// IsReady checks if all infrastructure components are ready to serve traffic.
	IsReady(ctx context.Context) bool

	// GetHealthStatus returns the health of each component.
	GetHealthStatus(ctx context.Context) []ComponentStatus
}

// HealthEndpoints manages health check endpoint registration.
type HealthEndpoints struct {
	checker HealthChecker
}

// NewHealthEndpoints creates a new HealthEndpoints instance.
func NewHealthEndpoints(checker HealthChecker) *HealthEndpoints {
	return &HealthEndpoints{checker: checker}
}

// Register registers the health endpoints:
//   - GET /health - liveness probe, 200 while the process runs
//   - GET /ready - readiness probe, 200 if ready, 503 if not
func (h *HealthEndpoints) Register(e *echo.Echo) {
	e.GET("/health", h.liveness)
	e.GET("/ready", h.readiness)
}

func (h *HealthEndpoints) liveness(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: StatusHealthy})
}

func (h *HealthEndpoints) readiness(c echo.Context) error {
	ctx := c.Request().Context()
	components := h.checker.GetHealthStatus(ctx)

	if h.checker.IsReady(ctx) {
		return c.JSON(http.StatusOK, HealthResponse{
			Status:     StatusHealthy,
			Components: components,
		})
	}

	return c.JSON(http.StatusServiceUnavailable, HealthResponse{
		Status:     StatusUnhealthy,
		Components: components,
	})
}
