package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/middleware"
	"github.com/Bishop-Massey-Knapp/ecommerce-api/internal/server"
	"github.com/labstack/echo/v4"
)

// HealthHandler reports whether the service's dependencies are reachable.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type healthCheck struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

type healthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Checks      map[string]healthCheck `json:"checks"`
}

// CheckHealth pings the database and, when configured, Redis. It answers
// 200 when every required check passes and 503 otherwise. Redis is
// optional, so a failing Redis is reported without failing the response.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	obs := h.server.Config.Observability
	response := healthResponse{
		Status:      "healthy",
		Timestamp:   time.Now().UTC(),
		Environment: h.server.Config.Primary.Env,
		Checks:      make(map[string]healthCheck),
	}

	if obs.HasCheck("database") {
		if h.server.DB == nil {
			response.Checks["database"] = healthCheck{Status: "unhealthy", Error: "database not initialized"}
			response.Status = "unhealthy"
		} else {
			check := h.ping(c.Request().Context(), "database", func(ctx context.Context) error {
				return h.server.DB.Pool.Ping(ctx)
			})
			response.Checks["database"] = check
			if check.Status != "healthy" {
				response.Status = "unhealthy"
			}
		}
	}

	if obs.HasCheck("redis") && h.server.Redis != nil {
		response.Checks["redis"] = h.ping(c.Request().Context(), "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	if response.Status != "healthy" {
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		h.recordHealthCheckError("overall", map[string]interface{}{
			"total_duration_ms": time.Since(start).Milliseconds(),
		})
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	return c.JSON(http.StatusOK, response)
}

func (h *HealthHandler) ping(parent context.Context, name string, ping func(ctx context.Context) error) healthCheck {
	ctx, cancel := context.WithTimeout(parent, h.server.Config.Observability.HealthChecks.Timeout)
	defer cancel()

	start := time.Now()
	err := ping(ctx)
	elapsed := time.Since(start)

	if err != nil {
		h.server.Logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("dependency health check failed")
		h.recordHealthCheckError(name, map[string]interface{}{
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
		return healthCheck{Status: "unhealthy", ResponseTime: elapsed.String(), Error: err.Error()}
	}

	return healthCheck{Status: "healthy", ResponseTime: elapsed.String()}
}

func (h *HealthHandler) recordHealthCheckError(checkType string, attrs map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}

	attrs["check_type"] = checkType
	attrs["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", attrs)
}
