package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/corecord/corecord-backend/internal/config"
	"github.com/corecord/corecord-backend/internal/middleware"
	"github.com/corecord/corecord-backend/internal/server"
)

// HealthHandler reports whether Postgres and Redis are reachable. Both are
// required: refresh tokens and background jobs live in Redis.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

type dependencyCheck struct {
	name string
	ping func(ctx context.Context) error
}

func (h *HealthHandler) settings() config.HealthChecksConfig {
	if h.server.Config.Observability == nil {
		return config.DefaultObservabilityConfig().HealthChecks
	}
	return h.server.Config.Observability.HealthChecks
}

// dependencies returns the configured checks whose client exists.
func (h *HealthHandler) dependencies(settings config.HealthChecksConfig) []dependencyCheck {
	if !settings.Enabled {
		return nil
	}

	var checks []dependencyCheck
	for _, name := range settings.Checks {
		switch name {
		case "database":
			if h.server.DB != nil {
				checks = append(checks, dependencyCheck{name, h.server.DB.Pool.Ping})
			}
		case "redis":
			if h.server.Redis != nil {
				checks = append(checks, dependencyCheck{name, func(ctx context.Context) error {
					return h.server.Redis.Ping(ctx).Err()
				}})
			}
		}
	}
	return checks
}

func (h *HealthHandler) recordFailure(checkType string, fields map[string]interface{}) {
	if h.server.LoggerService == nil || h.server.LoggerService.GetApplication() == nil {
		return
	}
	fields["check_type"] = checkType
	fields["operation"] = "health_check"
	h.server.LoggerService.GetApplication().RecordCustomEvent("HealthCheckError", fields)
}

// CheckHealth answers 200 when every dependency responds and 503 otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	settings := h.settings()
	checks := make(map[string]interface{})
	healthy := true

	for _, dep := range h.dependencies(settings) {
		ctx, cancel := context.WithTimeout(c.Request().Context(), settings.Timeout)
		depStart := time.Now()
		err := dep.ping(ctx)
		cancel()
		elapsed := time.Since(depStart)

		if err != nil {
			healthy = false
			checks[dep.name] = map[string]interface{}{
				"status":        "unhealthy",
				"response_time": elapsed.String(),
				"error":         err.Error(),
			}
			logger.Error().Err(err).Dur("response_time", elapsed).Msgf("%s health check failed", dep.name)
			h.recordFailure(dep.name, map[string]interface{}{
				"error_type":       dep.name + "_unhealthy",
				"response_time_ms": elapsed.Milliseconds(),
				"error_message":    err.Error(),
			})
			continue
		}

		checks[dep.name] = map[string]interface{}{
			"status":        "healthy",
			"response_time": elapsed.String(),
		}
	}

	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"checks":      checks,
	}

	if !healthy {
		response["status"] = "unhealthy"
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		h.recordFailure("overall", map[string]interface{}{
			"error_type":        "overall_unhealthy",
			"total_duration_ms": time.Since(start).Milliseconds(),
		})
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	return c.JSON(http.StatusOK, response)
}
