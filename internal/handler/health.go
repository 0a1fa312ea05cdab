package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/middleware"
	"github.com/NehaP1706/APILearn-ExerciseTracker/internal/server"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const defaultCheckTimeout = 5 * time.Second

// HealthHandler serves GET /status for load balancers and uptime checks.
type HealthHandler struct {
	Handler
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	return &HealthHandler{
		Handler: NewHandler(s),
	}
}

// CheckResult is one dependency entry in the health report.
type CheckResult struct {
	Status       string `json:"status"`
	ResponseTime string `json:"response_time"`
	Error        string `json:"error,omitempty"`
}

// HealthResponse is the body of GET /status.
type HealthResponse struct {
	Status      string                 `json:"status"`
	Timestamp   time.Time              `json:"timestamp"`
	Environment string                 `json:"environment"`
	Storage     string                 `json:"storage"`
	Checks      map[string]CheckResult `json:"checks"`
}

// CheckHealth pings the storage backend and redis, as enabled by
// observability.health_checks. A failing storage check answers 503; redis is
// optional and only reported.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	response := HealthResponse{
		Status:      "healthy",
		Timestamp:   start.UTC(),
		Environment: cfg.Primary.Env,
		Storage:     cfg.Storage.Driver,
		Checks:      make(map[string]CheckResult),
	}

	if h.checkEnabled("storage") {
		if ping := h.storagePing(); ping != nil {
			result := h.runCheck(c.Request().Context(), &logger, "storage", ping)
			response.Checks["storage"] = result
			if result.Status != "healthy" {
				response.Status = "unhealthy"
			}
		}
	}

	if h.checkEnabled("redis") && h.server.Redis != nil {
		response.Checks["redis"] = h.runCheck(c.Request().Context(), &logger, "redis", func(ctx context.Context) error {
			return h.server.Redis.Ping(ctx).Err()
		})
	}

	status := http.StatusOK
	if response.Status != "healthy" {
		status = http.StatusServiceUnavailable
		logger.Warn().Dur("total_duration", time.Since(start)).Msg("health check failed")
		h.recordHealthEvent("overall", "overall_unhealthy", time.Since(start), nil)
	} else {
		logger.Debug().Dur("total_duration", time.Since(start)).Msg("health check passed")
	}

	if err := c.JSON(status, response); err != nil {
		logger.Error().Err(err).Msg("failed to write JSON response")
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) checkEnabled(name string) bool {
	obs := h.server.Config.Observability
	return obs != nil && obs.HealthCheckEnabled(name)
}

func (h *HealthHandler) checkTimeout() time.Duration {
	obs := h.server.Config.Observability
	if obs == nil || obs.HealthChecks.Timeout <= 0 {
		return defaultCheckTimeout
	}
	return obs.HealthChecks.Timeout
}

// storagePing returns the ping of whichever backend is open, or nil.
func (h *HealthHandler) storagePing() func(context.Context) error {
	switch {
	case h.server.DB != nil:
		return h.server.DB.Ping
	case h.server.Mongo != nil:
		return h.server.Mongo.Ping
	default:
		return nil
	}
}

func (h *HealthHandler) runCheck(
	parent context.Context,
	logger *zerolog.Logger,
	name string,
	ping func(context.Context) error,
) CheckResult {
	ctx, cancel := context.WithTimeout(parent, h.checkTimeout())
	defer cancel()

	checkStart := time.Now()
	err := ping(ctx)
	elapsed := time.Since(checkStart)

	if err != nil {
		logger.Error().
			Err(err).
			Str("check", name).
			Dur("response_time", elapsed).
			Msg("health check failed")
		h.recordHealthEvent(name, name+"_unhealthy", elapsed, err)

		return CheckResult{
			Status:       "unhealthy",
			ResponseTime: elapsed.String(),
			Error:        err.Error(),
		}
	}

	logger.Debug().
		Str("check", name).
		Dur("response_time", elapsed).
		Msg("health check passed")

	return CheckResult{
		Status:       "healthy",
		ResponseTime: elapsed.String(),
	}
}

func (h *HealthHandler) recordHealthEvent(checkType, errorType string, elapsed time.Duration, err error) {
	app := h.server.LoggerService.GetApplication()
	if app == nil {
		return
	}

	attrs := map[string]interface{}{
		"check_type":       checkType,
		"operation":        "health_check",
		"error_type":       errorType,
		"response_time_ms": elapsed.Milliseconds(),
	}
	if err != nil {
		attrs["error_message"] = err.Error()
	}
	app.RecordCustomEvent("HealthCheckError", attrs)
}
