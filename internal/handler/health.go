package handler

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/deppfellow/hr-validator/internal/middleware"
	"github.com/deppfellow/hr-validator/internal/server"
	"github.com/deppfellow/hr-validator/internal/validation"
	"github.com/labstack/echo/v4"
)

// HealthHandler serves /status for load balancers and uptime monitors.
type HealthHandler struct {
	Handler
	checks map[string]func(ctx context.Context) error
}

func NewHealthHandler(s *server.Server) *HealthHandler {
	h := &HealthHandler{
		Handler: NewHandler(s),
	}
	h.checks = map[string]func(ctx context.Context) error{
		"validator": h.checkValidator,
	}
	return h
}

// checkValidator runs a known-good contract through the validator. It fails
// if the rule set or the clock is broken.
func (h *HealthHandler) checkValidator(_ context.Context) error {
	v := h.server.Validator
	start := v.Today().AddDays(30)

	_, err := v.ValidateEmploymentInformation(validation.Payload{
		"visaCompliance":              true,
		"workHoursPerWeek":            40,
		"contractStartDate":           start.String(),
		"employmentTerms":             "Indefinite",
		"timeOff":                     20,
		"probationPeriod":             30,
		"noticePeriodDuringProbation": 7,
		"noticePeriodAfterProbation":  30,
		"compensation":                1000.0,
	})
	return err
}

// CheckHealth returns 200 when every configured check passes and 503
// otherwise.
func (h *HealthHandler) CheckHealth(c echo.Context) error {
	start := time.Now()
	cfg := h.server.Config.Observability.HealthChecks

	logger := middleware.GetLogger(c).With().
		Str("operation", "health_check").
		Logger()

	checks := make(map[string]interface{})
	response := map[string]interface{}{
		"status":      "healthy",
		"timestamp":   time.Now().UTC(),
		"environment": h.server.Config.Primary.Env,
		"uptime":      time.Since(h.server.StartedAt).Round(time.Second).String(),
		"checks":      checks,
	}

	isHealthy := true

	if cfg.Enabled {
		for _, name := range cfg.Checks {
			check, ok := h.checks[name]
			if !ok {
				checks[name] = map[string]interface{}{"status": "unknown"}
				continue
			}

			checkStart := time.Now()
			err := h.runCheck(c.Request().Context(), check, cfg.Timeout)
			elapsed := time.Since(checkStart)

			if err != nil {
				isHealthy = false
				checks[name] = map[string]interface{}{
					"status":        "unhealthy",
					"response_time": elapsed.String(),
					"error":         err.Error(),
				}

				logger.Error().
					Err(err).
					Str("check", name).
					Dur("response_time", elapsed).
					Msg("health check failed")

				h.recordHealthCheckError(name, elapsed, err)
				continue
			}

			checks[name] = map[string]interface{}{
				"status":        "healthy",
				"response_time": elapsed.String(),
			}
		}
	}

	if !isHealthy {
		response["status"] = "unhealthy"
		logger.Warn().
			Dur("total_duration", time.Since(start)).
			Msg("health check failed")
		return c.JSON(http.StatusServiceUnavailable, response)
	}

	logger.Debug().
		Dur("total_duration", time.Since(start)).
		Msg("health check passed")

	if err := c.JSON(http.StatusOK, response); err != nil {
		return fmt.Errorf("failed to write JSON response: %w", err)
	}
	return nil
}

func (h *HealthHandler) runCheck(ctx context.Context, check func(ctx context.Context) error, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	done := make(chan error, 1)
	go func() {
		done <- check(ctx)
	}()

	select {
	case err := <-done:
		return err
	case <-ctx.Done():
		return fmt.Errorf("check timed out: %w", ctx.Err())
	}
}

func (h *HealthHandler) recordHealthCheckError(check string, elapsed time.Duration, err error) {
	if app := h.server.LoggerService.GetApplication(); app != nil {
		app.RecordCustomEvent("HealthCheckError", map[string]interface{}{
			"check_type":       check,
			"operation":        "health_check",
			"response_time_ms": elapsed.Milliseconds(),
			"error_message":    err.Error(),
		})
	}
}
