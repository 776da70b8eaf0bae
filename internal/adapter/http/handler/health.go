package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

// Check reports whether a dependency is usable.
type Check func(ctx context.Context) error

type Health struct {
	serviceName string
	checks      map[string]Check
	log         logger.Logger
}

func NewHealth(serviceName string, log logger.Logger) *Health {
	return &Health{
		serviceName: serviceName,
		checks:      make(map[string]Check),
		log:         log,
	}
}

// WithCheck adds a named dependency check to the health report.
func (a *Health) WithCheck(name string, c Check) *Health {
	a.checks[name] = c
	return a
}

// HealthCheck godoc
// @Summary      Health Check
// @Description  Returns the health status of the service and its dependencies
// @Tags         Health
// @Produce      json
// @Success      200  {object}  map[string]any
// @Failure      503  {object}  map[string]any
// @Router       /health [get]
func (a *Health) HealthCheck(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "health_check")

	status, code := "available", http.StatusOK
	deps := make(map[string]string, len(a.checks))

	for name, check := range a.checks {
		cctx, cancel := context.WithTimeout(ctx, 2*time.Second)
		err := check(cctx)
		cancel()

		if err != nil {
			a.log.Warn(ctx, "dependency check failed", "dependency", name, "reason", err.Error())
			deps[name] = "unavailable"
			status, code = "degraded", http.StatusServiceUnavailable
			continue
		}
		deps[name] = "ok"
	}

	response := map[string]any{
		"status": status,
		"system_info": map[string]string{
			"service-name": a.serviceName,
		},
	}
	if len(deps) > 0 {
		response["dependencies"] = deps
	}

	if err := writeJSON(w, code, response, nil); err != nil {
		a.log.Error(ctx, "healthcheck", err)
		return
	}
}
