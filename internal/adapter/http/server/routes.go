package server

import (
	"context"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

// setupRoutes - setups http routes
func setupRoutes(mux *http.ServeMux, routes Handlers, m *middleware.Middleware, mode types.ServiceMode, log logger.Logger) {
	// System Health
	mux.HandleFunc("GET /health", routes.Health.HealthCheck)

	setupMetricsRoute(mux)

	switch mode {
	case types.AdminAPI:
		setupSwaggerRoutes(mux, mode, log)
		setupAdminAPIRoutes(mux, routes, m)
	case types.AdminConsole:
		setupConsoleRoutes(mux, routes, m)
	}
}

// setupAdminAPIRoutes setups the JSON routes the console pages read from
func setupAdminAPIRoutes(mux *http.ServeMux, routes Handlers, m *middleware.Middleware) {
	mux.Handle("GET /administration/guests/api/", m.RequireRoles(http.HandlerFunc(routes.Admin.GetGuests), types.AdminRole))        // List guests
	mux.Handle("GET /administration/users/api/", m.RequireRoles(http.HandlerFunc(routes.Admin.GetUsers), types.AdminRole))          // List users
	mux.Handle("GET /administration/api/kpis/", m.RequireRoles(http.HandlerFunc(routes.Admin.GetKPIs), types.AdminRole))            // Dashboard KPIs
	mux.Handle("GET /administration/api/chart-data/", m.RequireRoles(http.HandlerFunc(routes.Admin.GetChartData), types.AdminRole)) // Dashboard chart series
}

// setupConsoleRoutes setups the administration pages
func setupConsoleRoutes(mux *http.ServeMux, routes Handlers, m *middleware.Middleware) {
	mux.Handle("GET /administration/{$}", m.RequireRoles(http.HandlerFunc(routes.Console.Dashboard), types.AdminRole))
	mux.Handle("GET /administration/guests/{$}", m.RequireRoles(http.HandlerFunc(routes.Console.Guests), types.AdminRole))
	mux.Handle("GET /administration/users/{$}", m.RequireRoles(http.HandlerFunc(routes.Console.Users), types.AdminRole))
}

// setupSwaggerRoutes configures Swagger UI endpoints based on service mode
func setupSwaggerRoutes(mux *http.ServeMux, mode types.ServiceMode, log logger.Logger) {
	var instanceName string

	switch mode {
	case types.AdminAPI:
		instanceName = "admin"
	default:
		log.Warn(wrap.WithAction(context.Background(), "setup swagger routes"), "no swagger docs for service mode", "mode", mode)
		return
	}

	// Swagger UI endpoint
	swaggerURL := httpSwagger.InstanceName(instanceName)
	mux.HandleFunc("/swagger/", httpSwagger.Handler(swaggerURL))
}

// setupMetricsRoute configures the Prometheus metrics endpoint
func setupMetricsRoute(mux *http.ServeMux) {
	mux.Handle("/metrics", promhttp.Handler())
}
