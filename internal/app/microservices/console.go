package microservices

import (
	"context"

	"github.com/Temutjin2k/ride-hail-admin/config"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/backend"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/page"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/auth"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	"github.com/Temutjin2k/ride-hail-admin/pkg/tracing"
)

type ConsoleService struct {
	*runner
}

// NewConsole wires the administration pages. Page data is read from the
// admin API at cfg.Console.BackendURL.
func NewConsole(ctx context.Context, cfg config.Config, log logger.Logger) (*ConsoleService, error) {
	renderer, err := page.NewRenderer()
	if err != nil {
		log.Error(ctx, "Failed to parse page templates", err)
		return nil, err
	}

	shutdown, err := tracing.Setup(ctx, cfg.Mode.String(), cfg.Tracing)
	if err != nil {
		log.Warn(ctx, "tracing disabled", "reason", err.Error())
	}

	client := backend.New(cfg.Console.BackendURL, cfg.Console.FetchTimeout)

	consoleHandler := handler.NewConsole(client, handler.ConsoleEndpoints{
		Guests:    cfg.Console.GuestsAPI,
		Users:     cfg.Console.UsersAPI,
		KPIs:      cfg.Console.KPIsAPI,
		ChartData: cfg.Console.ChartDataAPI,
	}, renderer, log)

	httpServer, err := server.New(cfg, server.Handlers{
		Console: consoleHandler,
	}, auth.NewTokenService(cfg.Auth.JWTSecret), log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		_ = shutdown(ctx)
		return nil, err
	}

	return &ConsoleService{
		runner: &runner{
			name:       cfg.Mode.String(),
			httpServer: httpServer,
			shutdown:   shutdown,
			log:        log,
		},
	}, nil
}
