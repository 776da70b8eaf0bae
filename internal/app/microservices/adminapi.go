package microservices

import (
	"context"
	"fmt"
	"time"

	"github.com/Temutjin2k/ride-hail-admin/config"
	_ "github.com/Temutjin2k/ride-hail-admin/docs"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/server"
	repo "github.com/Temutjin2k/ride-hail-admin/internal/adapter/postgres"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/admin"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/auth"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	"github.com/Temutjin2k/ride-hail-admin/pkg/postgres"
	"github.com/Temutjin2k/ride-hail-admin/pkg/tracing"
)

type AdminAPIService struct {
	*runner
	postgresDB *postgres.PostgreDB
}

// NewAdminAPI wires the JSON API over the ride database.
func NewAdminAPI(ctx context.Context, cfg config.Config, log logger.Logger) (*AdminAPIService, error) {
	loc, err := time.LoadLocation(cfg.AdminAPI.Timezone)
	if err != nil {
		return nil, fmt.Errorf("load timezone %q: %w", cfg.AdminAPI.Timezone, err)
	}

	shutdown, err := tracing.Setup(ctx, cfg.Mode.String(), cfg.Tracing)
	if err != nil {
		log.Warn(ctx, "tracing disabled", "reason", err.Error())
	}

	postgresDB, err := postgres.New(ctx, cfg.Database)
	if err != nil {
		log.Error(ctx, "Failed to setup database", err)
		_ = shutdown(ctx)
		return nil, err
	}

	adminRepo := repo.NewAdminRepo(postgresDB.Pool)
	adminService := admin.NewAdminService(adminRepo, loc, log)

	health := handler.NewHealth(cfg.Mode.String(), log).
		WithCheck("postgres", postgresDB.Pool.Ping)

	httpServer, err := server.New(cfg, server.Handlers{
		Health: health,
		Admin:  handler.NewAdmin(adminService, log),
	}, auth.NewTokenService(cfg.Auth.JWTSecret), log)
	if err != nil {
		log.Error(ctx, "Failed to setup http server", err)
		postgresDB.Close()
		_ = shutdown(ctx)
		return nil, err
	}

	return &AdminAPIService{
		runner: &runner{
			name:       cfg.Mode.String(),
			httpServer: httpServer,
			shutdown:   shutdown,
			closers:    []func(){postgresDB.Close},
			log:        log,
		},
		postgresDB: postgresDB,
	}, nil
}
