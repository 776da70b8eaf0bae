package microservices

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/server"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	"github.com/Temutjin2k/ride-hail-admin/pkg/tracing"
)

// runner is the lifecycle shared by both modes: serve until an OS signal
// or a server error, then shut everything down.
type runner struct {
	name       string
	httpServer *server.API
	shutdown   tracing.ShutdownFunc
	closers    []func()
	log        logger.Logger
}

func (s *runner) Start(ctx context.Context) error {
	errCh := make(chan error, 1)

	s.httpServer.Run(ctx, errCh)
	defer func() {
		s.close(ctx)
		s.log.Info(ctx, "service closed", "service", s.name)
	}()

	// Waiting signal
	shutdownCh := make(chan os.Signal, 1)
	signal.Notify(shutdownCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(shutdownCh)

	s.log.Info(ctx, "service has been started", "service", s.name)

	select {
	case errRun := <-errCh:
		return errRun
	case sig := <-shutdownCh:
		s.log.Info(ctx, "shuting down application", "signal", sig.String())
		return nil
	}
}

func (s *runner) close(ctx context.Context) {
	if s.httpServer != nil {
		if err := s.httpServer.Stop(ctx); err != nil {
			s.log.Warn(ctx, "Failed to gracefully close http server", "error", err.Error())
		}
	}

	if s.shutdown != nil {
		if err := s.shutdown(ctx); err != nil {
			s.log.Warn(ctx, "Failed to flush traces", "error", err.Error())
		}
	}

	for _, c := range s.closers {
		c()
	}
}
