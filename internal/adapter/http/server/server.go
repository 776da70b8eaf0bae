package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Temutjin2k/ride-hail-admin/config"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/handler"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/middleware"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

const serverIPAddress = "%s:%s"

var ErrHandlerMissing = errors.New("handler required for mode is missing")

type API struct {
	mode   types.ServiceMode
	mux    *http.ServeMux
	server *http.Server
	routes Handlers
	m      *middleware.Middleware

	addr string
	cfg  config.Config
	log  logger.Logger
}

// Handlers are the route handlers for one mode. Admin is required in
// admin-api mode, Console in admin-console mode.
type Handlers struct {
	Health  *handler.Health
	Admin   *handler.Admin
	Console *handler.Console
}

func New(cfg config.Config, routes Handlers, auth middleware.AuthService, logger logger.Logger) (*API, error) {
	var addr string

	switch cfg.Mode {
	case types.AdminAPI:
		if routes.Admin == nil {
			return nil, fmt.Errorf("%w: admin", ErrHandlerMissing)
		}
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.AdminAPI)
	case types.AdminConsole:
		if routes.Console == nil {
			return nil, fmt.Errorf("%w: console", ErrHandlerMissing)
		}
		addr = fmt.Sprintf(serverIPAddress, "0.0.0.0", cfg.Services.AdminConsole)
	default:
		return nil, fmt.Errorf("invalid mode: %s", cfg.Mode)
	}

	if routes.Health == nil {
		routes.Health = handler.NewHealth(cfg.Mode.String(), logger)
	}

	api := &API{
		mode: cfg.Mode,

		mux:    http.NewServeMux(),
		routes: routes,
		m:      middleware.NewMiddleware(auth, logger, cfg.Auth.LoginURL),
		addr:   addr,
		cfg:    cfg,
		log:    logger,
	}

	setupRoutes(api.mux, api.routes, api.m, api.mode, api.log)

	api.server = &http.Server{
		Addr:              api.addr,
		Handler:           api.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return api, nil
}

func (a *API) Stop(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ctx = wrap.WithAction(ctx, "http_server_stop")

	a.log.Debug(ctx, "shutting down HTTP server...", "address", a.addr)
	if err := a.server.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}
	a.log.Debug(ctx, "shutting down HTTP server completed")

	return nil
}

func (a *API) Run(ctx context.Context, errCh chan<- error) {
	go func() {
		ctx = wrap.WithAction(ctx, "http_server_start")
		a.log.Info(ctx, "started http server", "address", a.addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- fmt.Errorf("failed to start HTTP server: %w", err)
			return
		}
	}()
}

// Handler returns the mux wrapped in the middleware chain.
func (a *API) Handler() http.Handler {
	h := a.m.Recover(
		a.m.RequestID(
			a.m.Logging(
				a.m.Metrics(a.mode.String())(
					a.m.Auth(a.mux),
				),
			),
		),
	)
	return otelhttp.NewHandler(h, a.mode.String())
}
