package middleware

import (
	"context"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
)

type (
	AuthService interface {
		Enabled() bool
		Validate(ctx context.Context, token string) (*models.AuthUser, error)
	}

	Middleware struct {
		auth     AuthService
		log      logger.Logger
		loginURL string
	}
)

// NewMiddleware builds the middleware set. When loginURL is set, browsers
// without a valid session are redirected there instead of getting a 401.
func NewMiddleware(auth AuthService, log logger.Logger, loginURL string) *Middleware {
	return &Middleware{
		auth:     auth,
		log:      log,
		loginURL: loginURL,
	}
}
