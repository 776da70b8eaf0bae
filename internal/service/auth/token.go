package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

// TokenService verifies HS256 access tokens issued by the ride-hail auth
// service. It does not issue tokens.
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secret: []byte(secret),
	}
}

// Enabled reports whether a secret is configured. Without one every
// request is let through.
func (s *TokenService) Enabled() bool {
	return len(s.secret) > 0
}

// Validate parses token and returns the caller it identifies.
func (s *TokenService) Validate(ctx context.Context, token string) (*models.AuthUser, error) {
	ctx = wrap.WithAction(ctx, "validate_token")

	claims := &models.AccessClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, wrap.Error(ctx, ErrExpToken)
		}
		return nil, wrap.Error(ctx, fmt.Errorf("%w: %w", ErrInvalidToken, err))
	}
	if !parsed.Valid {
		return nil, wrap.Error(ctx, ErrInvalidToken)
	}

	if claims.Role == "" {
		return nil, wrap.Error(ctx, fmt.Errorf("%w: missing 'role' claim", ErrInvalidToken))
	}

	return &models.AuthUser{
		ID:    claims.Subject,
		Name:  claims.Name,
		Email: claims.Email,
		Role:  strings.ToUpper(claims.Role),
	}, nil
}

// RoleCheck validates token and requires one of roles.
func (s *TokenService) RoleCheck(ctx context.Context, token string, roles ...types.UserRole) (*models.AuthUser, error) {
	user, err := s.Validate(ctx, token)
	if err != nil {
		return nil, err
	}

	for _, r := range roles {
		if types.UserRole(user.Role) == r {
			return user, nil
		}
	}
	if len(roles) == 0 {
		return user, nil
	}

	ctx = wrap.WithUserID(ctx, user.ID)
	return user, wrap.Error(ctx, ErrActionForbidden)
}
