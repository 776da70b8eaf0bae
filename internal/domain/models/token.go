package models

import (
	"context"

	"github.com/golang-jwt/jwt/v5"
)

const Access = "access_token"

// AccessClaims are the claims the administration pages accept.
type AccessClaims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// AuthUser is the caller resolved from a verified access token.
type AuthUser struct {
	ID    string
	Name  string
	Email string
	Role  string
}

type userCtxKey struct{}

func WithUser(ctx context.Context, u *AuthUser) context.Context {
	return context.WithValue(ctx, userCtxKey{}, u)
}

// UserFromContext returns the authenticated caller, or nil.
func UserFromContext(ctx context.Context) *AuthUser {
	u, _ := ctx.Value(userCtxKey{}).(*AuthUser)
	return u
}
