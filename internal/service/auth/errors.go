package auth

import (
	"errors"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
)

var (
	ErrInvalidToken    = types.ErrInvalidToken
	ErrExpToken        = types.ErrExpiredToken
	ErrActionForbidden = errors.New("action forbidden")
)
