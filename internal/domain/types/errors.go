package types

import "errors"

var (
	ErrNotFound = errors.New("requested item not found")

	// ErrFetchFailed covers every way a backend read can fail: transport error,
	// non-2xx status or an undecodable body.
	ErrFetchFailed      = errors.New("fetch failed")
	ErrUnexpectedStatus = errors.New("unexpected response status")
	ErrMalformedPayload = errors.New("malformed payload")
	ErrCanvasInUse      = errors.New("canvas is already in use")
	ErrEndpointNotSet   = errors.New("endpoint not configured")
	ErrInvalidToken     = errors.New("invalid token")
	ErrExpiredToken     = errors.New("token expired")
	ErrDatabaseNotReady = errors.New("database not initialized")
)
