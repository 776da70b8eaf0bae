package backend

import (
	"context"
	"net/http"
)

// Credentials are the caller's headers forwarded with every backend read,
// so the admin API sees the same session as the console page.
type Credentials struct {
	Cookie        string
	Authorization string
}

type credentialsKey struct{}

func WithCredentials(ctx context.Context, creds Credentials) context.Context {
	return context.WithValue(ctx, credentialsKey{}, creds)
}

// CredentialsFromRequest copies the forwarded headers from an inbound request.
func CredentialsFromRequest(r *http.Request) Credentials {
	return Credentials{
		Cookie:        r.Header.Get("Cookie"),
		Authorization: r.Header.Get("Authorization"),
	}
}

// CredentialsFromContext returns the credentials set by WithCredentials, if any.
func CredentialsFromContext(ctx context.Context) (Credentials, bool) {
	creds, ok := ctx.Value(credentialsKey{}).(Credentials)
	return creds, ok
}
