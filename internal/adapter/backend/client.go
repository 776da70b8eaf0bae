package backend

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-hail-admin/pkg/metrics"
)

// Client reads JSON documents from the admin API. Every call is a single
// GET attempt; there are no retries.
type Client struct {
	http *resty.Client
}

// New creates a client for baseURL. A zero timeout means none.
func New(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTransport(otelhttp.NewTransport(http.DefaultTransport)).
		SetHeader("Accept", "application/json").
		SetRetryCount(0)

	if timeout > 0 {
		c.SetTimeout(timeout)
	}

	return &Client{http: c}
}

// GetJSON fetches endpoint and decodes the body into dst. Transport errors,
// non-2xx statuses and undecodable bodies all return an error wrapping
// types.ErrFetchFailed.
func (c *Client) GetJSON(ctx context.Context, endpoint string, dst any) (err error) {
	const op = "backend.Client.GetJSON"

	if endpoint == "" {
		return wrap.Error(ctx, fmt.Errorf("%s: %w: %w", op, types.ErrFetchFailed, types.ErrEndpointNotSet))
	}

	start := time.Now()
	defer func() {
		metrics.RecordBackendFetch(endpoint, err, time.Since(start))
	}()

	req := c.http.R().SetContext(ctx)
	if creds, ok := CredentialsFromContext(ctx); ok {
		if creds.Cookie != "" {
			req.SetHeader("Cookie", creds.Cookie)
		}
		if creds.Authorization != "" {
			req.SetHeader("Authorization", creds.Authorization)
		}
	}

	resp, err := req.Get(endpoint)
	if err != nil {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w: request %s: %w", op, types.ErrFetchFailed, endpoint, err))
	}

	if !resp.IsSuccess() {
		ctx = wrap.WithAction(ctx, types.ActionExternalServiceFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w: %w %d from %s", op, types.ErrFetchFailed, types.ErrUnexpectedStatus, resp.StatusCode(), endpoint))
	}

	if err := json.Unmarshal(resp.Body(), dst); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionDecodePayloadFailed)
		return wrap.Error(ctx, fmt.Errorf("%s: %w: %w: %w", op, types.ErrFetchFailed, types.ErrMalformedPayload, err))
	}

	return nil
}

// IsFetchFailure reports whether err came from a failed backend read.
func IsFetchFailure(err error) bool {
	return errors.Is(err, types.ErrFetchFailed)
}
