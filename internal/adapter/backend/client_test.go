package backend

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
)

func TestGetJSON(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodGet, r.Method)

		switch r.URL.Path {
		case "/ok/":
			assert.Equal(t, "sessionid=abc", r.Header.Get("Cookie"))
			assert.Equal(t, "Bearer t", r.Header.Get("Authorization"))
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(`{"n": 3}`))
		case "/broken/":
			_, _ = w.Write([]byte(`{"n": `))
		case "/html/":
			w.Header().Set("Content-Type", "text/html")
			_, _ = w.Write([]byte(`{"n": 5}`))
		default:
			http.Error(w, "boom", http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	client := New(srv.URL, time.Second)

	t.Run("success forwards credentials", func(t *testing.T) {
		ctx := WithCredentials(context.Background(), Credentials{Cookie: "sessionid=abc", Authorization: "Bearer t"})

		var dst struct{ N int }
		require.NoError(t, client.GetJSON(ctx, "/ok/", &dst))
		assert.Equal(t, 3, dst.N)
	})

	t.Run("decodes regardless of content type", func(t *testing.T) {
		var dst struct{ N int }
		require.NoError(t, client.GetJSON(context.Background(), "html/", &dst))
		assert.Equal(t, 5, dst.N)
	})

	t.Run("non-2xx is a fetch failure", func(t *testing.T) {
		before := calls
		var dst struct{}
		err := client.GetJSON(context.Background(), "/missing/", &dst)
		require.Error(t, err)
		assert.True(t, IsFetchFailure(err))
		assert.ErrorIs(t, err, types.ErrUnexpectedStatus)
		assert.Equal(t, before+1, calls, "single attempt")
	})

	t.Run("malformed body is a fetch failure", func(t *testing.T) {
		var dst struct{}
		err := client.GetJSON(context.Background(), "/broken/", &dst)
		assert.ErrorIs(t, err, types.ErrFetchFailed)
		assert.ErrorIs(t, err, types.ErrMalformedPayload)
	})

	t.Run("empty endpoint", func(t *testing.T) {
		err := client.GetJSON(context.Background(), "", &struct{}{})
		assert.ErrorIs(t, err, types.ErrEndpointNotSet)
	})
}

func TestGetJSONTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(url, 0).GetJSON(context.Background(), "/x/", &struct{}{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrFetchFailed))
}

func TestCredentialsFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/administration/", nil)
	r.Header.Set("Cookie", "a=b")

	creds := CredentialsFromRequest(r)
	assert.Equal(t, "a=b", creds.Cookie)
	assert.Empty(t, creds.Authorization)
}
