package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
)

const (
	guestsEndpoint = "/administration/guests/api/"
	usersEndpoint  = "/administration/users/api/"
)

func guestsBody(n int) string {
	items := make([]string, n)
	for i := range items {
		items[i] = fmt.Sprintf(`{"id": %d, "username": "guest%d", "guest_number": %d, "created_at": "2024-01-02T03:04:05Z"}`, i+1, i+1, 100+i)
	}
	return `{"guests": [` + strings.Join(items, ",") + `]}`
}

func TestGuestsListLoad(t *testing.T) {
	for _, n := range []int{0, 1, 5, 40} {
		t.Run(fmt.Sprintf("%d guests", n), func(t *testing.T) {
			fetcher := newFakeFetcher(map[string]response{guestsEndpoint: {body: guestsBody(n)}})
			doc := newFakeDocument(GuestsTable)
			doc.tables[GuestsTable].rows = []Row{{Cells: []string{"stale"}}}

			res := NewGuestsList(fetcher, guestsEndpoint, logger.Discard()).Load(context.Background(), doc)

			require.True(t, res.OK())
			assert.Equal(t, n, res.Rows)

			rows := doc.tables[GuestsTable].rows
			require.Len(t, rows, n)
			for i, row := range rows {
				require.Len(t, row.Links, 1)
				assert.Contains(t, row.Links[0].Href, fmt.Sprintf("/%d/", i+1))
				assert.Equal(t, "2024-01-02 03:04", row.Cells[2])
			}
		})
	}
}

func TestGuestsListFailureLeavesTable(t *testing.T) {
	stale := []Row{{Cells: []string{"stale"}}}

	tests := map[string]response{
		"http error":   {err: fmt.Errorf("%w: %w 500", types.ErrFetchFailed, types.ErrUnexpectedStatus)},
		"bad json":     {body: `{"guests": [`},
		"missing key":  {body: `{"data": []}`},
		"wrong shape":  {body: `{"guests": {"id": 1}}`},
		"network down": {err: fmt.Errorf("%w: dial tcp: refused", types.ErrFetchFailed)},
	}

	for name, resp := range tests {
		t.Run(name, func(t *testing.T) {
			fetcher := newFakeFetcher(map[string]response{guestsEndpoint: resp})
			doc := newFakeDocument(GuestsTable)
			doc.tables[GuestsTable].rows = stale

			res := NewGuestsList(fetcher, guestsEndpoint, logger.Discard()).Load(context.Background(), doc)

			assert.Equal(t, StatusFailed, res.Status)
			assert.ErrorIs(t, res.Err, types.ErrFetchFailed)
			assert.Equal(t, stale, doc.tables[GuestsTable].rows)
			assert.Zero(t, doc.tables[GuestsTable].cleared)
			assert.Equal(t, 1, fetcher.calls[guestsEndpoint], "no retry")
		})
	}
}

func TestGuestsListMissingTable(t *testing.T) {
	fetcher := newFakeFetcher(map[string]response{guestsEndpoint: {body: guestsBody(2)}})

	res := NewGuestsList(fetcher, guestsEndpoint, logger.Discard()).Load(context.Background(), newFakeDocument())
	assert.Equal(t, StatusSkipped, res.Status)
	assert.NoError(t, res.Err)
}

func TestUsersListLoad(t *testing.T) {
	body := `{"users": [
		{"id": 1, "name": "Ann", "email": "a@x.io", "status": "ACTIVE"},
		{"id": 2, "name": "Bob", "email": "b@x.io", "status": "BANNED"},
		{"id": 3, "name": "Cy", "email": "c@x.io", "status": "INACTIVE"}
	]}`
	fetcher := newFakeFetcher(map[string]response{usersEndpoint: {body: body}})
	doc := newFakeDocument(UsersTable)

	res := NewUsersList(fetcher, usersEndpoint, logger.Discard()).Load(context.Background(), doc)
	require.True(t, res.OK())
	assert.Equal(t, 3, res.Rows)

	rows := doc.tables[UsersTable].rows
	require.Len(t, rows, 3)
	for i, row := range rows {
		require.Len(t, row.Links, 4)
		for j, action := range []string{"view", "edit", "support-chat", "vehicles"} {
			assert.Equal(t, fmt.Sprintf("/administration/users/%d/%s/", i+1, action), row.Links[j].Href)
		}
	}
	assert.Equal(t, []string{"Bob", "b@x.io", "BANNED"}, rows[1].Cells)
}

func TestUsersListFailure(t *testing.T) {
	boom := errors.New("boom")
	fetcher := newFakeFetcher(map[string]response{usersEndpoint: {err: boom}})
	doc := newFakeDocument(UsersTable)

	res := NewUsersList(fetcher, usersEndpoint, logger.Discard()).Load(context.Background(), doc)
	assert.False(t, res.OK())
	assert.ErrorIs(t, res.Err, boom)
	assert.Empty(t, doc.tables[UsersTable].rows)

	fetcher = newFakeFetcher(map[string]response{usersEndpoint: {body: `{}`}})
	res = NewUsersList(fetcher, usersEndpoint, logger.Discard()).Load(context.Background(), doc)
	assert.ErrorIs(t, res.Err, types.ErrMalformedPayload)
}
