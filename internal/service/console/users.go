package console

import (
	"context"
	"fmt"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-hail-admin/pkg/metrics"
)

const (
	UsersView  = "users"
	UsersTable = "usersTable"
)

// UsersList fills the users table from the users endpoint.
type UsersList struct {
	fetcher  Fetcher
	endpoint string
	log      logger.Logger
}

func NewUsersList(fetcher Fetcher, endpoint string, log logger.Logger) *UsersList {
	return &UsersList{
		fetcher:  fetcher,
		endpoint: endpoint,
		log:      log,
	}
}

func (v *UsersList) Load(ctx context.Context, doc Document) Result {
	ctx = wrap.WithView(ctx, UsersView)

	var payload models.UsersPayload
	if err := v.fetcher.GetJSON(ctx, v.endpoint, &payload); err != nil {
		return v.fail(ctx, err)
	}
	if payload.Users == nil {
		return v.fail(ctx, wrap.Error(ctx, fmt.Errorf("%w: %w: missing users", types.ErrFetchFailed, types.ErrMalformedPayload)))
	}

	n, ok := fillTable(doc, UsersTable, NormalizeUsers(payload.Users))
	if !ok {
		v.log.Debug(ctx, "users table not on page")
		metrics.RecordViewSection(UsersView, UsersTable, string(StatusSkipped))
		return Result{View: UsersView, Section: UsersTable, Status: StatusSkipped}
	}

	metrics.RecordViewSection(UsersView, UsersTable, string(StatusRendered))
	return rendered(UsersView, UsersTable, n)
}

func (v *UsersList) fail(ctx context.Context, err error) Result {
	v.log.Error(wrap.ErrorCtx(ctx, err), "error loading users", err)
	metrics.RecordViewSection(UsersView, UsersTable, string(StatusFailed))
	return failed(UsersView, UsersTable, err)
}
