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
	GuestsView  = "guests"
	GuestsTable = "guestsTable"
)

// GuestsList fills the guests table from the guests endpoint.
type GuestsList struct {
	fetcher  Fetcher
	endpoint string
	log      logger.Logger
}

func NewGuestsList(fetcher Fetcher, endpoint string, log logger.Logger) *GuestsList {
	return &GuestsList{
		fetcher:  fetcher,
		endpoint: endpoint,
		log:      log,
	}
}

// Load replaces the table body with one row per guest. On any failure the
// table is left as it was and the failure is logged and returned in the
// result.
func (v *GuestsList) Load(ctx context.Context, doc Document) Result {
	ctx = wrap.WithView(ctx, GuestsView)

	var payload models.GuestsPayload
	if err := v.fetcher.GetJSON(ctx, v.endpoint, &payload); err != nil {
		return v.fail(ctx, err)
	}
	if payload.Guests == nil {
		return v.fail(ctx, wrap.Error(ctx, fmt.Errorf("%w: %w: missing guests", types.ErrFetchFailed, types.ErrMalformedPayload)))
	}

	rows, err := NormalizeGuests(payload.Guests)
	if err != nil {
		v.log.Debug(ctx, "guest dates left blank", "reason", err.Error())
	}

	n, ok := fillTable(doc, GuestsTable, rows)
	if !ok {
		v.log.Debug(ctx, "guests table not on page")
		metrics.RecordViewSection(GuestsView, GuestsTable, string(StatusSkipped))
		return Result{View: GuestsView, Section: GuestsTable, Status: StatusSkipped}
	}

	metrics.RecordViewSection(GuestsView, GuestsTable, string(StatusRendered))
	return rendered(GuestsView, GuestsTable, n)
}

func (v *GuestsList) fail(ctx context.Context, err error) Result {
	v.log.Error(wrap.ErrorCtx(ctx, err), "error loading guests", err)
	metrics.RecordViewSection(GuestsView, GuestsTable, string(StatusFailed))
	return failed(GuestsView, GuestsTable, err)
}

func fillTable(doc Document, id string, rows []Row) (int, bool) {
	table, ok := doc.Table(id)
	if !ok {
		return 0, false
	}

	table.Clear()
	for _, row := range rows {
		table.AppendRow(row)
	}
	return len(rows), true
}
