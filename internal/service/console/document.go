package console

import (
	"context"

	"github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"
)

// Document is the page a view-controller writes into. Lookups report false
// when the page has no element with that id.
type Document interface {
	Table(id string) (Table, bool)
	SetText(id, value string) bool
	Canvas(id string) (chartjs.Canvas, bool)
	SetChartDefaults(d chartjs.Defaults)
}

// Table is the body of an HTML table.
type Table interface {
	Clear()
	AppendRow(row Row)
}

type Row struct {
	Cells []string
	Links []Link
}

type Link struct {
	Href  string
	Label string
}

// Fetcher reads one JSON document from the admin API.
type Fetcher interface {
	GetJSON(ctx context.Context, endpoint string, dst any) error
}
