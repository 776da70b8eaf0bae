package console

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/url"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
)

var (
	DefaultDayLabels  = []string{"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun"}
	DefaultHourLabels = []string{"0h", "4h", "8h", "12h", "16h", "20h", "24h"}
)

// User row actions, in display order.
var userActions = []struct{ path, label string }{
	{"view", "View"},
	{"edit", "Edit"},
	{"support-chat", "Support Chat"},
	{"vehicles", "Vehicles"},
}

// KPIView holds the six dashboard text slots, ready for display.
type KPIView struct {
	ActiveUsers    string
	RidesToday     string
	Cancellations  string
	AvgWait        string
	CompletedTrips string
	Flagged        string
}

// ChartSeries is chart data with every default applied. A nil element is
// a gap in the series.
type ChartSeries struct {
	Labels         []string
	TSRides        []*float64
	ByHourLabels   []string
	ByHour         []*float64
	Drivers        []*float64
	Riders         []*float64
	CancelReasons  []*float64
	CompletedTrips []*float64
	AvgWait        []*float64
}

func NormalizeKPIs(rec models.KPIRecord) KPIView {
	return KPIView{
		ActiveUsers:    TextOrPlaceholder(rec.ActiveUsers),
		RidesToday:     TextOrPlaceholder(rec.RidesToday),
		Cancellations:  TextOrPlaceholder(rec.Cancellations),
		AvgWait:        FormatMinSec(rec.AvgWaitMinutes),
		CompletedTrips: TextOrPlaceholder(rec.CompletedTrips),
		Flagged:        TextOrPlaceholder(rec.FlaggedIncidents),
	}
}

// NormalizeCharts applies the series defaults: weekday labels, 4-hour
// bucket labels, empty series, and tsRides standing in for completedTrips.
func NormalizeCharts(rec models.ChartRecord) ChartSeries {
	s := ChartSeries{
		Labels:        labelsOr(rec.Labels, DefaultDayLabels),
		TSRides:       seriesOr(rec.TSRides, []*float64{}),
		ByHourLabels:  labelsOr(rec.ByHourLabels, DefaultHourLabels),
		ByHour:        seriesOr(rec.ByHour, []*float64{}),
		Drivers:       seriesOr(rec.Drivers, []*float64{}),
		Riders:        seriesOr(rec.Riders, []*float64{}),
		CancelReasons: seriesOr(rec.CancelReasons, []*float64{}),
		AvgWait:       seriesOr(rec.AvgWait, []*float64{}),
	}
	s.CompletedTrips = seriesOr(rec.CompletedTrips, s.TSRides)
	return s
}

// NormalizeGuests builds one row per guest: username, guest number,
// creation date and the support chat link. Timestamps that do not parse
// leave the date cell empty and are reported in the returned error; the
// rows are complete either way.
func NormalizeGuests(recs []models.GuestRecord) ([]Row, error) {
	rows := make([]Row, 0, len(recs))
	var errs []error

	for _, g := range recs {
		created, err := FormatDate(g.CreatedAt)
		if err != nil {
			errs = append(errs, fmt.Errorf("guest %s: %w", g.ID.Text(), err))
		}

		row := Row{
			Cells: []string{
				labelOrPlaceholder(g.Username),
				TextOrPlaceholder(g.GuestNumber),
				created,
			},
		}
		if id := g.ID.Text(); id != "" {
			row.Links = []Link{{
				Href:  "/administration/guests/" + url.PathEscape(id) + "/support-chat/",
				Label: "Open Chat",
			}}
		}
		rows = append(rows, row)
	}

	return rows, errors.Join(errs...)
}

// NormalizeUsers builds one row per user: name, email, status and the
// four action links.
func NormalizeUsers(recs []models.UserRecord) []Row {
	rows := make([]Row, 0, len(recs))

	for _, u := range recs {
		row := Row{
			Cells: []string{
				labelOrPlaceholder(u.Name),
				TextOrPlaceholder(u.Email),
				labelOrPlaceholder(u.Status),
			},
		}
		if id := u.ID.Text(); id != "" {
			base := "/administration/users/" + url.PathEscape(id) + "/"
			row.Links = make([]Link, 0, len(userActions))
			for _, a := range userActions {
				row.Links = append(row.Links, Link{Href: base + a.path + "/", Label: a.label})
			}
		}
		rows = append(rows, row)
	}

	return rows
}

func labelOrPlaceholder(v models.Scalar) string {
	if s := cleanLabel(v.Text()); s != "" {
		return s
	}
	return Placeholder
}

// asArray returns the elements of raw, or false when raw is absent or not
// a JSON array.
func asArray(raw json.RawMessage) ([]models.Scalar, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, false
	}

	var out []models.Scalar
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, false
	}
	if out == nil {
		out = []models.Scalar{}
	}
	return out, true
}

func seriesOr(raw json.RawMessage, def []*float64) []*float64 {
	elems, ok := asArray(raw)
	if !ok {
		return def
	}

	out := make([]*float64, len(elems))
	for i, e := range elems {
		if f, ok := e.Float(); ok && !math.IsNaN(f) && !math.IsInf(f, 0) {
			out[i] = &f
		}
	}
	return out
}

func labelsOr(raw json.RawMessage, def []string) []string {
	elems, ok := asArray(raw)
	if !ok {
		return append([]string(nil), def...)
	}

	out := make([]string, len(elems))
	for i, e := range elems {
		out[i] = cleanLabel(e.Text())
	}
	return out
}
