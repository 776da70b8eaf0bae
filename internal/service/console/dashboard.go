package console

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-hail-admin/pkg/metrics"
)

const (
	DashboardView = "dashboard"
	KPIsSection   = "kpis"
	ChartsSection = "charts"
)

// KPI text slots.
const (
	SlotActiveUsers    = "kpi-active-users"
	SlotRidesToday     = "kpi-rides-today"
	SlotCancellations  = "kpi-cancellations"
	SlotWaitTime       = "kpi-wait-time"
	SlotCompletedTrips = "kpi-completed-trips"
	SlotFlagged        = "kpi-flagged"
)

type DashboardEndpoints struct {
	KPIs      string
	ChartData string
}

// Dashboard fills the KPI slots and draws the five charts. It owns the
// charts it has drawn, keyed by mount point, and replaces them on every
// Load. A Dashboard serves one page; it is not safe for concurrent Loads.
type Dashboard struct {
	fetcher   Fetcher
	endpoints DashboardEndpoints
	log       logger.Logger

	charts map[string]*chartjs.Chart
}

func NewDashboard(fetcher Fetcher, endpoints DashboardEndpoints, log logger.Logger) *Dashboard {
	return &Dashboard{
		fetcher:   fetcher,
		endpoints: endpoints,
		log:       log,
		charts:    make(map[string]*chartjs.Chart),
	}
}

// Load issues both fetches concurrently and applies whichever succeed.
// A failed fetch only leaves its own section unpopulated.
func (d *Dashboard) Load(ctx context.Context, doc Document) DashboardResult {
	ctx = wrap.WithView(ctx, DashboardView)

	var (
		kpis              models.KPIRecord
		charts            models.ChartRecord
		kpisErr, chartErr error
		g                 errgroup.Group
	)

	g.Go(func() error {
		kpisErr = d.fetcher.GetJSON(ctx, d.endpoints.KPIs, &kpis)
		return nil
	})
	g.Go(func() error {
		chartErr = d.fetcher.GetJSON(ctx, d.endpoints.ChartData, &charts)
		return nil
	})
	_ = g.Wait()

	var res DashboardResult

	if kpisErr != nil {
		d.log.Error(wrap.ErrorCtx(ctx, kpisErr), "error loading KPIs", kpisErr)
		res.KPIs = failed(DashboardView, KPIsSection, kpisErr)
	} else {
		res.KPIs = d.renderKPIs(ctx, doc, NormalizeKPIs(kpis))
	}
	metrics.RecordViewSection(DashboardView, KPIsSection, string(res.KPIs.Status))

	if chartErr != nil {
		d.log.Error(wrap.ErrorCtx(ctx, chartErr), "error loading chart data", chartErr)
		res.Charts = failed(DashboardView, ChartsSection, chartErr)
	} else {
		res.Mounted = d.renderCharts(ctx, doc, NormalizeCharts(charts))
		res.Charts = rendered(DashboardView, ChartsSection, len(res.Mounted))
	}
	metrics.RecordViewSection(DashboardView, ChartsSection, string(res.Charts.Status))

	return res
}

func (d *Dashboard) renderKPIs(ctx context.Context, doc Document, v KPIView) Result {
	slots := []struct{ id, value string }{
		{SlotActiveUsers, v.ActiveUsers},
		{SlotRidesToday, v.RidesToday},
		{SlotCancellations, v.Cancellations},
		{SlotWaitTime, v.AvgWait},
		{SlotCompletedTrips, v.CompletedTrips},
		{SlotFlagged, v.Flagged},
	}

	n := 0
	for _, s := range slots {
		if doc.SetText(s.id, s.value) {
			n++
		} else {
			d.log.Debug(ctx, "KPI slot not on page", "slot", s.id)
		}
	}
	return rendered(DashboardView, KPIsSection, n)
}

func (d *Dashboard) renderCharts(ctx context.Context, doc Document, s ChartSeries) []string {
	doc.SetChartDefaults(chartjs.StandardDefaults())

	var mounted []string
	for _, spec := range buildCharts(s) {
		ok, err := d.renderChart(doc, spec.mount, spec.config)
		if err != nil {
			d.log.Error(wrap.ErrorCtx(ctx, err), "failed to draw chart", err, "mount", spec.mount)
			continue
		}
		if !ok {
			d.log.Debug(ctx, "chart mount not on page", "mount", spec.mount)
			continue
		}
		mounted = append(mounted, spec.mount)
	}
	return mounted
}

// renderChart destroys any chart at mount before drawing cfg there.
// A mount missing from the page is skipped.
func (d *Dashboard) renderChart(doc Document, mount string, cfg chartjs.Config) (bool, error) {
	canvas, ok := doc.Canvas(mount)
	if !ok {
		return false, nil
	}

	if prev, ok := d.charts[mount]; ok {
		prev.Destroy()
		delete(d.charts, mount)
	}

	chart, err := chartjs.New(canvas, cfg)
	if err != nil {
		return false, err
	}

	d.charts[mount] = chart
	metrics.RecordChartRender(mount)
	return true, nil
}

// Chart returns the live chart at mount.
func (d *Dashboard) Chart(mount string) (*chartjs.Chart, bool) {
	c, ok := d.charts[mount]
	return c, ok
}

// ChartCount is the number of live charts the dashboard owns.
func (d *Dashboard) ChartCount() int {
	return len(d.charts)
}

// Close destroys every chart the dashboard owns.
func (d *Dashboard) Close() {
	for mount, c := range d.charts {
		c.Destroy()
		delete(d.charts, mount)
	}
}
