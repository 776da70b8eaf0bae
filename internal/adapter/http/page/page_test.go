package page

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/console"
	"github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"
)

func TestPageElements(t *testing.T) {
	p := NewGuests()

	_, ok := p.Table(console.GuestsTable)
	assert.True(t, ok)
	_, ok = p.Table(console.UsersTable)
	assert.False(t, ok)
	assert.False(t, p.SetText(console.SlotWaitTime, "1m 00s"))
	_, ok = p.Canvas(console.MountRidesSeries)
	assert.False(t, ok)

	d := NewDashboard()
	assert.Equal(t, console.Placeholder, d.Text(console.SlotFlagged))
	assert.True(t, d.SetText(console.SlotFlagged, "2"))
	assert.Equal(t, "2", d.Text(console.SlotFlagged))
	assert.Len(t, d.CanvasIDs(), 5)
}

func TestCanvasSingleChart(t *testing.T) {
	c := &Canvas{id: "x"}
	require.NoError(t, c.Draw([]byte(`{}`)))
	assert.ErrorIs(t, c.Draw([]byte(`{}`)), types.ErrCanvasInUse)
	c.Clear()
	assert.NoError(t, c.Draw([]byte(`{}`)))
}

func TestRenderGuests(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	p := NewGuests()
	table, _ := p.Table(console.GuestsTable)
	table.AppendRow(console.Row{
		Cells: []string{"<b>bob</b>", "1001", "2024-01-02 03:04"},
		Links: []console.Link{{Href: "/administration/guests/5/support-chat/", Label: "Open Chat"}},
	})

	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	html := buf.String()

	assert.Contains(t, html, `id="guestsTable"`)
	assert.Contains(t, html, "&lt;b&gt;bob&lt;/b&gt;")
	assert.Contains(t, html, `href="/administration/guests/5/support-chat/"`)
	assert.Contains(t, html, "2024-01-02 03:04")
	assert.NotContains(t, html, "new Chart(")
}

func TestRenderDashboard(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	p := NewDashboard()
	var buf bytes.Buffer
	require.NoError(t, r.Render(&buf, p))
	assert.Contains(t, buf.String(), `<span id="kpi-wait-time">—</span>`)
	assert.NotContains(t, buf.String(), ChartJSURL, "no chart script without chart data")

	canvas, _ := p.Canvas(console.MountRidesSeries)
	_, err = chartjs.New(canvas, chartjs.Config{Type: chartjs.TypeLine})
	require.NoError(t, err)
	p.SetChartDefaults(chartjs.StandardDefaults())

	buf.Reset()
	require.NoError(t, r.Render(&buf, p))
	html := buf.String()

	assert.Contains(t, html, ChartJSURL)
	assert.Contains(t, html, `<canvas id="tsRidesChart">`)
	assert.Contains(t, html, `"tsRidesChart"`)
	assert.Contains(t, html, `"fontColor":"#2c3e50"`, "defaults are embedded")
}

func TestRenderUnknownPage(t *testing.T) {
	r, err := NewRenderer()
	require.NoError(t, err)

	var buf bytes.Buffer
	assert.Error(t, r.Render(&buf, &Page{Name: "nope"}))
	assert.Zero(t, buf.Len())
}
