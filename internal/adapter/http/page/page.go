// Package page is the server-side document the console view-controllers
// write into, and its HTML rendering.
package page

import (
	"encoding/json"
	"sort"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/console"
	"github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"
)

// Page template names.
const (
	Dashboard = "dashboard"
	Guests    = "guests"
	Users     = "users"
)

// Page is one rendered administration page. Only the elements created by
// its constructor exist; lookups of any other id report false.
type Page struct {
	Name  string
	Title string

	tables   map[string]*TableBody
	texts    map[string]string
	canvases map[string]*Canvas
	defaults *chartjs.Defaults
}

func newPage(name, title string) *Page {
	return &Page{
		Name:     name,
		Title:    title,
		tables:   make(map[string]*TableBody),
		texts:    make(map[string]string),
		canvases: make(map[string]*Canvas),
	}
}

func NewDashboard() *Page {
	p := newPage(Dashboard, "Dashboard")
	for _, id := range []string{
		console.SlotActiveUsers,
		console.SlotRidesToday,
		console.SlotCancellations,
		console.SlotWaitTime,
		console.SlotCompletedTrips,
		console.SlotFlagged,
	} {
		p.texts[id] = console.Placeholder
	}
	for _, id := range []string{
		console.MountRidesSeries,
		console.MountHourHeatmap,
		console.MountUserGrowth,
		console.MountCancellation,
		console.MountWaitVsTrips,
	} {
		p.canvases[id] = &Canvas{id: id}
	}
	return p
}

func NewGuests() *Page {
	p := newPage(Guests, "Guests")
	p.tables[console.GuestsTable] = &TableBody{}
	return p
}

func NewUsers() *Page {
	p := newPage(Users, "Users")
	p.tables[console.UsersTable] = &TableBody{}
	return p
}

func (p *Page) Table(id string) (console.Table, bool) {
	t, ok := p.tables[id]
	return t, ok
}

func (p *Page) SetText(id, value string) bool {
	if _, ok := p.texts[id]; !ok {
		return false
	}
	p.texts[id] = value
	return true
}

func (p *Page) Canvas(id string) (chartjs.Canvas, bool) {
	c, ok := p.canvases[id]
	return c, ok
}

func (p *Page) SetChartDefaults(d chartjs.Defaults) {
	p.defaults = &d
}

// Template accessors.

func (p *Page) Text(id string) string {
	return p.texts[id]
}

func (p *Page) Rows(id string) []console.Row {
	if t, ok := p.tables[id]; ok {
		return t.Rows
	}
	return nil
}

// ChartDefaults is nil until a view-controller sets it.
func (p *Page) ChartDefaults() *chartjs.Defaults {
	return p.defaults
}

// Charts maps each drawn mount point to its configuration.
func (p *Page) Charts() map[string]json.RawMessage {
	out := make(map[string]json.RawMessage, len(p.canvases))
	for id, c := range p.canvases {
		if c.spec != nil {
			out[id] = c.spec
		}
	}
	return out
}

// CanvasIDs lists the mount points in a stable order.
func (p *Page) CanvasIDs() []string {
	ids := make([]string, 0, len(p.canvases))
	for id := range p.canvases {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

type TableBody struct {
	Rows []console.Row
}

func (t *TableBody) Clear() {
	t.Rows = nil
}

func (t *TableBody) AppendRow(row console.Row) {
	t.Rows = append(t.Rows, row)
}

// Canvas holds at most one chart configuration at a time.
type Canvas struct {
	id   string
	spec json.RawMessage
}

func (c *Canvas) ID() string {
	return c.id
}

func (c *Canvas) Draw(spec []byte) error {
	if c.spec != nil {
		return types.ErrCanvasInUse
	}
	c.spec = spec
	return nil
}

func (c *Canvas) Clear() {
	c.spec = nil
}
