package console

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/pkg/chartjs"
)

type response struct {
	body string
	err  error
}

type fakeFetcher struct {
	mu        sync.Mutex
	responses map[string]response
	calls     map[string]int
}

func newFakeFetcher(responses map[string]response) *fakeFetcher {
	return &fakeFetcher{responses: responses, calls: make(map[string]int)}
}

func (f *fakeFetcher) GetJSON(_ context.Context, endpoint string, dst any) error {
	f.mu.Lock()
	f.calls[endpoint]++
	resp, ok := f.responses[endpoint]
	f.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: %w 404", types.ErrFetchFailed, types.ErrUnexpectedStatus)
	}
	if resp.err != nil {
		return resp.err
	}
	if err := json.Unmarshal([]byte(resp.body), dst); err != nil {
		return fmt.Errorf("%w: %w", types.ErrFetchFailed, err)
	}
	return nil
}

type fakeTable struct {
	rows    []Row
	cleared int
}

func (t *fakeTable) Clear() {
	t.rows = nil
	t.cleared++
}

func (t *fakeTable) AppendRow(row Row) {
	t.rows = append(t.rows, row)
}

type fakeCanvas struct {
	id     string
	spec   []byte
	draws  int
	clears int
}

func (c *fakeCanvas) ID() string { return c.id }

func (c *fakeCanvas) Draw(spec []byte) error {
	if c.spec != nil {
		return types.ErrCanvasInUse
	}
	c.spec = spec
	c.draws++
	return nil
}

func (c *fakeCanvas) Clear() {
	c.spec = nil
	c.clears++
}

func (c *fakeCanvas) live() bool { return c.spec != nil }

type fakeDocument struct {
	tables   map[string]*fakeTable
	texts    map[string]string
	canvases map[string]*fakeCanvas
	defaults int
}

// newFakeDocument builds a page with the given element ids. Ids of known
// KPI slots become text slots, chart mounts become canvases, anything else
// a table.
func newFakeDocument(ids ...string) *fakeDocument {
	doc := &fakeDocument{
		tables:   make(map[string]*fakeTable),
		texts:    make(map[string]string),
		canvases: make(map[string]*fakeCanvas),
	}

	slots := map[string]bool{
		SlotActiveUsers: true, SlotRidesToday: true, SlotCancellations: true,
		SlotWaitTime: true, SlotCompletedTrips: true, SlotFlagged: true,
	}
	mounts := map[string]bool{
		MountRidesSeries: true, MountHourHeatmap: true, MountUserGrowth: true,
		MountCancellation: true, MountWaitVsTrips: true,
	}

	for _, id := range ids {
		switch {
		case slots[id]:
			doc.texts[id] = ""
		case mounts[id]:
			doc.canvases[id] = &fakeCanvas{id: id}
		default:
			doc.tables[id] = &fakeTable{}
		}
	}
	return doc
}

func dashboardDocument() *fakeDocument {
	return newFakeDocument(
		SlotActiveUsers, SlotRidesToday, SlotCancellations,
		SlotWaitTime, SlotCompletedTrips, SlotFlagged,
		MountRidesSeries, MountHourHeatmap, MountUserGrowth,
		MountCancellation, MountWaitVsTrips,
	)
}

func (d *fakeDocument) Table(id string) (Table, bool) {
	t, ok := d.tables[id]
	return t, ok
}

func (d *fakeDocument) SetText(id, value string) bool {
	if _, ok := d.texts[id]; !ok {
		return false
	}
	d.texts[id] = value
	return true
}

func (d *fakeDocument) Canvas(id string) (chartjs.Canvas, bool) {
	c, ok := d.canvases[id]
	return c, ok
}

func (d *fakeDocument) SetChartDefaults(chartjs.Defaults) {
	d.defaults++
}

func (d *fakeDocument) liveCharts() int {
	n := 0
	for _, c := range d.canvases {
		if c.live() {
			n++
		}
	}
	return n
}
