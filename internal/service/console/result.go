package console

type Status string

const (
	StatusRendered Status = "rendered"
	StatusFailed   Status = "failed"
	// StatusSkipped marks a section whose target is not on the page.
	StatusSkipped Status = "skipped"
)

// Result is the outcome of one view section. Err is set only when Status
// is StatusFailed.
type Result struct {
	View    string
	Section string
	Status  Status
	Rows    int
	Err     error
}

func (r Result) OK() bool {
	return r.Status == StatusRendered
}

type DashboardResult struct {
	KPIs   Result
	Charts Result
	// Mounted lists the mount points that received a chart, in render order.
	Mounted []string
}

func rendered(view, section string, rows int) Result {
	return Result{View: view, Section: section, Status: StatusRendered, Rows: rows}
}

func failed(view, section string, err error) Result {
	return Result{View: view, Section: section, Status: StatusFailed, Err: err}
}
