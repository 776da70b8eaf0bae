package handler

import (
	"bytes"
	"context"
	"net/http"

	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/backend"
	"github.com/Temutjin2k/ride-hail-admin/internal/adapter/http/page"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	"github.com/Temutjin2k/ride-hail-admin/internal/service/console"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

type ConsoleEndpoints struct {
	Guests    string
	Users     string
	KPIs      string
	ChartData string
}

// Console serves the administration pages. Each request gets a fresh page
// and runs that page's view-controller against the admin API with the
// caller's credentials.
type Console struct {
	fetcher   console.Fetcher
	endpoints ConsoleEndpoints
	renderer  *page.Renderer
	guests    *console.GuestsList
	users     *console.UsersList
	l         logger.Logger
}

func NewConsole(fetcher console.Fetcher, endpoints ConsoleEndpoints, renderer *page.Renderer, l logger.Logger) *Console {
	return &Console{
		fetcher:   fetcher,
		endpoints: endpoints,
		renderer:  renderer,
		guests:    console.NewGuestsList(fetcher, endpoints.Guests, l),
		users:     console.NewUsersList(fetcher, endpoints.Users, l),
		l:         l,
	}
}

func (h *Console) Dashboard(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r, "console_dashboard")

	p := page.NewDashboard()
	d := console.NewDashboard(h.fetcher, console.DashboardEndpoints{
		KPIs:      h.endpoints.KPIs,
		ChartData: h.endpoints.ChartData,
	}, h.l)
	defer d.Close()

	res := d.Load(ctx, p)
	h.l.Debug(ctx, "dashboard loaded",
		"kpis", string(res.KPIs.Status),
		"charts", string(res.Charts.Status),
		"mounted", len(res.Mounted),
	)

	h.render(ctx, w, p)
}

func (h *Console) Guests(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r, "console_guests")

	p := page.NewGuests()
	res := h.guests.Load(ctx, p)
	h.l.Debug(ctx, "guests loaded", "status", string(res.Status), "rows", res.Rows)

	h.render(ctx, w, p)
}

func (h *Console) Users(w http.ResponseWriter, r *http.Request) {
	ctx := h.context(r, "console_users")

	p := page.NewUsers()
	res := h.users.Load(ctx, p)
	h.l.Debug(ctx, "users loaded", "status", string(res.Status), "rows", res.Rows)

	h.render(ctx, w, p)
}

func (h *Console) context(r *http.Request, action string) context.Context {
	ctx := wrap.WithAction(r.Context(), action)
	return backend.WithCredentials(ctx, backend.CredentialsFromRequest(r))
}

// render writes p. Failed sections are not errors here: the page is still
// served with those widgets empty.
func (h *Console) render(ctx context.Context, w http.ResponseWriter, p *page.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, p); err != nil {
		ctx = wrap.WithAction(ctx, types.ActionRenderFailed)
		h.l.Error(ctx, "failed to render page", err, "page", p.Name)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.l.Warn(ctx, "failed to write page", "reason", err.Error())
	}
}
