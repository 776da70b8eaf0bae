package handler

import (
	"context"
	"net/http"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

type AdminService interface {
	Guests(ctx context.Context) (*models.GuestsResponse, error)
	Users(ctx context.Context) (*models.UsersResponse, error)
	KPIs(ctx context.Context) (*models.KPISet, error)
	ChartData(ctx context.Context) (*models.ChartData, error)
}

// Admin serves the JSON documents the console pages read.
type Admin struct {
	s AdminService
	l logger.Logger
}

func NewAdmin(s AdminService, l logger.Logger) *Admin {
	return &Admin{
		s: s,
		l: l,
	}
}

// GetGuests godoc
// @Summary      List guests
// @Description  Every guest user, for the guests table
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.GuestsResponse
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /administration/guests/api/ [get]
func (h *Admin) GetGuests(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_get_guests")

	guests, err := h.s.Guests(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to get guests", err)
		return
	}

	h.l.Debug(ctx, "fetched guests", "total", len(guests.Guests))
	h.respond(ctx, w, guests)
}

// GetUsers godoc
// @Summary      List users
// @Description  Every user with status and ratings, for the users table
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.UsersResponse
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /administration/users/api/ [get]
func (h *Admin) GetUsers(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_get_users")

	users, err := h.s.Users(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to get users", err)
		return
	}

	h.l.Debug(ctx, "fetched users", "total", len(users.Users))
	h.respond(ctx, w, users)
}

// GetKPIs godoc
// @Summary      Dashboard KPIs
// @Description  Today's scalar KPIs; avg_wait_minutes covers the last seven days and is null without samples
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.KPISet
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /administration/api/kpis/ [get]
func (h *Admin) GetKPIs(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_get_kpis")

	kpis, err := h.s.KPIs(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to get kpis", err)
		return
	}

	h.respond(ctx, w, kpis)
}

// GetChartData godoc
// @Summary      Dashboard chart series
// @Description  Seven-day series (oldest first), 24h booking density and cancellation breakdown
// @Tags         Admin
// @Produce      json
// @Success      200  {object}  models.ChartData
// @Failure      401  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /administration/api/chart-data/ [get]
func (h *Admin) GetChartData(w http.ResponseWriter, r *http.Request) {
	ctx := wrap.WithAction(r.Context(), "admin_get_chart_data")

	data, err := h.s.ChartData(ctx)
	if err != nil {
		h.fail(ctx, w, "failed to get chart data", err)
		return
	}

	h.respond(ctx, w, data)
}

func (h *Admin) fail(ctx context.Context, w http.ResponseWriter, msg string, err error) {
	h.l.Error(wrap.ErrorCtx(ctx, err), msg, err)

	code := GetCode(err)
	if code == http.StatusInternalServerError {
		internalErrorResponse(w)
		return
	}
	errorResponse(w, code, http.StatusText(code))
}

func (h *Admin) respond(ctx context.Context, w http.ResponseWriter, data any) {
	if err := writeJSON(w, http.StatusOK, data, nil); err != nil {
		h.l.Error(ctx, "failed to write response", err)
		w.WriteHeader(http.StatusInternalServerError)
	}
}
