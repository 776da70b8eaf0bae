package admin

import (
	"context"
	"time"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
)

type AdminRepository interface {
	ListGuests(ctx context.Context) ([]models.Guest, error)
	ListUsers(ctx context.Context) ([]models.User, error)
	KPICounts(ctx context.Context, today models.Day) (models.KPICounts, error)
	// AverageWait is the mean of pickup_verified_at - booked_at in minutes
	// over bookings booked in [from, to) with a verified pickup.
	AverageWait(ctx context.Context, from, to time.Time) (*float64, error)
	DayStats(ctx context.Context, day models.Day) (models.DayStats, error)
	// BookingsByHour counts bookings since the given instant by hour of day
	// in the named time zone.
	BookingsByHour(ctx context.Context, since time.Time, tz string) (map[int]int, error)
	Cancellations(ctx context.Context, from, to time.Time) (models.CancelStats, error)
}
