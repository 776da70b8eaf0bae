package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/internal/domain/types"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
	"github.com/Temutjin2k/ride-hail-admin/pkg/metrics"
	"github.com/Temutjin2k/ride-hail-admin/pkg/postgres"
)

const metricsService = "admin-api"

type AdminRepo struct {
	db Querier
}

func NewAdminRepo(db Querier) *AdminRepo {
	return &AdminRepo{
		db: db,
	}
}

func (r *AdminRepo) ListGuests(ctx context.Context) (guests []models.Guest, err error) {
	defer r.observe(ctx, "list_guests", time.Now(), &err)

	const q = `
		SELECT id, guest_number, username, created_at, updated_at
		FROM guest_users
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Guest, error) {
		var g models.Guest
		err := row.Scan(&g.ID, &g.GuestNumber, &g.Username, &g.CreatedAt, &g.UpdatedAt)
		return g, err
	})
}

func (r *AdminRepo) ListUsers(ctx context.Context) (users []models.User, err error) {
	defer r.observe(ctx, "list_users", time.Now(), &err)

	const q = `
		SELECT
			id,
			COALESCE(name, ''),
			COALESCE(email, ''),
			COALESCE(status, ''),
			driver_rating::float8,
			passenger_rating::float8,
			created_at
		FROM users_data
		ORDER BY id`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.User, error) {
		var u models.User
		err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Status, &u.DriverRating, &u.PassengerRating, &u.CreatedAt)
		return u, err
	})
}

func (r *AdminRepo) KPICounts(ctx context.Context, today models.Day) (c models.KPICounts, err error) {
	defer r.observe(ctx, "kpi_counts", time.Now(), &err)

	const q = `
		SELECT
			(SELECT COUNT(*) FROM users_data WHERE status IS DISTINCT FROM $4),
			(SELECT COUNT(*) FROM trips WHERE trip_date = $1),
			(SELECT COUNT(*) FROM bookings
				WHERE booking_status = $5 AND cancelled_at >= $2 AND cancelled_at < $3)
			+ (SELECT COUNT(*) FROM trips
				WHERE trip_status = $6 AND cancelled_at >= $2 AND cancelled_at < $3),
			(SELECT COUNT(*) FROM trips WHERE trip_status = $7 AND trip_date = $1),
			(SELECT COUNT(*) FROM sos_incidents WHERE status = $8)`

	err = r.db.QueryRow(ctx, q,
		pgDate(today.Date), today.Start, today.End,
		string(types.BannedStatus), types.BookingCancelled, types.TripCancelled,
		types.TripCompleted, types.IncidentOpen,
	).Scan(&c.ActiveUsers, &c.RidesToday, &c.Cancellations, &c.CompletedTrips, &c.FlaggedIncidents)
	return c, err
}

func (r *AdminRepo) AverageWait(ctx context.Context, from, to time.Time) (avg *float64, err error) {
	defer r.observe(ctx, "average_wait", time.Now(), &err)

	const q = `
		SELECT (AVG(EXTRACT(EPOCH FROM (pickup_verified_at - booked_at))) / 60.0)::float8
		FROM bookings
		WHERE pickup_verified_at IS NOT NULL AND booked_at >= $1 AND booked_at < $2`

	err = r.db.QueryRow(ctx, q, from, to).Scan(&avg)
	return avg, err
}

func (r *AdminRepo) DayStats(ctx context.Context, day models.Day) (s models.DayStats, err error) {
	defer r.observe(ctx, "day_stats", time.Now(), &err)

	const q = `
		SELECT
			(SELECT COUNT(*) FROM trips WHERE trip_status = $4 AND trip_date = $1),
			(SELECT COUNT(DISTINCT driver_id) FROM trips WHERE trip_date = $1),
			(SELECT COUNT(DISTINCT passenger_id) FROM bookings
				WHERE booked_at >= $2 AND booked_at < $3),
			(SELECT (AVG(EXTRACT(EPOCH FROM (pickup_verified_at - booked_at))) / 60.0)::float8
				FROM bookings
				WHERE pickup_verified_at IS NOT NULL AND booked_at >= $2 AND booked_at < $3)`

	err = r.db.QueryRow(ctx, q, pgDate(day.Date), day.Start, day.End, types.TripCompleted).
		Scan(&s.CompletedTrips, &s.ActiveDrivers, &s.ActiveRiders, &s.AvgWaitMinutes)
	return s, err
}

func (r *AdminRepo) BookingsByHour(ctx context.Context, since time.Time, tz string) (hours map[int]int, err error) {
	defer r.observe(ctx, "bookings_by_hour", time.Now(), &err)

	const q = `
		SELECT EXTRACT(HOUR FROM booked_at AT TIME ZONE $2)::int AS h, COUNT(*)
		FROM bookings
		WHERE booked_at >= $1
		GROUP BY h`

	rows, err := r.db.Query(ctx, q, since, tz)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	hours = make(map[int]int)
	for rows.Next() {
		var h, c int
		if err := rows.Scan(&h, &c); err != nil {
			return nil, err
		}
		hours[h] += c
	}
	return hours, rows.Err()
}

func (r *AdminRepo) Cancellations(ctx context.Context, from, to time.Time) (c models.CancelStats, err error) {
	defer r.observe(ctx, "cancellations", time.Now(), &err)

	const q = `
		SELECT
			(SELECT COUNT(*) FROM bookings
				WHERE booking_status = $3 AND cancelled_at >= $1 AND cancelled_at < $2),
			COUNT(*),
			COUNT(*) FILTER (WHERE cancellation_reason ILIKE '%safety%')
		FROM trips
		WHERE trip_status = $4 AND cancelled_at >= $1 AND cancelled_at < $2`

	err = r.db.QueryRow(ctx, q, from, to, types.BookingCancelled, types.TripCancelled).
		Scan(&c.Bookings, &c.Trips, &c.SafetyTrips)
	return c, err
}

// observe records the query and, on failure, wraps *errp with the
// operation name and the database action.
func (r *AdminRepo) observe(ctx context.Context, op string, start time.Time, errp *error) {
	metrics.RecordDatabaseQuery(metricsService, op, *errp, time.Since(start))

	if *errp == nil {
		return
	}

	err := fmt.Errorf("AdminRepo.%s: %w", op, *errp)
	if postgres.IsUndefinedTable(*errp) || postgres.IsUndefinedColumn(*errp) {
		err = fmt.Errorf("%w: %w", types.ErrDatabaseNotReady, err)
	}
	*errp = wrap.Error(wrap.WithAction(ctx, types.ActionDatabaseQueryFailed), err)
}

// pgDate drops the clock and zone from t, keeping its calendar date.
func pgDate(t time.Time) pgtype.Date {
	return pgtype.Date{
		Time:  time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC),
		Valid: true,
	}
}
