package admin

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
)

type fakeRepo struct {
	guests   []models.Guest
	users    []models.User
	counts   models.KPICounts
	wait     *float64
	days     map[string]models.DayStats
	hours    map[int]int
	cancels  models.CancelStats
	err      error
	waitFrom time.Time
	waitTo   time.Time
	tz       string
	seenDays []models.Day
}

func (f *fakeRepo) ListGuests(context.Context) ([]models.Guest, error) { return f.guests, f.err }
func (f *fakeRepo) ListUsers(context.Context) ([]models.User, error)   { return f.users, f.err }

func (f *fakeRepo) KPICounts(context.Context, models.Day) (models.KPICounts, error) {
	return f.counts, f.err
}

func (f *fakeRepo) AverageWait(_ context.Context, from, to time.Time) (*float64, error) {
	f.waitFrom, f.waitTo = from, to
	return f.wait, f.err
}

func (f *fakeRepo) DayStats(_ context.Context, d models.Day) (models.DayStats, error) {
	f.seenDays = append(f.seenDays, d)
	return f.days[d.Date.Format(time.DateOnly)], f.err
}

func (f *fakeRepo) BookingsByHour(_ context.Context, _ time.Time, tz string) (map[int]int, error) {
	f.tz = tz
	return f.hours, f.err
}

func (f *fakeRepo) Cancellations(context.Context, time.Time, time.Time) (models.CancelStats, error) {
	return f.cancels, f.err
}

func ptr(f float64) *float64 { return &f }

func newTestService(repo *fakeRepo, loc *time.Location, now time.Time) *AdminService {
	s := NewAdminService(repo, loc, logger.Discard())
	s.now = func() time.Time { return now }
	return s
}

func TestKPIs(t *testing.T) {
	repo := &fakeRepo{
		counts: models.KPICounts{ActiveUsers: 10, RidesToday: 4, Cancellations: 2, CompletedTrips: 3, FlaggedIncidents: 1},
		wait:   ptr(4.456),
	}
	now := time.Date(2024, 5, 15, 13, 0, 0, 0, time.UTC)

	got, err := newTestService(repo, time.UTC, now).KPIs(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 10, got.ActiveUsers)
	assert.Equal(t, 1, got.FlaggedIncidents)
	require.NotNil(t, got.AvgWaitMinutes)
	assert.Equal(t, 4.46, *got.AvgWaitMinutes)

	assert.Equal(t, time.Date(2024, 5, 9, 0, 0, 0, 0, time.UTC), repo.waitFrom)
	assert.Equal(t, time.Date(2024, 5, 16, 0, 0, 0, 0, time.UTC), repo.waitTo)
}

func TestKPIsNoWaitSample(t *testing.T) {
	got, err := newTestService(&fakeRepo{}, time.UTC, time.Now()).KPIs(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got.AvgWaitMinutes)
}

func TestChartData(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Almaty")
	require.NoError(t, err)

	repo := &fakeRepo{
		days: map[string]models.DayStats{
			"2024-05-15": {CompletedTrips: 7, ActiveDrivers: 3, ActiveRiders: 5, AvgWaitMinutes: ptr(2.346)},
			"2024-05-09": {CompletedTrips: 1},
		},
		hours:   map[int]int{0: 2, 3: 1, 4: 5, 23: 4},
		cancels: models.CancelStats{Bookings: 6, Trips: 4, SafetyTrips: 1},
	}
	// 20:30 UTC on the 14th is already the 15th in Almaty.
	now := time.Date(2024, 5, 14, 20, 30, 0, 0, time.UTC)

	got, err := newTestService(repo, loc, now).ChartData(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Thu", "Fri", "Sat", "Sun", "Mon", "Tue", "Wed"}, got.Labels)
	assert.Equal(t, []int{1, 0, 0, 0, 0, 0, 7}, got.TSRides)
	assert.Equal(t, got.TSRides, got.CompletedTrips)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 3}, got.Drivers)
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 5}, got.Riders)

	require.Len(t, got.AvgWait, 7)
	assert.Nil(t, got.AvgWait[0])
	require.NotNil(t, got.AvgWait[6])
	assert.Equal(t, 2.35, *got.AvgWait[6])

	assert.Equal(t, []string{"0h", "4h", "8h", "12h", "16h", "20h", "24h"}, got.ByHourLabels)
	assert.Equal(t, []int{3, 5, 0, 0, 0, 4, 0}, got.ByHour)
	assert.Equal(t, []int{6, 4, 1, 3}, got.CancelReasons)
	assert.Equal(t, "Asia/Almaty", repo.tz)

	require.Len(t, repo.seenDays, 7)
	assert.Equal(t, loc, repo.seenDays[0].Start.Location())
}

func TestBucketHours(t *testing.T) {
	assert.Equal(t, []int{0, 0, 0, 0, 0, 0, 0}, BucketHours(nil))
	assert.Equal(t, []int{1, 0, 0, 0, 0, 3, 0}, BucketHours(map[int]int{-1: 1, 24: 1, 30: 2}))
}

func TestCancelReasons(t *testing.T) {
	assert.Equal(t, []int{0, 1, 3, 0}, CancelReasons(models.CancelStats{Trips: 1, SafetyTrips: 3}))
}

func TestRepositoryErrors(t *testing.T) {
	boom := errors.New("boom")
	s := newTestService(&fakeRepo{err: boom}, time.UTC, time.Now())
	ctx := context.Background()

	_, err := s.Guests(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.Users(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.KPIs(ctx)
	assert.ErrorIs(t, err, boom)
	_, err = s.ChartData(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestListsNeverNil(t *testing.T) {
	s := newTestService(&fakeRepo{}, time.UTC, time.Now())

	guests, err := s.Guests(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, guests.Guests)

	users, err := s.Users(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, users.Users)
}
