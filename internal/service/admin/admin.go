package admin

import (
	"context"
	"math"
	"time"

	"github.com/Temutjin2k/ride-hail-admin/internal/domain/models"
	"github.com/Temutjin2k/ride-hail-admin/pkg/logger"
	wrap "github.com/Temutjin2k/ride-hail-admin/pkg/logger/wrapper"
)

const (
	chartDays  = 7
	hourBucket = 4
)

var hourLabels = []string{"0h", "4h", "8h", "12h", "16h", "20h", "24h"}

type AdminService struct {
	adminRepo AdminRepository
	loc       *time.Location
	now       func() time.Time
	l         logger.Logger
}

func NewAdminService(adminRepo AdminRepository, loc *time.Location, l logger.Logger) *AdminService {
	if loc == nil {
		loc = time.UTC
	}
	return &AdminService{
		adminRepo: adminRepo,
		loc:       loc,
		now:       time.Now,
		l:         l,
	}
}

func (s *AdminService) Guests(ctx context.Context) (*models.GuestsResponse, error) {
	guests, err := s.adminRepo.ListGuests(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	if guests == nil {
		guests = []models.Guest{}
	}
	return &models.GuestsResponse{Guests: guests}, nil
}

func (s *AdminService) Users(ctx context.Context) (*models.UsersResponse, error) {
	users, err := s.adminRepo.ListUsers(ctx)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	if users == nil {
		users = []models.User{}
	}
	return &models.UsersResponse{Users: users}, nil
}

// KPIs summarises today. The average wait looks back over the last seven
// days including today.
func (s *AdminService) KPIs(ctx context.Context) (*models.KPISet, error) {
	days := s.lastDays(chartDays)
	today := days[len(days)-1]

	counts, err := s.adminRepo.KPICounts(ctx, today)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	wait, err := s.adminRepo.AverageWait(ctx, days[0].Start, today.End)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}

	return &models.KPISet{
		ActiveUsers:      counts.ActiveUsers,
		RidesToday:       counts.RidesToday,
		Cancellations:    counts.Cancellations,
		AvgWaitMinutes:   round2(wait),
		CompletedTrips:   counts.CompletedTrips,
		FlaggedIncidents: counts.FlaggedIncidents,
	}, nil
}

// ChartData builds the seven-day series, oldest day first.
func (s *AdminService) ChartData(ctx context.Context) (*models.ChartData, error) {
	days := s.lastDays(chartDays)

	data := &models.ChartData{
		Labels:         make([]string, 0, len(days)),
		TSRides:        make([]int, 0, len(days)),
		ByHourLabels:   append([]string(nil), hourLabels...),
		Drivers:        make([]int, 0, len(days)),
		Riders:         make([]int, 0, len(days)),
		CompletedTrips: make([]int, 0, len(days)),
		AvgWait:        make([]*float64, 0, len(days)),
	}

	for _, d := range days {
		stats, err := s.adminRepo.DayStats(ctx, d)
		if err != nil {
			return nil, wrap.Error(ctx, err)
		}
		data.Labels = append(data.Labels, d.Date.Weekday().String()[:3])
		data.TSRides = append(data.TSRides, stats.CompletedTrips)
		data.CompletedTrips = append(data.CompletedTrips, stats.CompletedTrips)
		data.Drivers = append(data.Drivers, stats.ActiveDrivers)
		data.Riders = append(data.Riders, stats.ActiveRiders)
		data.AvgWait = append(data.AvgWait, round2(stats.AvgWaitMinutes))
	}

	hours, err := s.adminRepo.BookingsByHour(ctx, s.now().Add(-24*time.Hour), s.loc.String())
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	data.ByHour = BucketHours(hours)

	cancels, err := s.adminRepo.Cancellations(ctx, days[0].Start, days[len(days)-1].End)
	if err != nil {
		return nil, wrap.Error(ctx, err)
	}
	data.CancelReasons = CancelReasons(cancels)

	s.l.Debug(ctx, "chart data computed", "from", days[0].Date.Format(time.DateOnly), "to", days[len(days)-1].Date.Format(time.DateOnly))

	return data, nil
}

// BucketHours folds hour-of-day counts into the seven 4-hour labels.
// Hours outside 0..23 are clamped into the first or sixth bucket, so the
// "24h" bucket stays zero.
func BucketHours(hours map[int]int) []int {
	out := make([]int, len(hourLabels))
	for h, c := range hours {
		idx := h / hourBucket
		if h < 0 {
			idx = 0
		}
		idx = min(idx, len(hourLabels)-2)
		out[idx] += c
	}
	return out
}

// CancelReasons orders cancellations as booking, trip, safety and other
// trip cancellations.
func CancelReasons(c models.CancelStats) []int {
	return []int{c.Bookings, c.Trips, c.SafetyTrips, max(c.Trips-c.SafetyTrips, 0)}
}

// lastDays returns the n days ending today, oldest first.
func (s *AdminService) lastDays(n int) []models.Day {
	now := s.now().In(s.loc)
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.loc)

	days := make([]models.Day, n)
	for i := range n {
		date := today.AddDate(0, 0, i-(n-1))
		days[i] = models.Day{
			Date:  date,
			Start: date,
			End:   date.AddDate(0, 0, 1),
		}
	}
	return days
}

func round2(v *float64) *float64 {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	r := math.Round(*v*100) / 100
	return &r
}
