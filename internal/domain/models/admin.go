package models

import "time"

// Admin API response bodies.

type GuestsResponse struct {
	Guests []Guest `json:"guests"`
}

type UsersResponse struct {
	Users []User `json:"users"`
}

type Guest struct {
	ID          int64      `json:"id"`
	GuestNumber int64      `json:"guest_number"`
	Username    string     `json:"username"`
	CreatedAt   *time.Time `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

// KPISet is the dashboard's scalar summary for the current day.
// AvgWaitMinutes is nil when no booking in the window has a verified pickup.
type KPISet struct {
	ActiveUsers      int      `json:"active_users"`
	RidesToday       int      `json:"rides_today"`
	Cancellations    int      `json:"cancellations"`
	AvgWaitMinutes   *float64 `json:"avg_wait_minutes"`
	CompletedTrips   int      `json:"completed_trips"`
	FlaggedIncidents int      `json:"flagged_incidents"`
}

// ChartData holds the dashboard series for the last seven days, oldest first.
type ChartData struct {
	Labels         []string   `json:"labels"`
	TSRides        []int      `json:"tsRides"`
	ByHourLabels   []string   `json:"byHourLabels"`
	ByHour         []int      `json:"byHour"`
	Drivers        []int      `json:"drivers"`
	Riders         []int      `json:"riders"`
	CancelReasons  []int      `json:"cancelReasons"`
	CompletedTrips []int      `json:"completedTrips"`
	AvgWait        []*float64 `json:"avgWait"`
}

// Day is one calendar day in the dashboard's location. Start and End bound
// it as [Start, End).
type Day struct {
	Date  time.Time
	Start time.Time
	End   time.Time
}

// KPICounts are the integer KPIs for one day.
type KPICounts struct {
	ActiveUsers      int
	RidesToday       int
	Cancellations    int
	CompletedTrips   int
	FlaggedIncidents int
}

// DayStats is the per-day activity behind the line and bar charts.
// AvgWaitMinutes is unrounded and nil when there is no sample.
type DayStats struct {
	CompletedTrips int
	ActiveDrivers  int
	ActiveRiders   int
	AvgWaitMinutes *float64
}

// CancelStats counts cancellations over a date range.
type CancelStats struct {
	Bookings    int
	Trips       int
	SafetyTrips int
}
