package types

type ServiceMode string

// Admin API - Serves guests, users, KPI and chart-series JSON computed from the ride database
// Admin Console - Renders the administration pages from the admin API responses
const (
	AdminAPI     ServiceMode = "admin-api"
	AdminConsole ServiceMode = "admin-console"
)

func (m ServiceMode) String() string {
	return string(m)
}

// Enum для статуса пользователя
type UserStatus string

const (
	ActiveStatus   UserStatus = "ACTIVE"
	InActiveStatus UserStatus = "INACTIVE"
	BannedStatus   UserStatus = "BANNED"
)

// Enum для роли пользователя
type UserRole string

func (r UserRole) String() string {
	return string(r)
}

const (
	PassengerRole UserRole = "PASSENGER"
	DriverRole    UserRole = "DRIVER"
	AdminRole     UserRole = "ADMIN"
)

// Trip, booking and incident states the dashboard aggregates over.
const (
	TripCompleted    = "COMPLETED"
	TripCancelled    = "CANCELLED"
	BookingCancelled = "CANCELLED"
	IncidentOpen     = "OPEN"
)
