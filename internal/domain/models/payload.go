package models

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// Payloads as the console receives them. Decoding never fails on a
// field's type; normalization decides what each value means.

type GuestsPayload struct {
	Guests []GuestRecord `json:"guests"`
}

type UsersPayload struct {
	Users []UserRecord `json:"users"`
}

type GuestRecord struct {
	ID          Scalar `json:"id"`
	Username    Scalar `json:"username"`
	GuestNumber Scalar `json:"guest_number"`
	CreatedAt   Scalar `json:"created_at"`
}

type UserRecord struct {
	ID     Scalar `json:"id"`
	Name   Scalar `json:"name"`
	Email  Scalar `json:"email"`
	Status Scalar `json:"status"`
}

type KPIRecord struct {
	ActiveUsers      Scalar `json:"active_users"`
	RidesToday       Scalar `json:"rides_today"`
	Cancellations    Scalar `json:"cancellations"`
	AvgWaitMinutes   Scalar `json:"avg_wait_minutes"`
	CompletedTrips   Scalar `json:"completed_trips"`
	FlaggedIncidents Scalar `json:"flagged_incidents"`
}

// ChartRecord keeps every series raw; a field that is absent or not an
// array falls back to its default during normalization.
type ChartRecord struct {
	Labels         json.RawMessage `json:"labels"`
	TSRides        json.RawMessage `json:"tsRides"`
	ByHourLabels   json.RawMessage `json:"byHourLabels"`
	ByHour         json.RawMessage `json:"byHour"`
	Drivers        json.RawMessage `json:"drivers"`
	Riders         json.RawMessage `json:"riders"`
	CancelReasons  json.RawMessage `json:"cancelReasons"`
	CompletedTrips json.RawMessage `json:"completedTrips"`
	AvgWait        json.RawMessage `json:"avgWait"`
}

type ScalarKind uint8

const (
	ScalarAbsent ScalarKind = iota
	ScalarNumber
	ScalarString
	ScalarBool
)

// Scalar is a JSON value of unknown type. Objects, arrays and null are
// treated as absent.
type Scalar struct {
	kind ScalarKind
	num  float64
	str  string
}

func (s *Scalar) UnmarshalJSON(b []byte) error {
	*s = Scalar{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 {
		return nil
	}

	switch b[0] {
	case '"':
		var v string
		if json.Unmarshal(b, &v) == nil {
			*s = Scalar{kind: ScalarString, str: v}
		}
	case 't', 'f':
		var v bool
		if json.Unmarshal(b, &v) == nil {
			*s = Scalar{kind: ScalarBool, str: strconv.FormatBool(v)}
		}
	case 'n', '{', '[':
	default:
		var v float64
		if json.Unmarshal(b, &v) == nil {
			*s = Scalar{kind: ScalarNumber, num: v}
		}
	}
	return nil
}

// NumberScalar and StringScalar build values for tests and defaults.
func NumberScalar(v float64) Scalar {
	return Scalar{kind: ScalarNumber, num: v}
}

func StringScalar(v string) Scalar {
	return Scalar{kind: ScalarString, str: v}
}

func (s Scalar) Kind() ScalarKind {
	return s.kind
}

func (s Scalar) IsAbsent() bool {
	return s.kind == ScalarAbsent
}

// Text is the value as display text; "" when absent.
func (s Scalar) Text() string {
	if s.kind == ScalarNumber {
		return strconv.FormatFloat(s.num, 'f', -1, 64)
	}
	return s.str
}

// Float reports the numeric value. Numeric strings count as numbers.
func (s Scalar) Float() (float64, bool) {
	switch s.kind {
	case ScalarNumber:
		return s.num, true
	case ScalarString:
		f, err := strconv.ParseFloat(s.str, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
