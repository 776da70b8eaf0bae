package models

import "time"

type User struct {
	ID              int64      `json:"id"`
	Name            string     `json:"name"`
	Email           string     `json:"email"`
	Status          string     `json:"status"`
	DriverRating    *float64   `json:"driver_rating"`
	PassengerRating *float64   `json:"passenger_rating"`
	CreatedAt       *time.Time `json:"created_at"`
}
