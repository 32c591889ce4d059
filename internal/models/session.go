package models

import "time"

// Session is the per-visitor UI state. ClearFlag is set by Clear and reset by
// the next Search.
type Session struct {
	Query         string    `json:"query"`
	WeatherReport string    `json:"weather_report"`
	ClearFlag     bool      `json:"clear_flag"`
	UpdatedAt     time.Time `json:"updated_at"`
}
