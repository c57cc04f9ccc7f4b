package models

import "time"

// DateFormat is the calendar-day format used across the booking API.
const DateFormat = "2006-01-02"

// AvailableTimes are the five appointment times the salon offers each day.
var AvailableTimes = []string{"9:00", "12:00", "15:00", "18:00", "21:00"}

// BookedSlot marks one already-reserved (date, time) pair. Two slots are the
// same reservation iff both fields match.
type BookedSlot struct {
	Date string `json:"date"`
	Time string `json:"time"`
}

// IsValidTime reports whether t is one of the fixed daily appointment times.
func IsValidTime(t string) bool {
	for _, at := range AvailableTimes {
		if at == t {
			return true
		}
	}
	return false
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateFormat, s)
}
