package booking

import (
	"errors"
	"fmt"
)

// ErrNoDateChosen reports a time selection attempted before any date is
// picked.
var ErrNoDateChosen = errors.New("no booking date chosen")

// InvalidDateError reports an attempt to book a calendar date that is already
// in the past.
type InvalidDateError struct {
	Date string
}

func (e *InvalidDateError) Error() string {
	return fmt.Sprintf("invalid booking date %s: date is in the past", e.Date)
}

// SlotUnavailableError reports a time already taken per the last availability
// snapshot.
type SlotUnavailableError struct {
	Date string
	Time string
}

func (e *SlotUnavailableError) Error() string {
	return fmt.Sprintf("slot %s %s is already booked", e.Date, e.Time)
}

// ReservationRejectedError carries the backend's refusal reason for a
// reservation it declined to create.
type ReservationRejectedError struct {
	Reason string
}

func (e *ReservationRejectedError) Error() string {
	return "reservation rejected: " + e.Reason
}
