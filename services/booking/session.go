package booking

import (
	"time"

	"salonapp/models"
)

// MaxServicesPerVisit caps how many services one visit may combine.
const MaxServicesPerVisit = 2

// Session is the mutable in-progress reservation for one visitor. It is
// driven sequentially by a single caller and is not safe for concurrent use;
// the availability snapshot it consults is the only shared state.
type Session struct {
	now func() time.Time

	services      []models.ServiceOffering
	date          time.Time // zero until chosen
	timeOfDay     string    // empty until chosen
	paymentMethod models.PaymentMethod
	note          string
}

// NewSession starts an empty booking session. now supplies the current date
// for past-date checks; pass nil for wall-clock time.
func NewSession(now func() time.Time) *Session {
	if now == nil {
		now = time.Now
	}
	return &Session{now: now, paymentMethod: models.PaymentCash}
}

// ToggleService selects the offering, or unselects it if already chosen.
// Removal keeps the remaining selection in its original order. Selecting a
// third service is silently ignored; the limit is a soft constraint, not an
// error.
func (s *Session) ToggleService(offering models.ServiceOffering) {
	for i, selected := range s.services {
		if selected == offering {
			s.services = append(s.services[:i], s.services[i+1:]...)
			return
		}
	}
	if len(s.services) >= MaxServicesPerVisit {
		return
	}
	s.services = append(s.services, offering)
}

// SetDate picks the visit date at calendar-day granularity. Dates before
// today are refused; the comparison is by calendar date, not instant, so a
// date parsed in UTC is never rejected just because the clock runs in another
// zone. A date change drops any previously chosen time, since availability is
// per-date.
func (s *Session) SetDate(date time.Time) error {
	day := date.Format(models.DateFormat)
	if day < s.now().Format(models.DateFormat) {
		return &InvalidDateError{Date: day}
	}
	s.date = truncateToDay(date)
	s.timeOfDay = ""
	return nil
}

// SetTime picks an appointment time, refusing slots the given snapshot
// reports as taken for the session's date. A date must be chosen first;
// availability is only meaningful per date.
func (s *Session) SetTime(timeOfDay string, availability SlotChecker) error {
	if s.date.IsZero() {
		return ErrNoDateChosen
	}
	if availability.IsBooked(s.DateString(), timeOfDay) {
		return &SlotUnavailableError{Date: s.DateString(), Time: timeOfDay}
	}
	s.timeOfDay = timeOfDay
	return nil
}

func (s *Session) SetPaymentMethod(method models.PaymentMethod) {
	s.paymentMethod = method
}

func (s *Session) SetNote(text string) {
	s.note = text
}

// CanSubmit reports whether the selection is complete enough to send: at
// least one service, a date, and a time.
func (s *Session) CanSubmit() bool {
	return len(s.services) > 0 && !s.date.IsZero() && s.timeOfDay != ""
}

// Reset clears the service selection and note after a successful reservation.
func (s *Session) Reset() {
	s.services = nil
	s.note = ""
}

// Services returns the current selection in the order it was made.
func (s *Session) Services() []models.ServiceOffering {
	out := make([]models.ServiceOffering, len(s.services))
	copy(out, s.services)
	return out
}

// DateString returns the chosen date as YYYY-MM-DD, or "" when unset.
func (s *Session) DateString() string {
	if s.date.IsZero() {
		return ""
	}
	return s.date.Format(models.DateFormat)
}

func (s *Session) Time() string {
	return s.timeOfDay
}

func (s *Session) PaymentMethod() models.PaymentMethod {
	return s.paymentMethod
}

func (s *Session) Note() string {
	return s.note
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
