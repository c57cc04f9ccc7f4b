package models

// PaymentMethod is how the client intends to pay at the salon.
type PaymentMethod string

const (
	PaymentCash PaymentMethod = "cash"
	PaymentCard PaymentMethod = "card"
)

// ReservationRequest is the immutable payload sent to the reservation backend
// when a booking session is committed. Field names follow the backend's wire
// format.
type ReservationRequest struct {
	ClientName    string `json:"client_name"`
	ClientPhone   string `json:"client_phone"`
	Services      string `json:"services"`
	BookingDate   string `json:"booking_date"`
	BookingTime   string `json:"booking_time"`
	PaymentMethod string `json:"payment_method"`
	Wishes        string `json:"wishes"`
}

// OutcomeStatus discriminates the result of a submission attempt.
type OutcomeStatus string

const (
	OutcomeAccepted         OutcomeStatus = "accepted"
	OutcomeRejected         OutcomeStatus = "rejected"
	OutcomeTransportFailure OutcomeStatus = "transport_failure"
)

// ReservationOutcome reports how one submission attempt ended. Reason is set
// only for rejections.
type ReservationOutcome struct {
	Status OutcomeStatus `json:"status"`
	Reason string        `json:"reason,omitempty"`
}

func Accepted() ReservationOutcome {
	return ReservationOutcome{Status: OutcomeAccepted}
}

func Rejected(reason string) ReservationOutcome {
	return ReservationOutcome{Status: OutcomeRejected, Reason: reason}
}

func TransportFailed() ReservationOutcome {
	return ReservationOutcome{Status: OutcomeTransportFailure}
}
