package booking

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"salonapp/models"
	"salonapp/utils"
)

const (
	// DefaultClientPhone stands in until real contact collection exists.
	DefaultClientPhone = "+79991234567"
	// FallbackClientName is used when no display name is known.
	FallbackClientName = "Клиент"

	refreshTimeout = 10 * time.Second
)

// SubmissionCoordinator commits a finished session against the reservation
// backend. The local snapshot narrows the choice up front, but the backend is
// always the final arbiter of slot ownership: a slot can be taken by another
// client between refresh and submit, and only the backend sees that.
type SubmissionCoordinator struct {
	Client SlotAPIClient
	Store  *AvailabilityStore
}

// Submit validates the session, re-checks the local snapshot, and sends the
// reservation. Accepted and rejected outcomes kick off a background snapshot
// refresh so the next attempt sees fresher data; transport failures do not,
// since the backend state is unknown. The store may therefore still be stale
// the moment Submit returns.
func (c *SubmissionCoordinator) Submit(ctx context.Context, session *Session, displayName string) models.ReservationOutcome {
	logger := utils.GetLogger()

	if !session.CanSubmit() {
		return models.Rejected("incomplete selection")
	}

	if c.Store.IsBooked(session.DateString(), session.Time()) {
		logger.Info("slot taken per local snapshot, skipping backend call",
			zap.String("date", session.DateString()),
			zap.String("time", session.Time()))
		c.refreshAsync()
		return models.Rejected("slot no longer available")
	}

	req := c.buildRequest(session, displayName)
	err := c.Client.CreateReservation(ctx, req)
	if err == nil {
		logger.Info("reservation accepted",
			zap.String("date", req.BookingDate),
			zap.String("time", req.BookingTime),
			zap.String("services", req.Services))
		c.refreshAsync()
		return models.Accepted()
	}

	var rejected *ReservationRejectedError
	if errors.As(err, &rejected) {
		logger.Warn("reservation rejected by backend", zap.String("reason", rejected.Reason))
		c.refreshAsync()
		return models.Rejected(rejected.Reason)
	}

	logger.Error("reservation transport failure", zap.Error(err))
	return models.TransportFailed()
}

func (c *SubmissionCoordinator) buildRequest(session *Session, displayName string) models.ReservationRequest {
	services := session.Services()
	names := make([]string, 0, len(services))
	for _, svc := range services {
		names = append(names, svc.Name)
	}
	name := displayName
	if name == "" {
		name = FallbackClientName
	}
	return models.ReservationRequest{
		ClientName:    name,
		ClientPhone:   DefaultClientPhone,
		Services:      strings.Join(names, ", "),
		BookingDate:   session.DateString(),
		BookingTime:   session.Time(),
		PaymentMethod: string(session.PaymentMethod()),
		Wishes:        session.Note(),
	}
}

// refreshAsync updates the snapshot without delaying the returned outcome.
func (c *SubmissionCoordinator) refreshAsync() {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()
		if err := c.Store.Refresh(ctx); err != nil {
			utils.GetLogger().Warn("post-submit availability refresh failed", zap.Error(err))
		}
	}()
}
