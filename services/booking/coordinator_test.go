package booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonapp/models"
)

func completeSession(t *testing.T, store *AvailabilityStore) *Session {
	t.Helper()
	session := NewSession(fixedNow)
	offering, ok := models.FindService("Маникюр с покрытием (маникюр+покрытие+гель лак)")
	require.True(t, ok)
	session.ToggleService(offering)
	require.NoError(t, session.SetDate(fixedNow().AddDate(0, 0, 1)))
	require.NoError(t, session.SetTime("12:00", store))
	return session
}

func TestSubmitIncompleteSelection(t *testing.T) {
	client := &fakeSlotAPIClient{}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}

	outcome := coordinator.Submit(context.Background(), NewSession(fixedNow), "Мария")

	assert.Equal(t, models.Rejected("incomplete selection"), outcome)
	assert.Equal(t, 0, client.createCount(), "backend must not be contacted")
	assert.Equal(t, 0, client.fetchCount(), "no refresh for an incomplete selection")
}

func TestSubmitAccepted(t *testing.T) {
	client := &fakeSlotAPIClient{}
	store := NewAvailabilityStore(client)
	require.NoError(t, store.Refresh(context.Background()))
	coordinator := &SubmissionCoordinator{Client: client, Store: store}
	session := completeSession(t, store)

	outcome := coordinator.Submit(context.Background(), session, "Мария")

	assert.Equal(t, models.Accepted(), outcome)
	assert.Equal(t, 1, client.createCount())

	req := client.last()
	assert.Equal(t, "Мария", req.ClientName)
	assert.Equal(t, "Маникюр с покрытием (маникюр+покрытие+гель лак)", req.Services)
	assert.Equal(t, "2026-09-01", req.BookingDate)
	assert.Equal(t, "12:00", req.BookingTime)
	assert.Equal(t, "cash", req.PaymentMethod)

	// Acceptance triggers a background refresh (one fetch happened in setup).
	require.Eventually(t, func() bool { return client.fetchCount() >= 2 },
		time.Second, 10*time.Millisecond, "accepted submission must refresh availability")
}

func TestSubmitFallbackClientName(t *testing.T) {
	client := &fakeSlotAPIClient{}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}
	session := completeSession(t, store)

	outcome := coordinator.Submit(context.Background(), session, "")

	assert.Equal(t, models.Accepted(), outcome)
	assert.Equal(t, FallbackClientName, client.last().ClientName)
	assert.Equal(t, DefaultClientPhone, client.last().ClientPhone)
}

func TestSubmitLocalPrecheckRejects(t *testing.T) {
	client := &fakeSlotAPIClient{}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}
	session := completeSession(t, store)

	// Another client takes the slot; our next refresh sees it.
	client.mu.Lock()
	client.slots = []models.BookedSlot{{Date: "2026-09-01", Time: "12:00"}}
	client.mu.Unlock()
	require.NoError(t, store.Refresh(context.Background()))
	fetchesSoFar := client.fetchCount()

	outcome := coordinator.Submit(context.Background(), session, "Мария")

	assert.Equal(t, models.Rejected("slot no longer available"), outcome)
	assert.Equal(t, 0, client.createCount(), "pre-check rejection must skip the backend call")
	require.Eventually(t, func() bool { return client.fetchCount() > fetchesSoFar },
		time.Second, 10*time.Millisecond, "pre-check rejection still refreshes availability")
}

func TestSubmitBackendRejection(t *testing.T) {
	client := &fakeSlotAPIClient{
		createErr: &ReservationRejectedError{Reason: "Time slot already booked"},
	}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}
	session := completeSession(t, store)

	outcome := coordinator.Submit(context.Background(), session, "Мария")

	assert.Equal(t, models.Rejected("Time slot already booked"), outcome)
	require.Eventually(t, func() bool { return client.fetchCount() >= 1 },
		time.Second, 10*time.Millisecond, "a backend rejection refreshes availability")
}

func TestSubmitTransportFailure(t *testing.T) {
	client := &fakeSlotAPIClient{
		createErr: errors.New("connection reset"),
	}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}
	session := completeSession(t, store)

	outcome := coordinator.Submit(context.Background(), session, "Мария")

	assert.Equal(t, models.TransportFailed(), outcome)
	require.Never(t, func() bool { return client.fetchCount() > 0 },
		200*time.Millisecond, 20*time.Millisecond, "transport failures must not refresh availability")
}

func TestSubmitTwoServicesJoined(t *testing.T) {
	client := &fakeSlotAPIClient{}
	store := NewAvailabilityStore(client)
	coordinator := &SubmissionCoordinator{Client: client, Store: store}

	session := NewSession(fixedNow)
	list := models.PriceList()
	session.ToggleService(list[4])
	session.ToggleService(list[5])
	require.NoError(t, session.SetDate(fixedNow().AddDate(0, 0, 2)))
	require.NoError(t, session.SetTime("18:00", store))
	session.SetPaymentMethod(models.PaymentCard)
	session.SetNote("после 18 не звонить")

	outcome := coordinator.Submit(context.Background(), session, "Анна")

	require.Equal(t, models.Accepted(), outcome)
	req := client.last()
	assert.Equal(t, list[4].Name+", "+list[5].Name, req.Services)
	assert.Equal(t, "card", req.PaymentMethod)
	assert.Equal(t, "после 18 не звонить", req.Wishes)
}
