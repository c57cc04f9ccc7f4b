package booking

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"salonapp/models"
)

// DefaultRejectReason is used when the backend refuses a reservation without
// giving a reason.
const DefaultRejectReason = "Попробуйте другое время"

// SlotAPIClient talks to the reservation backend. Both operations hit the same
// endpoint: GET for the booked-slot list, POST to create a reservation.
type SlotAPIClient interface {
	FetchBookedSlots(ctx context.Context) ([]models.BookedSlot, error)
	CreateReservation(ctx context.Context, req models.ReservationRequest) error
}

// HTTPSlotAPIClient is the production SlotAPIClient.
type HTTPSlotAPIClient struct {
	BaseURL string
	Client  *http.Client
}

func NewHTTPSlotAPIClient(baseURL string, timeout time.Duration) *HTTPSlotAPIClient {
	return &HTTPSlotAPIClient{
		BaseURL: baseURL,
		Client:  &http.Client{Timeout: timeout},
	}
}

// FetchBookedSlots returns the backend's full set of reserved slots. A missing
// or malformed booked_slots field counts as an empty list, not a failure.
func (c *HTTPSlotAPIClient) FetchBookedSlots(ctx context.Context) ([]models.BookedSlot, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build booked slots request: %w", err)
	}
	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch booked slots: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("booked slots request failed with status %d", resp.StatusCode)
	}

	var body struct {
		BookedSlots json.RawMessage `json:"booked_slots"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("malformed booked slots response: %w", err)
	}
	if len(body.BookedSlots) == 0 {
		return nil, nil
	}
	var slots []models.BookedSlot
	if err := json.Unmarshal(body.BookedSlots, &slots); err != nil {
		// A list we cannot read means no known bookings.
		return nil, nil
	}
	return slots, nil
}

// CreateReservation submits a reservation. A non-success status becomes a
// ReservationRejectedError carrying the backend's reason; anything else that
// goes wrong is a transport error.
func (c *HTTPSlotAPIClient) CreateReservation(ctx context.Context, r models.ReservationRequest) error {
	payload, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal reservation request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build reservation request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.Client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send reservation: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices {
		return nil
	}

	reason := DefaultRejectReason
	var body struct {
		Error string `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err == nil && body.Error != "" {
		reason = body.Error
	}
	return &ReservationRejectedError{Reason: reason}
}
