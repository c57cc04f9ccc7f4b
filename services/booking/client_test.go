package booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"salonapp/models"
)

func TestFetchBookedSlots(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		want    []models.BookedSlot
		wantErr bool
	}{
		{
			name:   "well-formed list",
			status: http.StatusOK,
			body:   `{"booked_slots":[{"date":"2026-09-01","time":"12:00"},{"date":"2026-09-01","time":"15:00"}]}`,
			want: []models.BookedSlot{
				{Date: "2026-09-01", Time: "12:00"},
				{Date: "2026-09-01", Time: "15:00"},
			},
		},
		{
			name:   "missing field means empty",
			status: http.StatusOK,
			body:   `{}`,
			want:   nil,
		},
		{
			name:   "malformed field means empty",
			status: http.StatusOK,
			body:   `{"booked_slots":"oops"}`,
			want:   nil,
		},
		{
			name:    "non-JSON body is a transport failure",
			status:  http.StatusOK,
			body:    `<html>gateway error</html>`,
			wantErr: true,
		},
		{
			name:    "server error status",
			status:  http.StatusInternalServerError,
			body:    `{"error":"Database configuration missing"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodGet, r.Method)
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client := NewHTTPSlotAPIClient(srv.URL, 5*time.Second)
			slots, err := client.FetchBookedSlots(context.Background())
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, slots)
		})
	}
}

func TestCreateReservation(t *testing.T) {
	request := models.ReservationRequest{
		ClientName:    "Мария",
		ClientPhone:   DefaultClientPhone,
		Services:      "Дизайн",
		BookingDate:   "2026-09-01",
		BookingTime:   "9:00",
		PaymentMethod: "cash",
		Wishes:        "",
	}

	t.Run("success", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			require.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

			var got models.ReservationRequest
			require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			assert.Equal(t, request, got)

			w.WriteHeader(http.StatusCreated)
			_, _ = w.Write([]byte(`{"message":"Booking created successfully"}`))
		}))
		defer srv.Close()

		client := NewHTTPSlotAPIClient(srv.URL, 5*time.Second)
		require.NoError(t, client.CreateReservation(context.Background(), request))
	})

	t.Run("conflict with reason", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusConflict)
			_, _ = w.Write([]byte(`{"error":"Time slot already booked"}`))
		}))
		defer srv.Close()

		client := NewHTTPSlotAPIClient(srv.URL, 5*time.Second)
		err := client.CreateReservation(context.Background(), request)

		var rejected *ReservationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, "Time slot already booked", rejected.Reason)
	})

	t.Run("rejection without reason uses default", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		}))
		defer srv.Close()

		client := NewHTTPSlotAPIClient(srv.URL, 5*time.Second)
		err := client.CreateReservation(context.Background(), request)

		var rejected *ReservationRejectedError
		require.ErrorAs(t, err, &rejected)
		assert.Equal(t, DefaultRejectReason, rejected.Reason)
	})

	t.Run("unreachable backend", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
		srv.Close()

		client := NewHTTPSlotAPIClient(srv.URL, time.Second)
		err := client.CreateReservation(context.Background(), request)

		require.Error(t, err)
		var rejected *ReservationRejectedError
		assert.False(t, errors.As(err, &rejected), "a transport error is not a rejection")
	})
}
