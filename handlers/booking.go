package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"salonapp/models"
	"salonapp/services/auth"
	"salonapp/services/booking"
	"salonapp/utils"
)

// BookingHandler exposes the booking core over HTTP. The handler itself is
// stateless: each reservation request carries the full selection, which is
// replayed through a fresh session so every local invariant is enforced
// before the backend is contacted.
type BookingHandler struct {
	Coordinator  *booking.SubmissionCoordinator
	Store        *booking.AvailabilityStore
	SessionStore auth.SessionStore
	Now          func() time.Time
	Logger       *zap.Logger
}

func NewBookingHandler(coordinator *booking.SubmissionCoordinator, store *booking.AvailabilityStore, sessions auth.SessionStore, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{
		Coordinator:  coordinator,
		Store:        store,
		SessionStore: sessions,
		Now:          time.Now,
		Logger:       logger,
	}
}

// GetServices returns the fixed price list.
func (h *BookingHandler) GetServices(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"services":       models.PriceList(),
		"availableTimes": models.AvailableTimes,
	})
}

// GetBookedSlots refreshes the availability snapshot and returns the booked
// set, so clients entering the booking flow start from current data.
func (h *BookingHandler) GetBookedSlots(c *gin.Context) {
	if err := h.Store.Refresh(c.Request.Context()); err != nil {
		h.Logger.Error("failed to refresh booked slots", zap.Error(err))
		utils.JSONError(c, http.StatusBadGateway, "failed to fetch booked slots", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"booked_slots": h.Store.BookedSlots()})
}

type reservationInput struct {
	Services      []string `json:"services" binding:"required"`
	Date          string   `json:"date" binding:"required"`
	Time          string   `json:"time" binding:"required"`
	PaymentMethod string   `json:"payment_method"`
	Wishes        string   `json:"wishes"`
	AuthSessionID string   `json:"auth_session_id"`
}

// SubmitReservation replays the client's selection through a booking session
// and commits it via the coordinator.
func (h *BookingHandler) SubmitReservation(c *gin.Context) {
	var input reservationInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	session := booking.NewSession(h.Now)
	for _, name := range input.Services {
		offering, ok := models.FindService(name)
		if !ok {
			utils.JSONError(c, http.StatusBadRequest, "unknown service", name)
			return
		}
		session.ToggleService(offering)
	}

	date, err := models.ParseDate(input.Date)
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}
	if err := session.SetDate(date); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid date", err.Error())
		return
	}

	if !models.IsValidTime(input.Time) {
		utils.JSONError(c, http.StatusBadRequest, "invalid time", fmt.Sprintf("%q is not an offered appointment time", input.Time))
		return
	}
	if err := session.SetTime(input.Time, h.Store); err != nil {
		utils.JSONError(c, http.StatusConflict, "slot no longer available", err.Error())
		return
	}

	switch models.PaymentMethod(input.PaymentMethod) {
	case models.PaymentCard:
		session.SetPaymentMethod(models.PaymentCard)
	case models.PaymentCash, "":
		session.SetPaymentMethod(models.PaymentCash)
	default:
		utils.JSONError(c, http.StatusBadRequest, "invalid payment method", input.PaymentMethod)
		return
	}
	session.SetNote(input.Wishes)

	outcome := h.Coordinator.Submit(c.Request.Context(), session, h.displayName(c, input.AuthSessionID))
	switch outcome.Status {
	case models.OutcomeAccepted:
		session.Reset()
		c.JSON(http.StatusCreated, outcome)
	case models.OutcomeRejected:
		c.JSON(http.StatusConflict, outcome)
	default:
		c.JSON(http.StatusBadGateway, outcome)
	}
}

// displayName resolves the visitor's saved name, if any.
func (h *BookingHandler) displayName(c *gin.Context, authSessionID string) string {
	if authSessionID == "" {
		return ""
	}
	session, err := h.SessionStore.Load(c.Request.Context(), authSessionID)
	if err != nil {
		h.Logger.Warn("failed to load auth session", zap.Error(err))
		return ""
	}
	if session == nil {
		return ""
	}
	return session.DisplayName
}
