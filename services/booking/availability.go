package booking

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"salonapp/models"
	"salonapp/utils"
)

// SlotChecker answers whether a (date, time) pair is already taken.
type SlotChecker interface {
	IsBooked(date, timeOfDay string) bool
}

// AvailabilityStore caches the last successfully fetched set of booked slots.
// The snapshot is swapped in whole on refresh, so readers never observe a
// partially applied fetch. Safe for concurrent use.
type AvailabilityStore struct {
	client SlotAPIClient

	mu       sync.RWMutex
	snapshot map[models.BookedSlot]struct{}
}

func NewAvailabilityStore(client SlotAPIClient) *AvailabilityStore {
	return &AvailabilityStore{client: client}
}

// Refresh fetches the current booked-slot set and replaces the snapshot. A
// failed fetch leaves the previous snapshot untouched.
func (s *AvailabilityStore) Refresh(ctx context.Context) error {
	slots, err := s.client.FetchBookedSlots(ctx)
	if err != nil {
		return fmt.Errorf("availability refresh failed: %w", err)
	}
	next := make(map[models.BookedSlot]struct{}, len(slots))
	for _, slot := range slots {
		next[slot] = struct{}{}
	}
	s.mu.Lock()
	s.snapshot = next
	s.mu.Unlock()
	utils.GetLogger().Debug("availability snapshot refreshed", zap.Int("bookedSlots", len(slots)))
	return nil
}

// IsBooked reports whether (date, time) was taken per the last snapshot.
// Before the first successful refresh every slot reads as available.
func (s *AvailabilityStore) IsBooked(date, timeOfDay string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return false
	}
	_, booked := s.snapshot[models.BookedSlot{Date: date, Time: timeOfDay}]
	return booked
}

// BookedSlots returns a copy of the current snapshot for display.
func (s *AvailabilityStore) BookedSlots() []models.BookedSlot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.BookedSlot, 0, len(s.snapshot))
	for slot := range s.snapshot {
		out = append(out, slot)
	}
	return out
}
