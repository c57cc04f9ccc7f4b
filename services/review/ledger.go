package review

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"salonapp/models"
)

// GuestAuthor labels reviews submitted without an account.
const GuestAuthor = "Гость"

// InvalidReviewError reports a rating outside 1..5 or empty review text.
type InvalidReviewError struct {
	Reason string
}

func (e *InvalidReviewError) Error() string {
	return "invalid review: " + e.Reason
}

// Ledger owns the testimonial sequence, most recent first. Entries are never
// edited or removed once added.
type Ledger struct {
	mu      sync.Mutex
	reviews []models.Review
}

// NewLedger seeds the ledger with the salon's standing testimonials.
func NewLedger() *Ledger {
	return &Ledger{reviews: models.SeedReviews()}
}

// Submit validates the entry and prepends it to the sequence. Nothing is
// stored when validation fails.
func (l *Ledger) Submit(rating int, text string) (models.Review, error) {
	if rating < 1 || rating > 5 {
		return models.Review{}, &InvalidReviewError{Reason: fmt.Sprintf("rating %d is out of range 1..5", rating)}
	}
	if text == "" {
		return models.Review{}, &InvalidReviewError{Reason: "text must not be empty"}
	}
	entry := models.Review{
		ID:         uuid.New().String(),
		AuthorName: GuestAuthor,
		Rating:     rating,
		Text:       text,
	}
	l.mu.Lock()
	l.reviews = append([]models.Review{entry}, l.reviews...)
	l.mu.Unlock()
	return entry, nil
}

// List returns a snapshot of all reviews, newest first.
func (l *Ledger) List() []models.Review {
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]models.Review, len(l.reviews))
	copy(out, l.reviews)
	return out
}
