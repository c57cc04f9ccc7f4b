package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"salonapp/services/review"
	"salonapp/utils"
)

type ReviewHandler struct {
	Ledger *review.Ledger
}

func NewReviewHandler(ledger *review.Ledger) *ReviewHandler {
	return &ReviewHandler{Ledger: ledger}
}

// ListReviews returns all testimonials, newest first.
func (h *ReviewHandler) ListReviews(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"reviews": h.Ledger.List()})
}

type reviewInput struct {
	Rating int    `json:"rating"`
	Text   string `json:"text"`
}

// SubmitReview validates and records a new testimonial.
func (h *ReviewHandler) SubmitReview(c *gin.Context) {
	var input reviewInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	entry, err := h.Ledger.Submit(input.Rating, input.Text)
	if err != nil {
		var invalid *review.InvalidReviewError
		if errors.As(err, &invalid) {
			utils.JSONError(c, http.StatusBadRequest, "invalid review", invalid.Reason)
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to submit review", err.Error())
		return
	}
	c.JSON(http.StatusCreated, gin.H{"review": entry})
}
