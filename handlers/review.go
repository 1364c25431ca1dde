package handlers

import (
	"net/http"

	"stayhaven/middleware"
	"stayhaven/services/review"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ReviewHandler exposes the review gate and review submission.
type ReviewHandler struct {
	Service review.ReviewService
	Logger  *zap.Logger
}

// NewReviewHandler creates a new ReviewHandler instance.
func NewReviewHandler(svc review.ReviewService, logger *zap.Logger) *ReviewHandler {
	return &ReviewHandler{Service: svc, Logger: logger}
}

// CheckEligibility reports whether the caller may review a house.
func (h *ReviewHandler) CheckEligibility(c *gin.Context) {
	houseID := c.Param("houseId")
	if houseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "houseId is required"})
		return
	}
	userID, _ := middleware.Principal(c)

	eligibility, err := h.Service.CheckEligibility(c.Request.Context(), userID, houseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, eligibility)
}

// CreateReview submits a review against a completed stay.
func (h *ReviewHandler) CreateReview(c *gin.Context) {
	var req struct {
		BookingID string `json:"bookingId"`
		Rating    int    `json:"rating"`
		Comment   string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid input", "details": err.Error()})
		return
	}
	if req.BookingID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "bookingId is required"})
		return
	}

	userID, _ := middleware.Principal(c)
	r, err := h.Service.CreateReview(c.Request.Context(), userID, req.BookingID, req.Rating, req.Comment)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Review submitted", "review": r})
}

// ListHouseReviews returns all reviews for a house. Mounted under the
// houses group, the house id arrives as the ":id" segment.
func (h *ReviewHandler) ListHouseReviews(c *gin.Context) {
	houseID := c.Param("houseId")
	if houseID == "" {
		houseID = c.Param("id")
	}
	if houseID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "houseId is required"})
		return
	}
	reviews, err := h.Service.ListHouseReviews(c.Request.Context(), houseID)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reviews)
}
