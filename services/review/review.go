package review

import (
	"context"
	"strings"
	"time"

	bookingRepo "stayhaven/database/repository/booking"
	houseRepo "stayhaven/database/repository/house"
	reviewRepo "stayhaven/database/repository/review"
	"stayhaven/models"
	"stayhaven/services/booking"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const maxCommentLength = 500

// Eligibility is the result of the review gate: when Eligible is true,
// BookingID names the completed stay the new review must reference.
type Eligibility struct {
	Eligible  bool   `json:"eligible"`
	BookingID string `json:"bookingId,omitempty"`
}

// ReviewService gates and records guest reviews. Eligibility is derived
// from booking state, never stored: one review slot per completed stay,
// consumed once a review references the booking.
type ReviewService interface {
	CheckEligibility(ctx context.Context, userID, houseID string) (*Eligibility, error)
	CreateReview(ctx context.Context, userID, bookingID string, rating int, comment string) (*models.Review, error)
	ListHouseReviews(ctx context.Context, houseID string) ([]models.Review, error)
}

// DefaultReviewService implements ReviewService.
type DefaultReviewService struct {
	Reviews  reviewRepo.ReviewRepository
	Bookings bookingRepo.BookingRepository
	Houses   houseRepo.HouseRepository
	Logger   *zap.Logger
}

// maybeComplete applies the shared Confirmed-to-Completed transition
// lazily when the gate observes a past checkout, then reflects the
// promotion on the in-memory copy.
func (s *DefaultReviewService) maybeComplete(ctx context.Context, b *models.Booking) error {
	if b.BookingStatus != models.BookingStatusConfirmed {
		return nil
	}
	now := time.Now()
	if !now.After(b.CheckOut) {
		return nil
	}
	transitioned, err := s.Bookings.CompleteIfPastCheckout(ctx, b.ID, now)
	if err != nil {
		return err
	}
	if transitioned {
		b.BookingStatus = models.BookingStatusCompleted
	} else {
		// The reconciler may have won the race; re-read to be sure.
		fresh, err := s.Bookings.GetByID(ctx, b.ID)
		if err != nil {
			return err
		}
		b.BookingStatus = fresh.BookingStatus
	}
	return nil
}

// CheckEligibility reports whether the user may review the house, and
// against which stay.
func (s *DefaultReviewService) CheckEligibility(ctx context.Context, userID, houseID string) (*Eligibility, error) {
	b, err := s.Bookings.LatestForUserAndHouse(ctx, userID, houseID)
	if err == bookingRepo.ErrNotFound {
		return &Eligibility{Eligible: false}, nil
	}
	if err != nil {
		return nil, err
	}

	if err := s.maybeComplete(ctx, b); err != nil {
		return nil, err
	}
	if b.BookingStatus != models.BookingStatusCompleted {
		return &Eligibility{Eligible: false}, nil
	}

	exists, err := s.Reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return &Eligibility{Eligible: false}, nil
	}
	return &Eligibility{Eligible: true, BookingID: b.ID}, nil
}

// CreateReview records a review against a completed stay and folds the
// rating into the house aggregates.
func (s *DefaultReviewService) CreateReview(ctx context.Context, userID, bookingID string, rating int, comment string) (*models.Review, error) {
	if rating < 1 || rating > 5 {
		return nil, &booking.ValidationError{Message: "rating must be between 1 and 5"}
	}
	comment = strings.TrimSpace(comment)
	if len(comment) > maxCommentLength {
		return nil, &booking.ValidationError{Message: "comment must be at most 500 characters"}
	}

	b, err := s.Bookings.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, &booking.NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return nil, err
	}
	if b.UserID != userID {
		return nil, &booking.ForbiddenError{Message: "not your booking"}
	}

	if err := s.maybeComplete(ctx, b); err != nil {
		return nil, err
	}
	if b.BookingStatus != models.BookingStatusCompleted {
		return nil, &booking.ValidationError{Message: "you can review only after the stay is completed"}
	}

	exists, err := s.Reviews.ExistsForBooking(ctx, b.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, &booking.ConflictError{Message: "review already submitted for this stay"}
	}

	r := &models.Review{
		ID:        uuid.New().String(),
		UserID:    userID,
		HouseID:   b.HouseID,
		BookingID: b.ID,
		Rating:    rating,
		Comment:   comment,
	}
	if err := s.Reviews.Create(ctx, r); err != nil {
		if err == reviewRepo.ErrDuplicate {
			return nil, &booking.ConflictError{Message: "review already submitted for this stay"}
		}
		return nil, err
	}

	if err := s.Houses.ApplyReviewRating(ctx, b.HouseID, rating); err != nil {
		// The review exists; a missed aggregate update is recoverable
		// and must not fail the submission.
		s.Logger.Error("failed to update house rating aggregates",
			zap.String("houseId", b.HouseID),
			zap.Error(err))
	}

	return r, nil
}

// ListHouseReviews returns all reviews for a house, newest first.
func (s *DefaultReviewService) ListHouseReviews(ctx context.Context, houseID string) ([]models.Review, error) {
	return s.Reviews.ListByHouse(ctx, houseID)
}
