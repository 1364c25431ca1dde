package bookingRepo

import (
	"context"
	"errors"
	"time"

	"stayhaven/models"
)

// ErrIntervalTaken is returned when a booking insert loses the race for
// its date interval: another Pending or Confirmed booking already holds
// an overlapping range on the same house.
var ErrIntervalTaken = errors.New("house not available for these dates")

// ErrNotFound is returned when no booking matches the given id.
var ErrNotFound = errors.New("booking not found")

// BookingRepository defines the interface for booking data access.
//
// All status transitions are conditional updates: the filter encodes the
// allowed source state, so a concurrent transition degrades to a no-op
// (matched count zero) instead of a conflicting write.
type BookingRepository interface {
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]models.Booking, error)
	ListAll(ctx context.Context) ([]models.Booking, error)

	// LatestForUserAndHouse returns the most recent booking for the
	// (user, house) pair ordered by checkout descending, or ErrNotFound.
	LatestForUserAndHouse(ctx context.Context, userID, houseID string) (*models.Booking, error)

	// HasOverlap reports whether any Pending or Confirmed booking on the
	// house intersects the half-open interval [checkIn, checkOut).
	// excludeID, when non-empty, is left out of consideration.
	HasOverlap(ctx context.Context, houseID string, checkIn, checkOut time.Time, excludeID string) (bool, error)

	// CreateIfAvailable inserts the booking inside a transaction that
	// re-validates the overlap condition first. Returns ErrIntervalTaken
	// when a concurrent booking already holds the interval.
	CreateIfAvailable(ctx context.Context, booking *models.Booking) error

	// ConfirmPayment transitions a Pending booking to Confirmed/Paid and
	// stores the provider payment id and signature. Returns true when
	// this call performed the transition, false when no Pending booking
	// matched (already confirmed, cancelled, or absent).
	ConfirmPayment(ctx context.Context, bookingID, paymentID, signature string) (bool, error)

	// MarkCancelled transitions a booking out of Pending or Confirmed
	// into Cancelled, releasing its interval. Returns true when this
	// call performed the transition.
	MarkCancelled(ctx context.Context, bookingID string) (bool, error)

	// CompletePastCheckout promotes every Confirmed booking whose
	// checkout is before now to Completed and returns how many changed.
	CompletePastCheckout(ctx context.Context, now time.Time) (int64, error)

	// CompleteIfPastCheckout applies the same transition to a single
	// booking. Returns true when this call performed the transition.
	CompleteIfPastCheckout(ctx context.Context, bookingID string, now time.Time) (bool, error)
}
