package booking

import (
	"context"

	"stayhaven/models"

	"go.uber.org/zap"
)

// CancelBooking marks a booking Cancelled, releasing its date interval.
// Only the host of the booked house or an admin may cancel. Bookings
// are status-marked rather than deleted so history survives; explicit
// administrative deletes live elsewhere.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, bookingID string, actor Principal) error {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return err
	}

	if actor.Role != models.RoleAdmin {
		house, err := s.HouseRepo.GetByID(ctx, b.HouseID)
		if err != nil {
			return err
		}
		if house.HostID != actor.ID {
			return &ForbiddenError{Message: "only the host or an admin may cancel this booking"}
		}
	}

	transitioned, err := s.Repo.MarkCancelled(ctx, bookingID)
	if err != nil {
		return err
	}
	if !transitioned {
		// Already terminal: cancelling a Cancelled booking is a no-op,
		// a Completed stay can no longer be cancelled.
		if b.BookingStatus == models.BookingStatusCancelled {
			return nil
		}
		return &ConflictError{Message: "booking can no longer be cancelled"}
	}

	s.Logger.Info("booking cancelled",
		zap.String("bookingId", bookingID),
		zap.String("actorId", actor.ID),
		zap.String("actorRole", actor.Role))
	return nil
}
