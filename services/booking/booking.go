package booking

import (
	"context"

	bookingRepo "stayhaven/database/repository/booking"
	houseRepo "stayhaven/database/repository/house"
	"stayhaven/models"
	"stayhaven/services/payment"

	"go.uber.org/zap"
)

// PushDispatcher hands a push off for asynchronous delivery. Dispatch
// is best-effort: implementations log failures and never surface them.
type PushDispatcher interface {
	DispatchUserPush(ctx context.Context, payload models.PushPayload)
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo       bookingRepo.BookingRepository
	HouseRepo  houseRepo.HouseRepository
	Gateway    payment.Gateway
	Dispatcher PushDispatcher
	Logger     *zap.Logger
}

// GetBooking fetches a single booking by id.
func (s *DefaultBookingService) GetBooking(ctx context.Context, bookingID string) (*models.Booking, error) {
	b, err := s.Repo.GetByID(ctx, bookingID)
	if err == bookingRepo.ErrNotFound {
		return nil, &NotFoundError{Resource: "booking", ID: bookingID}
	}
	if err != nil {
		return nil, err
	}
	return b, nil
}

// GetCheckoutStatus probes booking and payment progress.
func (s *DefaultBookingService) GetCheckoutStatus(ctx context.Context, bookingID string) (*CheckoutStatus, error) {
	b, err := s.GetBooking(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	return &CheckoutStatus{
		BookingID:     b.ID,
		BookingStatus: b.BookingStatus,
		PaymentStatus: b.PaymentStatus,
	}, nil
}

// ListUserBookings returns the caller's bookings, newest first.
func (s *DefaultBookingService) ListUserBookings(ctx context.Context, userID string) ([]models.Booking, error) {
	return s.Repo.ListByUser(ctx, userID)
}

// ListAllBookings returns every booking. Admin surface only.
func (s *DefaultBookingService) ListAllBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.ListAll(ctx)
}
